package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	jwtware "github.com/gofiber/jwt/v2"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/farmaquiero/wellness-shop-backend/internal/analytics"
	"github.com/farmaquiero/wellness-shop-backend/internal/assistant"
	"github.com/farmaquiero/wellness-shop-backend/internal/cart"
	"github.com/farmaquiero/wellness-shop-backend/internal/catalog"
	"github.com/farmaquiero/wellness-shop-backend/internal/checkout"
	"github.com/farmaquiero/wellness-shop-backend/internal/config"
	"github.com/farmaquiero/wellness-shop-backend/internal/optimizer"
	"github.com/farmaquiero/wellness-shop-backend/internal/session"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	catalogRepo := mustLoadCatalog(cfg)
	recorder := analytics.NewInMemoryRecorder()

	// public surface: catalog, questionnaire, session minting, event log
	catalogHandler := catalog.NewHandler(catalog.NewService(catalogRepo))
	catalogHandler.RegisterPublicRoutes(app)

	engine := assistant.NewEngine(catalogRepo)
	assistantHandler := assistant.NewHandler(assistant.NewService(engine), recorder)
	assistantHandler.RegisterPublicRoutes(app)

	sessionHandler := session.NewHandler(cfg.JWTSecret)
	sessionHandler.RegisterPublicRoutes(app)

	analyticsHandler := analytics.NewHandler(recorder)
	analyticsHandler.RegisterPublicRoutes(app)

	// everything past this point needs a session token
	app.Use(jwtware.New(jwtware.Config{
		SigningKey: []byte(cfg.JWTSecret),
	}))

	cartService := cart.NewService(cart.NewInMemoryRepository(), catalogRepo)
	cartHandler := cart.NewHandler(cartService, catalogRepo, recorder)
	cartHandler.RegisterProtectedRoutes(app)

	optimizerHandler := optimizer.NewHandler(optimizer.New(catalogRepo), cartService, recorder)
	optimizerHandler.RegisterProtectedRoutes(app)

	checkoutService := checkout.NewService(checkout.NewInMemoryRepository(), cartService, catalogRepo)
	checkoutHandler := checkout.NewHandler(checkoutService, recorder)
	checkoutHandler.RegisterProtectedRoutes(app)

	log.Printf("starting server on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
}

// mustLoadCatalog prefers the Postgres catalog when DATABASE_URL is set and
// falls back to the built-in seed. Either way the snapshot is immutable for
// the process lifetime.
func mustLoadCatalog(cfg config.Config) catalog.Repository {
	if cfg.DatabaseURL == "" {
		return catalog.NewInMemoryRepository(catalog.DefaultProducts(), catalog.DefaultKits())
	}

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("ping database: %v", err)
	}
	defer db.Close()

	products, kits, err := catalog.NewPostgresLoader(db).Load()
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	log.Printf("loaded catalog from database: %d products, %d kits", len(products), len(kits))
	return catalog.NewInMemoryRepository(products, kits)
}
