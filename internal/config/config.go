package config

import "os"

type Config struct {
	Addr        string
	JWTSecret   string
	DatabaseURL string
}

func Load() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		// demo storefront: sessions are anonymous cart handles, not credentials
		secret = "farmaquiero-dev-secret"
	}

	return Config{
		Addr:        addr,
		JWTSecret:   secret,
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}
