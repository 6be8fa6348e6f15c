package analytics

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

func TestInMemoryRecorder(t *testing.T) {
	rec := NewInMemoryRecorder()

	rec.Record("questionnaire_started", map[string]any{"goal": "sleep"})
	rec.Record("add_to_cart", map[string]any{"sku": "SLP001", "quantity": 2})

	events := rec.Events()
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Name != "questionnaire_started" || events[1].Name != "add_to_cart" {
		t.Fatalf("events out of order: %s, %s", events[0].Name, events[1].Name)
	}
	if events[0].ID == "" || events[0].ID == events[1].ID {
		t.Fatal("expected distinct non-empty event ids")
	}
	if _, err := time.Parse(time.RFC3339, events[0].Timestamp); err != nil {
		t.Fatalf("timestamp is not RFC3339: %q", events[0].Timestamp)
	}
	if events[1].Payload["sku"] != "SLP001" {
		t.Fatalf("payload not preserved: %v", events[1].Payload)
	}

	// the returned slice is a copy
	events[0].Name = "tampered"
	if rec.Events()[0].Name != "questionnaire_started" {
		t.Fatal("mutating the returned slice leaked into the recorder")
	}

	rec.Clear()
	if len(rec.Events()) != 0 {
		t.Fatal("expected no events after clear")
	}
}

func TestNopRecorder(t *testing.T) {
	var rec Recorder = NopRecorder{}
	rec.Record("anything", nil)
	if len(rec.Events()) != 0 {
		t.Fatal("nop recorder must not retain events")
	}
}

func TestEventRoutes(t *testing.T) {
	rec := NewInMemoryRecorder()
	app := fiber.New()
	NewHandler(rec).RegisterPublicRoutes(app)

	body := bytes.NewBufferString(`{"event":"checkout_simulated","data":{"total":11000}}`)
	req := httptest.NewRequest("POST", "/api/v1/events", body)
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusAccepted {
		t.Fatalf("expected 202, got %d", res.StatusCode)
	}

	res, _ = app.Test(httptest.NewRequest("GET", "/api/v1/events", nil))
	raw, _ := io.ReadAll(res.Body)
	var events []Event
	if err := json.Unmarshal(raw, &events); err != nil {
		t.Fatalf("invalid events body: %v", err)
	}
	if len(events) != 1 || events[0].Name != "checkout_simulated" {
		t.Fatalf("unexpected events: %v", events)
	}

	res, _ = app.Test(httptest.NewRequest("DELETE", "/api/v1/events", nil))
	if res.StatusCode != fiber.StatusNoContent {
		t.Fatalf("expected 204, got %d", res.StatusCode)
	}
	if len(rec.Events()) != 0 {
		t.Fatal("expected recorder cleared")
	}
}

func TestEventRoute_MissingName(t *testing.T) {
	app := fiber.New()
	NewHandler(NewInMemoryRecorder()).RegisterPublicRoutes(app)

	req := httptest.NewRequest("POST", "/api/v1/events", bytes.NewBufferString(`{"data":{}}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400, got %d", res.StatusCode)
	}
}
