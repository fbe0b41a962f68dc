package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/ifa360/ifa360-server/config"
)

// Inserts a handful of demo leads for local development.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	seeds := []struct {
		kind    string
		name    string
		email   string
		mobile  string
		message string
		payload map[string]any
		source  string
	}{
		{"contact", "Sipho Dlamini", "sipho@example.com", "", "Please call me about gap cover.", nil, "ifa360-customer-site"},
		{"register", "Anele Khumalo", "anele@example.com", "+27821234567", "", nil, "ifa360-customer-site"},
		{"quote_request", "Lerato Mokoena", "lerato@example.com", "+27835550123", "", map[string]any{
			"initial": 0, "monthly": 2500, "years": 10, "growth": 6, "escalation": 0,
			"projected_value": 410000,
		}, "ifa360-projection-page"},
	}

	for _, s := range seeds {
		payload, _ := json.Marshal(s.payload)
		_, err := db.Exec(`
			INSERT INTO leads (id, kind, name, email, mobile, message, payload, source_page)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING
		`, uuid.New().String(), s.kind, s.name, s.email, s.mobile, s.message, payload, s.source)
		if err != nil {
			log.Fatalf("failed to seed lead: %v", err)
		}
	}

	fmt.Printf("seeded %d demo leads\n", len(seeds))
}
