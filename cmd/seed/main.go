package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/auth-profile-service/config"
	"github.com/oksasatya/auth-profile-service/internal/domain/entity"
	"github.com/oksasatya/auth-profile-service/pkg/helpers"
)

// Seeds an admin account. No exposed endpoint can assign the admin role, so
// the first admin has to come from here (or directly from SQL).
func main() {
	email := flag.String("email", "admin@example.com", "admin email")
	password := flag.String("password", "changeme123", "admin password")
	name := flag.String("name", "Admin", "admin display name")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(*password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id string
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, bio, phone, profile_picture_url, is_public, role)
		VALUES ($1, $2, $3, ' ', ' ', ' ', TRUE, $4)
		ON CONFLICT (email) DO UPDATE SET role = EXCLUDED.role, updated_at = now()
		RETURNING id
	`, *email, hash, *name, entity.RoleAdmin).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s\n", id, *email)
}
