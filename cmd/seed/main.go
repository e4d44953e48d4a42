// Command seed provisions the administrator account. Run once after
// migrations; re-running promotes an existing account with the same
// email instead of failing.
package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-blog-clean-architecture/config"
	"github.com/oksasatya/go-blog-clean-architecture/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if cfg.AdminPassword == "" {
		log.Fatal("ADMIN_PASSWORD must be set to provision the administrator")
	}

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	hash, err := helpers.HashPassword(cfg.AdminPassword)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (email, password_hash, name, is_admin)
		VALUES ($1, $2, $3, TRUE)
		ON CONFLICT (email) DO UPDATE SET is_admin = TRUE
		RETURNING id
	`, cfg.AdminEmail, hash, cfg.AdminName).Scan(&id)
	if err != nil {
		log.Fatalf("failed to provision administrator: %v", err)
	}
	fmt.Printf("administrator provisioned: id=%d email=%s name=%s\n", id, cfg.AdminEmail, cfg.AdminName)
}
