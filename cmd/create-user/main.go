// Command create-user provisions a user account. The API has no
// registration endpoint; accounts are created by an administrator with
// this tool, which hashes the password with bcrypt and inserts the row.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/PatrickPenner/shopping-list-api/internal/config"
	"github.com/PatrickPenner/shopping-list-api/internal/domain"
	"github.com/PatrickPenner/shopping-list-api/internal/platform/postgres"

	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	name := flag.String("name", "", "user name (required)")
	password := flag.String("password", "", "plaintext password (required)")
	hashOnly := flag.Bool("hash-only", false, "print the bcrypt hash instead of inserting a user")
	flag.Parse()

	if *name == "" && !*hashOnly {
		flag.Usage()
		os.Exit(2)
	}
	if *password == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *hashOnly {
		hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to generate hash: %v", err)
		}
		fmt.Println(string(hash))
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to open database connection: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := postgres.Migrate(db, "up"); err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}

	user, err := domain.NewUser(*name, *password)
	if err != nil {
		log.Fatalf("Invalid user data: %v", err)
	}

	userStore := postgres.NewUserStore(db, bcrypt.DefaultCost, slog.Default())
	if err := userStore.Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	fmt.Printf("Created user %s with ID %s\n", user.Name, user.ID)
}
