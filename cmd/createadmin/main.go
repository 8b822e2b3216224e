// Command createadmin seeds or updates a database-backed admin user.
// The sentinel admin configured through ADMIN_EMAIL/ADMIN_PASSWORD needs no
// seeding; this exists for teams that prefer a stored admin account.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hackathon_backend/internal/feature/auth/adapters"
	"hackathon_backend/internal/feature/auth/domain/entity"
	"hackathon_backend/internal/feature/auth/usecase"
	"hackathon_backend/internal/platform/config"
	infradb "hackathon_backend/internal/platform/db"
)

func main() {
	var (
		name     = flag.String("name", "System Admin", "display name for the admin user")
		email    = flag.String("email", "", "admin email (required)")
		password = flag.String("password", "", "admin password (required)")
	)
	flag.Parse()

	if *email == "" || *password == "" {
		log.Fatal("both -email and -password are required")
	}

	cfg := config.Load()

	db, err := infradb.Open(cfg.DB, 30*time.Second)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.AutoMigrate(&entity.User{}); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	ctx := context.Background()
	repo := adapters.NewUserMySQL(db)

	existing, err := repo.FindByEmail(ctx, *email)
	switch {
	case err == nil:
		// Refresh the password and admin flag so access can be restored.
		existing.Password = string(hashed)
		existing.IsAdmin = true
		if err := saveUser(db, existing); err != nil {
			log.Fatalf("failed to update admin user: %v", err)
		}
		log.Printf("admin user %s updated", *email)
	case errors.Is(err, usecase.ErrUserNotFound):
		user := &entity.User{
			Name:     *name,
			Email:    *email,
			Password: string(hashed),
			IsAdmin:  true,
		}
		if err := repo.Create(ctx, user); err != nil {
			log.Fatalf("failed to create admin user: %v", err)
		}
		log.Printf("admin user %s created", *email)
	default:
		log.Fatalf("failed to look up admin user: %v", err)
	}
}

func saveUser(db *gorm.DB, user *entity.User) error {
	return db.Save(user).Error
}
