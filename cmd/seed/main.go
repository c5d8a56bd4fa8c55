package main

import (
	"context"
	"log"
	"os"

	"gorm.io/gorm"

	"portfolio/internal/auth"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/model"
	"portfolio/internal/repository"
)

// Seeds the single admin account from ADMIN_EMAIL, ADMIN_PASSWORD and
// ADMIN_NAME. Idempotent: an existing row gets its name and hash
// refreshed instead of a duplicate.
func main() {
	log.Println("Starting admin seed...")

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" {
		log.Fatal("ADMIN_EMAIL and ADMIN_PASSWORD must be set")
	}
	if name == "" {
		name = "Admin"
	}
	if len(password) < auth.MinPasswordLen {
		log.Fatalf("ADMIN_PASSWORD must be at least %d characters", auth.MinPasswordLen)
	}

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	existing, err := userRepo.FindByEmail(ctx, email)
	if err != nil && err != gorm.ErrRecordNotFound {
		log.Fatalf("Failed to look up admin: %v", err)
	}

	if existing != nil {
		existing.Name = name
		existing.PasswordHash = &hash
		existing.IsAdmin = true
		if err := userRepo.Update(ctx, existing); err != nil {
			log.Fatalf("Failed to update admin: %v", err)
		}
		log.Printf("Updated existing admin account %s (id=%d)", email, existing.ID)
		return
	}

	admin := &model.User{
		Email:        email,
		Name:         name,
		Provider:     "admin",
		PasswordHash: &hash,
		IsAdmin:      true,
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin account %s (id=%d)", email, admin.ID)
}
