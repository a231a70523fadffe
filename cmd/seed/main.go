package main

import (
	"context"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"viewify/internal/config"
	"viewify/internal/db"
	"viewify/internal/model"
	"viewify/internal/repository"
	"viewify/internal/seed"
)

const (
	demoEmail    = "demo@viewify.dev"
	demoName     = "Demo Merchant"
	demoPassword = "viewify-demo"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Product{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	users := repository.NewUserRepository(gormDB)
	products := repository.NewProductRepository(gormDB)

	merchant, err := ensureDemoMerchant(ctx, users)
	if err != nil {
		log.Fatalf("Failed to create demo merchant: %v", err)
	}
	log.Printf("Demo merchant ready: %s (%s)", merchant.Email, merchant.ID)

	ownerID := merchant.ID.String()
	count, err := seed.Run(ctx, products, &ownerID)
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
	log.Printf("Seed complete: %d products inserted", count)
}

func ensureDemoMerchant(ctx context.Context, users repository.UserRepository) (*model.User, error) {
	existing, err := users.FindByEmail(ctx, demoEmail)
	if err == nil {
		return existing, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	merchant := &model.User{
		ID:            uuid.New(),
		Name:          demoName,
		Email:         demoEmail,
		EmailVerified: true,
		PasswordHash:  string(hashed),
	}
	if err := users.Create(ctx, merchant); err != nil {
		return nil, err
	}
	return merchant, nil
}
