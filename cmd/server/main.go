package main

import (
	"log"
	"net/http"
	"os"

	_ "viewify/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"viewify/internal/auth"
	"viewify/internal/cache"
	"viewify/internal/config"
	"viewify/internal/db"
	"viewify/internal/email"
	"viewify/internal/handler"
	"viewify/internal/logger"
	"viewify/internal/model"
	"viewify/internal/repository"
	"viewify/internal/router"
	"viewify/internal/rpc"
)

// @title Viewify API
// @version 1.0
// @description Merchant dashboard backend: auth, product catalog RPC, and transactional email.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.
func main() {
	cfg := config.Load()
	zlog := logger.New(cfg.AppEnv)
	defer func() { _ = zlog.Sync() }()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Product{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	productRepo := repository.NewProductRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	sessionStore := auth.NewSessionStore(cacheClient)
	authService := auth.NewService(userRepo, jwtService, sessionStore)

	// Email provider
	sender := email.NewMailgunSender(cfg.MailgunDomain, cfg.MailgunAPIKey)

	// Assemble the procedure namespace
	registry := rpc.Merge(
		rpc.ProductsRouter(productRepo),
		rpc.UserRouter(userRepo),
		rpc.EmailRouter(sender, zlog),
	)
	contexts := rpc.NewContextBuilder(authService)

	// Initialize handlers
	rpcHandler := handler.NewRPCHandler(registry, contexts, zlog)
	authHandler := handler.NewAuthHandler(authService)
	accountHandler := handler.NewAccountHandler(authService)
	seedHandler := handler.NewSeedHandler(productRepo)

	// Register routes
	router.Register(
		e,
		cfg,
		rpcHandler,
		authHandler,
		accountHandler,
		seedHandler,
	)

	// Log swagger full path
	var swaggerURL string
	if cfg.SwaggerHost != "" {
		// SwaggerHost may already include scheme (http:// or https://)
		if len(cfg.SwaggerHost) >= 7 && cfg.SwaggerHost[:7] == "http://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else if len(cfg.SwaggerHost) >= 8 && cfg.SwaggerHost[:8] == "https://" {
			swaggerURL = cfg.SwaggerHost + "/swagger/index.html"
		} else {
			swaggerURL = "http://" + cfg.SwaggerHost + "/swagger/index.html"
		}
	} else {
		swaggerURL = "http://localhost:" + cfg.ServerPort + "/swagger/index.html"
	}
	log.Printf("Swagger documentation available at: %s", swaggerURL)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
