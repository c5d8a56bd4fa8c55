package main

import (
	"context"
	"log"
	"net/http"
	"os"

	_ "portfolio/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"portfolio/internal/auth"
	"portfolio/internal/cache"
	"portfolio/internal/config"
	"portfolio/internal/db"
	"portfolio/internal/handler"
	"portfolio/internal/model"
	"portfolio/internal/notify"
	"portfolio/internal/repository"
	"portfolio/internal/router"
	"portfolio/internal/service"
)

// @title Portfolio API
// @version 1.0
// @description Portfolio site backend: admin authentication and testimonial moderation.
// @host localhost:8080
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

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
			&model.Testimonial{},
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
		&model.Testimonial{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	testimonialRepo := repository.NewTestimonialRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)

	var resetCodes auth.ResetCodeStore
	if cfg.RedisAddr != "" {
		resetCodes = auth.NewRedisResetCodeStore(cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB))
		log.Printf("reset codes stored in redis at %s", cfg.RedisAddr)
	} else {
		resetCodes = auth.NewMemoryResetCodeStore()
		log.Println("REDIS_ADDR not set, keeping reset codes in memory")
	}

	var notifier notify.Notifier
	if cfg.SESFromEmail != "" {
		notifier, err = notify.NewSESNotifier(context.Background(), cfg.AWSRegion, cfg.SESFromEmail, cfg.SESFromName, cfg.AdminNotifyEmail)
		if err != nil {
			log.Fatalf("ses init: %v", err)
		}
	} else {
		notifier = notify.LogNotifier{}
		log.Println("SES_FROM_EMAIL not set, logging notifications to console")
	}

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, resetCodes, notifier)
	testimonialService := service.NewTestimonialService(testimonialRepo, notifier)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	testimonialHandler := handler.NewTestimonialHandler(testimonialService)
	adminHandler := handler.NewAdminTestimonialHandler(testimonialService)

	// Register routes
	router.Register(e, jwtService, authHandler, testimonialHandler, adminHandler)

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
