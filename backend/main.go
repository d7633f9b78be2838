package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"edumarket/backend/catalog"
	"edumarket/backend/config"
	"edumarket/backend/middleware"
	"edumarket/backend/routes"
	"edumarket/backend/services"
	"edumarket/backend/store"
	"edumarket/backend/users"
	"edumarket/backend/utils"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// Initialize database
	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Initialize logger
	logger := utils.InitLogger()

	// Pick the KV store backend: Redis when configured, Postgres
	// otherwise.
	var kv store.Store = store.NewGormStore(db)
	if cfg.RedisURL != "" {
		redisStore, err := store.NewRedisStore(context.Background(), cfg.RedisURL)
		if err != nil {
			log.Fatalf("Error connecting to redis: %v", err)
		}
		defer redisStore.Close()
		kv = redisStore
	}

	catalogRepo := catalog.NewGormRepository(db)
	if cfg.SeedDemo {
		if err := catalog.Seed(context.Background(), catalogRepo); err != nil {
			logger.Printf("demo seed skipped: %v", err)
		}
	}

	// Create Fiber app
	app := fiber.New()

	// Middleware
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(logger))

	// Setup routes
	routes.SetupRoutes(app, routes.Deps{
		Cfg:         cfg,
		Logger:      logger,
		Catalog:     catalogRepo,
		Users:       users.NewGormRepository(db),
		Store:       kv,
		Votes:       services.NewGormVoteRepository(db),
		Enrollments: services.NewGormEnrollmentRepository(db),
	})

	// Start server
	log.Fatal(app.Listen(":" + cfg.ServerPort))
}
