package main

import (
	"log"

	"anoa.com/arcadehub/internal/bootstrap"
	"anoa.com/arcadehub/internal/config"
	"anoa.com/arcadehub/internal/server"
	"anoa.com/arcadehub/pkg/database"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db := database.Connect()

	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	if err := bootstrap.SeedReferencePlayers(db); err != nil {
		log.Fatalf("failed to seed reference players: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	}

	srv := server.NewServer(db, redisClient, cfg)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
