package main

import (
	"context"
	"log"

	"fitfam.app/familyfit/internal/bootstrap"
	"fitfam.app/familyfit/internal/config"
	"fitfam.app/familyfit/internal/server"
	"fitfam.app/familyfit/pkg/database"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db := database.Connect()
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	if cfg.AdminPassword != "" || cfg.AppEnv == "development" {
		adminPassword := cfg.AdminPassword
		if adminPassword == "" {
			adminPassword = "admin123"
		}
		if err := bootstrap.SeedAdminUser(db, cfg.AdminUsername, adminPassword); err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			log.Printf("⚠️ Redis unreachable, live updates and rate limiting disabled: %v", err)
			redisClient = nil
		}
	} else {
		log.Println("REDIS_URL not set, live updates and rate limiting disabled")
	}

	srv := server.NewServer(db, redisClient, cfg)

	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
