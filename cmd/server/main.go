package main

import (
	"game-platform/internal/app"
	"game-platform/pkg/cache"
	"game-platform/pkg/config"
	"game-platform/pkg/database"
	"game-platform/pkg/logger"
	"game-platform/pkg/queue"
	"game-platform/pkg/s3"
)

// @title           Game Platform API
// @version         1.0
// @description     Social and content platform backend for gamers

// @contact.name   API Support
// @contact.email  support@example.com

// @host      localhost:8080
// @BasePath  /api/v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log := logger.New()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	// Migrations are handled by goose - see cmd/migrate/main.go

	// Redis, S3 and RabbitMQ are optional: without them the API still runs,
	// with rate limiting, uploads and notification events disabled.
	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Warn("Redis unavailable, rate limiting disabled: %v", err)
		redisClient = nil
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Warn("S3 unavailable, uploads disabled: %v", err)
		s3Client = nil
	}

	queueClient, err := queue.NewRabbitMQClient(cfg, log)
	if err != nil {
		log.Warn("RabbitMQ unavailable, notification events disabled: %v", err)
		queueClient = nil
	}

	app.Run(cfg, log, db, s3Client, queueClient, redisClient)
}
