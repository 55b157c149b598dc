package main

import (
	"context"
	"log"

	"github.com/go-redis/redis/v8"

	"globetrek/config"
	"globetrek/database"
	"globetrek/eventbus"
	"globetrek/routes"
	"globetrek/services"
	"globetrek/storage"
	"globetrek/utils"
)

func main() {
	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("failed to init file logger: %v", err)
	}

	// Подключение к Redis - единственное хранилище состояния
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	log.Println("Connected to Redis")

	store := storage.NewRedisStore(rdb)
	utils.SetStore(store)
	utils.SetBus(eventbus.New())

	// Приводим сохраненные направления к текущей схеме
	if err := database.UpgradeDestinations(context.Background(), store); err != nil {
		log.Fatalf("failed to upgrade destinations: %v", err)
	}

	// Сидирование каталога направлений
	if err := database.SeedDestinations(context.Background(), store); err != nil {
		log.Fatalf("failed to seed destinations: %v", err)
	}
	log.Println("Destinations seeded (if needed)")

	// Уборка просроченных сессий по таймеру
	sweeper := services.StartSessionSweeper(store)
	defer sweeper.Stop()
	log.Println("Session sweeper started")

	r := routes.SetupRouter()

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
