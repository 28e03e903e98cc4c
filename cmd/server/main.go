package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"

	"github.com/example/studybud/internal/database"
	"github.com/example/studybud/internal/handlers"
	"github.com/example/studybud/pkg/session"
)

func main() {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	db := &database.Database{}
	if err := db.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	sessions := session.NewManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	router := gin.Default()
	router.LoadHTMLGlob("templates/*.html")

	registerRoutes(router, routeDeps{
		db:       db,
		sessions: sessions,
		redis:    rdb,
		auth:     handlers.NewAuthHandler(db, sessions, rdb),
		rooms:    handlers.NewRoomHandler(db),
		messages: handlers.NewMessageHandler(db),
		users:    handlers.NewUserHandler(db),
		browse:   handlers.NewBrowseHandler(db),
		api:      handlers.NewAPIHandler(db),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
