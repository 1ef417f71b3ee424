package cache

import (
	"context"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

// InitRedis connects the package-level client. Redis only backs the
// Telegram alert cursor, so a missing server degrades alerts to an
// in-memory cursor instead of failing the whole process.
func InitRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_URL")
	if addr == "" {
		addr = "localhost:6379"
	}
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("failed to connect to Redis at %s, alert cursor will not survive restarts: %v", addr, err)
		return
	}
	Client = client
	log.Println("Connected to Redis")
}

func Close() {
	if Client != nil {
		_ = Client.Close()
	}
}
