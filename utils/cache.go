// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"shortlet/config"

	"github.com/go-redis/redis/v8"
)

var (
	// SessionClient is the dedicated client for reservation sessions.
	SessionClient *redis.Client
	// CatalogCacheClient is the client for short-lived catalog caching.
	CatalogCacheClient *redis.Client
)

// InitSessionStore initializes the Redis client backing reservation sessions.
func InitSessionStore() {
	SessionClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisSessionDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := SessionClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Sessions): %v", err)
	}
}

// GetSessionClient returns the reservation-session client.
func GetSessionClient() *redis.Client {
	if SessionClient == nil {
		InitSessionStore()
	}
	return SessionClient
}

// InitCatalogCache initializes the Redis client for catalog caching.
func InitCatalogCache() {
	CatalogCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisCatalogDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := CatalogCacheClient.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (Catalog Cache): %v", err)
	}
}

// GetCatalogCacheClient returns the catalog cache client.
func GetCatalogCacheClient() *redis.Client {
	if CatalogCacheClient == nil {
		InitCatalogCache()
	}
	return CatalogCacheClient
}

// InitRedis initializes all Redis clients used by the service.
func InitRedis() {
	InitSessionStore()
	InitCatalogCache()
}
