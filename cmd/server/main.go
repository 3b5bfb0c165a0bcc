package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/kogoapp/kogo-server/internal/cache"
	"github.com/kogoapp/kogo-server/internal/config"
	"github.com/kogoapp/kogo-server/internal/handler"
	"github.com/kogoapp/kogo-server/internal/naver"
	"github.com/kogoapp/kogo-server/internal/plan"
	"github.com/kogoapp/kogo-server/internal/ratelimit"
	"github.com/kogoapp/kogo-server/internal/storage"
)

func main() {
	cfg := config.Load()
	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	if cfg.NaverClientID == "" || cfg.NaverClientSecret == "" {
		log.Println("NAVER credentials not set; directions and search will fail until configured")
	}

	limiter := ratelimit.NewWithDefaults()
	limiter.SetLimit("directions", 5, 10)
	limiter.SetLimit("local", 10, 20)

	naverClient := naver.NewClient(naver.Config{
		ClientID:     cfg.NaverClientID,
		ClientSecret: cfg.NaverClientSecret,
		Limiter:      limiter,
	})

	blobs := newBlobStore(cfg)
	planStore := plan.NewStore(blobs)

	var directionsCache cache.Cache
	if cfg.CacheEnabled {
		redisCache, err := cache.NewRedisCache(cache.RedisConfig{
			Host: cfg.RedisHost,
			Port: cfg.RedisPort,
			TTL:  cfg.CacheTTL,
		})
		if err != nil {
			log.Fatalf("Failed to connect to Redis cache: %v", err)
		}
		directionsCache = redisCache
		log.Printf("Directions cache enabled (host: %s:%s, TTL: %v)", cfg.RedisHost, cfg.RedisPort, cfg.CacheTTL)
	} else {
		directionsCache = cache.NewNoOpCache()
		log.Println("Directions cache disabled")
	}

	directionsHandler := handler.NewDirectionsHandler(naverClient, directionsCache)
	searchHandler := handler.NewSearchHandler(naverClient)
	planHandler := handler.NewPlanHandler(planStore)

	api := e.Group("/api")
	api.GET("/directions", directionsHandler.Directions)
	api.GET("/search/local", searchHandler.SearchLocal)

	api.GET("/plans", planHandler.List)
	api.POST("/plans", planHandler.Create)
	api.POST("/plans/preview", planHandler.Preview)
	api.GET("/plans/:id", planHandler.Get)
	api.PUT("/plans/:id", planHandler.Update)
	api.DELETE("/plans/:id", planHandler.Delete)
	api.PUT("/plans/:id/order", planHandler.SetOrder)
	api.GET("/plans/:id/places", planHandler.Places)

	e.GET("/health", handler.HealthHandler)
	e.GET("/version", handler.VersionHandler(cfg.AppVersion, cfg.BuildTime))

	log.Printf("Starting kogo server %s on port %s", cfg.AppVersion, cfg.Port)

	if err := e.Start(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func newBlobStore(cfg config.Config) storage.BlobStore {
	if cfg.StorageBackend == "memory" {
		log.Println("Using in-memory plan storage (plans are lost on restart)")
		return storage.NewMemoryStore()
	}

	store, err := storage.NewRedisStore(storage.RedisConfig{
		Host: cfg.RedisHost,
		Port: cfg.RedisPort,
	})
	if err != nil {
		log.Fatalf("Failed to connect to Redis storage: %v", err)
	}
	log.Printf("Plan storage on Redis (host: %s:%s)", cfg.RedisHost, cfg.RedisPort)
	return store
}
