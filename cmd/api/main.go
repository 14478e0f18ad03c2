package main

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/quicklist/quicklist-api/internal/adapters/events"
	handler "github.com/quicklist/quicklist-api/internal/adapters/http"
	"github.com/quicklist/quicklist-api/internal/adapters/resolver"
	"github.com/quicklist/quicklist-api/internal/adapters/resolver/youtube"
	"github.com/quicklist/quicklist-api/internal/adapters/storage/memory"
	"github.com/quicklist/quicklist-api/internal/adapters/storage/sqlite"
	"github.com/quicklist/quicklist-api/internal/app"
	"github.com/quicklist/quicklist-api/internal/config"
	"github.com/quicklist/quicklist-api/internal/logging"
	"github.com/quicklist/quicklist-api/internal/ports"

	_ "github.com/quicklist/quicklist-api/docs"
)

// @title			QuickList API
// @version		1.0
// @description	Client-side YouTube playlist curation as a service: named playlists,
// @description	ordered video queues, and sequential playback with auto-advance.

// @contact.name	QuickList API Support
// @license.name	MIT

// @host		localhost:8080
// @BasePath	/
func main() {
	cfg := config.Load()
	logging.Setup(cfg.LogLevel)

	ctx := context.Background()

	// Video resolvers
	httpClient := &http.Client{}
	registry := resolver.NewRegistry()
	registry.Register(youtube.NewResolver(httpClient, cfg.YouTubeAPIKey))

	// Persistence
	var repo ports.PlaylistRepository
	if cfg.DBPath != "" {
		sqliteRepo, err := sqlite.New(ctx, cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to open database at %s: %v", cfg.DBPath, err)
		}
		defer sqliteRepo.Close()
		repo = sqliteRepo
	} else {
		log.Warn("DB_PATH not set, playlists will not survive restarts")
		repo = memory.New()
	}

	// Event publishing (optional)
	var publisher ports.EventPublisher
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		publisher = events.NewRedisPublisher(rdb)
	}

	// Core services
	library := app.NewLibrary(ctx, registry, repo, publisher)
	player := app.NewPlayer(library, publisher, nil)
	library.SetObserver(player)

	// Setup HTTP server
	r := gin.Default()
	h := handler.NewHandler(library, player)
	h.RegisterRoutes(r)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	addr := ":" + cfg.Port
	log.Infof("Starting QuickList API on %s", addr)
	log.Infof("Registered providers: %v", registry.Available())
	log.Infof("Swagger UI: http://localhost%s/swagger/index.html", addr)

	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
