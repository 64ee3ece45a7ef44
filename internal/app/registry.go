package app

import (
	"context"
	"time"

	"github.com/Garvit-office/smart-agriguard/internal/auth"
	"github.com/Garvit-office/smart-agriguard/internal/cart"
	"github.com/Garvit-office/smart-agriguard/internal/catalog"
	"github.com/Garvit-office/smart-agriguard/internal/config"
	"github.com/Garvit-office/smart-agriguard/internal/messaging/kafka/producer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func registerModules(router *gin.Engine, cfg config.Config, redisClient *redis.Client, events *producer.Publisher, logger *zap.Logger) {
	// --- Stores & Providers ---
	var cartStore cart.Store
	if cfg.CartStoreMode == config.ModeRedis {
		cartStore = cart.NewRedisStore(redisClient, cfg.SessionTTL)
	} else {
		cartStore = cart.NewMemoryStore()
	}

	sample := catalog.NewSampleProvider()
	primary := sample
	if cfg.CatalogMode == config.ModeRemote {
		primary = catalog.NewHTTPProvider(cfg.UpstreamBaseURL)
	}

	var registrar auth.Registrar
	if cfg.RegistrarMode == config.ModeRemote {
		registrar = auth.NewHTTPRegistrar(cfg.UpstreamBaseURL, logger)
	} else {
		registrar = auth.NewMemoryRegistrar()
	}

	if events != nil {
		cartStore.Subscribe(func(ev cart.Event) {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := events.PublishCartMutation(ctx, producer.CartMutationEvent{
				SessionID: ev.SessionID,
				Op:        string(ev.Op),
				ProductID: ev.ProductID,
				Qty:       ev.Qty,
			}); err != nil {
				logger.Warn("failed to publish cart mutation", zap.Error(err))
			}
		})
	}

	// --- Services ---
	catalogService := catalog.NewService(primary, sample, logger)
	authService := auth.NewService(registrar, events, cfg.JWTSecret, logger)

	// --- Handlers ---
	cartHandler := cart.NewHandler(cartStore, logger)
	catalogHandler := catalog.NewHandler(catalogService, logger)
	authHandler := auth.NewHandler(authService, cfg.IsProd(), logger)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		cart.RegisterRoutes(api, cartHandler, cfg.IsProd())
		catalog.RegisterRoutes(api, catalogHandler, []byte(cfg.JWTSecret))
		auth.RegisterRoutes(api, authHandler)
	}
}
