package app

import (
	"github.com/Garvit-office/smart-agriguard/internal/config"
	"github.com/Garvit-office/smart-agriguard/internal/messaging/kafka/producer"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	var redisClient *redis.Client
	if cfg.CartStoreMode == config.ModeRedis {
		client, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
		if err != nil {
			return err
		}
		redisClient = client
	}

	var events *producer.Publisher
	if cfg.KafkaBroker != "" {
		writer, err := connectKafkaWithRetry(cfg.KafkaBroker, 5, logger)
		if err != nil {
			return err
		}
		events = producer.NewPublisher(writer, logger)
	}

	// 2. Register Modules & Routes
	registerModules(router, cfg, redisClient, events, logger)

	return nil
}
