package config

import (
	"context"

	"foodbridge-backend/internal/utils"
	"foodbridge-backend/internal/utils/cache"
	"foodbridge-backend/internal/utils/events"
	"foodbridge-backend/internal/utils/mailing"
	"foodbridge-backend/internal/utils/storage"
	"foodbridge-backend/pkg/midtrans"

	"github.com/gofiber/fiber/v2/log"
)

// NewInfrastructure builds the collaborators from config. Redis and Kafka are
// optional: without an address the app runs with the ledger only and drops
// domain events. The returned func releases them.
func NewInfrastructure(ctx context.Context) (Infrastructure, func()) {
	infra := Infrastructure{
		Storage:   storage.NewAwsS3(),
		Mailer:    mailing.NewMailer(mailing.LoadMailConfig()),
		Gateway:   midtrans.NewSnapGateway(utils.GetConfig("SERVER_KEY"), utils.GetConfig("IsProd") == "true"),
		JWTSecret: utils.GetConfig("JWT_SECRET"),
		RateLimit: utils.GetConfigInt("RATE_LIMIT", 10),
		Publisher: events.NewNoopPublisher(),
		Deduper:   cache.NewNoopDeduper(),
	}
	var closers []func()

	if addr := utils.GetConfig("REDIS_ADDR"); addr != "" {
		rdb := cache.NewRedisClient(addr)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warnw("redis unreachable, webhook dedup uses the database only", "addr", addr, "error", err)
		}
		infra.Deduper = cache.NewRedisDeduper(rdb)
		closers = append(closers, func() { _ = rdb.Close() })
	}

	if brokers := utils.GetConfigList("KAFKA_BROKERS"); len(brokers) > 0 {
		producer := events.NewKafkaPublisher(brokers, events.TopicFoodBridge, 1024)
		producer.Start(ctx)
		infra.Publisher = producer
		closers = append(closers, func() {
			producer.Close()
			producer.WaitClosed()
		})
	}

	return infra, func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}
}
