package picker

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"picker.punishwheel.com/config"
	"picker.punishwheel.com/pkg/global"
	"picker.punishwheel.com/pkg/utils"
)

func PushDrawToStream(d Draw, cfg config.StreamingConfig, log *logrus.Logger) {
	if !cfg.Enabled {
		log.Debug("⏩ Streaming disabled")
		return
	}

	payload, err := json.Marshal(d)
	if err != nil {
		log.WithError(err).Error("❌ Failed to marshal draw")
		return
	}

	switch cfg.Provider {
	case "redis":
		entry := utils.CreateRedisStreamEntry(d.Text, payload)
		ctx := context.Background()
		err := global.RedisClient.XAdd(ctx, &redis.XAddArgs{
			Stream: cfg.Redis.Stream,
			Values: entry,
		}).Err()
		if err != nil {
			log.WithError(err).WithField("text", d.Text).Error("❌ Redis stream error")
		} else {
			log.WithField("text", d.Text).Debug("📤 Draw sent to Redis stream")
		}

	case "kafka":
		err := utils.WriteKafkaMessage(global.KafkaWriter, payload)
		if err != nil {
			log.WithError(err).Error("❌ Kafka send error")
		} else {
			log.Debug("📤 Draw sent to Kafka")
		}

	default:
		log.Warnf("⚠️ Unknown streaming provider: %s", cfg.Provider)
	}
}
