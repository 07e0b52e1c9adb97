package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/ali44ashhad/contractor/internal/events"
)

// ConsumeRequestResolved mencatat project request yang sudah diputuskan admin.
// Ini titik sambung notifikasi downstream (email/push) tanpa membebani API path.
func ConsumeRequestResolved(
	ctx context.Context,
	reader *kafkago.Reader,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.request_resolved")
	log.Info("request resolved consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("request resolved consumer stopped")
				return
			}
			log.Error("fetch request resolved message failed", zap.Error(err))
			continue
		}

		var event events.RequestResolvedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode request_resolved event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		log.Info("project request resolved",
			zap.String("request_id", event.RequestID),
			zap.String("project_id", event.ProjectID),
			zap.String("request_type", event.RequestType),
			zap.String("status", event.Status),
			zap.String("reviewed_by", event.ReviewedBy),
		)

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit request resolved message failed", zap.Error(err))
		}
	}
}
