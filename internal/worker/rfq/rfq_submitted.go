package rfq

import (
	"context"
	"encoding/json"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/jingsu322/fake-rfq-api/internal/config"
	"github.com/jingsu322/fake-rfq-api/internal/messaging"
	rfqsvc "github.com/jingsu322/fake-rfq-api/internal/service/rfq"
	"github.com/jingsu322/fake-rfq-api/internal/worker"
)

var workerTracer = otel.Tracer("github.com/jingsu322/fake-rfq-api/worker/rfq")

// Module registers RFQ-related worker handlers.
var Module = fx.Module("worker_rfq",
	fx.Provide(
		fx.Annotate(
			NewSubmittedHandler,
			fx.ResultTags(`group:"worker.handlers"`),
		),
	),
)

// NewSubmittedHandler sets up a worker handler that picks up freshly submitted
// RFQs for follow-up (sales notification hook).
func NewSubmittedHandler(logger *zap.Logger, cfg config.Config) worker.HandlerRegistration {
	handler := func(ctx context.Context, msg messaging.Message) error {
		ctx, span := workerTracer.Start(ctx, "worker.rfq.process", trace.WithAttributes(
			attribute.String("messaging.topic", msg.Topic),
		))
		defer span.End()

		var event rfqsvc.RFQSubmittedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			logger.Error("failed to decode rfq submitted", zap.Error(err))

			span.RecordError(err)
			span.SetStatus(codes.Error, "decode error")
			return err
		}
		logger.Info("rfq submitted event processed",
			zap.Int64("id", event.ID),
			zap.String("user_email", event.UserEmail),
			zap.String("product_name", event.ProductName),
			zap.Int("requested_quantity", event.RequestedQuantity),
		)

		return nil
	}

	return worker.HandlerRegistration{
		Topic:   cfg.Messaging.Kafka.Topic,
		Handler: handler,
	}
}
