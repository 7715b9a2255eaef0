package events

import (
	"context"

	"smepro-be/internal/pkg/logger"
	pkgNats "smepro-be/pkg/nats"
)

const trailDurableName = "audit-trail"

// AuditTrail mirrors every audit event on the bus into the structured log,
// so a deployment without a downstream consumer still keeps a record.
type AuditTrail struct {
	subscriber *pkgNats.Subscriber
	logger     logger.ILogger
}

func NewAuditTrail(subscriber *pkgNats.Subscriber, logger logger.ILogger) *AuditTrail {
	return &AuditTrail{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Run attaches the durable trail consumer. A nil subscriber (NATS was down
// at boot) is a no-op so the API can still serve.
func (t *AuditTrail) Run() error {
	if t.subscriber == nil {
		return nil
	}
	return t.subscriber.Subscribe("events.>", trailDurableName, t.record)
}

func (t *AuditTrail) record(_ context.Context, eventType string, payload map[string]interface{}) error {
	t.logger.Info("AUDIT", eventType, payload)
	return nil
}
