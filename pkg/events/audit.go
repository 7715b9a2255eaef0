package events

import (
	"context"
	"time"

	"github.com/google/uuid"

	"smepro-be/internal/pkg/logger"
	pkgNats "smepro-be/pkg/nats"
)

// AuditPublisher emits domain events to the audit bus. Every method is
// fire-and-forget: a dead broker degrades to a warning log, never to a
// failed user request.
type AuditPublisher interface {
	PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName string)
	PublishPlanChanged(ctx context.Context, userId uuid.UUID, oldPlan, newPlan string)
	PublishQuotaExceeded(ctx context.Context, userId uuid.UUID, quota string, limit, used float64)
	PublishSessionCreated(ctx context.Context, userId uuid.UUID, sessionId, mode string)
	PublishWorkshopStarted(ctx context.Context, userId uuid.UUID, sessionId, objective string)
	PublishSynthesisCompleted(ctx context.Context, userId uuid.UUID, objective string, itemCount int)
	PublishCapabilityEnabled(ctx context.Context, userId uuid.UUID, sessionId, capabilityName string)
}

// NatsAuditPublisher implements AuditPublisher on the NATS bus.
type NatsAuditPublisher struct {
	publisher *pkgNats.Publisher
	logger    logger.ILogger
}

func NewNatsAuditPublisher(publisher *pkgNats.Publisher, logger logger.ILogger) *NatsAuditPublisher {
	return &NatsAuditPublisher{
		publisher: publisher,
		logger:    logger,
	}
}

func (p *NatsAuditPublisher) emit(ctx context.Context, eventType string, data map[string]interface{}) {
	if p.publisher == nil {
		return
	}

	evt := BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Warn("AUDIT", "Failed to publish "+eventType+" event", map[string]interface{}{"error": err.Error()})
	}
}

func (p *NatsAuditPublisher) PublishUserRegistered(ctx context.Context, userId uuid.UUID, email, fullName string) {
	p.emit(ctx, "USER_REGISTERED", map[string]interface{}{
		"user_id":   userId,
		"email":     email,
		"full_name": fullName,
	})
}

func (p *NatsAuditPublisher) PublishPlanChanged(ctx context.Context, userId uuid.UUID, oldPlan, newPlan string) {
	p.emit(ctx, "PLAN_CHANGED", map[string]interface{}{
		"user_id":  userId,
		"old_plan": oldPlan,
		"new_plan": newPlan,
	})
}

func (p *NatsAuditPublisher) PublishQuotaExceeded(ctx context.Context, userId uuid.UUID, quota string, limit, used float64) {
	p.emit(ctx, "QUOTA_EXCEEDED", map[string]interface{}{
		"user_id": userId,
		"quota":   quota,
		"limit":   limit,
		"used":    used,
	})
}

func (p *NatsAuditPublisher) PublishSessionCreated(ctx context.Context, userId uuid.UUID, sessionId, mode string) {
	p.emit(ctx, "SESSION_CREATED", map[string]interface{}{
		"user_id":    userId,
		"session_id": sessionId,
		"mode":       mode,
	})
}

func (p *NatsAuditPublisher) PublishWorkshopStarted(ctx context.Context, userId uuid.UUID, sessionId, objective string) {
	p.emit(ctx, "WORKSHOP_STARTED", map[string]interface{}{
		"user_id":    userId,
		"session_id": sessionId,
		"objective":  objective,
	})
}

func (p *NatsAuditPublisher) PublishSynthesisCompleted(ctx context.Context, userId uuid.UUID, objective string, itemCount int) {
	p.emit(ctx, "SYNTHESIS_COMPLETED", map[string]interface{}{
		"user_id":    userId,
		"objective":  objective,
		"item_count": itemCount,
	})
}

func (p *NatsAuditPublisher) PublishCapabilityEnabled(ctx context.Context, userId uuid.UUID, sessionId, capabilityName string) {
	p.emit(ctx, "CAPABILITY_ENABLED", map[string]interface{}{
		"user_id":         userId,
		"session_id":      sessionId,
		"capability_name": capabilityName,
	})
}
