// FILE: internal/service/consumer_service.go
package service

import (
	"context"
	"encoding/json"

	"smepro-be/internal/dto"
	"smepro-be/internal/pkg/logger"
	"smepro-be/internal/repository/memory"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/entitlement"
	"smepro-be/pkg/suggestion"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService refreshes expert suggestions after each completed
// exchange, off the request path.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	uowFactory  unitofwork.RepositoryFactory
	suggestions *suggestion.Engine
	cache       *memory.SuggestionCache
	logger      logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	suggestions *suggestion.Engine,
	cache *memory.SuggestionCache,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		uowFactory:  uowFactory,
		suggestions: suggestions,
		cache:       cache,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.ExchangeCompletedMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("CONSUMER", "failed to unmarshal exchange event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // invalid payloads never become valid, don't retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	session, err := uow.ChatSessionRepository().FindOne(ctx, specification.ByID{ID: payload.SessionId})
	if err != nil {
		cs.logger.Error("CONSUMER", "failed to load session", map[string]interface{}{
			"session_id": payload.SessionId.String(),
			"error":      err.Error(),
		})
		msg.Nack()
		return
	}
	if session == nil {
		// Session deleted between publish and consume.
		msg.Ack()
		return
	}

	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, payload.UserId)
	if err != nil || subscription == nil {
		msg.Ack()
		return
	}
	plan := entitlement.ResolveEffectivePlan(*subscription)

	suggestions, err := cs.suggestions.Suggest(ctx, session, plan)
	if err != nil {
		cs.logger.Warn("CONSUMER", "suggestion refresh failed", map[string]interface{}{
			"session_id": payload.SessionId.String(),
			"error":      err.Error(),
		})
		msg.Ack() // degrade, the next exchange retries anyway
		return
	}

	// Replace wholesale; suggestions never accumulate.
	cs.cache.Save(payload.SessionId.String(), suggestions)
	msg.Ack()
}
