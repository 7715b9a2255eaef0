// FILE: internal/service/chat_service.go
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"smepro-be/internal/constant"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/pkg/logger"
	"smepro-be/internal/pkg/syncutil"
	"smepro-be/internal/repository/memory"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/capability"
	"smepro-be/pkg/entitlement"
	"smepro-be/pkg/events"
	"smepro-be/pkg/prompt"
	"smepro-be/pkg/suggestion"
	"smepro-be/pkg/taxonomy"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

const ExchangeCompletedTopic = "exchange.completed"

type IChatService interface {
	CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error)
	ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionSummaryResponse, error)
	GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error)
	DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error
	SendMessage(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ExchangeResponse, error)
	GetSuggestions(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.SuggestedPersonaResponse, error)
	AddPersonas(ctx context.Context, userId, sessionId uuid.UUID, req *dto.AddPersonasRequest) (*dto.SessionResponse, error)
	StartWorkshop(ctx context.Context, userId, sessionId uuid.UUID, req *dto.StartWorkshopRequest) (*dto.SessionResponse, error)
	StartBuilder(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ContinueInBuilderRequest) (*dto.SessionResponse, error)
	SetFocus(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SetFocusRequest) (*dto.SessionResponse, error)
	ToggleStaticCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ToggleStaticCapabilityRequest) (*dto.SessionResponse, error)
	SuggestCapabilities(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.CapabilitySuggestionResponse, error)
	ProposeCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ProposeCapabilityRequest) (*dto.ProposeCapabilityResponse, error)
	ConfirmCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ConfirmCapabilityRequest) (*dto.SessionResponse, error)
	DisableCapability(ctx context.Context, userId, sessionId uuid.UUID, capabilityId string) (*dto.SessionResponse, error)
	StepAction(ctx context.Context, userId, sessionId uuid.UUID, req *dto.StepActionRequest) (*dto.MessageResponse, error)
	DynamicStepActions(ctx context.Context, userId, sessionId uuid.UUID, req *dto.DynamicStepActionsRequest) (*dto.DynamicStepActionsResponse, error)
	Insight(ctx context.Context, userId, sessionId uuid.UUID, req *dto.InsightRequest) (*dto.MessageResponse, error)
}

type chatService struct {
	uowFactory   unitofwork.RepositoryFactory
	collaborator ai.Collaborator
	capabilities *capability.Manager
	suggestions  *suggestion.Engine
	cache        *memory.SuggestionCache
	locks        *syncutil.KeyedMutex
	pubSub       *gochannel.GoChannel
	audit        events.AuditPublisher
	logger       logger.ILogger
}

func NewChatService(
	uowFactory unitofwork.RepositoryFactory,
	collaborator ai.Collaborator,
	capabilities *capability.Manager,
	suggestions *suggestion.Engine,
	cache *memory.SuggestionCache,
	pubSub *gochannel.GoChannel,
	audit events.AuditPublisher,
	log logger.ILogger,
) IChatService {
	return &chatService{
		uowFactory:   uowFactory,
		collaborator: collaborator,
		capabilities: capabilities,
		suggestions:  suggestions,
		cache:        cache,
		locks:        syncutil.NewKeyedMutex(),
		pubSub:       pubSub,
		audit:        audit,
		logger:       log,
	}
}

func (s *chatService) CreateSession(ctx context.Context, userId uuid.UUID, req *dto.CreateSessionRequest) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	plan, err := s.effectivePlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	if len(req.Personas) == 0 {
		return nil, &dto.ValidationError{Message: "at least one persona is required"}
	}

	personas := make([]entity.PersonaConfig, 0, len(req.Personas))
	participants := []entity.Participant{{Name: "You", IsExpert: false}}
	for _, p := range req.Personas {
		cfg := entity.PersonaConfig{
			Domain:         p.Domain,
			SubDomain:      p.SubDomain,
			Specialization: p.Specialization,
		}
		if err := taxonomy.Validate(plan, cfg); err != nil {
			return nil, &dto.ValidationError{Message: err.Error()}
		}
		personas = append(personas, cfg)
		participants = append(participants, entity.Participant{
			Name:     fmt.Sprintf("%s SME", cfg.Specialization),
			IsExpert: true,
		})
	}

	now := time.Now()
	session := &entity.ChatSession{
		Id:                  uuid.New(),
		UserId:              userId,
		Personas:            personas,
		Participants:        participants,
		EnabledCapabilities: constant.DefaultEnabledCapabilities(),
		Mode:                entity.SessionModeNormal,
		Messages: []entity.ChatMessage{{
			Role:      entity.ChatMessageRoleSystem,
			Content:   constant.SessionStartedMessage,
			Timestamp: now,
		}},
		CreatedAt: now,
	}

	if err := uow.ChatSessionRepository().Create(ctx, session); err != nil {
		return nil, err
	}

	s.audit.PublishSessionCreated(ctx, userId, session.Id.String(), string(session.Mode))

	return toSessionResponse(session), nil
}

func (s *chatService) ListSessions(ctx context.Context, userId uuid.UUID) ([]dto.SessionSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	sessions, err := uow.ChatSessionRepository().FindAll(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	summaries := make([]dto.SessionSummaryResponse, 0, len(sessions))
	for _, session := range sessions {
		summaries = append(summaries, toSessionSummary(session))
	}
	return summaries, nil
}

func (s *chatService) GetSession(ctx context.Context, userId, sessionId uuid.UUID) (*dto.SessionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	return toSessionResponse(session), nil
}

func (s *chatService) DeleteSession(ctx context.Context, userId, sessionId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return err
	}
	s.cache.Delete(session.Id.String())
	return uow.ChatSessionRepository().Delete(ctx, session.Id)
}

func (s *chatService) SendMessage(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SendMessageRequest) (*dto.ExchangeResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	user, plan, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := s.checkBandwidth(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	// A new exchange invalidates whatever was suggested for the old one.
	s.cache.Delete(sessionId.String())

	now := time.Now()
	userMessage := entity.ChatMessage{
		Role:      entity.ChatMessageRoleUser,
		Content:   req.Content,
		Parts:     toMessageParts(req.Parts),
		Timestamp: now,
	}
	session.Messages = append(session.Messages, userMessage)

	systemInstruction := prompt.Compose(session, plan)

	var reply string
	var aiErr error
	if prompt.IsToolCommand(req.Content) {
		reply, aiErr = s.collaborator.Generate(ctx,
			prompt.ToolPrompt(req.Content, session),
			ai.WithSystemInstruction(systemInstruction),
			ai.WithModel(ai.ModelDeep),
		)
		if aiErr == nil && session.Mode == entity.SessionModeBuilder {
			reply = constant.BuilderOutputMarker + "\n\n" + reply
		}
	} else {
		reply, aiErr = s.collaborator.Chat(ctx,
			s.historyForModel(session, req.ResponseStyle),
			ai.WithSystemInstruction(systemInstruction),
		)
	}

	modelMessage := entity.ChatMessage{
		Role:      entity.ChatMessageRoleModel,
		Content:   reply,
		Timestamp: time.Now(),
	}
	if aiErr != nil {
		// The log stays intact on failure; the user sees an apology, not a 500.
		s.logger.Warn("CHAT", "collaborator call failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      aiErr.Error(),
		})
		modelMessage.Content = constant.CollaboratorErrorMessage
	}
	session.Messages = append(session.Messages, modelMessage)

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if aiErr == nil {
		user.Quotas.AiBandwidth.Used++
		if err := uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas); err != nil {
			return nil, err
		}
		s.publishExchangeCompleted(sessionId, userId)
	}

	return &dto.ExchangeResponse{
		Message:     toMessageResponse(modelMessage),
		Suggestions: []dto.SuggestedPersonaResponse{},
	}, nil
}

func (s *chatService) GetSuggestions(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.SuggestedPersonaResponse, error) {
	if cached, found := s.cache.Get(sessionId.String()); found {
		return toSuggestedPersonaResponses(cached), nil
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	_, plan, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	suggestions, err := s.suggestions.Suggest(ctx, session, plan)
	if err != nil {
		// Suggestions are decorative; a model hiccup yields an empty list.
		s.logger.Warn("CHAT", "suggestion generation failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
		return []dto.SuggestedPersonaResponse{}, nil
	}

	s.cache.Save(sessionId.String(), suggestions)
	return toSuggestedPersonaResponses(suggestions), nil
}

func (s *chatService) AddPersonas(ctx context.Context, userId, sessionId uuid.UUID, req *dto.AddPersonasRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	_, plan, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	added, err := s.attachPersonas(ctx, session, plan, req.Personas)
	if err != nil {
		return nil, err
	}
	if len(added) == 0 {
		// Everything in the batch was already on the session.
		return toSessionResponse(session), nil
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

// attachPersonas dedups by specialization, appends the joined system message
// and then one context-aware introduction per new persona, in add order.
func (s *chatService) attachPersonas(ctx context.Context, session *entity.ChatSession, plan entity.EffectivePlan, reqs []dto.PersonaConfigRequest) ([]entity.PersonaConfig, error) {
	var added []entity.PersonaConfig
	for _, p := range reqs {
		cfg := entity.PersonaConfig{
			Domain:         p.Domain,
			SubDomain:      p.SubDomain,
			Specialization: p.Specialization,
		}
		if session.HasSpecialization(cfg.Specialization) {
			continue
		}
		if err := taxonomy.Validate(plan, cfg); err != nil {
			return nil, &dto.ValidationError{Message: err.Error()}
		}
		added = append(added, cfg)
	}
	if len(added) == 0 {
		return nil, nil
	}

	history := append([]entity.ChatMessage(nil), session.Messages...)

	segments := make([]string, 0, len(added))
	for _, cfg := range added {
		segments = append(segments, cfg.Specialization)
	}
	session.Messages = append(session.Messages, entity.ChatMessage{
		Role:      entity.ChatMessageRoleSystem,
		Content:   prompt.NewExpertsJoined(segments),
		Timestamp: time.Now(),
	})

	for _, cfg := range added {
		session.Personas = append(session.Personas, cfg)
		session.Participants = append(session.Participants, entity.Participant{
			Name:     fmt.Sprintf("%s SME", cfg.Specialization),
			IsExpert: true,
		})

		intro, err := s.collaborator.Generate(ctx, prompt.Introduction(cfg, history))
		if err != nil {
			s.logger.Warn("CHAT", "introduction generation failed", map[string]interface{}{
				"specialization": cfg.Specialization,
				"error":          err.Error(),
			})
			intro = fmt.Sprintf("Hello, I'm your %s expert. Happy to join the discussion.", cfg.Specialization)
		}
		session.Messages = append(session.Messages, entity.ChatMessage{
			Role:       entity.ChatMessageRoleModel,
			Content:    intro,
			Timestamp:  time.Now(),
			SenderName: fmt.Sprintf("%s SME", cfg.Specialization),
		})
	}

	return added, nil
}

func (s *chatService) StartWorkshop(ctx context.Context, userId, sessionId uuid.UUID, req *dto.StartWorkshopRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	_, plan, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if !entitlement.AllowsWorkshop(plan) {
		return nil, &dto.FeatureGateError{Feature: "workshop", Plan: string(plan)}
	}

	attendees := make([]entity.PersonaConfig, 0, len(req.Attendees))
	for _, a := range req.Attendees {
		attendees = append(attendees, entity.PersonaConfig{
			Domain:         a.Domain,
			SubDomain:      a.SubDomain,
			Specialization: a.Specialization,
		})
	}

	// One activation summary regardless of attendee count.
	session.Messages = append(session.Messages, entity.ChatMessage{
		Role: entity.ChatMessageRoleSystem,
		Content: prompt.WorkshopActivation(entity.WorkshopData{
			Objective: req.Objective,
			Agenda:    req.Agenda,
			Backstory: req.Backstory,
			UseCases:  req.UseCases,
			Attendees: attendees,
		}),
		Timestamp: time.Now(),
	})

	if _, err := s.attachPersonas(ctx, session, plan, req.Attendees); err != nil {
		return nil, err
	}

	session.Messages = append(session.Messages, entity.ChatMessage{
		Role:      entity.ChatMessageRoleModel,
		Content:   constant.WorkshopClosingMessage,
		Timestamp: time.Now(),
	})
	session.Mode = entity.SessionModeWorkshop

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	s.audit.PublishWorkshopStarted(ctx, userId, sessionId.String(), req.Objective)

	return toSessionResponse(session), nil
}

func (s *chatService) StartBuilder(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ContinueInBuilderRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	session.Messages = append(session.Messages, entity.ChatMessage{
		Role:      entity.ChatMessageRoleSystem,
		Content:   constant.BuilderSessionMarker,
		Timestamp: time.Now(),
	})

	// Seeding from a vault item carries its content in as working context.
	if req.ItemId != uuid.Nil {
		item, err := uow.VaultRepository().FindOneItem(ctx,
			specification.ByID{ID: req.ItemId},
			specification.ByUserID{UserID: userId},
		)
		if err != nil {
			return nil, err
		}
		if item == nil {
			return nil, &dto.NotFoundError{Resource: "vault item", Id: req.ItemId.String()}
		}
		session.Messages = append(session.Messages, entity.ChatMessage{
			Role:      entity.ChatMessageRoleUser,
			Content:   fmt.Sprintf("Let's continue from this saved analysis, \"%s\":\n\n%s", item.Title, item.Content),
			Timestamp: time.Now(),
		})
	}

	session.Mode = entity.SessionModeBuilder

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *chatService) SetFocus(ctx context.Context, userId, sessionId uuid.UUID, req *dto.SetFocusRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	// A focus change always discards the previous batch.
	session.DynamicCapabilities = nil
	session.Focus = entity.FocusType(req.Focus)

	if req.Focus != "" {
		if !containsString(constant.FocusTypes, req.Focus) {
			return nil, &dto.ValidationError{Message: "unknown focus: " + req.Focus}
		}
		generated, err := s.capabilities.GenerateForFocus(ctx, session.Focus, session.Messages)
		if err != nil {
			return nil, err
		}
		session.DynamicCapabilities = generated
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *chatService) ToggleStaticCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ToggleStaticCapabilityRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if _, known := constant.CapabilityDescriptions[req.Name]; !known {
		return nil, &dto.ValidationError{Message: "unknown capability: " + req.Name}
	}
	session.EnabledCapabilities[req.Name] = req.Enabled

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

// SuggestCapabilities recommends static capabilities for the recent
// conversation. An empty result is normal for short sessions.
func (s *chatService) SuggestCapabilities(ctx context.Context, userId, sessionId uuid.UUID) ([]dto.CapabilitySuggestionResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	names, err := s.capabilities.SuggestStatic(ctx, session.Messages)
	if err != nil {
		return nil, err
	}

	out := make([]dto.CapabilitySuggestionResponse, 0, len(names))
	for _, name := range names {
		out = append(out, dto.CapabilitySuggestionResponse{
			Name:        name,
			Description: constant.CapabilityDescriptions[name],
		})
	}
	return out, nil
}

func (s *chatService) ProposeCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ProposeCapabilityRequest) (*dto.ProposeCapabilityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	token, explanation, err := s.capabilities.ProposeEnable(ctx, session, req.CapabilityId)
	if err != nil {
		return nil, &dto.ValidationError{Message: err.Error()}
	}

	return &dto.ProposeCapabilityResponse{
		Token:       token,
		Explanation: explanation,
	}, nil
}

func (s *chatService) ConfirmCapability(ctx context.Context, userId, sessionId uuid.UUID, req *dto.ConfirmCapabilityRequest) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	capabilityId, err := s.capabilities.ConfirmEnable(ctx, session, req.Token)
	if err != nil {
		return nil, &dto.ValidationError{Message: err.Error()}
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if name, ok := capabilityName(session, capabilityId); ok {
		s.audit.PublishCapabilityEnabled(ctx, userId, sessionId.String(), name)
	}

	return toSessionResponse(session), nil
}

func (s *chatService) DisableCapability(ctx context.Context, userId, sessionId uuid.UUID, capabilityId string) (*dto.SessionResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	if err := s.capabilities.Disable(session, capabilityId); err != nil {
		return nil, &dto.ValidationError{Message: err.Error()}
	}

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	return toSessionResponse(session), nil
}

func (s *chatService) StepAction(ctx context.Context, userId, sessionId uuid.UUID, req *dto.StepActionRequest) (*dto.MessageResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	user, _, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := s.checkBandwidth(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	// Phase one: the "executing" marker lands in the log before the AI call.
	session.Messages = append(session.Messages, entity.ChatMessage{
		Role:      entity.ChatMessageRoleSystem,
		Content:   fmt.Sprintf("Executing action: **%s**...", req.Action),
		Timestamp: time.Now(),
	})
	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	var actionPrompt string
	if req.Language != "" {
		actionPrompt = prompt.CodeStepAction(req.Action, req.Context, req.Language, req.Platform, session.PrimaryPersona(), session.Messages)
	} else {
		actionPrompt = prompt.StepAction(req.Action, req.Context, session.PrimaryPersona(), session.Messages)
	}

	reply, aiErr := s.collaborator.Generate(ctx, actionPrompt, ai.WithModel(ai.ModelDeep))
	modelMessage := entity.ChatMessage{
		Role:      entity.ChatMessageRoleModel,
		Content:   reply,
		Timestamp: time.Now(),
	}
	if aiErr != nil {
		s.logger.Warn("CHAT", "step action failed", map[string]interface{}{
			"session_id": sessionId.String(),
			"action":     req.Action,
			"error":      aiErr.Error(),
		})
		modelMessage.Content = constant.CollaboratorErrorMessage
	}
	session.Messages = append(session.Messages, modelMessage)

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	if aiErr == nil {
		user.Quotas.AiBandwidth.Used++
		if err := uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas); err != nil {
			return nil, err
		}
	}

	response := toMessageResponse(modelMessage)
	return &response, nil
}

func (s *chatService) DynamicStepActions(ctx context.Context, userId, sessionId uuid.UUID, req *dto.DynamicStepActionsRequest) (*dto.DynamicStepActionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}

	schema := &ai.Schema{
		Type:  "array",
		Items: &ai.Schema{Type: "string"},
	}
	raw, err := s.collaborator.GenerateJSON(ctx,
		prompt.DynamicStepActions(session.PrimaryPersona(), req.StepContent, session.Messages),
		schema,
	)
	if err != nil {
		return nil, err
	}

	var actions []string
	if err := json.Unmarshal([]byte(raw), &actions); err != nil {
		return nil, err
	}
	return &dto.DynamicStepActionsResponse{Actions: actions}, nil
}

func (s *chatService) Insight(ctx context.Context, userId, sessionId uuid.UUID, req *dto.InsightRequest) (*dto.MessageResponse, error) {
	unlock := s.locks.Lock(sessionId.String())
	defer unlock()

	uow := s.uowFactory.NewUnitOfWork(ctx)
	session, err := s.loadOwnedSession(ctx, uow, userId, sessionId)
	if err != nil {
		return nil, err
	}
	user, _, err := s.loadUserAndPlan(ctx, uow, userId)
	if err != nil {
		return nil, err
	}
	if err := s.checkBandwidth(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	insight, err := s.collaborator.Generate(ctx,
		prompt.DeeperInsight(req.SelectedText, req.FullContext),
		ai.WithModel(ai.ModelDeep),
	)
	if err != nil {
		return nil, err
	}

	modelMessage := entity.ChatMessage{
		Role:      entity.ChatMessageRoleModel,
		Content:   prompt.InsightMessage(req.SelectedText, insight),
		Timestamp: time.Now(),
	}
	session.Messages = append(session.Messages, modelMessage)

	if err := uow.ChatSessionRepository().Update(ctx, session); err != nil {
		return nil, err
	}

	user.Quotas.AiBandwidth.Used++
	if err := uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	response := toMessageResponse(modelMessage)
	return &response, nil
}

// ---- helpers ----

func (s *chatService) loadOwnedSession(ctx context.Context, uow unitofwork.UnitOfWork, userId, sessionId uuid.UUID) (*entity.ChatSession, error) {
	session, err := uow.ChatSessionRepository().FindOne(ctx,
		specification.ByID{ID: sessionId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, &dto.NotFoundError{Resource: "chat session", Id: sessionId.String()}
	}
	return session, nil
}

func (s *chatService) effectivePlan(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (entity.EffectivePlan, error) {
	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return "", err
	}
	if subscription == nil {
		return "", &dto.NotFoundError{Resource: "subscription", Id: userId.String()}
	}
	return entitlement.ResolveEffectivePlan(*subscription), nil
}

func (s *chatService) loadUserAndPlan(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID) (*entity.User, entity.EffectivePlan, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, "", err
	}
	if user == nil {
		return nil, "", &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}
	plan, err := s.effectivePlan(ctx, uow, userId)
	if err != nil {
		return nil, "", err
	}
	return user, plan, nil
}

func (s *chatService) checkBandwidth(ctx context.Context, userId uuid.UUID, quotas entity.Quotas) error {
	q := quotas.AiBandwidth
	if q.Limit >= 0 && q.Used >= q.Limit {
		s.audit.PublishQuotaExceeded(ctx, userId, "aiBandwidth", q.Limit, q.Used)
		return &dto.LimitExceededError{Quota: "aiBandwidth", Limit: q.Limit, Used: q.Used}
	}
	return nil
}

// historyForModel maps the log to collaborator messages, dropping system
// entries the model never sees. The trailing user message carries the
// response style suffix without persisting it.
func (s *chatService) historyForModel(session *entity.ChatSession, responseStyle string) []ai.Message {
	var history []ai.Message
	for _, msg := range session.Messages {
		if msg.Role == entity.ChatMessageRoleSystem {
			continue
		}
		m := ai.Message{Role: msg.Role, Content: msg.Content}
		for _, p := range msg.Parts {
			part := ai.Part{Text: p.Text}
			if p.InlineData != nil {
				part.MimeType = p.InlineData.MimeType
				part.Data = p.InlineData.Data
			}
			m.Parts = append(m.Parts, part)
		}
		history = append(history, m)
	}
	if responseStyle != "" && len(history) > 0 {
		last := &history[len(history)-1]
		last.Content = fmt.Sprintf("%s\n\n%s%s]", last.Content, constant.ResponseStylePrefix, responseStyle)
	}
	return history
}

func (s *chatService) publishExchangeCompleted(sessionId, userId uuid.UUID) {
	payload, err := json.Marshal(dto.ExchangeCompletedMessage{
		SessionId: sessionId,
		UserId:    userId,
	})
	if err != nil {
		return
	}
	msg := message.NewMessage(uuid.NewString(), payload)
	if err := s.pubSub.Publish(ExchangeCompletedTopic, msg); err != nil {
		s.logger.Warn("CHAT", "failed to publish exchange event", map[string]interface{}{
			"session_id": sessionId.String(),
			"error":      err.Error(),
		})
	}
}

func capabilityName(session *entity.ChatSession, capabilityId string) (string, bool) {
	for _, c := range session.DynamicCapabilities {
		if c.Id == capabilityId {
			return c.Name, true
		}
	}
	return "", false
}

func containsString(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

func toMessageParts(reqs []dto.MessagePartRequest) []entity.MessagePart {
	var parts []entity.MessagePart
	for _, p := range reqs {
		part := entity.MessagePart{Text: p.Text}
		if p.MimeType != "" {
			part.InlineData = &entity.InlineData{MimeType: p.MimeType, Data: p.Data}
		}
		parts = append(parts, part)
	}
	return parts
}

func toMessageResponse(msg entity.ChatMessage) dto.MessageResponse {
	ts := msg.Timestamp
	return dto.MessageResponse{
		Role:       msg.Role,
		Content:    msg.Content,
		SenderName: msg.SenderName,
		Timestamp:  &ts,
	}
}

func toSessionResponse(session *entity.ChatSession) *dto.SessionResponse {
	personas := make([]dto.PersonaConfigResponse, 0, len(session.Personas))
	for _, p := range session.Personas {
		personas = append(personas, dto.PersonaConfigResponse{
			Domain:         p.Domain,
			SubDomain:      p.SubDomain,
			Specialization: p.Specialization,
		})
	}
	participants := make([]dto.ParticipantResponse, 0, len(session.Participants))
	for _, p := range session.Participants {
		participants = append(participants, dto.ParticipantResponse{
			Name:     p.Name,
			IsExpert: p.IsExpert,
		})
	}
	messages := make([]dto.MessageResponse, 0, len(session.Messages))
	for _, m := range session.Messages {
		messages = append(messages, toMessageResponse(m))
	}
	capabilities := make([]dto.CapabilityResponse, 0, len(session.DynamicCapabilities))
	for _, c := range session.DynamicCapabilities {
		capabilities = append(capabilities, dto.CapabilityResponse{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
			Enabled:     c.Enabled,
		})
	}
	return &dto.SessionResponse{
		Id:                  session.Id,
		Mode:                string(session.Mode),
		Focus:               string(session.Focus),
		Personas:            personas,
		Participants:        participants,
		Messages:            messages,
		EnabledCapabilities: session.EnabledCapabilities,
		DynamicCapabilities: capabilities,
		CreatedAt:           session.CreatedAt,
		UpdatedAt:           session.UpdatedAt,
	}
}

func toSessionSummary(session *entity.ChatSession) dto.SessionSummaryResponse {
	preview := ""
	for i := len(session.Messages) - 1; i >= 0; i-- {
		if session.Messages[i].Role != entity.ChatMessageRoleSystem {
			preview = session.Messages[i].Content
			break
		}
	}
	if runes := []rune(preview); len(runes) > 120 {
		preview = string(runes[:120]) + "..."
	}
	return dto.SessionSummaryResponse{
		Id:           session.Id,
		Mode:         string(session.Mode),
		Preview:      preview,
		PersonaCount: len(session.Personas),
		MessageCount: len(session.Messages),
		CreatedAt:    session.CreatedAt,
		UpdatedAt:    session.UpdatedAt,
	}
}

func toSuggestedPersonaResponses(suggestions []entity.SuggestedPersona) []dto.SuggestedPersonaResponse {
	out := make([]dto.SuggestedPersonaResponse, 0, len(suggestions))
	for _, s := range suggestions {
		out = append(out, dto.SuggestedPersonaResponse{
			Config: dto.PersonaConfigResponse{
				Domain:         s.Config.Domain,
				SubDomain:      s.Config.SubDomain,
				Specialization: s.Config.Specialization,
			},
			Reason: s.Reason,
		})
	}
	return out
}
