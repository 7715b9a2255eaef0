// FILE: internal/service/chat_service_test.go
package service

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smepro-be/internal/constant"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/repository/memory"
	"smepro-be/pkg/capability"
	"smepro-be/pkg/suggestion"
)

func newChatServiceForTest(factory *fakeRepositoryFactory, stub *stubCollaborator, audit *stubAudit) (IChatService, *memory.SuggestionCache) {
	cache := memory.NewSuggestionCache()
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	svc := NewChatService(
		factory,
		stub,
		capability.NewManager(stub, memory.NewPendingGrantStore()),
		suggestion.NewEngine(stub),
		cache,
		pubSub,
		audit,
		nopTestLogger{},
	)
	return svc, cache
}

func seedSession(factory *fakeRepositoryFactory, userId uuid.UUID) *entity.ChatSession {
	session := &entity.ChatSession{
		Id:     uuid.New(),
		UserId: userId,
		Personas: []entity.PersonaConfig{
			{Domain: "Technology", SubDomain: "AI/ML", Specialization: "R&D"},
		},
		Participants: []entity.Participant{
			{Name: "You"},
			{Name: "R&D SME", IsExpert: true},
		},
		EnabledCapabilities: constant.DefaultEnabledCapabilities(),
		Mode:                entity.SessionModeNormal,
		Messages: []entity.ChatMessage{
			{Role: entity.ChatMessageRoleSystem, Content: constant.SessionStartedMessage},
		},
	}
	factory.uow.sessions.sessions[session.Id] = session
	return session
}

func bandwidthQuotas(limit, used float64) entity.Quotas {
	return entity.Quotas{
		VaultStorage:    entity.Quota{Limit: 10},
		AnalyzerActions: entity.Quota{Limit: 200},
		AiBandwidth:     entity.Quota{Limit: limit, Used: used},
	}
}

func TestCreateSessionSeedsDefaults(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, audit)
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))

	resp, err := svc.CreateSession(context.Background(), user.Id, &dto.CreateSessionRequest{
		Personas: []dto.PersonaConfigRequest{
			{Domain: "Technology", SubDomain: "AI/ML", Specialization: "R&D"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "normal", resp.Mode)
	require.Len(t, resp.Participants, 2)
	assert.Equal(t, "You", resp.Participants[0].Name)
	assert.False(t, resp.Participants[0].IsExpert)
	assert.Equal(t, "R&D SME", resp.Participants[1].Name)

	require.Len(t, resp.Messages, 1)
	assert.Equal(t, constant.SessionStartedMessage, resp.Messages[0].Content)

	assert.True(t, resp.EnabledCapabilities[constant.CapabilityGenerateCode])
	assert.False(t, resp.EnabledCapabilities[constant.CapabilitySelfCheck])

	assert.Equal(t, 1, audit.sessionsCreated)
}

func TestCreateSessionRejectsUnknownTaxonomy(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))

	_, err := svc.CreateSession(context.Background(), user.Id, &dto.CreateSessionRequest{
		Personas: []dto.PersonaConfigRequest{
			{Domain: "Astrology", SubDomain: "Tarot", Specialization: "Prediction"},
		},
	})
	var validation *dto.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestSendMessageAppendsExchangeAndConsumesBandwidth(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{chatReply: "Here is the go-to-market plan."}
	svc, cache := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 5))
	session := seedSession(factory, user.Id)

	// Stale suggestions from the previous exchange must be dropped.
	cache.Save(session.Id.String(), []entity.SuggestedPersona{{Reason: "stale"}})

	resp, err := svc.SendMessage(context.Background(), user.Id, session.Id, &dto.SendMessageRequest{
		Content:       "How do we launch?",
		ResponseStyle: "Concise",
	})
	require.NoError(t, err)
	assert.Equal(t, "Here is the go-to-market plan.", resp.Message.Content)
	assert.Empty(t, resp.Suggestions)

	stored := factory.uow.sessions.sessions[session.Id]
	require.Len(t, stored.Messages, 3)
	assert.Equal(t, entity.ChatMessageRoleUser, stored.Messages[1].Role)
	assert.Equal(t, entity.ChatMessageRoleModel, stored.Messages[2].Role)

	assert.Equal(t, float64(6), factory.uow.users.users[user.Id].Quotas.AiBandwidth.Used)

	// System entries never reach the model; the style hint rides the last turn.
	require.NotEmpty(t, stub.lastHistory)
	assert.Equal(t, 1, len(stub.lastHistory))
	assert.True(t, strings.HasSuffix(stub.lastHistory[0].Content, constant.ResponseStylePrefix+"Concise]"))

	_, found := cache.Get(session.Id.String())
	assert.False(t, found)
}

func TestSendMessageQuotaGate(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{chatReply: "unreachable"}
	audit := &stubAudit{}
	svc, _ := newChatServiceForTest(factory, stub, audit)
	user := seedAccount(factory, entity.PlanSolo, bandwidthQuotas(50, 50))
	session := seedSession(factory, user.Id)

	_, err := svc.SendMessage(context.Background(), user.Id, session.Id, &dto.SendMessageRequest{
		Content: "One more question",
	})
	var limit *dto.LimitExceededError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "aiBandwidth", limit.Quota)

	assert.Zero(t, stub.chatCalls)
	assert.Len(t, factory.uow.sessions.sessions[session.Id].Messages, 1, "a gated exchange must not touch the log")
	assert.Equal(t, []string{"aiBandwidth"}, audit.quotasExceeded)
}

func TestSendMessageDegradesOnCollaboratorError(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{chatErr: assert.AnError}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	resp, err := svc.SendMessage(context.Background(), user.Id, session.Id, &dto.SendMessageRequest{
		Content: "Hello?",
	})
	require.NoError(t, err, "a model failure is an apology, not a 500")
	assert.Equal(t, constant.CollaboratorErrorMessage, resp.Message.Content)

	stored := factory.uow.sessions.sessions[session.Id]
	require.Len(t, stored.Messages, 3)
	assert.Equal(t, constant.CollaboratorErrorMessage, stored.Messages[2].Content)

	assert.Zero(t, factory.uow.users.quotaWrites, "failed exchanges are free")
}

func TestSendMessageToolCommandInBuilderMode(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "# Project README"}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)
	session.Mode = entity.SessionModeBuilder

	resp, err := svc.SendMessage(context.Background(), user.Id, session.Id, &dto.SendMessageRequest{
		Content: constant.ToolGenerateReadme,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, stub.generateCalls, "tool commands go through the tool prompt")
	assert.Zero(t, stub.chatCalls)
	assert.True(t, strings.HasPrefix(resp.Message.Content, constant.BuilderOutputMarker))
	assert.Contains(t, resp.Message.Content, "# Project README")
}

func TestStartWorkshopGatedByPlan(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, audit)
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	_, err := svc.StartWorkshop(context.Background(), user.Id, session.Id, &dto.StartWorkshopRequest{
		Objective: "Launch readiness",
		Agenda:    "Review the launch plan",
	})
	var gate *dto.FeatureGateError
	require.ErrorAs(t, err, &gate)
	assert.Zero(t, audit.workshopsStarted)
}

func TestStartWorkshopActivates(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Glad to join the workshop."}
	audit := &stubAudit{}
	svc, _ := newChatServiceForTest(factory, stub, audit)
	user := seedAccount(factory, entity.PlanBusinessAdv, bandwidthQuotas(700, 0))
	session := seedSession(factory, user.Id)

	resp, err := svc.StartWorkshop(context.Background(), user.Id, session.Id, &dto.StartWorkshopRequest{
		Objective: "Launch readiness",
		Agenda:    "Review the launch plan",
		Attendees: []dto.PersonaConfigRequest{
			{Domain: "Technology", SubDomain: "AI/ML", Specialization: "Engineering & Design"},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "workshop", resp.Mode)
	require.Len(t, resp.Personas, 2)
	assert.Equal(t, constant.WorkshopClosingMessage, resp.Messages[len(resp.Messages)-1].Content)
	assert.Equal(t, 1, audit.workshopsStarted)
}

func TestSetFocusClearsDynamicBatch(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)
	session.Focus = "TikTok"
	session.DynamicCapabilities = []entity.DynamicCapability{
		{Id: "cap-1", Name: "Trend Scan", Enabled: true},
	}

	resp, err := svc.SetFocus(context.Background(), user.Id, session.Id, &dto.SetFocusRequest{Focus: ""})
	require.NoError(t, err)

	assert.Empty(t, resp.Focus)
	assert.Empty(t, resp.DynamicCapabilities)
	assert.Zero(t, stub.jsonCalls, "clearing the focus needs no generation")
}

func TestSetFocusRejectsUnknownType(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	_, err := svc.SetFocus(context.Background(), user.Id, session.Id, &dto.SetFocusRequest{Focus: "Cooking"})
	var validation *dto.ValidationError
	require.ErrorAs(t, err, &validation)
}

func TestAddPersonasDedupesBySpecialization(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Hello there."}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	resp, err := svc.AddPersonas(context.Background(), user.Id, session.Id, &dto.AddPersonasRequest{
		Personas: []dto.PersonaConfigRequest{
			{Domain: "Technology", SubDomain: "AI/ML", Specialization: "R&D"},
		},
	})
	require.NoError(t, err)

	assert.Len(t, resp.Personas, 1)
	assert.Len(t, resp.Messages, 1)
	assert.Zero(t, stub.generateCalls, "duplicates never generate an introduction")
}

func TestStepActionPersistsMarkerBeforeReply(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Step one: register the domain."}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	resp, err := svc.StepAction(context.Background(), user.Id, session.Id, &dto.StepActionRequest{
		Action:  "Register Domain",
		Context: "Step 1 of the launch plan",
	})
	require.NoError(t, err)
	assert.Equal(t, "Step one: register the domain.", resp.Content)

	updates := factory.uow.sessions.lastMessageAtUpdate
	require.Len(t, updates, 2)
	assert.Equal(t, "Executing action: **Register Domain**...", updates[0])
	assert.Equal(t, "Step one: register the domain.", updates[1])

	assert.Equal(t, 1, factory.uow.users.quotaWrites)
}

func TestProposeAndConfirmCapability(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Enabling Trend Scan will surface platform trends."}
	audit := &stubAudit{}
	svc, _ := newChatServiceForTest(factory, stub, audit)
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)
	session.DynamicCapabilities = []entity.DynamicCapability{
		{Id: "cap-1", Name: "Trend Scan", Description: "Scans trends"},
	}

	proposal, err := svc.ProposeCapability(context.Background(), user.Id, session.Id, &dto.ProposeCapabilityRequest{
		CapabilityId: "cap-1",
	})
	require.NoError(t, err)
	require.NotEmpty(t, proposal.Token)
	assert.Contains(t, proposal.Explanation, "Trend Scan")

	resp, err := svc.ConfirmCapability(context.Background(), user.Id, session.Id, &dto.ConfirmCapabilityRequest{
		Token: proposal.Token,
	})
	require.NoError(t, err)
	require.Len(t, resp.DynamicCapabilities, 1)
	assert.True(t, resp.DynamicCapabilities[0].Enabled)
	assert.Equal(t, []string{"Trend Scan"}, audit.capabilitiesOn)

	// A token is single use.
	_, err = svc.ConfirmCapability(context.Background(), user.Id, session.Id, &dto.ConfirmCapabilityRequest{
		Token: proposal.Token,
	})
	require.Error(t, err)
}

func TestGetSuggestionsServesCache(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{}
	svc, cache := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)

	cache.Save(session.Id.String(), []entity.SuggestedPersona{{
		Config: entity.PersonaConfig{Domain: "Technology", SubDomain: "AI/ML", Specialization: "Sales & Marketing"},
		Reason: "Brings go-to-market depth",
	}})

	got, err := svc.GetSuggestions(context.Background(), user.Id, session.Id)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Sales & Marketing", got[0].Config.Specialization)
	assert.Zero(t, stub.jsonCalls, "cache hits never reach the collaborator")
}

func TestSuggestCapabilitiesMapsDescriptions(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{jsonReply: `{"suggestions":["generateCode","runTerminal"]}`}
	svc, _ := newChatServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)
	session.Messages = append(session.Messages,
		entity.ChatMessage{Role: entity.ChatMessageRoleUser, Content: "write me a deploy script"},
		entity.ChatMessage{Role: entity.ChatMessageRoleModel, Content: "sure, which platform?"},
	)

	got, err := svc.SuggestCapabilities(context.Background(), user.Id, session.Id)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, constant.CapabilityGenerateCode, got[0].Name)
	assert.Equal(t, constant.CapabilityDescriptions[constant.CapabilityGenerateCode], got[0].Description)
	assert.Equal(t, constant.CapabilityRunTerminal, got[1].Name)
}

func TestSuggestCapabilitiesEnforcesOwnership(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	owner := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, owner.Id)

	_, err := svc.SuggestCapabilities(context.Background(), uuid.New(), session.Id)
	var notFound *dto.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestListSessionsPreviewKeepsRunesIntact(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc, _ := newChatServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, bandwidthQuotas(200, 0))
	session := seedSession(factory, user.Id)
	session.Messages = append(session.Messages, entity.ChatMessage{
		Role:    entity.ChatMessageRoleUser,
		Content: strings.Repeat("é", 130),
	})

	summaries, err := svc.ListSessions(context.Background(), user.Id)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, strings.Repeat("é", 120)+"...", summaries[0].Preview)
	assert.True(t, utf8.ValidString(summaries[0].Preview))
}
