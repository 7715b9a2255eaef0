package suggestion

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smepro-be/internal/entity"
	"smepro-be/pkg/ai"
)

type stubCollaborator struct {
	jsonResponse string
	jsonErr      error
	lastPrompt   string
	lastSchema   *ai.Schema
	calls        int
}

func (s *stubCollaborator) Chat(ctx context.Context, history []ai.Message, options ...ai.Option) (string, error) {
	return "", nil
}

func (s *stubCollaborator) Generate(ctx context.Context, prompt string, options ...ai.Option) (string, error) {
	return "", nil
}

func (s *stubCollaborator) GenerateJSON(ctx context.Context, prompt string, schema *ai.Schema, options ...ai.Option) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	s.lastSchema = schema
	return s.jsonResponse, s.jsonErr
}

func (s *stubCollaborator) GenerateImage(ctx context.Context, prompt, aspectRatio string) (*ai.Asset, error) {
	return nil, nil
}

func (s *stubCollaborator) AnalyzeImage(ctx context.Context, prompt, mimeType string, data []byte) (string, error) {
	return "", nil
}

func (s *stubCollaborator) EditImage(ctx context.Context, prompt, mimeType string, data []byte) (*ai.Asset, error) {
	return nil, nil
}

func (s *stubCollaborator) AnimateImage(ctx context.Context, prompt, mimeType string, data []byte, aspectRatio string) (*ai.Asset, error) {
	return nil, nil
}

func businessSession() *entity.ChatSession {
	return &entity.ChatSession{
		Personas: []entity.PersonaConfig{
			{Domain: "Technology", SubDomain: "AI/ML", Specialization: "R&D"},
		},
		Messages: []entity.ChatMessage{
			{Role: entity.ChatMessageRoleUser, Content: "We need a go-to-market plan."},
			{Role: entity.ChatMessageRoleModel, Content: "Let's outline one."},
		},
	}
}

func TestSuggestGatedByPlan(t *testing.T) {
	stub := &stubCollaborator{}
	engine := NewEngine(stub)

	got, err := engine.Suggest(context.Background(), businessSession(), entity.PlanSolo)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, stub.calls, "gated plans must not reach the collaborator")
}

func TestSuggestRequiresConversation(t *testing.T) {
	stub := &stubCollaborator{}
	engine := NewEngine(stub)

	session := businessSession()
	session.Messages = session.Messages[:1]

	got, err := engine.Suggest(context.Background(), session, entity.PlanBusiness)

	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, stub.calls)
}

func TestSuggestInheritsPrimaryPersona(t *testing.T) {
	stub := &stubCollaborator{
		jsonResponse: `{"suggestions":[
			{"segment":"Sales & Marketing","reason":"go-to-market focus"},
			{"segment":"Legal & Compliance","reason":"contract exposure"}
		]}`,
	}
	engine := NewEngine(stub)

	got, err := engine.Suggest(context.Background(), businessSession(), entity.PlanBusiness)

	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, s := range got {
		assert.Equal(t, "Technology", s.Config.Domain)
		assert.Equal(t, "AI/ML", s.Config.SubDomain)
	}
	assert.Equal(t, "Sales & Marketing", got[0].Config.Specialization)
	assert.Equal(t, "go-to-market focus", got[0].Reason)
}

func TestSuggestFiltersActiveAndCaps(t *testing.T) {
	stub := &stubCollaborator{
		jsonResponse: `{"suggestions":[
			{"segment":"R&D","reason":"already here"},
			{"segment":"Sales & Marketing","reason":"a"},
			{"segment":"Legal & Compliance","reason":"b"},
			{"segment":"Executive Management","reason":"c"},
			{"segment":"Information Technology","reason":"d"}
		]}`,
	}
	engine := NewEngine(stub)

	got, err := engine.Suggest(context.Background(), businessSession(), entity.PlanBusiness)

	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, s := range got {
		assert.NotEqual(t, "R&D", s.Config.Specialization)
	}
}

func TestSuggestSchemaExcludesActiveSegments(t *testing.T) {
	stub := &stubCollaborator{jsonResponse: `{"suggestions":[]}`}
	engine := NewEngine(stub)

	_, err := engine.Suggest(context.Background(), businessSession(), entity.PlanBusiness)
	require.NoError(t, err)

	require.NotNil(t, stub.lastSchema)
	enum := stub.lastSchema.Properties["suggestions"].Items.Properties["segment"].Enum
	assert.NotEmpty(t, enum)
	assert.NotContains(t, enum, "R&D")
	assert.Contains(t, stub.lastPrompt, "operating segments")
	assert.Contains(t, stub.lastPrompt, "- R&D")
}

func TestSuggestCollaboratorErrorPropagates(t *testing.T) {
	stub := &stubCollaborator{jsonErr: errors.New("quota exhausted")}
	engine := NewEngine(stub)

	_, err := engine.Suggest(context.Background(), businessSession(), entity.PlanBusiness)

	assert.Error(t, err)
}
