// Package capability manages the dynamic skills a session can acquire for
// its focus. Capabilities are generated disabled; enabling one is a
// two-phase exchange where the user first receives an explanation and a
// short-lived confirmation token, then confirms with that token.
package capability

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"smepro-be/internal/constant"
	"smepro-be/internal/entity"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/prompt"
)

// PendingTTL bounds how long a proposed enablement stays confirmable.
const PendingTTL = 10 * time.Minute

// PendingGrant is a proposed enablement waiting for user confirmation.
type PendingGrant struct {
	SessionId    string `json:"sessionId"`
	CapabilityId string `json:"capabilityId"`
}

// PendingStore holds grants between the propose and confirm phases. Take
// removes the grant so a token is single-use.
type PendingStore interface {
	Put(ctx context.Context, token string, grant PendingGrant, ttl time.Duration) error
	Take(ctx context.Context, token string) (PendingGrant, bool, error)
}

type Manager struct {
	collaborator ai.Collaborator
	pending      PendingStore
}

func NewManager(collaborator ai.Collaborator, pending PendingStore) *Manager {
	return &Manager{collaborator: collaborator, pending: pending}
}

// GenerateForFocus designs 3-5 capabilities for the session focus. Every
// capability comes back disabled with a fresh id.
func (m *Manager) GenerateForFocus(ctx context.Context, focus entity.FocusType, history []entity.ChatMessage) ([]entity.DynamicCapability, error) {
	schema := &ai.Schema{
		Type: "object",
		Properties: map[string]*ai.Schema{
			"capabilities": {
				Type:        "array",
				Description: "A list of 3-5 generated capabilities.",
				Items: &ai.Schema{
					Type: "object",
					Properties: map[string]*ai.Schema{
						"name":        {Type: "string", Description: "The name of the capability."},
						"description": {Type: "string", Description: "A brief description of the capability."},
					},
					Required: []string{"name", "description"},
				},
			},
		},
		Required: []string{"capabilities"},
	}

	raw, err := m.collaborator.GenerateJSON(ctx, prompt.FocusCapabilities(focus, history), schema, ai.WithModel(ai.ModelDeep))
	if err != nil {
		return nil, fmt.Errorf("focus capability generation failed: %w", err)
	}

	var payload struct {
		Capabilities []struct {
			Name        string `json:"name"`
			Description string `json:"description"`
		} `json:"capabilities"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("focus capability response is not valid JSON: %w", err)
	}

	out := make([]entity.DynamicCapability, 0, len(payload.Capabilities))
	for _, c := range payload.Capabilities {
		if c.Name == "" {
			continue
		}
		out = append(out, entity.DynamicCapability{
			Id:          uuid.NewString(),
			Name:        c.Name,
			Description: c.Description,
			Enabled:     false,
		})
	}
	return out, nil
}

// ProposeEnable explains what the capability will do for this session and
// returns a single-use token the client must echo back to confirm.
func (m *Manager) ProposeEnable(ctx context.Context, session *entity.ChatSession, capabilityId string) (token, explanation string, err error) {
	capability, ok := findCapability(session, capabilityId)
	if !ok {
		return "", "", fmt.Errorf("capability %s is not part of this session", capabilityId)
	}
	if capability.Enabled {
		return "", "", fmt.Errorf("capability %q is already enabled", capability.Name)
	}

	explanation, err = m.collaborator.Generate(ctx, prompt.CapabilityExplanation(capability, session.Focus, session.Messages))
	if err != nil {
		return "", "", fmt.Errorf("capability explanation failed: %w", err)
	}

	token = uuid.NewString()
	grant := PendingGrant{SessionId: session.Id.String(), CapabilityId: capabilityId}
	if err := m.pending.Put(ctx, token, grant, PendingTTL); err != nil {
		return "", "", fmt.Errorf("failed to stage capability grant: %w", err)
	}
	return token, explanation, nil
}

// ConfirmEnable redeems a token from ProposeEnable and flips the
// capability on. Expired, foreign, or reused tokens are rejected.
func (m *Manager) ConfirmEnable(ctx context.Context, session *entity.ChatSession, token string) (string, error) {
	grant, ok, err := m.pending.Take(ctx, token)
	if err != nil {
		return "", fmt.Errorf("failed to redeem capability grant: %w", err)
	}
	if !ok || grant.SessionId != session.Id.String() {
		return "", fmt.Errorf("capability confirmation token is invalid or expired")
	}

	for i := range session.DynamicCapabilities {
		if session.DynamicCapabilities[i].Id == grant.CapabilityId {
			session.DynamicCapabilities[i].Enabled = true
			return grant.CapabilityId, nil
		}
	}
	return "", fmt.Errorf("capability %s is no longer part of this session", grant.CapabilityId)
}

// Disable turns a capability off immediately. No confirmation round-trip.
func (m *Manager) Disable(session *entity.ChatSession, capabilityId string) error {
	for i := range session.DynamicCapabilities {
		if session.DynamicCapabilities[i].Id == capabilityId {
			session.DynamicCapabilities[i].Enabled = false
			return nil
		}
	}
	return fmt.Errorf("capability %s is not part of this session", capabilityId)
}

// SuggestStatic picks 1-2 static capabilities relevant to the recent
// conversation. Short conversations yield nothing.
func (m *Manager) SuggestStatic(ctx context.Context, history []entity.ChatMessage) ([]string, error) {
	if len(history) < 2 {
		return nil, nil
	}

	schema := &ai.Schema{
		Type: "object",
		Properties: map[string]*ai.Schema{
			"suggestions": {
				Type:        "array",
				Description: "A list of 1-2 recommended capability names.",
				Items:       &ai.Schema{Type: "string", Enum: constant.CapabilityNames},
			},
		},
		Required: []string{"suggestions"},
	}

	raw, err := m.collaborator.GenerateJSON(ctx, prompt.CapabilitySuggestion(history), schema)
	if err != nil {
		return nil, fmt.Errorf("capability suggestion failed: %w", err)
	}

	var payload struct {
		Suggestions []string `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("capability suggestion response is not valid JSON: %w", err)
	}

	out := make([]string, 0, len(payload.Suggestions))
	for _, name := range payload.Suggestions {
		if _, known := constant.CapabilityDescriptions[name]; known {
			out = append(out, name)
		}
	}
	return out, nil
}

func findCapability(session *entity.ChatSession, capabilityId string) (entity.DynamicCapability, bool) {
	for _, c := range session.DynamicCapabilities {
		if c.Id == capabilityId {
			return c, true
		}
	}
	return entity.DynamicCapability{}, false
}
