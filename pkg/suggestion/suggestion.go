// Package suggestion recommends additional experts for an active session
// by analyzing recent conversation against the segments the plan's
// taxonomy can reach. Every failure path degrades to no suggestions; the
// chat flow never depends on this engine succeeding.
package suggestion

import (
	"context"
	"encoding/json"
	"fmt"

	"smepro-be/internal/entity"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/entitlement"
	"smepro-be/pkg/prompt"
	"smepro-be/pkg/taxonomy"
)

const maxSuggestions = 3

type Engine struct {
	collaborator ai.Collaborator
}

func NewEngine(collaborator ai.Collaborator) *Engine {
	return &Engine{collaborator: collaborator}
}

// Suggest returns up to three experts worth adding to the session. It
// returns nothing when the plan lacks the feature, the conversation is
// too short to analyze, or no unclaimed segments remain.
func (e *Engine) Suggest(ctx context.Context, session *entity.ChatSession, plan entity.EffectivePlan) ([]entity.SuggestedPersona, error) {
	if !entitlement.AllowsSuggestions(plan) {
		return nil, nil
	}
	if len(session.Personas) == 0 || len(session.Messages) < 2 {
		return nil, nil
	}

	allSegments := taxonomy.AllSegments(plan)
	if len(allSegments) == 0 {
		return nil, nil
	}

	active := make([]string, 0, len(session.Personas))
	activeSet := make(map[string]bool, len(session.Personas))
	for _, persona := range session.Personas {
		active = append(active, persona.Specialization)
		activeSet[persona.Specialization] = true
	}

	available := make([]string, 0, len(allSegments))
	for _, segment := range allSegments {
		if !activeSet[segment] {
			available = append(available, segment)
		}
	}
	if len(available) == 0 {
		return nil, nil
	}

	segmentType := "operating segments"
	if entitlement.IsSoloFamily(plan) {
		segmentType = "objectives"
	}

	schema := &ai.Schema{
		Type: "object",
		Properties: map[string]*ai.Schema{
			"suggestions": {
				Type:        "array",
				Description: fmt.Sprintf("A list of 2-3 recommended SME %s.", segmentType),
				Items: &ai.Schema{
					Type: "object",
					Properties: map[string]*ai.Schema{
						"segment": {
							Type:        "string",
							Enum:        available,
							Description: fmt.Sprintf("The recommended SME %s.", segmentType),
						},
						"reason": {
							Type:        "string",
							Description: "A brief justification for why this SME is recommended based on the conversation.",
						},
					},
					Required: []string{"segment", "reason"},
				},
			},
		},
		Required: []string{"suggestions"},
	}

	raw, err := e.collaborator.GenerateJSON(ctx, prompt.Suggestion(active, session.Messages, segmentType), schema)
	if err != nil {
		return nil, fmt.Errorf("suggestion generation failed: %w", err)
	}

	var payload struct {
		Suggestions []struct {
			Segment string `json:"segment"`
			Reason  string `json:"reason"`
		} `json:"suggestions"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("suggestion response is not valid JSON: %w", err)
	}

	primary := session.PrimaryPersona()
	out := make([]entity.SuggestedPersona, 0, maxSuggestions)
	for _, s := range payload.Suggestions {
		if len(out) == maxSuggestions {
			break
		}
		if s.Segment == "" || activeSet[s.Segment] {
			continue
		}
		out = append(out, entity.SuggestedPersona{
			Config: entity.PersonaConfig{
				Domain:         primary.Domain,
				SubDomain:      primary.SubDomain,
				Specialization: s.Segment,
			},
			Reason: s.Reason,
		})
	}
	return out, nil
}
