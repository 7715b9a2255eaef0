// Package synthesis runs the vault analyzer: multi-item synthesis into a
// requested output format and color-coded drill-downs on highlighted text.
package synthesis

import (
	"context"
	"fmt"

	"smepro-be/internal/constant"
	"smepro-be/internal/entity"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/prompt"
)

type Analyzer struct {
	collaborator ai.Collaborator
}

func NewAnalyzer(collaborator ai.Collaborator) *Analyzer {
	return &Analyzer{collaborator: collaborator}
}

// Synthesize analyzes two or more vault items against an objective and
// output format. The item-count guard runs before any model call so an
// under-filled selection costs nothing. Concept Review objectives ignore
// the requested format and always produce a Project Brief.
func (a *Analyzer) Synthesize(ctx context.Context, items []entity.VaultItem, objective, responseFormat string) (string, error) {
	if len(items) < 2 {
		return "", fmt.Errorf("synthesis requires at least 2 vault items, got %d", len(items))
	}
	if responseFormat == "" {
		responseFormat = constant.ResponseFormats[0]
	}

	result, err := a.collaborator.Generate(ctx, prompt.VaultAnalysis(items, objective, responseFormat), ai.WithModel(ai.ModelDeep))
	if err != nil {
		return "", fmt.Errorf("vault synthesis failed: %w", err)
	}
	return result, nil
}

// DrillDown analyzes a highlighted snippet through one of the color
// framings: red for risk and priority, blue for analytical depth, green
// for monetization.
func (a *Analyzer) DrillDown(ctx context.Context, snippet, fullContext, color string) (string, error) {
	framing, ok := constant.DrillDownFramings[color]
	if !ok {
		return "", fmt.Errorf("unknown drill-down color %q", color)
	}

	result, err := a.collaborator.Generate(ctx, prompt.DrillDown(snippet, fullContext),
		ai.WithModel(ai.ModelDeep), ai.WithSystemInstruction(framing))
	if err != nil {
		return "", fmt.Errorf("%s drill-down failed: %w", color, err)
	}
	return result, nil
}
