// FILE: internal/dto/vault_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type SaveVaultItemRequest struct {
	Title    string   `json:"title" validate:"required,min=1,max=200"`
	Content  string   `json:"content" validate:"required"`
	Category string   `json:"category" validate:"omitempty,max=100"`
	Tags     []string `json:"tags" validate:"omitempty,dive,max=50"`

	// Provenance, set when saving an analyzer result.
	SourceText   string `json:"source_text,omitempty"`
	AnalysisType string `json:"analysis_type,omitempty"`
	BuilderReady bool   `json:"builder_ready,omitempty"`
}

type VaultItemResponse struct {
	Id           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	Category     string    `json:"category"`
	Tags         []string  `json:"tags,omitempty"`
	BuilderReady bool      `json:"builder_ready"`
	AnalysisType string    `json:"analysis_type,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type SynthesisRequest struct {
	ItemIds        []uuid.UUID `json:"item_ids" validate:"required,min=2"`
	Objective      string      `json:"objective" validate:"required"`
	ResponseFormat string      `json:"response_format" validate:"omitempty"`
}

type SynthesisResponse struct {
	Result         string `json:"result"`
	Objective      string `json:"objective"`
	ResponseFormat string `json:"response_format"`
	ItemCount      int    `json:"item_count"`
}

type DrillDownRequest struct {
	Snippet     string `json:"snippet" validate:"required"`
	FullContext string `json:"full_context" validate:"required"`
	Color       string `json:"color" validate:"required,oneof=red blue green"`
}

type DrillDownResponse struct {
	Color  string `json:"color"`
	Result string `json:"result"`
}

// ContinueInBuilderRequest switches a session into builder mode, optionally
// seeding it with a stored analysis.
type ContinueInBuilderRequest struct {
	ItemId uuid.UUID `json:"item_id" validate:"omitempty"`
}
