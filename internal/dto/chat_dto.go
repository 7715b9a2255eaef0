// FILE: internal/dto/chat_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type PersonaConfigRequest struct {
	Domain         string `json:"domain" validate:"required"`
	SubDomain      string `json:"sub_domain" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
}

type PersonaConfigResponse struct {
	Domain         string `json:"domain"`
	SubDomain      string `json:"sub_domain"`
	Specialization string `json:"specialization"`
}

type CreateSessionRequest struct {
	Personas []PersonaConfigRequest `json:"personas" validate:"required,min=1,dive"`
}

type MessagePartRequest struct {
	Text     string `json:"text,omitempty"`
	MimeType string `json:"mime_type,omitempty"`
	Data     string `json:"data,omitempty"`
}

type SendMessageRequest struct {
	Content       string               `json:"content" validate:"required"`
	Parts         []MessagePartRequest `json:"parts,omitempty" validate:"omitempty,dive"`
	ResponseStyle string               `json:"response_style,omitempty"`
}

type MessageResponse struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	SenderName string     `json:"sender_name,omitempty"`
	Timestamp  *time.Time `json:"timestamp,omitempty"`
}

type CapabilityResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

type ParticipantResponse struct {
	Name     string `json:"name"`
	IsExpert bool   `json:"is_expert"`
}

type SessionResponse struct {
	Id                  uuid.UUID               `json:"id"`
	Mode                string                  `json:"mode"`
	Focus               string                  `json:"focus,omitempty"`
	Personas            []PersonaConfigResponse `json:"personas"`
	Participants        []ParticipantResponse   `json:"participants"`
	Messages            []MessageResponse       `json:"messages"`
	EnabledCapabilities map[string]bool         `json:"enabled_capabilities"`
	DynamicCapabilities []CapabilityResponse    `json:"dynamic_capabilities,omitempty"`
	CreatedAt           time.Time               `json:"created_at"`
	UpdatedAt           *time.Time              `json:"updated_at,omitempty"`
}

type SessionSummaryResponse struct {
	Id           uuid.UUID  `json:"id"`
	Mode         string     `json:"mode"`
	Preview      string     `json:"preview"`
	PersonaCount int        `json:"persona_count"`
	MessageCount int        `json:"message_count"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

// ExchangeResponse is the result of one user turn: the persisted model
// reply plus any refreshed expert suggestions.
type ExchangeResponse struct {
	Message     MessageResponse            `json:"message"`
	Suggestions []SuggestedPersonaResponse `json:"suggestions,omitempty"`
}

type SuggestedPersonaResponse struct {
	Config PersonaConfigResponse `json:"config"`
	Reason string                `json:"reason"`
}

type AddPersonasRequest struct {
	Personas []PersonaConfigRequest `json:"personas" validate:"required,min=1,dive"`
}

type StartWorkshopRequest struct {
	Objective string                 `json:"objective" validate:"required"`
	Agenda    string                 `json:"agenda" validate:"required"`
	Backstory string                 `json:"backstory" validate:"omitempty"`
	UseCases  string                 `json:"use_cases" validate:"omitempty"`
	Attendees []PersonaConfigRequest `json:"attendees" validate:"omitempty,dive"`
}

// SetFocusRequest with an empty focus clears the focus and its dynamic
// capability batch.
type SetFocusRequest struct {
	Focus string `json:"focus" validate:"omitempty"`
}

type ToggleStaticCapabilityRequest struct {
	Name    string `json:"name" validate:"required"`
	Enabled bool   `json:"enabled"`
}

type ProposeCapabilityRequest struct {
	CapabilityId string `json:"capability_id" validate:"required"`
}

// CapabilitySuggestionResponse recommends a static capability the user may
// want to switch on for the current conversation.
type CapabilitySuggestionResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type ProposeCapabilityResponse struct {
	Token       string `json:"token"`
	Explanation string `json:"explanation"`
}

type ConfirmCapabilityRequest struct {
	Token string `json:"token" validate:"required"`
}

type StepActionRequest struct {
	Action   string `json:"action" validate:"required"`
	Context  string `json:"context" validate:"required"`
	Language string `json:"language,omitempty"`
	Platform string `json:"platform,omitempty"`
}

type DynamicStepActionsRequest struct {
	StepContent string `json:"step_content" validate:"required"`
}

type DynamicStepActionsResponse struct {
	Actions []string `json:"actions"`
}

type InsightRequest struct {
	SelectedText string `json:"selected_text" validate:"required"`
	FullContext  string `json:"full_context" validate:"required"`
}

// ExchangeCompletedMessage is the watermill payload emitted after a model
// reply lands, consumed by the suggestion refresher.
type ExchangeCompletedMessage struct {
	SessionId uuid.UUID `json:"session_id"`
	UserId    uuid.UUID `json:"user_id"`
}
