package entity

import (
	"time"

	"github.com/google/uuid"
)

// PersonaConfig pins one expert persona to a three-level specialization
// chain. Labels differ per plan family (category/subCategory/objective for
// individual plans, industry/subType/operatingSegment for business plans)
// but the shape is the same. Immutable once attached to a session.
type PersonaConfig struct {
	Domain         string
	SubDomain      string
	Specialization string
}

const (
	ChatMessageRoleUser   = "user"
	ChatMessageRoleModel  = "model"
	ChatMessageRoleSystem = "system"
)

// InlineData carries a base64-encoded multimodal payload (e.g. an attached
// image) alongside the text of a message.
type InlineData struct {
	MimeType string
	Data     string
}

type MessagePart struct {
	Text       string
	InlineData *InlineData
}

// ChatMessage is append-only: once added to a session it is never edited
// or removed.
type ChatMessage struct {
	Role       string
	Content    string
	Parts      []MessagePart
	Timestamp  time.Time
	SenderName string
}

type Participant struct {
	Name     string
	IsExpert bool
}

// SessionMode is stored explicitly on the session instead of being sniffed
// out of marker strings in the message log.
type SessionMode string

const (
	SessionModeNormal   SessionMode = "normal"
	SessionModeWorkshop SessionMode = "workshop"
	SessionModeBuilder  SessionMode = "builder"
)

type FocusType string

// DynamicCapability is generated per focus; a focus change discards the
// whole batch. Enabled flips to true only through the confirm flow.
type DynamicCapability struct {
	Id          string
	Name        string
	Description string
	Enabled     bool
}

type ChatSession struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	Personas            []PersonaConfig // insertion order = seniority, never empty
	Participants        []Participant
	Messages            []ChatMessage // append-only
	EnabledCapabilities map[string]bool
	Focus               FocusType
	DynamicCapabilities []DynamicCapability
	Mode                SessionMode
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

// PrimaryPersona returns the senior persona of the session.
func (s *ChatSession) PrimaryPersona() PersonaConfig {
	if len(s.Personas) == 0 {
		return PersonaConfig{}
	}
	return s.Personas[0]
}

// HasSpecialization reports whether a persona with the given specialization
// is already on the session.
func (s *ChatSession) HasSpecialization(specialization string) bool {
	for _, p := range s.Personas {
		if p.Specialization == specialization {
			return true
		}
	}
	return false
}

// SuggestedPersona is ephemeral: regenerated after every exchange and
// replaced wholesale, never persisted.
type SuggestedPersona struct {
	Config PersonaConfig
	Reason string
}

type WorkshopData struct {
	Objective string
	Agenda    string
	Backstory string
	UseCases  string
	Attendees []PersonaConfig
}
