package mapper

import (
	"encoding/json"
	"time"

	"smepro-be/internal/entity"
	"smepro-be/internal/model"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

// jsonMessage is the storage shape of one log entry. The entity keeps
// richer types; this keeps the jsonb column stable.
type jsonMessage struct {
	Role       string            `json:"role"`
	Content    string            `json:"content"`
	Parts      []jsonMessagePart `json:"parts,omitempty"`
	Timestamp  time.Time         `json:"timestamp"`
	SenderName string            `json:"senderName,omitempty"`
}

type jsonMessagePart struct {
	Text     string `json:"text,omitempty"`
	MimeType string `json:"mimeType,omitempty"`
	Data     string `json:"data,omitempty"`
}

type jsonPersona struct {
	Domain         string `json:"domain"`
	SubDomain      string `json:"subDomain"`
	Specialization string `json:"specialization"`
}

type jsonParticipant struct {
	Name     string `json:"name"`
	IsExpert bool   `json:"isExpert"`
}

type jsonCapability struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

func (m *ChatMapper) SessionToEntity(s *model.ChatSession) *entity.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	session := &entity.ChatSession{
		Id:        s.Id,
		UserId:    s.UserId,
		Mode:      entity.SessionMode(s.Mode),
		Focus:     entity.FocusType(s.Focus),
		CreatedAt: s.CreatedAt,
		UpdatedAt: updatedAt,
	}

	var personas []jsonPersona
	if len(s.Personas) > 0 {
		_ = json.Unmarshal(s.Personas, &personas)
	}
	for _, p := range personas {
		session.Personas = append(session.Personas, entity.PersonaConfig{
			Domain:         p.Domain,
			SubDomain:      p.SubDomain,
			Specialization: p.Specialization,
		})
	}

	var participants []jsonParticipant
	if len(s.Participants) > 0 {
		_ = json.Unmarshal(s.Participants, &participants)
	}
	for _, p := range participants {
		session.Participants = append(session.Participants, entity.Participant{
			Name:     p.Name,
			IsExpert: p.IsExpert,
		})
	}

	var messages []jsonMessage
	if len(s.Messages) > 0 {
		_ = json.Unmarshal(s.Messages, &messages)
	}
	for _, msg := range messages {
		session.Messages = append(session.Messages, messageToEntity(msg))
	}

	if len(s.EnabledCapabilities) > 0 {
		_ = json.Unmarshal(s.EnabledCapabilities, &session.EnabledCapabilities)
	}
	if session.EnabledCapabilities == nil {
		session.EnabledCapabilities = map[string]bool{}
	}

	var capabilities []jsonCapability
	if len(s.DynamicCapabilities) > 0 {
		_ = json.Unmarshal(s.DynamicCapabilities, &capabilities)
	}
	for _, c := range capabilities {
		session.DynamicCapabilities = append(session.DynamicCapabilities, entity.DynamicCapability{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
			Enabled:     c.Enabled,
		})
	}

	return session
}

func (m *ChatMapper) SessionToModel(s *entity.ChatSession) *model.ChatSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	personas := make([]jsonPersona, 0, len(s.Personas))
	for _, p := range s.Personas {
		personas = append(personas, jsonPersona{
			Domain:         p.Domain,
			SubDomain:      p.SubDomain,
			Specialization: p.Specialization,
		})
	}

	participants := make([]jsonParticipant, 0, len(s.Participants))
	for _, p := range s.Participants {
		participants = append(participants, jsonParticipant{
			Name:     p.Name,
			IsExpert: p.IsExpert,
		})
	}

	messages := make([]jsonMessage, 0, len(s.Messages))
	for _, msg := range s.Messages {
		messages = append(messages, messageToJSON(msg))
	}

	capabilities := make([]jsonCapability, 0, len(s.DynamicCapabilities))
	for _, c := range s.DynamicCapabilities {
		capabilities = append(capabilities, jsonCapability{
			Id:          c.Id,
			Name:        c.Name,
			Description: c.Description,
			Enabled:     c.Enabled,
		})
	}

	personasJSON, _ := json.Marshal(personas)
	participantsJSON, _ := json.Marshal(participants)
	messagesJSON, _ := json.Marshal(messages)
	enabledJSON, _ := json.Marshal(s.EnabledCapabilities)
	capabilitiesJSON, _ := json.Marshal(capabilities)

	return &model.ChatSession{
		Id:                  s.Id,
		UserId:              s.UserId,
		Mode:                string(s.Mode),
		Focus:               string(s.Focus),
		Personas:            personasJSON,
		Participants:        participantsJSON,
		Messages:            messagesJSON,
		EnabledCapabilities: enabledJSON,
		DynamicCapabilities: capabilitiesJSON,
		CreatedAt:           s.CreatedAt,
		UpdatedAt:           updatedAt,
	}
}

func messageToEntity(msg jsonMessage) entity.ChatMessage {
	out := entity.ChatMessage{
		Role:       msg.Role,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		SenderName: msg.SenderName,
	}
	for _, p := range msg.Parts {
		part := entity.MessagePart{Text: p.Text}
		if p.MimeType != "" {
			part.InlineData = &entity.InlineData{MimeType: p.MimeType, Data: p.Data}
		}
		out.Parts = append(out.Parts, part)
	}
	return out
}

func messageToJSON(msg entity.ChatMessage) jsonMessage {
	out := jsonMessage{
		Role:       msg.Role,
		Content:    msg.Content,
		Timestamp:  msg.Timestamp,
		SenderName: msg.SenderName,
	}
	for _, p := range msg.Parts {
		part := jsonMessagePart{Text: p.Text}
		if p.InlineData != nil {
			part.MimeType = p.InlineData.MimeType
			part.Data = p.InlineData.Data
		}
		out.Parts = append(out.Parts, part)
	}
	return out
}
