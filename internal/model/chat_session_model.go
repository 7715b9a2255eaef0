package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ChatSession struct {
	Id     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId uuid.UUID `gorm:"type:uuid;not null;index"`
	Mode   string    `gorm:"type:varchar(20);not null;default:'normal'"`
	Focus  string    `gorm:"type:varchar(50)"`
	// Document columns. The session log and its configuration travel as
	// jsonb; the relational surface is only what queries filter on.
	Personas            datatypes.JSON `gorm:"type:jsonb"`
	Participants        datatypes.JSON `gorm:"type:jsonb"`
	Messages            datatypes.JSON `gorm:"type:jsonb"`
	EnabledCapabilities datatypes.JSON `gorm:"type:jsonb"`
	DynamicCapabilities datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt           time.Time      `gorm:"autoCreateTime"`
	UpdatedAt           time.Time      `gorm:"autoUpdateTime"`
}

func (ChatSession) TableName() string {
	return "chat_sessions"
}
