package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// VaultItem rows are write-once: saved from a session or analyzer run and
// never updated in place.
type VaultItem struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title        string         `gorm:"type:varchar(255);not null"`
	Content      string         `gorm:"type:text;not null"`
	Category     string         `gorm:"type:varchar(100);not null;default:'Uncategorized'"`
	Tags         datatypes.JSON `gorm:"type:jsonb"`
	BuilderReady bool           `gorm:"default:false"`
	SourceText   string         `gorm:"type:text"`
	AnalysisType string         `gorm:"type:varchar(100)"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
}

func (VaultItem) TableName() string {
	return "vault_items"
}

type VaultCategory struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_vault_categories_user_name"`
	Name      string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_vault_categories_user_name"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (VaultCategory) TableName() string {
	return "vault_categories"
}
