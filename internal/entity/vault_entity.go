package entity

import (
	"time"

	"github.com/google/uuid"
)

// VaultItem is write-once: re-saving creates a new item under a new id.
type VaultItem struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Title        string
	Content      string
	Category     string
	Tags         []string
	BuilderReady bool
	SourceText   string
	AnalysisType string
	CreatedAt    time.Time
}

// VaultCategory names are unique per user; built-in categories are seeded
// lazily on first list.
type VaultCategory struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	CreatedAt time.Time
}
