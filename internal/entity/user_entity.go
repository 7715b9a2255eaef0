package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	Company      string
	Quotas       Quotas
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
