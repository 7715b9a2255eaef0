package model

import (
	"time"

	"github.com/google/uuid"
)

type Subscription struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	PlanType     string    `gorm:"type:varchar(50);not null;default:'solo'"`
	AddOn        string    `gorm:"type:varchar(50)"`
	BillingCycle string    `gorm:"type:varchar(20);not null;default:'monthly'"`
	Status       string    `gorm:"type:varchar(50);not null;default:'trialing'"`
	TrialStart   *time.Time
	TrialEnd     *time.Time
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}
