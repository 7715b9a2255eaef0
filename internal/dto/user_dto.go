// FILE: internal/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type UserProfileResponse struct {
	Id        uuid.UUID      `json:"id"`
	Email     string         `json:"email"`
	FullName  string         `json:"full_name"`
	Company   string         `json:"company,omitempty"`
	Quotas    QuotasResponse `json:"quotas"`
	CreatedAt time.Time      `json:"created_at"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" validate:"required,min=3"`
	Company  string `json:"company" validate:"omitempty,max=120"`
}

type QuotaResponse struct {
	Limit float64 `json:"limit"`
	Used  float64 `json:"used"`
}

type QuotasResponse struct {
	VaultStorage    QuotaResponse `json:"vault_storage"`
	AnalyzerActions QuotaResponse `json:"analyzer_actions"`
	AiBandwidth     QuotaResponse `json:"ai_bandwidth"`
}

// UsageStatusResponse is returned by GET /api/user/usage-status
type UsageStatusResponse struct {
	Plan             PlanInfo       `json:"plan"`
	Quotas           QuotasResponse `json:"quotas"`
	TrialEndsAt      *time.Time     `json:"trial_ends_at,omitempty"`
	UpgradeAvailable bool           `json:"upgrade_available"`
}

type PlanInfo struct {
	BasePlan      string `json:"base_plan"`
	AddOn         string `json:"add_on,omitempty"`
	EffectivePlan string `json:"effective_plan"`
	Status        string `json:"status"`
	BillingCycle  string `json:"billing_cycle"`
}
