// FILE: internal/dto/plan_dto.go
package dto

import "time"

type ChangePlanRequest struct {
	BasePlan     string `json:"base_plan" validate:"required,oneof=solo business"`
	AddOn        string `json:"add_on" validate:"omitempty,oneof=solo-plus business-adv enterprise-oem"`
	BillingCycle string `json:"billing_cycle" validate:"omitempty,oneof=monthly annual"`
}

type PlanResponse struct {
	BasePlan      string     `json:"base_plan"`
	AddOn         string     `json:"add_on,omitempty"`
	EffectivePlan string     `json:"effective_plan"`
	Status        string     `json:"status"`
	BillingCycle  string     `json:"billing_cycle"`
	TrialStart    *time.Time `json:"trial_start,omitempty"`
	TrialEnd      *time.Time `json:"trial_end,omitempty"`
}

type PlanCatalogEntryResponse struct {
	Id           string  `json:"id"`
	Name         string  `json:"name"`
	PriceMonthly float64 `json:"price_monthly"`
	PriceAnnual  float64 `json:"price_annual"`
	AddOn        bool    `json:"add_on"`
	Featured     bool    `json:"featured"`
}

// TaxonomyOptionsResponse carries the selectable values for one level of
// the persona configuration chain.
type TaxonomyOptionsResponse struct {
	Level   string   `json:"level"`
	Label   string   `json:"label"`
	Options []string `json:"options"`
}
