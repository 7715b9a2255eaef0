package entity

import (
	"time"

	"github.com/google/uuid"
)

type BasePlan string
type AddOnPackage string
type EffectivePlan string
type SubscriptionStatus string
type BillingCycle string

const (
	BasePlanSolo     BasePlan = "solo"
	BasePlanBusiness BasePlan = "business"

	AddOnNone          AddOnPackage = ""
	AddOnSoloPlus      AddOnPackage = "solo-plus"
	AddOnBusinessAdv   AddOnPackage = "business-adv"
	AddOnEnterpriseOem AddOnPackage = "enterprise-oem"

	// EffectivePlan is derived from base plan + add-on, never stored.
	PlanSolo          EffectivePlan = "solo"
	PlanSoloPlus      EffectivePlan = "solo-plus"
	PlanBusiness      EffectivePlan = "business"
	PlanBusinessAdv   EffectivePlan = "business-adv"
	PlanEnterpriseOem EffectivePlan = "enterprise-oem"

	SubscriptionStatusActive   SubscriptionStatus = "active"
	SubscriptionStatusTrialing SubscriptionStatus = "trialing"
	SubscriptionStatusCanceled SubscriptionStatus = "canceled"

	BillingCycleMonthly BillingCycle = "monthly"
	BillingCycleAnnual  BillingCycle = "annual"
)

// Subscription rows are superseded by plan changes, never deleted.
// Invariant: solo-plus sits on the solo base, business-adv on the business
// base, enterprise-oem on either.
type Subscription struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	PlanType     BasePlan
	AddOn        AddOnPackage
	BillingCycle BillingCycle
	Status       SubscriptionStatus
	TrialStart   *time.Time
	TrialEnd     *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Quota tracks one consumable dimension. Used only grows within a billing
// cycle; plan changes swap Limit but carry Used over untouched. Limit -1
// means unlimited.
type Quota struct {
	Limit float64 `json:"limit"`
	Used  float64 `json:"used"`
}

type Quotas struct {
	VaultStorage    Quota `json:"vaultStorage"`
	AnalyzerActions Quota `json:"analyzerActions"`
	AiBandwidth     Quota `json:"aiBandwidth"`
}
