// Package entitlement derives effective plans, quota limits, and feature
// gates from raw subscription records. Everything here is pure; callers
// hold the records.
package entitlement

import (
	"smepro-be/internal/entity"
)

// ResolveEffectivePlan collapses a base plan plus optional add-on into the
// single plan identifier used for quota lookup and feature gating. Total
// over all valid subscriptions; invalid base/add-on pairings are prevented
// upstream and fall back to the base plan here.
func ResolveEffectivePlan(sub entity.Subscription) entity.EffectivePlan {
	if sub.AddOn == entity.AddOnSoloPlus && sub.PlanType == entity.BasePlanSolo {
		return entity.PlanSoloPlus
	}
	if sub.AddOn == entity.AddOnBusinessAdv && sub.PlanType == entity.BasePlanBusiness {
		return entity.PlanBusinessAdv
	}
	if sub.AddOn == entity.AddOnEnterpriseOem {
		return entity.PlanEnterpriseOem
	}
	return entity.EffectivePlan(sub.PlanType)
}

// SubscriptionParts is the inverse of ResolveEffectivePlan. Enterprise OEM
// is anchored to the business base.
func SubscriptionParts(plan entity.EffectivePlan) (entity.BasePlan, entity.AddOnPackage) {
	switch plan {
	case entity.PlanSolo:
		return entity.BasePlanSolo, entity.AddOnNone
	case entity.PlanSoloPlus:
		return entity.BasePlanSolo, entity.AddOnSoloPlus
	case entity.PlanBusiness:
		return entity.BasePlanBusiness, entity.AddOnNone
	case entity.PlanBusinessAdv:
		return entity.BasePlanBusiness, entity.AddOnBusinessAdv
	case entity.PlanEnterpriseOem:
		return entity.BasePlanBusiness, entity.AddOnEnterpriseOem
	default:
		return entity.BasePlanSolo, entity.AddOnNone
	}
}

// ValidateParts checks the base/add-on compatibility invariant.
func ValidateParts(base entity.BasePlan, addOn entity.AddOnPackage) bool {
	switch addOn {
	case entity.AddOnNone, entity.AddOnEnterpriseOem:
		return base == entity.BasePlanSolo || base == entity.BasePlanBusiness
	case entity.AddOnSoloPlus:
		return base == entity.BasePlanSolo
	case entity.AddOnBusinessAdv:
		return base == entity.BasePlanBusiness
	default:
		return false
	}
}

// baseQuotas holds the limit table per effective plan: vault storage in GB,
// analyzer actions per cycle, AI bandwidth units.
var baseQuotas = map[entity.EffectivePlan]entity.Quotas{
	entity.PlanSolo: {
		VaultStorage:    entity.Quota{Limit: 1},
		AnalyzerActions: entity.Quota{Limit: 50},
		AiBandwidth:     entity.Quota{Limit: 50},
	},
	entity.PlanBusiness: {
		VaultStorage:    entity.Quota{Limit: 10},
		AnalyzerActions: entity.Quota{Limit: 200},
		AiBandwidth:     entity.Quota{Limit: 200},
	},
	entity.PlanSoloPlus: {
		VaultStorage:    entity.Quota{Limit: 6},
		AnalyzerActions: entity.Quota{Limit: 200},
		AiBandwidth:     entity.Quota{Limit: 200},
	},
	entity.PlanBusinessAdv: {
		VaultStorage:    entity.Quota{Limit: 60},
		AnalyzerActions: entity.Quota{Limit: 700},
		AiBandwidth:     entity.Quota{Limit: 700},
	},
	entity.PlanEnterpriseOem: {
		VaultStorage:    entity.Quota{Limit: 1024},
		AnalyzerActions: entity.Quota{Limit: 100000},
		AiBandwidth:     entity.Quota{Limit: 100000},
	},
}

// QuotaLimits returns the fresh quota table for a plan, used zeroed.
// Unknown plans get the solo table.
func QuotaLimits(plan entity.EffectivePlan) entity.Quotas {
	if q, ok := baseQuotas[plan]; ok {
		return q
	}
	return baseQuotas[entity.PlanSolo]
}

// ApplyPlanChange swaps the limits for the new plan while carrying the
// existing used values over untouched. Upgrades and downgrades never reset
// consumption.
func ApplyPlanChange(current entity.Quotas, newPlan entity.EffectivePlan) entity.Quotas {
	limits := QuotaLimits(newPlan)
	return entity.Quotas{
		VaultStorage:    entity.Quota{Limit: limits.VaultStorage.Limit, Used: current.VaultStorage.Used},
		AnalyzerActions: entity.Quota{Limit: limits.AnalyzerActions.Limit, Used: current.AnalyzerActions.Used},
		AiBandwidth:     entity.Quota{Limit: limits.AiBandwidth.Limit, Used: current.AiBandwidth.Used},
	}
}

// AllowsWorkshop reports whether the plan unlocks workshop mode. Workshop
// requires an add-on tier; base plans are excluded.
func AllowsWorkshop(plan entity.EffectivePlan) bool {
	switch plan {
	case entity.PlanSoloPlus, entity.PlanBusinessAdv, entity.PlanEnterpriseOem:
		return true
	default:
		return false
	}
}

// AllowsSuggestions reports whether the plan receives automatic expert
// suggestions after each exchange. The business family and every upgraded
// individual tier qualify; the bare solo plan does not.
func AllowsSuggestions(plan entity.EffectivePlan) bool {
	base, addOn := SubscriptionParts(plan)
	return base == entity.BasePlanBusiness || addOn != entity.AddOnNone
}

// IsSoloFamily reports whether the plan uses the individual taxonomy
// (category/subCategory/objective) instead of the business one.
func IsSoloFamily(plan entity.EffectivePlan) bool {
	base, _ := SubscriptionParts(plan)
	return base == entity.BasePlanSolo
}
