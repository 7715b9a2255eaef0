package entitlement

import (
	"testing"

	"smepro-be/internal/entity"
)

func TestResolveEffectivePlan(t *testing.T) {
	tests := []struct {
		name  string
		base  entity.BasePlan
		addOn entity.AddOnPackage
		want  entity.EffectivePlan
	}{
		{"solo base", entity.BasePlanSolo, entity.AddOnNone, entity.PlanSolo},
		{"business base", entity.BasePlanBusiness, entity.AddOnNone, entity.PlanBusiness},
		{"solo plus", entity.BasePlanSolo, entity.AddOnSoloPlus, entity.PlanSoloPlus},
		{"business adv", entity.BasePlanBusiness, entity.AddOnBusinessAdv, entity.PlanBusinessAdv},
		{"enterprise on solo", entity.BasePlanSolo, entity.AddOnEnterpriseOem, entity.PlanEnterpriseOem},
		{"enterprise on business", entity.BasePlanBusiness, entity.AddOnEnterpriseOem, entity.PlanEnterpriseOem},
		// Mismatched pairings fall back to the base plan.
		{"solo plus on business", entity.BasePlanBusiness, entity.AddOnSoloPlus, entity.PlanBusiness},
		{"business adv on solo", entity.BasePlanSolo, entity.AddOnBusinessAdv, entity.PlanSolo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEffectivePlan(entity.Subscription{PlanType: tt.base, AddOn: tt.addOn})
			if got != tt.want {
				t.Errorf("ResolveEffectivePlan(%s+%s) = %s, want %s", tt.base, tt.addOn, got, tt.want)
			}
		})
	}
}

func TestSubscriptionPartsRoundTrip(t *testing.T) {
	plans := []entity.EffectivePlan{
		entity.PlanSolo, entity.PlanSoloPlus,
		entity.PlanBusiness, entity.PlanBusinessAdv,
		entity.PlanEnterpriseOem,
	}
	for _, plan := range plans {
		base, addOn := SubscriptionParts(plan)
		if !ValidateParts(base, addOn) {
			t.Errorf("SubscriptionParts(%s) produced invalid pair %s+%s", plan, base, addOn)
		}
		got := ResolveEffectivePlan(entity.Subscription{PlanType: base, AddOn: addOn})
		if got != plan {
			t.Errorf("round trip for %s produced %s", plan, got)
		}
	}
}

func TestApplyPlanChangePreservesUsed(t *testing.T) {
	current := entity.Quotas{
		VaultStorage:    entity.Quota{Limit: 1, Used: 0.7},
		AnalyzerActions: entity.Quota{Limit: 50, Used: 12},
		AiBandwidth:     entity.Quota{Limit: 50, Used: 33},
	}

	for _, plan := range []entity.EffectivePlan{
		entity.PlanSoloPlus, entity.PlanBusiness, entity.PlanBusinessAdv,
		entity.PlanEnterpriseOem, entity.PlanSolo,
	} {
		merged := ApplyPlanChange(current, plan)
		limits := QuotaLimits(plan)

		if merged.VaultStorage.Used != current.VaultStorage.Used ||
			merged.AnalyzerActions.Used != current.AnalyzerActions.Used ||
			merged.AiBandwidth.Used != current.AiBandwidth.Used {
			t.Errorf("plan change to %s mutated used values: %+v", plan, merged)
		}
		if merged.VaultStorage.Limit != limits.VaultStorage.Limit ||
			merged.AnalyzerActions.Limit != limits.AnalyzerActions.Limit ||
			merged.AiBandwidth.Limit != limits.AiBandwidth.Limit {
			t.Errorf("plan change to %s did not apply new limits: %+v", plan, merged)
		}
	}
}

func TestQuotaLimitsTable(t *testing.T) {
	tests := []struct {
		plan     entity.EffectivePlan
		storage  float64
		actions  float64
		bandwith float64
	}{
		{entity.PlanSolo, 1, 50, 50},
		{entity.PlanBusiness, 10, 200, 200},
		{entity.PlanSoloPlus, 6, 200, 200},
		{entity.PlanBusinessAdv, 60, 700, 700},
		{entity.PlanEnterpriseOem, 1024, 100000, 100000},
	}
	for _, tt := range tests {
		q := QuotaLimits(tt.plan)
		if q.VaultStorage.Limit != tt.storage || q.AnalyzerActions.Limit != tt.actions || q.AiBandwidth.Limit != tt.bandwith {
			t.Errorf("QuotaLimits(%s) = %+v", tt.plan, q)
		}
		if q.VaultStorage.Used != 0 || q.AnalyzerActions.Used != 0 || q.AiBandwidth.Used != 0 {
			t.Errorf("QuotaLimits(%s) returned non-zero used", tt.plan)
		}
	}
}

func TestFeatureGates(t *testing.T) {
	if AllowsWorkshop(entity.PlanSolo) || AllowsWorkshop(entity.PlanBusiness) {
		t.Error("workshop must require an add-on tier")
	}
	for _, plan := range []entity.EffectivePlan{entity.PlanSoloPlus, entity.PlanBusinessAdv, entity.PlanEnterpriseOem} {
		if !AllowsWorkshop(plan) {
			t.Errorf("AllowsWorkshop(%s) = false", plan)
		}
	}

	if AllowsSuggestions(entity.PlanSolo) {
		t.Error("bare solo plan must never receive suggestions")
	}
	for _, plan := range []entity.EffectivePlan{entity.PlanSoloPlus, entity.PlanBusiness, entity.PlanBusinessAdv, entity.PlanEnterpriseOem} {
		if !AllowsSuggestions(plan) {
			t.Errorf("AllowsSuggestions(%s) = false", plan)
		}
	}
}
