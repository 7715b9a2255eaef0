// FILE: internal/service/plan_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
)

func TestChangePlanSwapsLimitsKeepsUsage(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc := NewPlanService(factory, audit)

	user := seedAccount(factory, entity.PlanSolo, entity.Quotas{
		VaultStorage:    entity.Quota{Limit: 1, Used: 1},
		AnalyzerActions: entity.Quota{Limit: 50, Used: 12},
		AiBandwidth:     entity.Quota{Limit: 50, Used: 33},
	})

	resp, err := svc.ChangePlan(context.Background(), user.Id, &dto.ChangePlanRequest{
		BasePlan:     "business",
		AddOn:        "business-adv",
		BillingCycle: "annual",
	})
	require.NoError(t, err)
	assert.Equal(t, "business-adv", resp.EffectivePlan)
	assert.Equal(t, "active", resp.Status)
	assert.Nil(t, resp.TrialStart)
	assert.Nil(t, resp.TrialEnd)

	stored := factory.uow.users.users[user.Id]
	assert.Equal(t, float64(60), stored.Quotas.VaultStorage.Limit)
	assert.Equal(t, float64(700), stored.Quotas.AnalyzerActions.Limit)
	assert.Equal(t, float64(700), stored.Quotas.AiBandwidth.Limit)
	// Usage carries over untouched across plan changes.
	assert.Equal(t, float64(1), stored.Quotas.VaultStorage.Used)
	assert.Equal(t, float64(12), stored.Quotas.AnalyzerActions.Used)
	assert.Equal(t, float64(33), stored.Quotas.AiBandwidth.Used)

	require.Len(t, audit.planChanges, 1)
	assert.Equal(t, [2]string{"solo", "business-adv"}, audit.planChanges[0])
}

func TestChangePlanRejectsForeignAddOn(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc := NewPlanService(factory, audit)
	user := seedAccount(factory, entity.PlanSolo, entity.Quotas{})

	_, err := svc.ChangePlan(context.Background(), user.Id, &dto.ChangePlanRequest{
		BasePlan: "solo",
		AddOn:    "business-adv",
	})
	require.Error(t, err)
	assert.Empty(t, audit.planChanges)
}

func TestChangePlanSameTargetSkipsAudit(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc := NewPlanService(factory, audit)
	user := seedAccount(factory, entity.PlanSolo, entity.Quotas{})

	_, err := svc.ChangePlan(context.Background(), user.Id, &dto.ChangePlanRequest{
		BasePlan: "solo",
	})
	require.NoError(t, err)
	assert.Empty(t, audit.planChanges)
}

func TestListPlansCatalog(t *testing.T) {
	svc := NewPlanService(newFakeRepositoryFactory(), &stubAudit{})

	plans := svc.ListPlans()
	require.Len(t, plans, 5)

	var featured []string
	byId := make(map[string]dto.PlanCatalogEntryResponse)
	for _, p := range plans {
		byId[p.Id] = p
		if p.Featured {
			featured = append(featured, p.Id)
		}
	}
	assert.Equal(t, []string{"business"}, featured)
	assert.Equal(t, float64(25), byId["solo"].PriceMonthly)
	assert.Equal(t, float64(20), byId["solo"].PriceAnnual)
	assert.True(t, byId["solo-plus"].AddOn)
}

func TestTaxonomyOptionsByLevel(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewPlanService(factory, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, entity.Quotas{})

	resp, err := svc.TaxonomyOptions(context.Background(), user.Id, "domain", entity.PersonaConfig{})
	require.NoError(t, err)
	assert.Equal(t, "industry", resp.Label)
	assert.Contains(t, resp.Options, "Technology")

	resp, err = svc.TaxonomyOptions(context.Background(), user.Id, "specialization", entity.PersonaConfig{
		Domain:    "Technology",
		SubDomain: "AI/ML",
	})
	require.NoError(t, err)
	assert.Equal(t, "operatingSegment", resp.Label)
	assert.Contains(t, resp.Options, "R&D")

	_, err = svc.TaxonomyOptions(context.Background(), user.Id, "flavor", entity.PersonaConfig{})
	var validation *dto.ValidationError
	require.ErrorAs(t, err, &validation)
}
