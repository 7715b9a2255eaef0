// FILE: internal/service/vault_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smepro-be/internal/constant"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/pkg/synthesis"
)

func newVaultServiceForTest(factory *fakeRepositoryFactory, stub *stubCollaborator, audit *stubAudit) IVaultService {
	return NewVaultService(factory, synthesis.NewAnalyzer(stub), audit, nopTestLogger{})
}

func storageQuotas(limit, used float64) entity.Quotas {
	return entity.Quotas{
		VaultStorage:    entity.Quota{Limit: limit, Used: used},
		AnalyzerActions: entity.Quota{Limit: 200},
		AiBandwidth:     entity.Quota{Limit: 200},
	}
}

func seedVaultItem(factory *fakeRepositoryFactory, userId uuid.UUID, title, content string) *entity.VaultItem {
	item := &entity.VaultItem{
		Id:      uuid.New(),
		UserId:  userId,
		Title:   title,
		Content: content,
	}
	factory.uow.vault.items[item.Id] = item
	return item
}

func TestSaveItemDefaultsCategoryAndConsumesStorage(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 2))

	req := &dto.SaveVaultItemRequest{
		Title:   "SWOT analysis",
		Content: "Strengths: ...",
	}
	resp, err := svc.SaveItem(context.Background(), user.Id, req)
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultVaultCategory, resp.Category)

	// Storage is GB-denominated; the debit is the item's payload size.
	expected := 2 + float64(len(req.Title)+len(req.Content))/(1<<30)
	assert.InDelta(t, expected, factory.uow.users.users[user.Id].Quotas.VaultStorage.Used, 1e-12)

	// Saving the same payload again mints a second item.
	again, err := svc.SaveItem(context.Background(), user.Id, req)
	require.NoError(t, err)
	assert.NotEqual(t, resp.Id, again.Id)
	assert.Len(t, factory.uow.vault.items, 2)
}

func TestSaveItemQuotaGate(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, audit)
	user := seedAccount(factory, entity.PlanSolo, storageQuotas(1, 1))

	_, err := svc.SaveItem(context.Background(), user.Id, &dto.SaveVaultItemRequest{
		Title:   "One too many",
		Content: "...",
	})
	var limit *dto.LimitExceededError
	require.ErrorAs(t, err, &limit)
	assert.Equal(t, "vaultStorage", limit.Quota)
	assert.Empty(t, factory.uow.vault.items)
	assert.Equal(t, []string{"vaultStorage"}, audit.quotasExceeded)
}

func TestDeleteItemReleasesStorage(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 4))
	item := seedVaultItem(factory, user.Id, "Old analysis", "...")

	require.NoError(t, svc.DeleteItem(context.Background(), user.Id, item.Id))
	assert.Empty(t, factory.uow.vault.items)

	expected := 4 - float64(len(item.Title)+len(item.Content))/(1<<30)
	assert.InDelta(t, expected, factory.uow.users.users[user.Id].Quotas.VaultStorage.Used, 1e-12)
}

func TestDeleteItemClampsStorageAtZero(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))
	item := seedVaultItem(factory, user.Id, "Orphaned usage", "...")

	require.NoError(t, svc.DeleteItem(context.Background(), user.Id, item.Id))
	assert.Equal(t, float64(0), factory.uow.users.users[user.Id].Quotas.VaultStorage.Used)
}

func TestDeleteItemEnforcesOwnership(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	owner := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 1))
	item := seedVaultItem(factory, owner.Id, "Private", "...")

	err := svc.DeleteItem(context.Background(), uuid.New(), item.Id)
	var notFound *dto.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Len(t, factory.uow.vault.items, 1)
}

func TestListCategoriesSeedsDefaults(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))

	names, err := svc.ListCategories(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Equal(t, constant.DefaultVaultCategories, names)

	// Second listing returns the seeded rows, not a fresh seed.
	names, err = svc.ListCategories(context.Background(), user.Id)
	require.NoError(t, err)
	assert.Len(t, names, len(constant.DefaultVaultCategories))
	assert.Len(t, factory.uow.vault.categories, len(constant.DefaultVaultCategories))
}

func TestSynthesizeRequiresTwoOwnedItems(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := newVaultServiceForTest(factory, &stubCollaborator{}, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))
	item := seedVaultItem(factory, user.Id, "Only one", "...")

	_, err := svc.Synthesize(context.Background(), user.Id, &dto.SynthesisRequest{
		ItemIds:   []uuid.UUID{item.Id},
		Objective: "Find the overlap",
	})
	var validation *dto.ValidationError
	require.ErrorAs(t, err, &validation)

	// A foreign item does not count toward the minimum.
	foreign := seedVaultItem(factory, uuid.New(), "Someone else's", "...")
	_, err = svc.Synthesize(context.Background(), user.Id, &dto.SynthesisRequest{
		ItemIds:   []uuid.UUID{item.Id, foreign.Id},
		Objective: "Find the overlap",
	})
	require.ErrorAs(t, err, &validation)
}

func TestSynthesizeConsumesActionAndAudits(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Combined brief."}
	audit := &stubAudit{}
	svc := newVaultServiceForTest(factory, stub, audit)
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))
	a := seedVaultItem(factory, user.Id, "Market research", "...")
	b := seedVaultItem(factory, user.Id, "Tech stack", "...")

	resp, err := svc.Synthesize(context.Background(), user.Id, &dto.SynthesisRequest{
		ItemIds:        []uuid.UUID{a.Id, b.Id},
		Objective:      "Draft the launch plan",
		ResponseFormat: constant.ResponseFormats[0],
	})
	require.NoError(t, err)
	assert.Equal(t, "Combined brief.", resp.Result)
	assert.Equal(t, 2, resp.ItemCount)

	assert.Equal(t, float64(1), factory.uow.users.users[user.Id].Quotas.AnalyzerActions.Used)
	assert.Equal(t, 1, audit.synthesesCompleted)
}

func TestSynthesizeConceptReviewForcesProjectBrief(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Brief."}
	svc := newVaultServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))
	a := seedVaultItem(factory, user.Id, "Concept A", "...")
	b := seedVaultItem(factory, user.Id, "Concept B", "...")

	resp, err := svc.Synthesize(context.Background(), user.Id, &dto.SynthesisRequest{
		ItemIds:        []uuid.UUID{a.Id, b.Id},
		Objective:      constant.ConceptReviewPrefix + " evaluate viability",
		ResponseFormat: "Action Plan",
	})
	require.NoError(t, err)
	assert.Equal(t, constant.ProjectBriefFormat, resp.ResponseFormat)
	assert.Contains(t, stub.lastPrompt, constant.ProjectBriefFormat)
}

func TestDrillDownRejectsUnknownColor(t *testing.T) {
	factory := newFakeRepositoryFactory()
	stub := &stubCollaborator{generateReply: "Risk notes."}
	svc := newVaultServiceForTest(factory, stub, &stubAudit{})
	user := seedAccount(factory, entity.PlanBusiness, storageQuotas(10, 0))

	resp, err := svc.DrillDown(context.Background(), user.Id, &dto.DrillDownRequest{
		Snippet:     "High churn risk",
		FullContext: "...",
		Color:       "red",
	})
	require.NoError(t, err)
	assert.Equal(t, "red", resp.Color)
	assert.Equal(t, "Risk notes.", resp.Result)

	_, err = svc.DrillDown(context.Background(), user.Id, &dto.DrillDownRequest{
		Snippet:     "High churn risk",
		FullContext: "...",
		Color:       "purple",
	})
	require.Error(t, err)
}
