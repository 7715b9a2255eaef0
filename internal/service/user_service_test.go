// FILE: internal/service/user_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
)

func TestGetUsageStatusDuringTrial(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewUserService(factory)
	user := seedAccount(factory, entity.PlanSolo, entity.Quotas{
		VaultStorage:    entity.Quota{Limit: 1},
		AnalyzerActions: entity.Quota{Limit: 50, Used: 7},
		AiBandwidth:     entity.Quota{Limit: 50},
	})

	trialEnd := time.Now().AddDate(0, 0, 10)
	for _, sub := range factory.uow.subs.subs {
		sub.Status = entity.SubscriptionStatusTrialing
		sub.TrialEnd = &trialEnd
	}

	status, err := svc.GetUsageStatus(context.Background(), user.Id)
	require.NoError(t, err)

	assert.Equal(t, "solo", status.Plan.EffectivePlan)
	assert.Equal(t, "trialing", status.Plan.Status)
	require.NotNil(t, status.TrialEndsAt)
	assert.WithinDuration(t, trialEnd, *status.TrialEndsAt, time.Second)
	assert.Equal(t, float64(7), status.Quotas.AnalyzerActions.Used)
	assert.True(t, status.UpgradeAvailable)
}

func TestGetUsageStatusActivePlanHidesTrial(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewUserService(factory)
	user := seedAccount(factory, entity.PlanEnterpriseOem, entity.Quotas{})

	status, err := svc.GetUsageStatus(context.Background(), user.Id)
	require.NoError(t, err)

	assert.Nil(t, status.TrialEndsAt)
	assert.False(t, status.UpgradeAvailable, "the top tier has nowhere to upgrade to")
}

func TestUpdateProfile(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewUserService(factory)
	user := seedAccount(factory, entity.PlanSolo, entity.Quotas{})

	profile, err := svc.UpdateProfile(context.Background(), user.Id, &dto.UpdateProfileRequest{
		FullName: "Pat Renamed",
		Company:  "New Venture",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pat Renamed", profile.FullName)
	assert.Equal(t, "New Venture", profile.Company)

	stored := factory.uow.users.users[user.Id]
	assert.Equal(t, "Pat Renamed", stored.FullName)
}
