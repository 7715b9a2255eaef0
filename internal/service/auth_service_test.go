// FILE: internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"smepro-be/internal/config"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/pkg/entitlement"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			JwtSecret:     "test-secret",
			TokenTTLHours: 24,
			TrialDays:     14,
		},
	}
}

func TestRegisterStartsSoloTrial(t *testing.T) {
	factory := newFakeRepositoryFactory()
	audit := &stubAudit{}
	svc := NewAuthService(factory, testAuthConfig(), audit)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "founder@example.com",
		Password: "correct-horse",
		FullName: "Pat Founder",
		Company:  "Acme",
	})
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	user, err := factory.uow.users.FindOne(context.Background())
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, entitlement.QuotaLimits(entity.PlanSolo), user.Quotas)

	sub, err := factory.uow.subs.FindByUserId(context.Background(), user.Id)
	require.NoError(t, err)
	require.NotNil(t, sub)
	assert.Equal(t, entity.BasePlanSolo, sub.PlanType)
	assert.Equal(t, entity.AddOnNone, sub.AddOn)
	assert.Equal(t, entity.SubscriptionStatusTrialing, sub.Status)
	require.NotNil(t, sub.TrialEnd)
	wantEnd := time.Now().AddDate(0, 0, 14)
	assert.WithinDuration(t, wantEnd, *sub.TrialEnd, time.Minute)

	assert.Equal(t, 1, audit.registered)
	assert.Equal(t, 1, factory.uow.commits, "user and subscription must commit together")
}

func TestRegisterTokenCarriesUserId(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewAuthService(factory, testAuthConfig(), &stubAudit{})

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "founder@example.com",
		Password: "correct-horse",
		FullName: "Pat Founder",
	})
	require.NoError(t, err)

	token, err := jwt.Parse(resp.Token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	claims, ok := token.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, resp.User.Id.String(), claims["user_id"])
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewAuthService(factory, testAuthConfig(), &stubAudit{})

	req := &dto.RegisterRequest{
		Email:    "founder@example.com",
		Password: "correct-horse",
		FullName: "Pat Founder",
	}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	assert.EqualError(t, err, "email already registered")
}

func TestLoginChecksPassword(t *testing.T) {
	factory := newFakeRepositoryFactory()
	svc := NewAuthService(factory, testAuthConfig(), &stubAudit{})

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)
	user := seedAccount(factory, entity.PlanSolo, entitlement.QuotaLimits(entity.PlanSolo))
	user.PasswordHash = string(hash)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, user.Id, resp.User.Id)
	assert.NotEmpty(t, resp.Token)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    user.Email,
		Password: "wrong",
	})
	var unauthorized *dto.UnauthorizedError
	require.ErrorAs(t, err, &unauthorized)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "correct-horse",
	})
	require.ErrorAs(t, err, &unauthorized)
}
