// FILE: internal/service/user_service.go
package service

import (
	"context"
	"time"

	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/entitlement"

	"github.com/google/uuid"
)

type IUserService interface {
	GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error)
	UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error)
	GetUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error)
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func (s *userService) GetProfile(ctx context.Context, userId uuid.UUID) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}
	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) UpdateProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateProfileRequest) (*dto.UserProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	user.FullName = req.FullName
	user.Company = req.Company
	user.UpdatedAt = time.Now()

	if err := uow.UserRepository().Update(ctx, user); err != nil {
		return nil, err
	}

	profile := toUserProfile(user)
	return &profile, nil
}

func (s *userService) GetUsageStatus(ctx context.Context, userId uuid.UUID) (*dto.UsageStatusResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &dto.NotFoundError{Resource: "subscription", Id: userId.String()}
	}

	plan := entitlement.ResolveEffectivePlan(*subscription)

	var trialEndsAt *time.Time
	if subscription.Status == entity.SubscriptionStatusTrialing {
		trialEndsAt = subscription.TrialEnd
	}

	return &dto.UsageStatusResponse{
		Plan: dto.PlanInfo{
			BasePlan:      string(subscription.PlanType),
			AddOn:         string(subscription.AddOn),
			EffectivePlan: string(plan),
			Status:        string(subscription.Status),
			BillingCycle:  string(subscription.BillingCycle),
		},
		Quotas:           toQuotasResponse(user.Quotas),
		TrialEndsAt:      trialEndsAt,
		UpgradeAvailable: plan != entity.PlanEnterpriseOem,
	}, nil
}

func toUserProfile(user *entity.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		Id:        user.Id,
		Email:     user.Email,
		FullName:  user.FullName,
		Company:   user.Company,
		Quotas:    toQuotasResponse(user.Quotas),
		CreatedAt: user.CreatedAt,
	}
}

func toQuotasResponse(q entity.Quotas) dto.QuotasResponse {
	return dto.QuotasResponse{
		VaultStorage:    dto.QuotaResponse{Limit: q.VaultStorage.Limit, Used: q.VaultStorage.Used},
		AnalyzerActions: dto.QuotaResponse{Limit: q.AnalyzerActions.Limit, Used: q.AnalyzerActions.Used},
		AiBandwidth:     dto.QuotaResponse{Limit: q.AiBandwidth.Limit, Used: q.AiBandwidth.Used},
	}
}
