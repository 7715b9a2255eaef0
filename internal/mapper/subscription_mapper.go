package mapper

import (
	"smepro-be/internal/entity"
	"smepro-be/internal/model"
)

type SubscriptionMapper struct{}

func NewSubscriptionMapper() *SubscriptionMapper {
	return &SubscriptionMapper{}
}

func (m *SubscriptionMapper) ToEntity(s *model.Subscription) *entity.Subscription {
	if s == nil {
		return nil
	}
	return &entity.Subscription{
		Id:           s.Id,
		UserId:       s.UserId,
		PlanType:     entity.BasePlan(s.PlanType),
		AddOn:        entity.AddOnPackage(s.AddOn),
		BillingCycle: entity.BillingCycle(s.BillingCycle),
		Status:       entity.SubscriptionStatus(s.Status),
		TrialStart:   s.TrialStart,
		TrialEnd:     s.TrialEnd,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func (m *SubscriptionMapper) ToModel(s *entity.Subscription) *model.Subscription {
	if s == nil {
		return nil
	}
	return &model.Subscription{
		Id:           s.Id,
		UserId:       s.UserId,
		PlanType:     string(s.PlanType),
		AddOn:        string(s.AddOn),
		BillingCycle: string(s.BillingCycle),
		Status:       string(s.Status),
		TrialStart:   s.TrialStart,
		TrialEnd:     s.TrialEnd,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
