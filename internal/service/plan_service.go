// FILE: internal/service/plan_service.go
package service

import (
	"context"
	"errors"
	"time"

	"smepro-be/internal/constant"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/entitlement"
	"smepro-be/pkg/events"
	"smepro-be/pkg/taxonomy"

	"github.com/google/uuid"
)

type IPlanService interface {
	GetPlan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error)
	ChangePlan(ctx context.Context, userId uuid.UUID, req *dto.ChangePlanRequest) (*dto.PlanResponse, error)
	ListPlans() []dto.PlanCatalogEntryResponse
	TaxonomyOptions(ctx context.Context, userId uuid.UUID, level string, prior entity.PersonaConfig) (*dto.TaxonomyOptionsResponse, error)
}

type planService struct {
	uowFactory unitofwork.RepositoryFactory
	audit      events.AuditPublisher
}

func NewPlanService(uowFactory unitofwork.RepositoryFactory, audit events.AuditPublisher) IPlanService {
	return &planService{
		uowFactory: uowFactory,
		audit:      audit,
	}
}

func (s *planService) GetPlan(ctx context.Context, userId uuid.UUID) (*dto.PlanResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &dto.NotFoundError{Resource: "subscription", Id: userId.String()}
	}
	return toPlanResponse(subscription), nil
}

func (s *planService) ChangePlan(ctx context.Context, userId uuid.UUID, req *dto.ChangePlanRequest) (*dto.PlanResponse, error) {
	base := entity.BasePlan(req.BasePlan)
	addOn := entity.AddOnPackage(req.AddOn)
	if !entitlement.ValidateParts(base, addOn) {
		return nil, errors.New("add-on is not available on this base plan")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &dto.NotFoundError{Resource: "subscription", Id: userId.String()}
	}
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	oldPlan := entitlement.ResolveEffectivePlan(*subscription)

	subscription.PlanType = base
	subscription.AddOn = addOn
	if req.BillingCycle != "" {
		subscription.BillingCycle = entity.BillingCycle(req.BillingCycle)
	}
	subscription.Status = entity.SubscriptionStatusActive
	subscription.TrialStart = nil
	subscription.TrialEnd = nil
	subscription.UpdatedAt = time.Now()

	newPlan := entitlement.ResolveEffectivePlan(*subscription)

	// Limits follow the new plan; usage carries over untouched.
	quotas := entitlement.ApplyPlanChange(user.Quotas, newPlan)

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.SubscriptionRepository().Update(ctx, subscription); err != nil {
		return nil, err
	}
	if err := uow.UserRepository().UpdateQuotas(ctx, userId, quotas); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if oldPlan != newPlan {
		s.audit.PublishPlanChanged(ctx, userId, string(oldPlan), string(newPlan))
	}

	return toPlanResponse(subscription), nil
}

func (s *planService) ListPlans() []dto.PlanCatalogEntryResponse {
	plans := make([]dto.PlanCatalogEntryResponse, 0, len(constant.PlanCatalog))
	for _, p := range constant.PlanCatalog {
		plans = append(plans, dto.PlanCatalogEntryResponse{
			Id:           p.Id,
			Name:         p.Name,
			PriceMonthly: p.PriceMonthly,
			PriceAnnual:  p.PriceAnnual,
			AddOn:        p.AddOn,
			Featured:     p.Featured,
		})
	}
	return plans
}

func (s *planService) TaxonomyOptions(ctx context.Context, userId uuid.UUID, level string, prior entity.PersonaConfig) (*dto.TaxonomyOptionsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	subscription, err := uow.SubscriptionRepository().FindByUserId(ctx, userId)
	if err != nil {
		return nil, err
	}
	if subscription == nil {
		return nil, &dto.NotFoundError{Resource: "subscription", Id: userId.String()}
	}

	plan := entitlement.ResolveEffectivePlan(*subscription)
	domainLabel, subDomainLabel, specializationLabel := taxonomy.Labels(plan)

	var (
		taxLevel taxonomy.Level
		label    string
	)
	switch level {
	case "domain":
		taxLevel, label = taxonomy.LevelDomain, domainLabel
	case "sub_domain":
		taxLevel, label = taxonomy.LevelSubDomain, subDomainLabel
	case "specialization":
		taxLevel, label = taxonomy.LevelSpecialization, specializationLabel
	default:
		return nil, &dto.ValidationError{Message: "unknown taxonomy level: " + level}
	}

	return &dto.TaxonomyOptionsResponse{
		Level:   level,
		Label:   label,
		Options: taxonomy.OptionsFor(plan, taxLevel, prior),
	}, nil
}

func toPlanResponse(sub *entity.Subscription) *dto.PlanResponse {
	return &dto.PlanResponse{
		BasePlan:      string(sub.PlanType),
		AddOn:         string(sub.AddOn),
		EffectivePlan: string(entitlement.ResolveEffectivePlan(*sub)),
		Status:        string(sub.Status),
		BillingCycle:  string(sub.BillingCycle),
		TrialStart:    sub.TrialStart,
		TrialEnd:      sub.TrialEnd,
	}
}
