// FILE: internal/service/auth_service.go
package service

import (
	"context"
	"errors"
	"time"

	"smepro-be/internal/config"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/entitlement"
	"smepro-be/pkg/events"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type IAuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        *config.Config
	audit      events.AuditPublisher
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, cfg *config.Config, audit events.AuditPublisher) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		cfg:        cfg,
		audit:      audit,
	}
}

func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	existing, _ := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if existing != nil {
		return nil, errors.New("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	trialEnd := now.AddDate(0, 0, s.cfg.Auth.TrialDays)

	// Every new account starts on a solo trial; quotas follow the plan.
	user := &entity.User{
		Id:           uuid.New(),
		Email:        req.Email,
		PasswordHash: string(hash),
		FullName:     req.FullName,
		Company:      req.Company,
		Quotas:       entitlement.QuotaLimits(entity.PlanSolo),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	subscription := &entity.Subscription{
		Id:           uuid.New(),
		UserId:       user.Id,
		PlanType:     entity.BasePlanSolo,
		AddOn:        entity.AddOnNone,
		BillingCycle: entity.BillingCycleMonthly,
		Status:       entity.SubscriptionStatusTrialing,
		TrialStart:   &now,
		TrialEnd:     &trialEnd,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	// User + subscription must land together.
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	if err := uow.SubscriptionRepository().Create(ctx, subscription); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.audit.PublishUserRegistered(ctx, user.Id, user.Email, user.FullName)

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil || user == nil {
		return nil, &dto.UnauthorizedError{Message: "invalid credentials"}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, &dto.UnauthorizedError{Message: "invalid credentials"}
	}

	token, err := s.signToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: token,
		User:  toUserProfile(user),
	}, nil
}

func (s *authService) signToken(user *entity.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"exp":     time.Now().Add(time.Duration(s.cfg.Auth.TokenTTLHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.Auth.JwtSecret))
}

