// FILE: internal/service/vault_service.go
package service

import (
	"context"
	"strings"
	"time"

	"smepro-be/internal/constant"
	"smepro-be/internal/dto"
	"smepro-be/internal/entity"
	"smepro-be/internal/pkg/logger"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/events"
	"smepro-be/pkg/synthesis"

	"github.com/google/uuid"
)

type IVaultService interface {
	SaveItem(ctx context.Context, userId uuid.UUID, req *dto.SaveVaultItemRequest) (*dto.VaultItemResponse, error)
	ListItems(ctx context.Context, userId uuid.UUID, category, search string) ([]dto.VaultItemResponse, error)
	DeleteItem(ctx context.Context, userId, itemId uuid.UUID) error
	ListCategories(ctx context.Context, userId uuid.UUID) ([]string, error)
	CreateCategory(ctx context.Context, userId uuid.UUID, name string) error
	Synthesize(ctx context.Context, userId uuid.UUID, req *dto.SynthesisRequest) (*dto.SynthesisResponse, error)
	DrillDown(ctx context.Context, userId uuid.UUID, req *dto.DrillDownRequest) (*dto.DrillDownResponse, error)
}

type vaultService struct {
	uowFactory unitofwork.RepositoryFactory
	analyzer   *synthesis.Analyzer
	audit      events.AuditPublisher
	logger     logger.ILogger
}

func NewVaultService(uowFactory unitofwork.RepositoryFactory, analyzer *synthesis.Analyzer, audit events.AuditPublisher, log logger.ILogger) IVaultService {
	return &vaultService{
		uowFactory: uowFactory,
		analyzer:   analyzer,
		audit:      audit,
		logger:     log,
	}
}

// bytesPerGb converts item payload sizes to the GB-denominated quota.
const bytesPerGb = float64(1 << 30)

func storageFootprint(item *entity.VaultItem) float64 {
	return float64(len(item.Title)+len(item.Content)+len(item.SourceText)) / bytesPerGb
}

func (s *vaultService) SaveItem(ctx context.Context, userId uuid.UUID, req *dto.SaveVaultItemRequest) (*dto.VaultItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	storage := user.Quotas.VaultStorage
	if storage.Limit >= 0 && storage.Used >= storage.Limit {
		s.audit.PublishQuotaExceeded(ctx, userId, "vaultStorage", storage.Limit, storage.Used)
		return nil, &dto.LimitExceededError{Quota: "vaultStorage", Limit: storage.Limit, Used: storage.Used}
	}

	category := req.Category
	if category == "" {
		category = constant.DefaultVaultCategory
	}

	// Saving always mints a new item, even for identical content.
	item := &entity.VaultItem{
		Id:           uuid.New(),
		UserId:       userId,
		Title:        req.Title,
		Content:      req.Content,
		Category:     category,
		Tags:         req.Tags,
		BuilderReady: req.BuilderReady,
		SourceText:   req.SourceText,
		AnalysisType: req.AnalysisType,
		CreatedAt:    time.Now(),
	}

	if err := uow.VaultRepository().CreateItem(ctx, item); err != nil {
		return nil, err
	}

	user.Quotas.VaultStorage.Used += storageFootprint(item)
	if err := uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	response := toVaultItemResponse(item)
	return &response, nil
}

func (s *vaultService) ListItems(ctx context.Context, userId uuid.UUID, category, search string) ([]dto.VaultItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if category != "" {
		specs = append(specs, specification.ByCategory{Category: category})
	}
	if search != "" {
		specs = append(specs, specification.SearchQuery{Query: search})
	}

	items, err := uow.VaultRepository().FindAllItems(ctx, specs...)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.VaultItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toVaultItemResponse(item))
	}
	return responses, nil
}

func (s *vaultService) DeleteItem(ctx context.Context, userId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	item, err := uow.VaultRepository().FindOneItem(ctx,
		specification.ByID{ID: itemId},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return err
	}
	if item == nil {
		return &dto.NotFoundError{Resource: "vault item", Id: itemId.String()}
	}

	if err := uow.VaultRepository().DeleteItem(ctx, itemId); err != nil {
		return err
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil || user == nil {
		return err
	}
	user.Quotas.VaultStorage.Used -= storageFootprint(item)
	if user.Quotas.VaultStorage.Used < 0 {
		user.Quotas.VaultStorage.Used = 0
	}
	return uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas)
}

func (s *vaultService) ListCategories(ctx context.Context, userId uuid.UUID) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	categories, err := uow.VaultRepository().FindAllCategories(ctx,
		specification.ByUserID{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	// First listing seeds the built-in set.
	if len(categories) == 0 {
		for _, name := range constant.DefaultVaultCategories {
			category := &entity.VaultCategory{
				Id:     uuid.New(),
				UserId: userId,
				Name:   name,
			}
			if err := uow.VaultRepository().CreateCategory(ctx, category); err != nil {
				return nil, err
			}
			categories = append(categories, category)
		}
	}

	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.Name)
	}
	return names, nil
}

func (s *vaultService) CreateCategory(ctx context.Context, userId uuid.UUID, name string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.VaultRepository().CreateCategory(ctx, &entity.VaultCategory{
		Id:     uuid.New(),
		UserId: userId,
		Name:   name,
	})
}

func (s *vaultService) Synthesize(ctx context.Context, userId uuid.UUID, req *dto.SynthesisRequest) (*dto.SynthesisResponse, error) {
	if len(req.ItemIds) < 2 {
		return nil, &dto.ValidationError{Message: "synthesis requires at least two items"}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	actions := user.Quotas.AnalyzerActions
	if actions.Limit >= 0 && actions.Used >= actions.Limit {
		s.audit.PublishQuotaExceeded(ctx, userId, "analyzerActions", actions.Limit, actions.Used)
		return nil, &dto.LimitExceededError{Quota: "analyzerActions", Limit: actions.Limit, Used: actions.Used}
	}

	found, err := uow.VaultRepository().FindAllItems(ctx,
		specification.ByIDs{IDs: req.ItemIds},
		specification.ByUserID{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if len(found) < 2 {
		return nil, &dto.ValidationError{Message: "fewer than two of the requested items exist"}
	}

	items := make([]entity.VaultItem, 0, len(found))
	for _, item := range found {
		items = append(items, *item)
	}

	responseFormat := req.ResponseFormat
	if strings.HasPrefix(req.Objective, constant.ConceptReviewPrefix) {
		responseFormat = constant.ProjectBriefFormat
	}

	result, err := s.analyzer.Synthesize(ctx, items, req.Objective, responseFormat)
	if err != nil {
		return nil, err
	}

	user.Quotas.AnalyzerActions.Used++
	if err := uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas); err != nil {
		return nil, err
	}

	s.audit.PublishSynthesisCompleted(ctx, userId, req.Objective, len(items))

	if responseFormat == "" {
		responseFormat = constant.ResponseFormats[0]
	}
	return &dto.SynthesisResponse{
		Result:         result,
		Objective:      req.Objective,
		ResponseFormat: responseFormat,
		ItemCount:      len(items),
	}, nil
}

func (s *vaultService) DrillDown(ctx context.Context, userId uuid.UUID, req *dto.DrillDownRequest) (*dto.DrillDownResponse, error) {
	result, err := s.analyzer.DrillDown(ctx, req.Snippet, req.FullContext, req.Color)
	if err != nil {
		return nil, err
	}
	return &dto.DrillDownResponse{
		Color:  req.Color,
		Result: result,
	}, nil
}

func toVaultItemResponse(item *entity.VaultItem) dto.VaultItemResponse {
	return dto.VaultItemResponse{
		Id:           item.Id,
		Title:        item.Title,
		Content:      item.Content,
		Category:     item.Category,
		Tags:         item.Tags,
		BuilderReady: item.BuilderReady,
		AnalysisType: item.AnalysisType,
		CreatedAt:    item.CreatedAt,
	}
}
