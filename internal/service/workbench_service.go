// FILE: internal/service/workbench_service.go
package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"smepro-be/internal/config"
	"smepro-be/internal/dto"
	"smepro-be/internal/repository/specification"
	"smepro-be/internal/repository/unitofwork"
	"smepro-be/pkg/ai"
	"smepro-be/pkg/events"

	"github.com/google/uuid"
)

const workbenchAssistantInstruction = "You are a helpful assistant in the SME Workbench. The user is working with the following context from their Vault analysis:\n\nCONTEXT:\n---\n%s\n---\n\nYour role is to help them use the advanced AI tools to build upon this context. Be concise and guide them towards using the tools on the left."

type IWorkbenchService interface {
	Chat(ctx context.Context, userId uuid.UUID, req *dto.WorkbenchChatRequest) (*dto.TextResultResponse, error)
	ComplexText(ctx context.Context, userId uuid.UUID, req *dto.ComplexTextRequest) (*dto.TextResultResponse, error)
	GenerateImage(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.AssetResponse, error)
	AnalyzeImage(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeImageRequest) (*dto.TextResultResponse, error)
	EditImage(ctx context.Context, userId uuid.UUID, req *dto.EditImageRequest) (*dto.AssetResponse, error)
	AnimateImage(ctx context.Context, userId uuid.UUID, req *dto.AnimateImageRequest) (*dto.AssetResponse, error)
}

type workbenchService struct {
	uowFactory   unitofwork.RepositoryFactory
	collaborator ai.Collaborator
	cfg          *config.Config
	audit        events.AuditPublisher
}

func NewWorkbenchService(uowFactory unitofwork.RepositoryFactory, collaborator ai.Collaborator, cfg *config.Config, audit events.AuditPublisher) IWorkbenchService {
	return &workbenchService{
		uowFactory:   uowFactory,
		collaborator: collaborator,
		cfg:          cfg,
		audit:        audit,
	}
}

func (s *workbenchService) Chat(ctx context.Context, userId uuid.UUID, req *dto.WorkbenchChatRequest) (*dto.TextResultResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	history := make([]ai.Message, 0, len(req.Messages))
	for _, m := range req.Messages {
		history = append(history, ai.Message{Role: m.Role, Content: m.Content})
	}

	result, err := s.collaborator.Chat(ctx, history,
		ai.WithSystemInstruction(fmt.Sprintf(workbenchAssistantInstruction, req.Context)),
	)
	if err != nil {
		return nil, err
	}
	return &dto.TextResultResponse{Result: result}, nil
}

func (s *workbenchService) ComplexText(ctx context.Context, userId uuid.UUID, req *dto.ComplexTextRequest) (*dto.TextResultResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	result, err := s.collaborator.Generate(ctx, req.Prompt,
		ai.WithModel(ai.ModelDeep),
		ai.WithThinkingBudget(int32(s.cfg.Ai.ThinkingBudget)),
	)
	if err != nil {
		return nil, err
	}
	return &dto.TextResultResponse{Result: result}, nil
}

func (s *workbenchService) GenerateImage(ctx context.Context, userId uuid.UUID, req *dto.GenerateImageRequest) (*dto.AssetResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	aspectRatio := req.AspectRatio
	if aspectRatio == "" {
		aspectRatio = "1:1"
	}

	asset, err := s.collaborator.GenerateImage(ctx, req.Prompt, aspectRatio)
	if err != nil {
		return nil, err
	}
	return toAssetResponse("Generated image", "image", asset), nil
}

func (s *workbenchService) AnalyzeImage(ctx context.Context, userId uuid.UUID, req *dto.AnalyzeImageRequest) (*dto.TextResultResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, &dto.ValidationError{Message: "image is not valid base64"}
	}

	result, err := s.collaborator.AnalyzeImage(ctx, req.Prompt, req.MimeType, data)
	if err != nil {
		return nil, err
	}
	return &dto.TextResultResponse{Result: result}, nil
}

func (s *workbenchService) EditImage(ctx context.Context, userId uuid.UUID, req *dto.EditImageRequest) (*dto.AssetResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, &dto.ValidationError{Message: "image is not valid base64"}
	}

	asset, err := s.collaborator.EditImage(ctx, req.Prompt, req.MimeType, data)
	if err != nil {
		return nil, err
	}
	return toAssetResponse("Edited image", "image", asset), nil
}

func (s *workbenchService) AnimateImage(ctx context.Context, userId uuid.UUID, req *dto.AnimateImageRequest) (*dto.AssetResponse, error) {
	if err := s.consumeBandwidth(ctx, userId); err != nil {
		return nil, err
	}

	data, err := base64.StdEncoding.DecodeString(req.Image)
	if err != nil {
		return nil, &dto.ValidationError{Message: "image is not valid base64"}
	}

	asset, err := s.collaborator.AnimateImage(ctx, req.Prompt, req.MimeType, data, req.AspectRatio)
	if err != nil {
		return nil, err
	}
	return toAssetResponse("Animated video", "video", asset), nil
}

// consumeBandwidth enforces and debits one unit of the AI bandwidth quota.
func (s *workbenchService) consumeBandwidth(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return &dto.NotFoundError{Resource: "user", Id: userId.String()}
	}

	q := user.Quotas.AiBandwidth
	if q.Limit >= 0 && q.Used >= q.Limit {
		s.audit.PublishQuotaExceeded(ctx, userId, "aiBandwidth", q.Limit, q.Used)
		return &dto.LimitExceededError{Quota: "aiBandwidth", Limit: q.Limit, Used: q.Used}
	}

	user.Quotas.AiBandwidth.Used++
	return uow.UserRepository().UpdateQuotas(ctx, userId, user.Quotas)
}

func toAssetResponse(name, assetType string, asset *ai.Asset) *dto.AssetResponse {
	content := asset.URI
	if len(asset.Data) > 0 {
		content = base64.StdEncoding.EncodeToString(asset.Data)
	}
	return &dto.AssetResponse{
		Id:        uuid.NewString(),
		Name:      name,
		Type:      assetType,
		MimeType:  asset.MimeType,
		Content:   content,
		CreatedAt: time.Now(),
	}
}
