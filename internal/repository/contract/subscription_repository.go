// FILE: internal/repository/contract/subscription_repository.go
package contract

import (
	"context"

	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"

	"github.com/google/uuid"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, subscription *entity.Subscription) error
	Update(ctx context.Context, subscription *entity.Subscription) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subscription, error)
	FindByUserId(ctx context.Context, userId uuid.UUID) (*entity.Subscription, error)
}
