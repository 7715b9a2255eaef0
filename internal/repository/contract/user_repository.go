// FILE: internal/repository/contract/user_repository.go
package contract

import (
	"context"

	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"

	"github.com/google/uuid"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	// UpdateQuotas persists only the quota column, so concurrent profile
	// edits don't clobber usage counters.
	UpdateQuotas(ctx context.Context, userId uuid.UUID, quotas entity.Quotas) error
}
