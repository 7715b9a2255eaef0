// FILE: internal/repository/contract/vault_repository.go
package contract

import (
	"context"

	"smepro-be/internal/entity"
	"smepro-be/internal/repository/specification"

	"github.com/google/uuid"
)

type VaultRepository interface {
	CreateItem(ctx context.Context, item *entity.VaultItem) error
	DeleteItem(ctx context.Context, id uuid.UUID) error
	FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.VaultItem, error)
	FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultItem, error)
	CountItems(ctx context.Context, specs ...specification.Specification) (int64, error)

	// Categories
	CreateCategory(ctx context.Context, category *entity.VaultCategory) error
	FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultCategory, error)
}
