package implementation

import (
	"context"
	"errors"

	"smepro-be/internal/entity"
	"smepro-be/internal/mapper"
	"smepro-be/internal/model"
	"smepro-be/internal/repository/contract"
	"smepro-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type VaultRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.VaultMapper
}

func NewVaultRepository(db *gorm.DB) contract.VaultRepository {
	return &VaultRepositoryImpl{
		db:     db,
		mapper: mapper.NewVaultMapper(),
	}
}

func (r *VaultRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *VaultRepositoryImpl) CreateItem(ctx context.Context, item *entity.VaultItem) error {
	m := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(m)
	return nil
}

func (r *VaultRepositoryImpl) DeleteItem(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.VaultItem{}, id).Error
}

func (r *VaultRepositoryImpl) FindOneItem(ctx context.Context, specs ...specification.Specification) (*entity.VaultItem, error) {
	var m model.VaultItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *VaultRepositoryImpl) FindAllItems(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultItem, error) {
	var models []*model.VaultItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	items := make([]*entity.VaultItem, 0, len(models))
	for _, m := range models {
		items = append(items, r.mapper.ToEntity(m))
	}
	return items, nil
}

func (r *VaultRepositoryImpl) CountItems(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.VaultItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *VaultRepositoryImpl) CreateCategory(ctx context.Context, category *entity.VaultCategory) error {
	m := &model.VaultCategory{
		Id:     category.Id,
		UserId: category.UserId,
		Name:   category.Name,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	category.Id = m.Id
	category.CreatedAt = m.CreatedAt
	return nil
}

func (r *VaultRepositoryImpl) FindAllCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.VaultCategory, error) {
	var models []*model.VaultCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	categories := make([]*entity.VaultCategory, 0, len(models))
	for _, m := range models {
		categories = append(categories, &entity.VaultCategory{
			Id:        m.Id,
			UserId:    m.UserId,
			Name:      m.Name,
			CreatedAt: m.CreatedAt,
		})
	}
	return categories, nil
}
