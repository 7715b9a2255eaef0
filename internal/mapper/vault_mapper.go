package mapper

import (
	"encoding/json"

	"smepro-be/internal/entity"
	"smepro-be/internal/model"
)

type VaultMapper struct{}

func NewVaultMapper() *VaultMapper {
	return &VaultMapper{}
}

func (m *VaultMapper) ToEntity(v *model.VaultItem) *entity.VaultItem {
	if v == nil {
		return nil
	}

	var tags []string
	if len(v.Tags) > 0 {
		_ = json.Unmarshal(v.Tags, &tags)
	}

	return &entity.VaultItem{
		Id:           v.Id,
		UserId:       v.UserId,
		Title:        v.Title,
		Content:      v.Content,
		Category:     v.Category,
		Tags:         tags,
		BuilderReady: v.BuilderReady,
		SourceText:   v.SourceText,
		AnalysisType: v.AnalysisType,
		CreatedAt:    v.CreatedAt,
	}
}

func (m *VaultMapper) ToModel(v *entity.VaultItem) *model.VaultItem {
	if v == nil {
		return nil
	}

	tags, _ := json.Marshal(v.Tags)

	return &model.VaultItem{
		Id:           v.Id,
		UserId:       v.UserId,
		Title:        v.Title,
		Content:      v.Content,
		Category:     v.Category,
		Tags:         tags,
		BuilderReady: v.BuilderReady,
		SourceText:   v.SourceText,
		AnalysisType: v.AnalysisType,
		CreatedAt:    v.CreatedAt,
	}
}
