package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
)

// AddCategory appends a category. departmentId is accepted as-is; referential
// integrity has never been enforced at this layer.
func (s *InventoryService) AddCategory(ctx context.Context, payload dto.CreateCategoryDTO) (*entities.EquipmentCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	category := entities.EquipmentCategory{
		ID:           uuid.NewString(),
		Name:         payload.Name,
		Description:  payload.Description,
		DepartmentID: payload.DepartmentID,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	categories := append(append([]entities.EquipmentCategory(nil), s.categories...), category)
	if err := s.store.Save(ctx, store.KeyCategories, categories); err != nil {
		s.logger.Error("failed to persist categories", zap.Error(err))
		return nil, err
	}
	s.categories = categories

	s.logger.Info("category created", zap.String("id", category.ID), zap.String("name", category.Name))
	return &category, nil
}

func (s *InventoryService) UpdateCategory(ctx context.Context, id string, payload dto.UpdateCategoryDTO) (*entities.EquipmentCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.categories {
		if s.categories[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	categories := append([]entities.EquipmentCategory(nil), s.categories...)
	category := &categories[idx]
	if payload.Name != nil {
		category.Name = *payload.Name
	}
	if payload.Description != nil {
		category.Description = *payload.Description
	}
	if payload.DepartmentID != nil {
		category.DepartmentID = *payload.DepartmentID
	}
	category.UpdatedAt = now()

	if err := s.store.Save(ctx, store.KeyCategories, categories); err != nil {
		s.logger.Error("failed to persist categories", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.categories = categories

	s.logger.Info("category updated", zap.String("id", id))
	return category, nil
}

// DeleteCategory removes by id only. Equipment referencing the category keeps
// its dangling categoryId.
func (s *InventoryService) DeleteCategory(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	categories := make([]entities.EquipmentCategory, 0, len(s.categories))
	for _, cat := range s.categories {
		if cat.ID != id {
			categories = append(categories, cat)
		}
	}

	if err := s.store.Save(ctx, store.KeyCategories, categories); err != nil {
		s.logger.Error("failed to persist categories", zap.String("id", id), zap.Error(err))
		return err
	}
	s.categories = categories

	s.logger.Info("category deleted", zap.String("id", id))
	return nil
}
