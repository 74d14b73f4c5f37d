package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/stats"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
)

func (s *InventoryService) AddDepartment(ctx context.Context, payload dto.CreateDepartmentDTO) (*entities.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	department := entities.Department{
		ID:          uuid.NewString(),
		Name:        payload.Name,
		Code:        payload.Code,
		Description: payload.Description,
		CreatedAt:   ts,
		UpdatedAt:   ts,
	}

	departments := append(append([]entities.Department(nil), s.departments...), department)
	if err := s.store.Save(ctx, store.KeyDepartments, departments); err != nil {
		s.logger.Error("failed to persist departments", zap.Error(err))
		return nil, err
	}
	s.departments = departments

	s.logger.Info("department created", zap.String("id", department.ID), zap.String("name", department.Name))
	return &department, nil
}

// UpdateDepartment merges the supplied fields over the existing department.
// An unknown id is a quiet no-op success, not an error: the caller gets
// (nil, nil) and the collection stays unchanged.
func (s *InventoryService) UpdateDepartment(ctx context.Context, id string, payload dto.UpdateDepartmentDTO) (*entities.Department, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.departments {
		if s.departments[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	departments := append([]entities.Department(nil), s.departments...)
	department := &departments[idx]
	if payload.Name != nil {
		department.Name = *payload.Name
	}
	if payload.Code != nil {
		department.Code = *payload.Code
	}
	if payload.Description != nil {
		department.Description = *payload.Description
	}
	department.UpdatedAt = now()

	if err := s.store.Save(ctx, store.KeyDepartments, departments); err != nil {
		s.logger.Error("failed to persist departments", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.departments = departments

	s.logger.Info("department updated", zap.String("id", id))
	return department, nil
}

// DeleteDepartment removes the department and cascades to every category and
// equipment item that references it, then recomputes stats. Deleting an
// unknown id is a quiet success. All keys are persisted before any collection
// is committed to memory, so a failed save leaves memory untouched.
func (s *InventoryService) DeleteDepartment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	departments := make([]entities.Department, 0, len(s.departments))
	for _, dept := range s.departments {
		if dept.ID != id {
			departments = append(departments, dept)
		}
	}
	categories := make([]entities.EquipmentCategory, 0, len(s.categories))
	for _, cat := range s.categories {
		if cat.DepartmentID != id {
			categories = append(categories, cat)
		}
	}
	equipment := make([]entities.Equipment, 0, len(s.equipment))
	for _, eq := range s.equipment {
		if eq.DepartmentID != id {
			equipment = append(equipment, eq)
		}
	}
	eqStats := stats.ComputeEquipmentStats(equipment)
	deptStats := stats.ComputeDepartmentStats(departments, equipment)

	for key, v := range map[string]interface{}{
		store.KeyDepartments:     departments,
		store.KeyCategories:      categories,
		store.KeyEquipment:       equipment,
		store.KeyEquipmentStats:  eqStats,
		store.KeyDepartmentStats: deptStats,
	} {
		if err := s.store.Save(ctx, key, v); err != nil {
			s.logger.Error("failed to persist cascade delete", zap.String("id", id), zap.String("key", key), zap.Error(err))
			return err
		}
	}

	s.departments = departments
	s.categories = categories
	s.equipment = equipment
	s.equipmentStats = eqStats
	s.departmentStats = deptStats

	s.logger.Info("department deleted with cascade", zap.String("id", id))
	return nil
}
