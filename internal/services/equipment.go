package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
)

func (s *InventoryService) AddEquipment(ctx context.Context, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ts := now()
	actor := actorFrom(ctx)
	equipment := entities.Equipment{
		ID:                  uuid.NewString(),
		Name:                payload.Name,
		SerialNumber:        payload.SerialNumber,
		Model:               payload.Model,
		Manufacturer:        payload.Manufacturer,
		CategoryID:          payload.CategoryID,
		DepartmentID:        payload.DepartmentID,
		Status:              entities.EquipmentStatus(payload.Status),
		Location:            payload.Location,
		PurchaseDate:        payload.PurchaseDate,
		WarrantyExpiry:      payload.WarrantyExpiry,
		LastMaintenanceDate: payload.LastMaintenanceDate,
		NextMaintenanceDate: payload.NextMaintenanceDate,
		Notes:               payload.Notes,
		CreatedAt:           ts,
		UpdatedAt:           ts,
		CreatedBy:           actor,
		UpdatedBy:           actor,
	}

	collection := append(append([]entities.Equipment(nil), s.equipment...), equipment)
	if err := s.saveEquipmentLocked(ctx, collection); err != nil {
		s.logger.Error("failed to persist equipment", zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment created", zap.String("id", equipment.ID), zap.String("name", equipment.Name))
	return &equipment, nil
}

func (s *InventoryService) UpdateEquipment(ctx context.Context, id string, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	collection := append([]entities.Equipment(nil), s.equipment...)
	equipment := &collection[idx]
	if payload.Name != nil {
		equipment.Name = *payload.Name
	}
	if payload.SerialNumber != nil {
		equipment.SerialNumber = *payload.SerialNumber
	}
	if payload.Model != nil {
		equipment.Model = *payload.Model
	}
	if payload.Manufacturer != nil {
		equipment.Manufacturer = *payload.Manufacturer
	}
	if payload.CategoryID != nil {
		equipment.CategoryID = *payload.CategoryID
	}
	if payload.DepartmentID != nil {
		equipment.DepartmentID = *payload.DepartmentID
	}
	if payload.Status != nil {
		equipment.Status = entities.EquipmentStatus(*payload.Status)
	}
	if payload.Location != nil {
		equipment.Location = *payload.Location
	}
	if payload.PurchaseDate != nil {
		equipment.PurchaseDate = *payload.PurchaseDate
	}
	if payload.WarrantyExpiry != nil {
		equipment.WarrantyExpiry = *payload.WarrantyExpiry
	}
	if payload.LastMaintenanceDate != nil {
		equipment.LastMaintenanceDate = *payload.LastMaintenanceDate
	}
	if payload.NextMaintenanceDate != nil {
		equipment.NextMaintenanceDate = *payload.NextMaintenanceDate
	}
	if payload.Notes != nil {
		equipment.Notes = *payload.Notes
	}
	equipment.UpdatedAt = now()
	equipment.UpdatedBy = actorFrom(ctx)

	if err := s.saveEquipmentLocked(ctx, collection); err != nil {
		s.logger.Error("failed to persist equipment", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment updated", zap.String("id", id))
	return equipment, nil
}

// DeleteEquipment removes by id only; usage records referencing the
// equipment are left in place as history.
func (s *InventoryService) DeleteEquipment(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	collection := make([]entities.Equipment, 0, len(s.equipment))
	for _, eq := range s.equipment {
		if eq.ID != id {
			collection = append(collection, eq)
		}
	}

	if err := s.saveEquipmentLocked(ctx, collection); err != nil {
		s.logger.Error("failed to persist equipment", zap.String("id", id), zap.Error(err))
		return err
	}

	s.logger.Info("equipment deleted", zap.String("id", id))
	return nil
}

// ChangeEquipmentStatus is a targeted update of the status field.
func (s *InventoryService) ChangeEquipmentStatus(ctx context.Context, id string, status entities.EquipmentStatus) (*entities.Equipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.changeEquipmentStatusLocked(ctx, id, status)
}

func (s *InventoryService) changeEquipmentStatusLocked(ctx context.Context, id string, status entities.EquipmentStatus) (*entities.Equipment, error) {
	idx := -1
	for i := range s.equipment {
		if s.equipment[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	collection := append([]entities.Equipment(nil), s.equipment...)
	equipment := &collection[idx]
	equipment.Status = status
	equipment.UpdatedAt = now()
	equipment.UpdatedBy = actorFrom(ctx)

	if err := s.saveEquipmentLocked(ctx, collection); err != nil {
		s.logger.Error("failed to persist equipment status", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("equipment status changed", zap.String("id", id), zap.String("status", string(status)))
	return equipment, nil
}
