package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/contextkeys"
)

func usageActor(ctx context.Context) (userID, userName string) {
	userID, _ = ctx.Value(contextkeys.UserIDKey).(string)
	userName, _ = ctx.Value(contextkeys.UsernameKey).(string)
	if userID == "" {
		userID = placeholderActor
	}
	if userName == "" {
		userName = placeholderActor
	}
	return userID, userName
}

// StartUsage creates an active usage record and flips the equipment to
// in_use. There is deliberately no guard against a second active record for
// the same equipment: calling this twice produces two concurrent active rows,
// matching the long-standing contract of this layer.
func (s *InventoryService) StartUsage(ctx context.Context, payload dto.StartUsageDTO) (*entities.EquipmentUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	departmentID := ""
	for i := range s.equipment {
		if s.equipment[i].ID == payload.EquipmentID {
			departmentID = s.equipment[i].DepartmentID
			break
		}
	}

	ts := now()
	userID, userName := usageActor(ctx)
	record := entities.EquipmentUsage{
		ID:           uuid.NewString(),
		EquipmentID:  payload.EquipmentID,
		UserID:       userID,
		UserName:     userName,
		DepartmentID: departmentID,
		StartTime:    ts,
		Purpose:      payload.Purpose,
		Notes:        payload.Notes.String,
		Status:       entities.UsageActive,
		CreatedAt:    ts,
		UpdatedAt:    ts,
	}

	usage := append(append([]entities.EquipmentUsage(nil), s.usage...), record)
	if err := s.store.Save(ctx, store.KeyUsage, usage); err != nil {
		s.logger.Error("failed to persist usage records", zap.Error(err))
		return nil, err
	}
	s.usage = usage

	if _, err := s.changeEquipmentStatusLocked(ctx, payload.EquipmentID, entities.StatusInUse); err != nil {
		return nil, err
	}

	s.logger.Info("usage started",
		zap.String("usageId", record.ID),
		zap.String("equipmentId", payload.EquipmentID),
	)
	return &record, nil
}

// EndUsage completes the record and unconditionally resets the equipment to
// available, even when the equipment was moved to maintenance or repair
// while the usage was open. The reset has always been unconditional and
// consumers depend on it; do not make it conditional on the current status.
// An unknown usage id is a quiet no-op success.
func (s *InventoryService) EndUsage(ctx context.Context, usageID string, payload dto.EndUsageDTO) (*entities.EquipmentUsage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.usage {
		if s.usage[i].ID == usageID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	usage := append([]entities.EquipmentUsage(nil), s.usage...)
	record := &usage[idx]
	record.EndTime = now()
	record.Status = entities.UsageCompleted
	if payload.Notes.Valid {
		record.Notes = payload.Notes.String
	}
	record.UpdatedAt = record.EndTime

	if err := s.store.Save(ctx, store.KeyUsage, usage); err != nil {
		s.logger.Error("failed to persist usage records", zap.String("usageId", usageID), zap.Error(err))
		return nil, err
	}
	s.usage = usage

	equipmentName := record.EquipmentID
	for i := range s.equipment {
		if s.equipment[i].ID == record.EquipmentID {
			equipmentName = s.equipment[i].Name
			break
		}
	}

	if _, err := s.changeEquipmentStatusLocked(ctx, record.EquipmentID, entities.StatusAvailable); err != nil {
		return nil, err
	}

	if err := s.addNotificationLocked(ctx, entities.Notification{
		UserID:      record.UserID,
		Title:       "Usage completed",
		Message:     fmt.Sprintf("Usage of %s has been completed.", equipmentName),
		Type:        entities.NotificationSuccess,
		RelatedID:   record.EquipmentID,
		RelatedType: "usage",
	}); err != nil {
		// Notification failure should not fail the completed usage.
		s.logger.Warn("failed to record usage notification", zap.String("usageId", usageID), zap.Error(err))
	}

	s.logger.Info("usage ended",
		zap.String("usageId", usageID),
		zap.String("equipmentId", record.EquipmentID),
	)
	return record, nil
}
