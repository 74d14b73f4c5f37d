package services

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
)

func (s *InventoryService) AddNotification(ctx context.Context, payload dto.CreateNotificationDTO) (*entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	notification := entities.Notification{
		UserID:      payload.UserID,
		Title:       payload.Title,
		Message:     payload.Message,
		Type:        entities.NotificationType(payload.Type),
		RelatedID:   payload.RelatedID,
		RelatedType: payload.RelatedType,
	}
	if err := s.addNotificationLocked(ctx, notification); err != nil {
		s.logger.Error("failed to persist notifications", zap.Error(err))
		return nil, err
	}
	created := s.notifications[len(s.notifications)-1]
	return &created, nil
}

// addNotificationLocked assigns id/createdAt, persists and commits. Caller
// must hold the write lock.
func (s *InventoryService) addNotificationLocked(ctx context.Context, notification entities.Notification) error {
	notification.ID = uuid.NewString()
	notification.CreatedAt = now()

	notifications := append(append([]entities.Notification(nil), s.notifications...), notification)
	if err := s.store.Save(ctx, store.KeyNotifications, notifications); err != nil {
		return err
	}
	s.notifications = notifications
	return nil
}

// MarkNotificationAsRead flags one notification as read. Unknown ids are a
// quiet no-op success.
func (s *InventoryService) MarkNotificationAsRead(ctx context.Context, id string) (*entities.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.notifications {
		if s.notifications[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, nil
	}

	notifications := append([]entities.Notification(nil), s.notifications...)
	notifications[idx].IsRead = true

	if err := s.store.Save(ctx, store.KeyNotifications, notifications); err != nil {
		s.logger.Error("failed to persist notifications", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	s.notifications = notifications
	return &notifications[idx], nil
}

func (s *InventoryService) MarkAllNotificationsAsRead(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	notifications := append([]entities.Notification(nil), s.notifications...)
	for i := range notifications {
		notifications[i].IsRead = true
	}

	if err := s.store.Save(ctx, store.KeyNotifications, notifications); err != nil {
		s.logger.Error("failed to persist notifications", zap.Error(err))
		return err
	}
	s.notifications = notifications
	return nil
}
