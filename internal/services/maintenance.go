package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
)

// maintenanceDateLayouts covers both the date-only strings the dashboard has
// always stored for maintenance dates and full timestamps.
var maintenanceDateLayouts = []string{"2006-01-02", time.RFC3339, time.RFC3339Nano}

// MaintenanceService scans equipment for upcoming or overdue maintenance
// dates and turns them into warning notifications.
type MaintenanceService struct {
	inventory    *InventoryService
	warnDays     int
	notifyUserID string
	logger       *zap.Logger
}

func NewMaintenanceService(inventory *InventoryService, warnDays int, notifyUserID string, logger *zap.Logger) *MaintenanceService {
	return &MaintenanceService{
		inventory:    inventory,
		warnDays:     warnDays,
		notifyUserID: notifyUserID,
		logger:       logger,
	}
}

func parseMaintenanceDate(value string) (time.Time, bool) {
	for _, layout := range maintenanceDateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ScanDue creates one warning notification per piece of equipment whose
// nextMaintenanceDate is overdue or falls within the warn window. Equipment
// that already has an unread maintenance warning is skipped, so repeated
// scans do not pile up duplicates. Returns the number of notifications
// created.
func (s *MaintenanceService) ScanDue(ctx context.Context) (int, error) {
	equipment := s.inventory.Equipment()
	notifications := s.inventory.Notifications()

	alreadyWarned := make(map[string]bool)
	for _, n := range notifications {
		if n.RelatedType == "maintenance" && !n.IsRead {
			alreadyWarned[n.RelatedID] = true
		}
	}

	deadline := time.Now().UTC().AddDate(0, 0, s.warnDays)
	created := 0
	for _, eq := range equipment {
		if eq.NextMaintenanceDate == "" || eq.Status == entities.StatusRetired {
			continue
		}
		due, ok := parseMaintenanceDate(eq.NextMaintenanceDate)
		if !ok {
			s.logger.Warn("unparseable maintenance date",
				zap.String("equipmentId", eq.ID),
				zap.String("nextMaintenanceDate", eq.NextMaintenanceDate),
			)
			continue
		}
		if due.After(deadline) || alreadyWarned[eq.ID] {
			continue
		}

		_, err := s.inventory.AddNotification(ctx, dto.CreateNotificationDTO{
			UserID:      s.notifyUserID,
			Title:       "Maintenance due",
			Message:     fmt.Sprintf("%s is due for maintenance on %s.", eq.Name, eq.NextMaintenanceDate),
			Type:        string(entities.NotificationWarning),
			RelatedID:   eq.ID,
			RelatedType: "maintenance",
		})
		if err != nil {
			return created, err
		}
		created++
	}

	if created > 0 {
		s.logger.Info("maintenance scan created notifications", zap.Int("count", created))
	}
	return created, nil
}
