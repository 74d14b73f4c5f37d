package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/stats"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/contextkeys"
)

// placeholderActor stamps createdBy/updatedBy when no authenticated identity
// is present in the context (scheduler runs, internal calls).
const placeholderActor = "system"

// InventoryService owns the in-memory collections and is the single writer
// for all of them. Mutations persist to the store first and commit to memory
// only after a successful save, so a failed save leaves memory untouched.
// Stats are recomputed from scratch after every equipment or department
// mutation; the persisted stats keys are a cache, never a source of truth.
type InventoryService struct {
	mu     sync.RWMutex
	store  store.Store
	logger *zap.Logger

	departments     []entities.Department
	categories      []entities.EquipmentCategory
	equipment       []entities.Equipment
	usage           []entities.EquipmentUsage
	notifications   []entities.Notification
	equipmentStats  entities.EquipmentStats
	departmentStats []entities.DepartmentStats
}

func NewInventoryService(st store.Store, logger *zap.Logger) *InventoryService {
	return &InventoryService{store: st, logger: logger}
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339Nano)
}

func actorFrom(ctx context.Context) string {
	if username, ok := ctx.Value(contextkeys.UsernameKey).(string); ok && username != "" {
		return username
	}
	return placeholderActor
}

// Load reads all collections from the store, replacing in-memory state.
// Missing keys leave empty collections. Stats are recomputed from the loaded
// collections rather than trusted from their persisted cache.
func (s *InventoryService) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	departments := make([]entities.Department, 0)
	categories := make([]entities.EquipmentCategory, 0)
	equipment := make([]entities.Equipment, 0)
	usage := make([]entities.EquipmentUsage, 0)
	notifications := make([]entities.Notification, 0)

	for key, target := range map[string]interface{}{
		store.KeyDepartments:   &departments,
		store.KeyCategories:    &categories,
		store.KeyEquipment:     &equipment,
		store.KeyUsage:         &usage,
		store.KeyNotifications: &notifications,
	} {
		if _, err := s.store.Load(ctx, key, target); err != nil {
			s.logger.Error("failed to load collection", zap.String("key", key), zap.Error(err))
			return err
		}
	}

	s.departments = departments
	s.categories = categories
	s.equipment = equipment
	s.usage = usage
	s.notifications = notifications
	s.equipmentStats = stats.ComputeEquipmentStats(equipment)
	s.departmentStats = stats.ComputeDepartmentStats(departments, equipment)

	s.logger.Info("inventory loaded",
		zap.Int("departments", len(departments)),
		zap.Int("categories", len(categories)),
		zap.Int("equipment", len(equipment)),
		zap.Int("usageRecords", len(usage)),
		zap.Int("notifications", len(notifications)),
	)
	return nil
}

// RefreshData reloads everything from the store, discarding in-memory state.
// Between concurrent instances sharing one store this is last-writer-wins.
func (s *InventoryService) RefreshData(ctx context.Context) error {
	return s.Load(ctx)
}

// RefreshStats recomputes and persists the stats caches without reloading
// the collections.
func (s *InventoryService) RefreshStats(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	eqStats := stats.ComputeEquipmentStats(s.equipment)
	deptStats := stats.ComputeDepartmentStats(s.departments, s.equipment)
	if err := s.store.Save(ctx, store.KeyEquipmentStats, eqStats); err != nil {
		s.logger.Error("failed to persist equipment stats", zap.Error(err))
		return err
	}
	if err := s.store.Save(ctx, store.KeyDepartmentStats, deptStats); err != nil {
		s.logger.Error("failed to persist department stats", zap.Error(err))
		return err
	}
	s.equipmentStats = eqStats
	s.departmentStats = deptStats
	return nil
}

// saveEquipmentLocked persists a new equipment collection together with
// freshly computed stats, then commits all three to memory. Caller must hold
// the write lock.
func (s *InventoryService) saveEquipmentLocked(ctx context.Context, equipment []entities.Equipment) error {
	if err := s.store.Save(ctx, store.KeyEquipment, equipment); err != nil {
		return err
	}
	eqStats := stats.ComputeEquipmentStats(equipment)
	deptStats := stats.ComputeDepartmentStats(s.departments, equipment)
	if err := s.store.Save(ctx, store.KeyEquipmentStats, eqStats); err != nil {
		return err
	}
	if err := s.store.Save(ctx, store.KeyDepartmentStats, deptStats); err != nil {
		return err
	}
	s.equipment = equipment
	s.equipmentStats = eqStats
	s.departmentStats = deptStats
	return nil
}

// ---- read accessors: snapshot copies, safe for callers to retain ----

func (s *InventoryService) Departments() []entities.Department {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Department(nil), s.departments...)
}

func (s *InventoryService) Categories() []entities.EquipmentCategory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.EquipmentCategory(nil), s.categories...)
}

func (s *InventoryService) Equipment() []entities.Equipment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Equipment(nil), s.equipment...)
}

func (s *InventoryService) Usages() []entities.EquipmentUsage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.EquipmentUsage(nil), s.usage...)
}

func (s *InventoryService) Notifications() []entities.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.Notification(nil), s.notifications...)
}

func (s *InventoryService) EquipmentStats() entities.EquipmentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.equipmentStats
}

func (s *InventoryService) DepartmentStats() []entities.DepartmentStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]entities.DepartmentStats(nil), s.departmentStats...)
}
