package services

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/dto"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/entities"
	"github.com/TATAaunt/hospital-surgery-equipment-management/internal/store"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/contextkeys"
	"github.com/TATAaunt/hospital-surgery-equipment-management/pkg/utils"
)

func contextWithActor(ctx context.Context, userID, username string) context.Context {
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, userID)
	return context.WithValue(ctx, contextkeys.UsernameKey, username)
}

// fakeStore is an in-memory Store with per-key failure injection.
type fakeStore struct {
	mu       sync.Mutex
	blobs    map[string]json.RawMessage
	failKeys map[string]error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		blobs:    make(map[string]json.RawMessage),
		failKeys: make(map[string]error),
	}
}

func (f *fakeStore) Load(_ context.Context, key string, v interface{}) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failKeys[key]; err != nil {
		return false, err
	}
	data, ok := f.blobs[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(data, v)
}

func (f *fakeStore) Save(_ context.Context, key string, v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failKeys[key]; err != nil {
		return err
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	f.blobs[key] = data
	return nil
}

func newTestInventory(t *testing.T) (*InventoryService, *fakeStore) {
	t.Helper()
	fs := newFakeStore()
	svc := NewInventoryService(fs, zap.NewNop())
	require.NoError(t, svc.Load(context.Background()))
	return svc, fs
}

func TestAddDepartment(t *testing.T) {
	svc, fs := newTestInventory(t)
	ctx := context.Background()

	dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)
	require.NotNil(t, dept)

	assert.NotEmpty(t, dept.ID)
	assert.Equal(t, dept.CreatedAt, dept.UpdatedAt)

	var persisted []entities.Department
	found, err := fs.Load(ctx, store.KeyDepartments, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	require.Len(t, persisted, 1)
	assert.Equal(t, dept.ID, persisted[0].ID)
}

func TestAddDepartmentUniqueIDs(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "D", Code: "C"})
		require.NoError(t, err)
		assert.False(t, seen[dept.ID], "duplicate id %s", dept.ID)
		seen[dept.ID] = true
	}
}

func TestUpdateDepartmentPartial(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG", Description: "main"})
	require.NoError(t, err)

	newName := "General Surgery"
	updated, err := svc.UpdateDepartment(ctx, dept.ID, dto.UpdateDepartmentDTO{Name: &newName})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "General Surgery", updated.Name)
	assert.Equal(t, "SURG", updated.Code)
	assert.Equal(t, "main", updated.Description)
	assert.Equal(t, dept.CreatedAt, updated.CreatedAt)
	assert.GreaterOrEqual(t, updated.UpdatedAt, dept.UpdatedAt)
}

func TestUpdateDepartmentUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	_, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)

	name := "Ghost"
	updated, err := svc.UpdateDepartment(ctx, "no-such-id", dto.UpdateDepartmentDTO{Name: &name})
	assert.NoError(t, err)
	assert.Nil(t, updated)
	assert.Len(t, svc.Departments(), 1)
}

func TestDeleteDepartmentUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	_, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, "no-such-id"))
	assert.Len(t, svc.Departments(), 1)
}

func TestDeleteDepartmentCascades(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	surgery, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)
	radiology, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Radiology", Code: "RAD"})
	require.NoError(t, err)

	cat, err := svc.AddCategory(ctx, dto.CreateCategoryDTO{Name: "Scalpels", DepartmentID: surgery.ID})
	require.NoError(t, err)
	otherCat, err := svc.AddCategory(ctx, dto.CreateCategoryDTO{Name: "Scanners", DepartmentID: radiology.ID})
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		_, err = svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
			Name:         "Scalpel",
			CategoryID:   cat.ID,
			DepartmentID: surgery.ID,
			Status:       string(entities.StatusAvailable),
		})
		require.NoError(t, err)
	}
	kept, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "MRI",
		CategoryID:   otherCat.ID,
		DepartmentID: radiology.ID,
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDepartment(ctx, surgery.ID))

	require.Len(t, svc.Departments(), 1)
	assert.Equal(t, radiology.ID, svc.Departments()[0].ID)
	require.Len(t, svc.Categories(), 1)
	assert.Equal(t, otherCat.ID, svc.Categories()[0].ID)
	require.Len(t, svc.Equipment(), 1)
	assert.Equal(t, kept.ID, svc.Equipment()[0].ID)

	eqStats := svc.EquipmentStats()
	assert.Equal(t, 1, eqStats.Total)
	deptStats := svc.DepartmentStats()
	require.Len(t, deptStats, 1)
	assert.Equal(t, radiology.ID, deptStats[0].DepartmentID)
}

func TestAddEquipmentRecomputesStats(t *testing.T) {
	svc, fs := newTestInventory(t)
	ctx := context.Background()

	dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: dept.ID,
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)
	assert.Equal(t, "system", eq.CreatedBy)
	assert.Equal(t, "system", eq.UpdatedBy)

	eqStats := svc.EquipmentStats()
	assert.Equal(t, 1, eqStats.Total)
	assert.Equal(t, 1, eqStats.Available)

	var persisted entities.EquipmentStats
	found, err := fs.Load(ctx, store.KeyEquipmentStats, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, eqStats, persisted)
}

func TestUpdateEquipmentPartial(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		SerialNumber: "SN-001",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
		Location:     "OR-1",
	})
	require.NoError(t, err)

	updated, err := svc.UpdateEquipment(ctx, eq.ID, dto.UpdateEquipmentDTO{
		Location: utils.Ptr("OR-3"),
		Notes:    utils.Ptr("recalibrated"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "OR-3", updated.Location)
	assert.Equal(t, "recalibrated", updated.Notes)
	assert.Equal(t, "Scalpel", updated.Name)
	assert.Equal(t, "SN-001", updated.SerialNumber)
	assert.Equal(t, entities.StatusAvailable, updated.Status)

	missing, err := svc.UpdateEquipment(ctx, "no-such-id", dto.UpdateEquipmentDTO{Name: utils.Ptr("Ghost")})
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestChangeEquipmentStatus(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	changed, err := svc.ChangeEquipmentStatus(ctx, eq.ID, entities.StatusMaintenance)
	require.NoError(t, err)
	require.NotNil(t, changed)
	assert.Equal(t, entities.StatusMaintenance, changed.Status)

	eqStats := svc.EquipmentStats()
	assert.Equal(t, 1, eqStats.Maintenance)
	assert.Zero(t, eqStats.Available)
}

func TestActorStampedFromContext(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := contextWithActor(context.Background(), "usr-1", "dr.smith")

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)
	assert.Equal(t, "dr.smith", eq.CreatedBy)
	assert.Equal(t, "dr.smith", eq.UpdatedBy)
}

func TestStartAndEndUsage(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)
	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: dept.ID,
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	record, err := svc.StartUsage(ctx, dto.StartUsageDTO{
		EquipmentID: eq.ID,
		Purpose:     "appendectomy",
	})
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entities.UsageActive, record.Status)
	assert.Equal(t, dept.ID, record.DepartmentID)
	assert.Empty(t, record.EndTime)

	assert.Equal(t, entities.StatusInUse, svc.Equipment()[0].Status)

	deptStats := svc.DepartmentStats()
	require.Len(t, deptStats, 1)
	assert.Equal(t, 1, deptStats[0].InUseCount)
	assert.InDelta(t, 100.0, deptStats[0].UtilizationRate, 0.0001)

	ended, err := svc.EndUsage(ctx, record.ID, dto.EndUsageDTO{Notes: null.StringFrom("went fine")})
	require.NoError(t, err)
	require.NotNil(t, ended)
	assert.Equal(t, entities.UsageCompleted, ended.Status)
	assert.Equal(t, "went fine", ended.Notes)
	assert.NotEmpty(t, ended.EndTime)
	assert.GreaterOrEqual(t, ended.EndTime, ended.StartTime)

	assert.Equal(t, entities.StatusAvailable, svc.Equipment()[0].Status)

	notifications := svc.Notifications()
	require.Len(t, notifications, 1)
	assert.Equal(t, entities.NotificationSuccess, notifications[0].Type)
	assert.Equal(t, eq.ID, notifications[0].RelatedID)
}

func TestEndUsageKeepsNotesWhenOmitted(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	record, err := svc.StartUsage(ctx, dto.StartUsageDTO{
		EquipmentID: eq.ID,
		Purpose:     "surgery",
		Notes:       null.StringFrom("original"),
	})
	require.NoError(t, err)

	ended, err := svc.EndUsage(ctx, record.ID, dto.EndUsageDTO{})
	require.NoError(t, err)
	require.NotNil(t, ended)
	assert.Equal(t, "original", ended.Notes)
}

func TestEndUsageResetsStatusUnconditionally(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	record, err := svc.StartUsage(ctx, dto.StartUsageDTO{EquipmentID: eq.ID, Purpose: "surgery"})
	require.NoError(t, err)

	_, err = svc.ChangeEquipmentStatus(ctx, eq.ID, entities.StatusRepair)
	require.NoError(t, err)

	_, err = svc.EndUsage(ctx, record.ID, dto.EndUsageDTO{})
	require.NoError(t, err)
	assert.Equal(t, entities.StatusAvailable, svc.Equipment()[0].Status)
}

func TestEndUsageUnknownIDIsNoOp(t *testing.T) {
	svc, _ := newTestInventory(t)

	ended, err := svc.EndUsage(context.Background(), "no-such-usage", dto.EndUsageDTO{})
	assert.NoError(t, err)
	assert.Nil(t, ended)
}

func TestStartUsageAllowsConcurrentActiveRecords(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	eq, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	_, err = svc.StartUsage(ctx, dto.StartUsageDTO{EquipmentID: eq.ID, Purpose: "first"})
	require.NoError(t, err)
	_, err = svc.StartUsage(ctx, dto.StartUsageDTO{EquipmentID: eq.ID, Purpose: "second"})
	require.NoError(t, err)

	active := 0
	for _, u := range svc.Usages() {
		if u.Status == entities.UsageActive {
			active++
		}
	}
	assert.Equal(t, 2, active)
}

func TestFailedSaveLeavesMemoryUntouched(t *testing.T) {
	svc, fs := newTestInventory(t)
	ctx := context.Background()

	_, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)

	fs.failKeys[store.KeyDepartments] = errors.New("disk full")
	_, err = svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Radiology", Code: "RAD"})
	assert.Error(t, err)
	assert.Len(t, svc.Departments(), 1)

	name := "Renamed"
	_, err = svc.UpdateDepartment(ctx, svc.Departments()[0].ID, dto.UpdateDepartmentDTO{Name: &name})
	assert.Error(t, err)
	assert.Equal(t, "Surgery", svc.Departments()[0].Name)
}

func TestDeleteDepartmentFailedSaveLeavesMemoryUntouched(t *testing.T) {
	svc, fs := newTestInventory(t)
	ctx := context.Background()

	dept, err := svc.AddDepartment(ctx, dto.CreateDepartmentDTO{Name: "Surgery", Code: "SURG"})
	require.NoError(t, err)
	_, err = svc.AddCategory(ctx, dto.CreateCategoryDTO{Name: "Scalpels", DepartmentID: dept.ID})
	require.NoError(t, err)
	_, err = svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: dept.ID,
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	fs.failKeys[store.KeyEquipment] = errors.New("disk full")
	err = svc.DeleteDepartment(ctx, dept.ID)
	assert.Error(t, err)

	// No collection was committed, not even the ones whose save may have
	// succeeded before the failure.
	assert.Len(t, svc.Departments(), 1)
	assert.Len(t, svc.Categories(), 1)
	assert.Len(t, svc.Equipment(), 1)
	assert.Equal(t, 1, svc.EquipmentStats().Total)
}

func TestNotificationsLifecycle(t *testing.T) {
	svc, _ := newTestInventory(t)
	ctx := context.Background()

	first, err := svc.AddNotification(ctx, dto.CreateNotificationDTO{
		UserID:  "usr-1",
		Title:   "Heads up",
		Message: "something happened",
		Type:    string(entities.NotificationInfo),
	})
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.NotEmpty(t, first.ID)
	assert.NotEmpty(t, first.CreatedAt)
	assert.False(t, first.IsRead)

	second, err := svc.AddNotification(ctx, dto.CreateNotificationDTO{
		UserID:  "usr-1",
		Title:   "Another",
		Message: "more news",
		Type:    string(entities.NotificationWarning),
	})
	require.NoError(t, err)

	read, err := svc.MarkNotificationAsRead(ctx, first.ID)
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.True(t, read.IsRead)

	missing, err := svc.MarkNotificationAsRead(ctx, "no-such-id")
	assert.NoError(t, err)
	assert.Nil(t, missing)

	require.NoError(t, svc.MarkAllNotificationsAsRead(ctx))
	for _, n := range svc.Notifications() {
		assert.True(t, n.IsRead, "notification %s should be read", n.ID)
	}
	_ = second
}

func TestLoadRecomputesStats(t *testing.T) {
	fs := newFakeStore()
	ctx := context.Background()

	require.NoError(t, fs.Save(ctx, store.KeyDepartments, []entities.Department{{ID: "d1", Name: "Surgery"}}))
	require.NoError(t, fs.Save(ctx, store.KeyEquipment, []entities.Equipment{
		{ID: "e1", DepartmentID: "d1", Status: entities.StatusInUse},
		{ID: "e2", DepartmentID: "d1", Status: entities.StatusAvailable},
	}))
	// Stale cache that must be ignored on load.
	require.NoError(t, fs.Save(ctx, store.KeyEquipmentStats, entities.EquipmentStats{Total: 99}))

	svc := NewInventoryService(fs, zap.NewNop())
	require.NoError(t, svc.Load(ctx))

	eqStats := svc.EquipmentStats()
	assert.Equal(t, 2, eqStats.Total)
	assert.Equal(t, 1, eqStats.InUse)

	deptStats := svc.DepartmentStats()
	require.Len(t, deptStats, 1)
	assert.InDelta(t, 50.0, deptStats[0].UtilizationRate, 0.0001)
}

func TestRefreshStatsPersistsCaches(t *testing.T) {
	svc, fs := newTestInventory(t)
	ctx := context.Background()

	_, err := svc.AddEquipment(ctx, dto.CreateEquipmentDTO{
		Name:         "Scalpel",
		CategoryID:   "c1",
		DepartmentID: "d1",
		Status:       string(entities.StatusAvailable),
	})
	require.NoError(t, err)

	delete(fs.blobs, store.KeyEquipmentStats)
	require.NoError(t, svc.RefreshStats(ctx))

	var persisted entities.EquipmentStats
	found, err := fs.Load(ctx, store.KeyEquipmentStats, &persisted)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 1, persisted.Total)
}
