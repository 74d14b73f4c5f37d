package store

import "context"

// Persisted collection keys. The layout matches what the dashboard has always
// written: one JSON-encoded array or object per key.
const (
	KeyDepartments     = "departments"
	KeyCategories      = "categories"
	KeyEquipment       = "equipment"
	KeyUsage           = "equipment_usage"
	KeyNotifications   = "notifications"
	KeyEquipmentStats  = "equipment_stats"
	KeyDepartmentStats = "department_stats"
)

// Store reads and writes named JSON blobs. Each key is saved independently;
// there is no transaction spanning keys, so a failure between two saves can
// leave the store inconsistent. That is acceptable because derived keys
// (the stats caches) are always recomputed from the authoritative collections
// and never read back as truth.
type Store interface {
	// Load decodes the blob under key into v. A missing key is not an error:
	// it returns (false, nil) and leaves v untouched.
	Load(ctx context.Context, key string, v interface{}) (bool, error)
	Save(ctx context.Context, key string, v interface{}) error
}
