package entities

// EquipmentStats is a derived snapshot of equipment counts by status. It is
// persisted only as a cache and always recomputed from the equipment
// collection, never read back as a source of truth.
type EquipmentStats struct {
	Total       int `json:"total"`
	Available   int `json:"available"`
	InUse       int `json:"inUse"`
	Maintenance int `json:"maintenance"`
	Repair      int `json:"repair"`
	Retired     int `json:"retired"`
	Lost        int `json:"lost"`
	Damaged     int `json:"damaged"`
}

type DepartmentStats struct {
	DepartmentID     string  `json:"departmentId"`
	DepartmentName   string  `json:"departmentName"`
	EquipmentCount   int     `json:"equipmentCount"`
	AvailableCount   int     `json:"availableCount"`
	InUseCount       int     `json:"inUseCount"`
	MaintenanceCount int     `json:"maintenanceCount"`
	UtilizationRate  float64 `json:"utilizationRate"`
}
