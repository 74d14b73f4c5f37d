package entities

type EquipmentStatus string

const (
	StatusAvailable   EquipmentStatus = "available"
	StatusInUse       EquipmentStatus = "in_use"
	StatusMaintenance EquipmentStatus = "maintenance"
	StatusRepair      EquipmentStatus = "repair"
	StatusRetired     EquipmentStatus = "retired"
	StatusLost        EquipmentStatus = "lost"
	StatusDamaged     EquipmentStatus = "damaged"
)

type Equipment struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	SerialNumber        string          `json:"serialNumber,omitempty"`
	Model               string          `json:"model,omitempty"`
	Manufacturer        string          `json:"manufacturer,omitempty"`
	CategoryID          string          `json:"categoryId"`
	DepartmentID        string          `json:"departmentId"`
	Status              EquipmentStatus `json:"status"`
	Location            string          `json:"location,omitempty"`
	PurchaseDate        string          `json:"purchaseDate,omitempty"`
	WarrantyExpiry      string          `json:"warrantyExpiry,omitempty"`
	LastMaintenanceDate string          `json:"lastMaintenanceDate,omitempty"`
	NextMaintenanceDate string          `json:"nextMaintenanceDate,omitempty"`
	Notes               string          `json:"notes,omitempty"`
	CreatedAt           string          `json:"createdAt"`
	UpdatedAt           string          `json:"updatedAt"`
	CreatedBy           string          `json:"createdBy"`
	UpdatedBy           string          `json:"updatedBy"`
}
