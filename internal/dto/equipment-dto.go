package dto

type CreateEquipmentDTO struct {
	Name                string `json:"name" validate:"required"`
	SerialNumber        string `json:"serialNumber"`
	Model               string `json:"model"`
	Manufacturer        string `json:"manufacturer"`
	CategoryID          string `json:"categoryId" validate:"required"`
	DepartmentID        string `json:"departmentId" validate:"required"`
	Status              string `json:"status" validate:"required,oneof=available in_use maintenance repair retired lost damaged"`
	Location            string `json:"location"`
	PurchaseDate        string `json:"purchaseDate"`
	WarrantyExpiry      string `json:"warrantyExpiry"`
	LastMaintenanceDate string `json:"lastMaintenanceDate"`
	NextMaintenanceDate string `json:"nextMaintenanceDate"`
	Notes               string `json:"notes"`
}

type UpdateEquipmentDTO struct {
	Name                *string `json:"name" validate:"omitempty,min=1"`
	SerialNumber        *string `json:"serialNumber"`
	Model               *string `json:"model"`
	Manufacturer        *string `json:"manufacturer"`
	CategoryID          *string `json:"categoryId" validate:"omitempty,min=1"`
	DepartmentID        *string `json:"departmentId" validate:"omitempty,min=1"`
	Status              *string `json:"status" validate:"omitempty,oneof=available in_use maintenance repair retired lost damaged"`
	Location            *string `json:"location"`
	PurchaseDate        *string `json:"purchaseDate"`
	WarrantyExpiry      *string `json:"warrantyExpiry"`
	LastMaintenanceDate *string `json:"lastMaintenanceDate"`
	NextMaintenanceDate *string `json:"nextMaintenanceDate"`
	Notes               *string `json:"notes"`
}

type ChangeEquipmentStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=available in_use maintenance repair retired lost damaged"`
}
