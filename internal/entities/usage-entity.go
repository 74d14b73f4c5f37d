package entities

type UsageStatus string

const (
	UsageActive    UsageStatus = "active"
	UsageCompleted UsageStatus = "completed"
	UsageCancelled UsageStatus = "cancelled"
)

type EquipmentUsage struct {
	ID           string      `json:"id"`
	EquipmentID  string      `json:"equipmentId"`
	UserID       string      `json:"userId"`
	UserName     string      `json:"userName"`
	DepartmentID string      `json:"departmentId"`
	StartTime    string      `json:"startTime"`
	EndTime      string      `json:"endTime,omitempty"`
	Purpose      string      `json:"purpose"`
	Notes        string      `json:"notes,omitempty"`
	Status       UsageStatus `json:"status"`
	CreatedAt    string      `json:"createdAt"`
	UpdatedAt    string      `json:"updatedAt"`
}
