package dto

import "github.com/aarondl/null/v8"

type StartUsageDTO struct {
	EquipmentID string      `json:"equipmentId" validate:"required"`
	Purpose     string      `json:"purpose" validate:"required"`
	Notes       null.String `json:"notes"`
}

type EndUsageDTO struct {
	Notes null.String `json:"notes"`
}
