package dto

type CreateCategoryDTO struct {
	Name         string `json:"name" validate:"required"`
	Description  string `json:"description"`
	DepartmentID string `json:"departmentId" validate:"required"`
}

type UpdateCategoryDTO struct {
	Name         *string `json:"name" validate:"omitempty,min=1"`
	Description  *string `json:"description"`
	DepartmentID *string `json:"departmentId" validate:"omitempty,min=1"`
}
