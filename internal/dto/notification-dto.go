package dto

type CreateNotificationDTO struct {
	UserID      string `json:"userId" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Message     string `json:"message" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=info warning error success"`
	RelatedID   string `json:"relatedId"`
	RelatedType string `json:"relatedType" validate:"omitempty,oneof=equipment maintenance usage"`
}
