package entities

type NotificationType string

const (
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
	NotificationSuccess NotificationType = "success"
)

type Notification struct {
	ID          string           `json:"id"`
	UserID      string           `json:"userId"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationType `json:"type"`
	IsRead      bool             `json:"isRead"`
	RelatedID   string           `json:"relatedId,omitempty"`
	RelatedType string           `json:"relatedType,omitempty"`
	CreatedAt   string           `json:"createdAt"`
}
