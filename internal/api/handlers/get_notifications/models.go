package get_notifications

import "github.com/m04kA/SMC-DetailingService/internal/service/sessions/models"

// NotificationsResponse HTTP response model
type NotificationsResponse struct {
	Notifications []models.NotificationResponse `json:"notifications"`
}
