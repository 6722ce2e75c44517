package dto

import "time"

// NotificationResponse una entrada del feed de avisos.
type NotificationResponse struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Read      bool      `json:"read"`
}
