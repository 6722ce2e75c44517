package entity

import "time"

// Notification es una entrada del feed de avisos de la aplicación.
type Notification struct {
	ID        string
	Message   string
	Timestamp time.Time
	Read      bool
}
