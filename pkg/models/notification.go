package models

import "time"

// Notification is a persisted in-app notification for one user. Title and
// message are stored in English; localized reads COALESCE to the requested
// language columns where translations exist.
type Notification struct {
	ID          string    `json:"id" db:"id"`
	UserID      string    `json:"user_id" db:"user_id"`
	Title       string    `json:"title" db:"title"`
	Message     string    `json:"message" db:"message"`
	Type        string    `json:"type" db:"type"`
	ReferenceID *string   `json:"reference_id,omitempty" db:"reference_id"`
	IsRead      bool      `json:"is_read" db:"is_read"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
