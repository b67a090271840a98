package models

import "time"

// Alert is a persisted copy of a rival-progress notification, kept so a
// client that reconnects can show what it missed.
type Alert struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"` // recipient
	Type      string    `gorm:"size:20" json:"type"`  // "gym" | "calories" | "weight" | "generic"
	Title     string    `json:"title"`
	Message   string    `gorm:"type:text" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
