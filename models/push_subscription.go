package models

import "time"

// PushSubscription is a user's Web Push registration: the push service's
// delivery endpoint plus the browser-generated encryption keys. At most one
// per user; deleted when the endpoint reports itself gone (404/410).
type PushSubscription struct {
    ID        uint      `gorm:"primaryKey" json:"id"`
    UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
    Endpoint  string    `gorm:"size:512;not null" json:"endpoint"`
    P256dh    string    `gorm:"size:256" json:"p256dh"`
    Auth      string    `gorm:"size:256" json:"auth"`
    CreatedAt time.Time `json:"created_at"`
    UpdatedAt time.Time `json:"updated_at"`
}
