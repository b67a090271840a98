package models

import (
    "gorm.io/gorm"
)

// Profile is one of the two participants. Registration refuses a third row.
type Profile struct {
    gorm.Model
    Email       string `gorm:"uniqueIndex;not null" json:"email"`
    Password    string `gorm:"not null" json:"-"`
    DisplayName string `json:"display_name"`
}
