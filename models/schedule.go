package models

import (
    "gorm.io/gorm"
)

// Schedule holds a user's weekly gym plan and optional calorie target.
// GymDays are weekday indices 0–6 (Sunday = 0). A nil CalorieGoal means
// the user has no calorie goal at all.
type Schedule struct {
    gorm.Model
    UserID      uint  `gorm:"uniqueIndex;not null" json:"user_id"`
    GymDays     []int `gorm:"serializer:json" json:"gym_days"`
    CalorieGoal *int  `json:"calorie_goal"`
}
