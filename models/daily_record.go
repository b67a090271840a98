package models

import (
    "gorm.io/gorm"
)

// DailyRecord is one row per (user, calendar date). Upserted, never deleted.
// Date is a "YYYY-MM-DD" string so the unique index compares calendar days,
// not instants.
type DailyRecord struct {
    gorm.Model
    UserID             uint     `gorm:"uniqueIndex:idx_user_date;not null" json:"user_id"`
    Date               string   `gorm:"uniqueIndex:idx_user_date;size:10;not null" json:"date"`
    GymCompleted       bool     `json:"gym_completed"`
    CaloriesCompleted  bool     `json:"calories_completed"`
    CurrentCalories    int      `json:"current_calories"`
    Weight             *float64 `json:"weight"`
}
