package models

import (
    "time"

    "gorm.io/gorm"
)

const (
    SprintStatusPending   = "pending"
    SprintStatusActive    = "active"
    SprintStatusCompleted = "completed"
)

// Sprint is a time-boxed competitive goal with a wager attached.
// At most one active and one pending sprint exist per user.
type Sprint struct {
    gorm.Model
    UserID       uint      `gorm:"index;not null" json:"user_id"`
    GoalTitle    string    `gorm:"not null" json:"goal_title"`
    TargetValue  float64   `json:"target_value"`
    StartValue   float64   `json:"start_value"`
    CurrentValue float64   `json:"current_value"`
    Unit         string    `gorm:"size:16" json:"unit"`
    MoneyOnLine  int       `json:"money_on_line"`
    SprintNumber int       `json:"sprint_number"`
    StartDate    time.Time `json:"start_date"`
    EndDate      time.Time `json:"end_date"`
    Status       string    `gorm:"size:16;index" json:"status"`
}
