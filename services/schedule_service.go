package services

import (
	"errors"

	"github.com/Akoirala47/bett/config"
	"github.com/Akoirala47/bett/models"

	"gorm.io/gorm"
)

func GetSchedule(userID uint) (*models.Schedule, error) {
	var schedule models.Schedule
	err := config.DB.Where("user_id = ?", userID).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// UpsertSchedule replaces the user's gym days and calorie goal. A nil
// calorieGoal clears the goal entirely.
func UpsertSchedule(userID uint, gymDays []int, calorieGoal *int) (*models.Schedule, error) {
	var schedule models.Schedule
	err := config.DB.Where("user_id = ?", userID).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		schedule = models.Schedule{UserID: userID, GymDays: gymDays, CalorieGoal: calorieGoal}
		if err := config.DB.Create(&schedule).Error; err != nil {
			return nil, err
		}
		return &schedule, nil
	}
	if err != nil {
		return nil, err
	}

	schedule.GymDays = gymDays
	schedule.CalorieGoal = calorieGoal
	if err := config.DB.Save(&schedule).Error; err != nil {
		return nil, err
	}
	return &schedule, nil
}
