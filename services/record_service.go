package services

import (
	"errors"
	"time"

	"github.com/Akoirala47/bett/models"

	"gorm.io/gorm"
)

// RecordPatch is a partial daily-record update; nil fields are untouched.
type RecordPatch struct {
	GymCompleted      *bool    `json:"gym_completed"`
	CaloriesCompleted *bool    `json:"calories_completed"`
	CurrentCalories   *int     `json:"current_calories"`
	Weight            *float64 `json:"weight"`
}

type RecordService struct {
	db         *gorm.DB
	sprints    *SprintService
	game       *GameService
	dispatcher *Dispatcher
}

func NewRecordService(db *gorm.DB, sprints *SprintService, game *GameService, dispatcher *Dispatcher) *RecordService {
	return &RecordService{db: db, sprints: sprints, game: game, dispatcher: dispatcher}
}

func (r *RecordService) Get(userID uint, date string) (*models.DailyRecord, error) {
	var record models.DailyRecord
	err := r.db.Where("user_id = ? AND date = ?", userID, date).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *RecordService) Recent(userID uint, limit int) ([]models.DailyRecord, error) {
	var records []models.DailyRecord
	err := r.db.Where("user_id = ?", userID).Order("date desc").Limit(limit).Find(&records).Error
	return records, err
}

// Upsert writes the (user, date) record and, when the mutation is visible
// to the rival, routes the before/after pair through the dispatcher. Only
// the actor's own record is ever written here; rivals read, never write.
func (r *RecordService) Upsert(actor models.Profile, date string, patch RecordPatch, now time.Time) (*models.DailyRecord, error) {
	prev, err := r.Get(actor.ID, date)
	if err != nil {
		return nil, err
	}

	next := models.DailyRecord{UserID: actor.ID, Date: date}
	if prev != nil {
		next = *prev
	}
	if patch.GymCompleted != nil {
		next.GymCompleted = *patch.GymCompleted
	}
	if patch.CaloriesCompleted != nil {
		next.CaloriesCompleted = *patch.CaloriesCompleted
	}
	if patch.CurrentCalories != nil && *patch.CurrentCalories >= 0 {
		next.CurrentCalories = *patch.CurrentCalories
	}
	if patch.Weight != nil && *patch.Weight > 0 {
		next.Weight = patch.Weight
	}

	if err := r.db.Save(&next).Error; err != nil {
		return nil, err
	}

	today := now.Format("2006-01-02")
	if patch.Weight != nil && date == today && r.sprints != nil {
		if err := r.sprints.UpdateCurrent(actor.ID, *patch.Weight); err != nil {
			return nil, err
		}
	}

	// Notifications only fire for today's record; backfilled edits stay
	// quiet, matching how the realtime feed filtered on the current date.
	if r.dispatcher != nil && date == today {
		if rival, err := r.Rival(actor.ID); err == nil && rival != nil {
			pot := 0
			if r.game != nil {
				pot = r.game.PotAmount()
			}
			r.dispatcher.Notify(actor, *rival, prev, &next, pot)
		}
	}

	return &next, nil
}

// Rival returns the other participant, or nil when the actor is alone.
func (r *RecordService) Rival(userID uint) (*models.Profile, error) {
	var rival models.Profile
	err := r.db.Where("id <> ?", userID).First(&rival).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rival, nil
}
