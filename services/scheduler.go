// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/Akoirala47/bett/models"

	"github.com/go-co-op/gocron/v2"
)

// StartRolloverScheduler sweeps sprints on a timer so they roll over even
// when neither client loads. On-load evaluation (EvaluateLifecycle) remains
// the primary path; this is the backstop.
func (s *SprintService) StartRolloverScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	_, _ = sched.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(func() {
			s.sweepRollover(time.Now())
		}),
	)
}

// sweepRollover completes every expired active sprint, then activates due
// pending sprints whose owner has no active sprint left.
func (s *SprintService) sweepRollover(now time.Time) {
	var expired []models.Sprint
	err := s.db.Where("status = ? AND end_date < ?", models.SprintStatusActive, now).
		Find(&expired).Error
	if err != nil {
		log.Printf("[Scheduler] DB error: %v", err)
		return
	}
	for _, sp := range expired {
		sp.Status = models.SprintStatusCompleted
		if err := s.db.Save(&sp).Error; err != nil {
			log.Printf("[Scheduler] Failed to complete sprint %d: %v", sp.ID, err)
		} else {
			log.Printf("[Scheduler] Completed expired sprint %d (%s)", sp.ID, sp.GoalTitle)
		}
	}

	var due []models.Sprint
	err = s.db.Where("status = ? AND start_date <= ?", models.SprintStatusPending, now).
		Order("start_date asc").Find(&due).Error
	if err != nil {
		log.Printf("[Scheduler] DB error: %v", err)
		return
	}
	for _, sp := range due {
		var count int64
		s.db.Model(&models.Sprint{}).
			Where("user_id = ? AND status = ?", sp.UserID, models.SprintStatusActive).
			Count(&count)
		if count > 0 {
			continue
		}
		sp.Status = models.SprintStatusActive
		if err := s.db.Save(&sp).Error; err != nil {
			log.Printf("[Scheduler] Failed to activate sprint %d: %v", sp.ID, err)
		} else {
			log.Printf("[Scheduler] Activated pending sprint %d (%s)", sp.ID, sp.GoalTitle)
		}
	}
}
