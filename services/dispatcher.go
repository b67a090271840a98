package services

import (
	"fmt"
	"log"
	"time"

	"github.com/Akoirala47/bett/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event categories a daily-record mutation can fire. "generic" covers a
// calorie total that rose without crossing the completion threshold.
const (
	EventGym      = "gym"
	EventCalories = "calories"
	EventWeight   = "weight"
	EventGeneric  = "generic"
)

// BannerDuration is how long clients keep the in-app banner up.
const BannerDuration = 3 * time.Second

// TauntSender delivers one push notification about the rival's progress.
// Satisfied by *PushRelay; faked in tests.
type TauntSender interface {
	Send(req RelayRequest) (*RelayNotification, error)
}

type Dispatcher struct {
	db    *gorm.DB
	hub   *RealtimeHub
	relay TauntSender
}

func NewDispatcher(db *gorm.DB, hub *RealtimeHub, relay TauntSender) *Dispatcher {
	return &Dispatcher{db: db, hub: hub, relay: relay}
}

// Diff reports which event categories a record mutation fired. The four
// rules are independent; one mutation can fire several. A nil prev is
// treated as an empty record (nothing completed, nothing logged).
func Diff(prev, next *models.DailyRecord) []string {
	if next == nil {
		return nil
	}
	var empty models.DailyRecord
	if prev == nil {
		prev = &empty
	}

	var events []string
	if !prev.GymCompleted && next.GymCompleted {
		events = append(events, EventGym)
	}
	if !prev.CaloriesCompleted && next.CaloriesCompleted {
		events = append(events, EventCalories)
	}
	if next.CurrentCalories > prev.CurrentCalories {
		events = append(events, EventGeneric)
	}
	if next.Weight != nil && (prev.Weight == nil || *next.Weight != *prev.Weight) {
		events = append(events, EventWeight)
	}
	return events
}

// Notify translates a record mutation by actor into notifications for the
// rival: a banner event on the rival's realtime stream, a stored Alert, and
// a fire-and-forget web push. Push failures are logged, never propagated —
// the write that triggered the dispatch has already committed.
func (d *Dispatcher) Notify(actor, rival models.Profile, prev, next *models.DailyRecord, potAmount int) {
	d.hub.Broadcast(rival.ID, Event{
		Kind:     "record.updated",
		Table:    "daily_records",
		Previous: prev,
		Next:     next,
	})

	events := Diff(prev, next)

	for _, category := range events {
		message := RandomTaunt(category, actor.DisplayName, potAmount)
		title := TauntTitle(category)

		alert := &models.Alert{
			UserID:    rival.ID,
			Type:      category,
			Title:     title,
			Message:   message,
			CreatedAt: time.Now(),
		}
		if err := d.db.Create(alert).Error; err != nil {
			log.Printf("[Dispatch] failed to store alert: %v", err)
		}

		d.hub.Broadcast(rival.ID, Event{
			Kind: "rival.progress",
			Payload: map[string]any{
				"type":        category,
				"title":       title,
				"message":     message,
				"tag":         fmt.Sprintf("rival-%s-%s", category, uuid.NewString()),
				"duration_ms": BannerDuration.Milliseconds(),
			},
		})

		if d.relay == nil {
			continue
		}
		req := RelayRequest{
			RivalUserID: rival.ID,
			Type:        category,
			ActorName:   actor.DisplayName,
			BetAmount:   potAmount,
		}
		go func() {
			if _, err := d.relay.Send(req); err != nil {
				log.Printf("[Dispatch] push to user %d failed: %v", req.RivalUserID, err)
			}
		}()
	}
}
