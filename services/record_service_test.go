package services

import (
	"testing"
	"time"

	"github.com/Akoirala47/bett/models"
)

func TestUpsertCreatesAndPatches(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecordService(db, nil, nil, nil)
	now := time.Now()
	today := now.Format("2006-01-02")

	actor := models.Profile{Email: "a@bett.app", DisplayName: "Alex"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}

	record, err := svc.Upsert(actor, today, RecordPatch{GymCompleted: boolPtr(true)}, now)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !record.GymCompleted || record.CaloriesCompleted {
		t.Errorf("record = %+v", record)
	}

	// Second patch leaves unrelated fields alone.
	record, err = svc.Upsert(actor, today, RecordPatch{CurrentCalories: intPtr(1400), Weight: floatPtr(151)}, now)
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if !record.GymCompleted {
		t.Error("gym completion lost on second patch")
	}
	if record.CurrentCalories != 1400 || record.Weight == nil || *record.Weight != 151 {
		t.Errorf("record = %+v", record)
	}

	// Still one row for (user, date).
	var count int64
	db.Model(&models.DailyRecord{}).Where("user_id = ? AND date = ?", actor.ID, today).Count(&count)
	if count != 1 {
		t.Errorf("rows = %d, want 1 (upsert, not insert)", count)
	}
}

func TestUpsertWeightPropagatesToActiveSprint(t *testing.T) {
	db := newTestDB(t)
	sprints := NewSprintService(db, nil)
	svc := NewRecordService(db, sprints, nil, nil)
	now := time.Now()

	actor := models.Profile{Email: "a@bett.app", DisplayName: "Alex"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	if _, err := sprints.Create(actor.ID, CreateSprintInput{GoalTitle: "Cut", TargetValue: 145}, now); err != nil {
		t.Fatalf("create sprint: %v", err)
	}

	if _, err := svc.Upsert(actor, now.Format("2006-01-02"), RecordPatch{Weight: floatPtr(149)}, now); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	var sprint models.Sprint
	db.Where("user_id = ? AND status = ?", actor.ID, models.SprintStatusActive).First(&sprint)
	if sprint.CurrentValue != 149 {
		t.Errorf("sprint current = %v, want 149", sprint.CurrentValue)
	}
}

func TestUpsertTodayNotifiesRival(t *testing.T) {
	db := newTestDB(t)
	sender := &fakeSender{requests: make(chan RelayRequest, 4)}
	dispatcher := NewDispatcher(db, NewRealtimeHub(), sender)
	game := NewGameService(db, nil)
	svc := NewRecordService(db, nil, game, dispatcher)
	now := time.Now()

	actor := models.Profile{Email: "a@bett.app", DisplayName: "Alex"}
	rival := models.Profile{Email: "s@bett.app", DisplayName: "Sam"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	if err := db.Create(&rival).Error; err != nil {
		t.Fatalf("seed rival: %v", err)
	}

	if _, err := svc.Upsert(actor, now.Format("2006-01-02"), RecordPatch{GymCompleted: boolPtr(true)}, now); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	select {
	case req := <-sender.requests:
		if req.RivalUserID != rival.ID {
			t.Errorf("notified user %d, want rival %d", req.RivalUserID, rival.ID)
		}
		if req.Type != EventGym {
			t.Errorf("type = %s, want gym", req.Type)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("rival was never notified")
	}
}

func TestUpsertBackfilledDayStaysQuiet(t *testing.T) {
	db := newTestDB(t)
	sender := &fakeSender{requests: make(chan RelayRequest, 4)}
	dispatcher := NewDispatcher(db, NewRealtimeHub(), sender)
	svc := NewRecordService(db, nil, nil, dispatcher)
	now := time.Now()

	actor := models.Profile{Email: "a@bett.app", DisplayName: "Alex"}
	rival := models.Profile{Email: "s@bett.app", DisplayName: "Sam"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}
	if err := db.Create(&rival).Error; err != nil {
		t.Fatalf("seed rival: %v", err)
	}

	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")
	if _, err := svc.Upsert(actor, yesterday, RecordPatch{GymCompleted: boolPtr(true)}, now); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	select {
	case req := <-sender.requests:
		t.Fatalf("backfilled edit fired a notification: %+v", req)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestUpsertWithoutRivalIsFine(t *testing.T) {
	db := newTestDB(t)
	dispatcher := NewDispatcher(db, NewRealtimeHub(), &fakeSender{requests: make(chan RelayRequest, 1)})
	svc := NewRecordService(db, nil, nil, dispatcher)
	now := time.Now()

	actor := models.Profile{Email: "a@bett.app", DisplayName: "Alex"}
	if err := db.Create(&actor).Error; err != nil {
		t.Fatalf("seed actor: %v", err)
	}

	if _, err := svc.Upsert(actor, now.Format("2006-01-02"), RecordPatch{GymCompleted: boolPtr(true)}, now); err != nil {
		t.Fatalf("Upsert with no rival: %v", err)
	}
}
