package reminders_test

import (
	"reflect"
	"testing"
	"time"

	"tanam/models"
	"tanam/reminders"
)

var now = time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC)

func activePlanting(id, crop string) models.PlantingRecord {
	return models.PlantingRecord{
		ID:          id,
		UserID:      "user-1",
		CropName:    crop,
		PlantedDate: now.AddDate(0, 0, -10),
		IsCompleted: false,
	}
}

func TestSynthesizeForUncoveredPlanting(t *testing.T) {
	t.Parallel()

	plantings := []models.PlantingRecord{activePlanting("p1", "tomat")}
	got := reminders.Synthesize(plantings, nil, now)

	if len(got) != 1 {
		t.Fatalf("Synthesize() = %+v, want one reminder", got)
	}
	r := got[0]
	if r.ID != "auto-reminder-p1-watering" {
		t.Errorf("ID = %q", r.ID)
	}
	if r.ReminderType != reminders.TypeWatering || !r.Synthetic {
		t.Errorf("unexpected reminder: %+v", r)
	}
	if !r.ScheduledDate.Equal(now.AddDate(0, 0, 3)) {
		t.Errorf("ScheduledDate = %v, want 3 days out", r.ScheduledDate)
	}
	if r.Message != "Siram tanaman tomat Anda" {
		t.Errorf("Message = %q", r.Message)
	}
}

func TestSynthesizeDedupsPendingReminder(t *testing.T) {
	t.Parallel()

	plantings := []models.PlantingRecord{activePlanting("p1", "tomat")}
	existing := []models.Reminder{{
		ID:            "r1",
		UserID:        "user-1",
		PlantingID:    "p1",
		ReminderType:  reminders.TypeWatering,
		ScheduledDate: now.AddDate(0, 0, 1),
		IsCompleted:   false,
	}}

	if got := reminders.Synthesize(plantings, existing, now); len(got) != 0 {
		t.Errorf("Synthesize() = %+v, want empty with a pending watering reminder", got)
	}
}

func TestSynthesizeDedupsRecentlyCompleted(t *testing.T) {
	t.Parallel()

	plantings := []models.PlantingRecord{activePlanting("p1", "cabai")}
	existing := []models.Reminder{{
		PlantingID:    "p1",
		ReminderType:  reminders.TypeWatering,
		ScheduledDate: now.AddDate(0, 0, -2),
		IsCompleted:   true,
	}}

	if got := reminders.Synthesize(plantings, existing, now); len(got) != 0 {
		t.Errorf("Synthesize() = %+v, want empty with recent coverage", got)
	}
}

func TestSynthesizeIgnoresStaleCompletedReminder(t *testing.T) {
	t.Parallel()

	plantings := []models.PlantingRecord{activePlanting("p1", "cabai")}
	existing := []models.Reminder{{
		PlantingID:    "p1",
		ReminderType:  reminders.TypeWatering,
		ScheduledDate: now.AddDate(0, 0, -5),
		IsCompleted:   true,
	}}

	if got := reminders.Synthesize(plantings, existing, now); len(got) != 1 {
		t.Errorf("Synthesize() = %+v, want one reminder past the coverage window", got)
	}
}

func TestSynthesizeSkipsCompletedPlantings(t *testing.T) {
	t.Parallel()

	done := activePlanting("p2", "padi")
	done.IsCompleted = true

	if got := reminders.Synthesize([]models.PlantingRecord{done}, nil, now); len(got) != 0 {
		t.Errorf("Synthesize() = %+v, want empty for harvested plantings", got)
	}
}

func TestSynthesizeIsIdempotent(t *testing.T) {
	t.Parallel()

	plantings := []models.PlantingRecord{
		activePlanting("p1", "tomat"),
		activePlanting("p2", "cabai"),
	}

	first := reminders.Synthesize(plantings, nil, now)
	second := reminders.Synthesize(plantings, nil, now)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated synthesis differed:\n%+v\n%+v", first, second)
	}
	if len(first) != 2 {
		t.Errorf("Synthesize() = %+v, want one reminder per uncovered planting", first)
	}
}
