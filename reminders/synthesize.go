package reminders

import (
	"time"

	"tanam/models"
)

const (
	TypeWatering    = "watering"
	TypeFertilizing = "fertilizing"
	TypeHarvest     = "harvest"

	// wateringLeadDays is how far out a synthesized watering reminder lands;
	// coverageDays is how recently a watering reminder must have been handled
	// for a planting to count as covered.
	wateringLeadDays = 3
	coverageDays     = 3
)

// Synthesize derives watering reminders for active plantings that have no
// recent coverage. Purely computed: nothing here is ever persisted, and the
// same inputs always produce the same reminders, so callers may re-run it
// arbitrarily often. `watering` must hold the user's watering reminders that
// are still open or were scheduled within the coverage window.
func Synthesize(plantings []models.PlantingRecord, watering []models.Reminder, now time.Time) []models.Reminder {
	coverageCutoff := now.AddDate(0, 0, -coverageDays)

	covered := make(map[string]bool)
	for _, r := range watering {
		if r.ReminderType != TypeWatering || r.PlantingID == "" {
			continue
		}
		if !r.IsCompleted || r.ScheduledDate.After(coverageCutoff) {
			covered[r.PlantingID] = true
		}
	}

	var synthetic []models.Reminder
	for _, p := range plantings {
		if p.IsCompleted || covered[p.ID] {
			continue
		}
		synthetic = append(synthetic, models.Reminder{
			ID:            "auto-reminder-" + p.ID + "-" + TypeWatering,
			UserID:        p.UserID,
			PlantingID:    p.ID,
			ReminderType:  TypeWatering,
			ScheduledDate: now.AddDate(0, 0, wateringLeadDays),
			Message:       "Siram tanaman " + p.CropName + " Anda",
			CropName:      p.CropName,
			Synthetic:     true,
		})
	}
	return synthetic
}
