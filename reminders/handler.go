package reminders

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"tanam/db"
	"tanam/models"
	"tanam/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultHorizonDays = 7

// UpcomingReminders merges persisted reminders due within the horizon with
// synthesized watering reminders for uncovered active plantings. Read-only.
func UpcomingReminders(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	horizon := defaultHorizonDays
	if v, err := strconv.Atoi(r.URL.Query().Get("days")); err == nil && v > 0 {
		horizon = v
	}

	now := time.Now().UTC()
	cursor, err := db.RemindersCollection.Find(r.Context(), bson.M{
		"userId":        userID,
		"isCompleted":   false,
		"scheduledDate": bson.M{"$lte": now.AddDate(0, 0, horizon)},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}
	persisted := []models.Reminder{}
	if err := cursor.All(r.Context(), &persisted); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode reminders")
		return
	}

	plantingsCursor, err := db.PlantingsCollection.Find(r.Context(),
		bson.M{"userId": userID, "isCompleted": false})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch plantings")
		return
	}
	active := []models.PlantingRecord{}
	if err := plantingsCursor.All(r.Context(), &active); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode plantings")
		return
	}

	// Coverage lookup also needs watering reminders completed recently, which
	// the horizon query above excludes.
	wateringCursor, err := db.RemindersCollection.Find(r.Context(), bson.M{
		"userId":       userID,
		"reminderType": TypeWatering,
		"$or": []bson.M{
			{"isCompleted": false},
			{"scheduledDate": bson.M{"$gte": now.AddDate(0, 0, -coverageDays)}},
		},
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch reminders")
		return
	}
	watering := []models.Reminder{}
	if err := wateringCursor.All(r.Context(), &watering); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode reminders")
		return
	}

	merged := append(persisted, Synthesize(active, watering, now)...)
	utils.RespondWithJSON(w, http.StatusOK, merged)
}

// CreateReminder persists an explicit reminder.
func CreateReminder(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		PlantingID    string `json:"plantingId"`
		ReminderType  string `json:"reminderType"`
		ScheduledDate string `json:"scheduledDate"`
		Message       string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}

	scheduled := utils.ParseDate(body.ScheduledDate)
	if body.ReminderType == "" || body.Message == "" || scheduled == nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "reminderType, message and scheduledDate are required"})
		return
	}

	reminder := models.Reminder{
		ID:            uuid.NewString(),
		UserID:        userID,
		PlantingID:    body.PlantingID,
		ReminderType:  body.ReminderType,
		ScheduledDate: *scheduled,
		Message:       body.Message,
		IsCompleted:   false,
		CreatedAt:     time.Now().UTC(),
	}
	if _, err := db.RemindersCollection.InsertOne(r.Context(), reminder); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create reminder")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, reminder)
}

// CompleteReminder marks an owned reminder done.
func CompleteReminder(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.RemindersCollection.UpdateOne(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID},
		bson.M{"$set": bson.M{"isCompleted": true}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete reminder")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Reminder not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
