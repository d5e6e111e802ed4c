package rewards

import (
	"encoding/json"
	"net/http"

	"tanam/db"
	"tanam/models"
	"tanam/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetActivities lists the caller's activity events, newest first.
func GetActivities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.M{"activityDate": -1})
	cursor, err := db.ActivitiesCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch activities")
		return
	}

	activities := []models.ActivityEvent{}
	if err := cursor.All(r.Context(), &activities); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode activities")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, activities)
}

// RecordActivity appends an event, advances the streak and returns the updated
// profile together with whatever the evaluation just unlocked.
func RecordActivity(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		ActivityType string `json:"activityType"`
		Description  string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ActivityType == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "activityType is required"})
		return
	}

	profile, unlocked, err := TrackActivity(r.Context(), userID, body.ActivityType, body.Description)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	if unlocked == nil {
		unlocked = []models.Achievement{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"profile":  profile,
		"unlocked": unlocked,
	})
}

// GetAchievements lists the caller's unlocked achievements.
func GetAchievements(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.M{"unlockedAt": -1})
	cursor, err := db.AchievementsCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch achievements")
		return
	}

	achievements := []models.Achievement{}
	if err := cursor.All(r.Context(), &achievements); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode achievements")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, achievements)
}

// AwardPoints is the manual reward-tracking entry: log an activity and add an
// arbitrary number of points on top of whatever the evaluation awards.
func AwardPoints(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		ActivityType string `json:"activityType"`
		Points       int    `json:"points"`
		Description  string `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.ActivityType == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "activityType is required"})
		return
	}
	if body.Points < 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "points must not be negative"})
		return
	}

	if _, _, err := TrackActivity(r.Context(), userID, body.ActivityType, body.Description); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	profile, err := AddPoints(r.Context(), userID, body.Points)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}
