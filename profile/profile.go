package profile

import (
	"encoding/json"
	"net/http"
	"time"

	"tanam/db"
	"tanam/rewards"
	"tanam/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetProfile returns the caller's farmer profile, creating it on first access.
// Active/completed planting counts are derived live from the plantings
// collection, the stored counters track lifetime totals.
func GetProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	prof, err := rewards.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	activePlants, err := db.PlantingsCollection.CountDocuments(r.Context(),
		bson.M{"userId": userID, "isCompleted": false})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count plantings")
		return
	}
	completed, err := db.PlantingsCollection.CountDocuments(r.Context(),
		bson.M{"userId": userID, "isCompleted": true})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to count plantings")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":      true,
		"profile":      prof,
		"activePlants": activePlants,
		"completed":    completed,
	})
}

// EditProfile updates the free-form profile fields. Counters, points, streaks
// and level are engine-owned and cannot be set here.
func EditProfile(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		FarmName     *string  `json:"farmName"`
		Location     *string  `json:"location"`
		FarmSize     *float64 `json:"farmSize"`
		Bio          *string  `json:"bio"`
		ProfileImage *string  `json:"profileImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}

	if _, err := rewards.GetOrCreateProfile(r.Context(), userID); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	update := bson.M{"updatedAt": time.Now().UTC()}
	if body.FarmName != nil {
		update["farmName"] = *body.FarmName
	}
	if body.Location != nil {
		update["location"] = *body.Location
	}
	if body.FarmSize != nil {
		update["farmSize"] = *body.FarmSize
	}
	if body.Bio != nil {
		update["bio"] = *body.Bio
	}
	if body.ProfileImage != nil {
		update["profileImage"] = *body.ProfileImage
	}

	_, err := db.ProfilesCollection.UpdateOne(r.Context(),
		bson.M{"userId": userID}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	prof, err := rewards.GetOrCreateProfile(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "profile": prof})
}
