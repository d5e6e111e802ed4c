package plantings

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"tanam/db"
	"tanam/models"
	"tanam/mq"
	"tanam/rewards"
	"tanam/utils"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// handleImageUpload stores a bounded-size crop photo. Images land as JPEG
// thumbnails under static/uploads so the originals never hit disk.
func handleImageUpload(r *http.Request, fieldName, dir string) (string, error) {
	file, _, err := r.FormFile(fieldName)
	if err != nil {
		return "", err
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", err
	}
	img = imaging.Fit(img, 800, 800, imaging.Lanczos)

	filename := fmt.Sprintf("%d_%s.jpg", time.Now().UnixNano(), uuid.NewString()[:8])
	fullDir := "./static/uploads/" + dir
	os.MkdirAll(fullDir, os.ModePerm)

	if err := imaging.Save(img, fullDir+"/"+filename, imaging.JPEGQuality(85)); err != nil {
		return "", err
	}
	return "/uploads/" + dir + "/" + filename, nil
}

// CreatePlanting records a planting, bumps totalPlantsPlanted, logs the
// plant_added activity and runs achievement evaluation.
func CreatePlanting(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid form"})
		return
	}

	cropName := r.FormValue("cropName")
	planted := utils.ParseDate(r.FormValue("plantedDate"))
	if cropName == "" || planted == nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "cropName and plantedDate are required"})
		return
	}

	record := models.PlantingRecord{
		ID:          uuid.NewString(),
		UserID:      userID,
		CropName:    cropName,
		PlantedDate: *planted,
		Notes:       r.FormValue("notes"),
		IsCompleted: false,
		CreatedAt:   time.Now().UTC(),
	}
	if d := utils.ParseDate(r.FormValue("expectedHarvestDate")); d != nil {
		record.ExpectedHarvestDate = d
	}
	if imageURL, err := handleImageUpload(r, "image", "crops"); err == nil {
		record.CropImage = imageURL
	}

	if _, err := db.PlantingsCollection.InsertOne(r.Context(), record); err != nil {
		utils.RespondWithJSON(w, http.StatusInternalServerError, utils.M{"success": false, "message": "Insert failed"})
		return
	}

	_, unlocked, err := rewards.IncrementPlantsPlanted(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	// The activity advances the streak and can unlock on its own; the response
	// carries the profile and unlocks as of after both steps.
	profile, streakUnlocked, err := rewards.TrackActivity(r.Context(), userID, "plant_added", "Menanam "+cropName)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	unlocked = append(unlocked, streakUnlocked...)

	mq.Emit("planting-created", mq.Index{
		EntityType: "planting", Method: "POST", EntityId: record.ID, ItemId: userID, ItemType: cropName,
	})

	if unlocked == nil {
		unlocked = []models.Achievement{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"planting": record,
		"profile":  profile,
		"unlocked": unlocked,
	})
}

// GetPlantings lists the caller's planting records, newest first.
func GetPlantings(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := db.PlantingsCollection.Find(r.Context(), bson.M{"userId": userID}, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch plantings")
		return
	}

	plantings := []models.PlantingRecord{}
	if err := cursor.All(r.Context(), &plantings); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode plantings")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, plantings)
}

// GetPlanting returns one record; ownership is part of the filter so another
// user's record simply does not exist from the caller's point of view.
func GetPlanting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var record models.PlantingRecord
	err := db.PlantingsCollection.FindOne(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID}).Decode(&record)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Planting not found"})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch planting")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, record)
}

// UpdatePlanting edits the free-form fields of an owned record.
func UpdatePlanting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		CropName            *string  `json:"cropName"`
		PlantedDate         *string  `json:"plantedDate"`
		ExpectedHarvestDate *string  `json:"expectedHarvestDate"`
		QuantityKg          *float64 `json:"quantityKg"`
		Notes               *string  `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}

	update := bson.M{}
	if body.CropName != nil {
		update["cropName"] = *body.CropName
	}
	if body.PlantedDate != nil {
		if d := utils.ParseDate(*body.PlantedDate); d != nil {
			update["plantedDate"] = *d
		}
	}
	if body.ExpectedHarvestDate != nil {
		if d := utils.ParseDate(*body.ExpectedHarvestDate); d != nil {
			update["expectedHarvestDate"] = *d
		}
	}
	if body.QuantityKg != nil {
		update["quantityKg"] = *body.QuantityKg
	}
	if body.Notes != nil {
		update["notes"] = *body.Notes
	}
	if len(update) == 0 {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Nothing to update"})
		return
	}

	res, err := db.PlantingsCollection.UpdateOne(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID}, bson.M{"$set": update})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update planting")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Planting not found"})
		return
	}

	var record models.PlantingRecord
	if err := db.PlantingsCollection.FindOne(r.Context(),
		bson.M{"_id": ps.ByName("id")}).Decode(&record); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch planting")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, record)
}

// DeletePlanting removes an owned record.
func DeletePlanting(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.PlantingsCollection.DeleteOne(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete planting")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Planting not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// CompleteHarvest marks an owned planting as harvested, bumps
// totalHarvestsCompleted and runs achievement evaluation. Completing twice is
// rejected by the isCompleted filter, so counters never double.
func CompleteHarvest(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		HarvestDate *string  `json:"harvestDate"`
		QuantityKg  *float64 `json:"quantityKg"`
	}
	if r.Body != nil {
		_ = json.NewDecoder(r.Body).Decode(&body)
	}

	harvestedAt := time.Now().UTC()
	if body.HarvestDate != nil {
		if d := utils.ParseDate(*body.HarvestDate); d != nil {
			harvestedAt = *d
		}
	}

	update := bson.M{"isCompleted": true, "harvestDate": harvestedAt}
	if body.QuantityKg != nil {
		update["quantityKg"] = *body.QuantityKg
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var record models.PlantingRecord
	err := db.PlantingsCollection.FindOneAndUpdate(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID, "isCompleted": false},
		bson.M{"$set": update}, opts).Decode(&record)
	if err == mongo.ErrNoDocuments {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Planting not found or already harvested"})
		return
	}
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to complete harvest")
		return
	}

	_, unlocked, err := rewards.IncrementHarvestsCompleted(r.Context(), userID)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	profile, streakUnlocked, err := rewards.TrackActivity(r.Context(), userID, "harvest_completed", "Panen "+record.CropName)
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	unlocked = append(unlocked, streakUnlocked...)

	mq.Emit("harvest-completed", mq.Index{
		EntityType: "planting", Method: "PUT", EntityId: record.ID, ItemId: userID, ItemType: record.CropName,
	})

	if unlocked == nil {
		unlocked = []models.Achievement{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":  true,
		"planting": record,
		"profile":  profile,
		"unlocked": unlocked,
	})
}
