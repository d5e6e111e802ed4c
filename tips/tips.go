package tips

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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetTips lists community tips with search, crop filter and pagination.
func GetTips(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := bson.M{}

	if search := r.URL.Query().Get("search"); search != "" {
		query["$or"] = []bson.M{
			{"title": bson.M{"$regex": search, "$options": "i"}},
			{"content": bson.M{"$regex": search, "$options": "i"}},
		}
	}
	if crop := r.URL.Query().Get("crop"); crop != "" {
		query["cropName"] = bson.M{"$regex": crop, "$options": "i"}
	}

	offset, err := strconv.Atoi(r.URL.Query().Get("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = 10
	}

	sort := bson.D{{Key: "createdAt", Value: -1}}
	if r.URL.Query().Get("sort") == "popular" {
		sort = bson.D{{Key: "upvotes", Value: -1}}
	}

	opts := options.Find().SetSort(sort).SetSkip(int64(offset)).SetLimit(int64(limit))
	cursor, err := db.TipsCollection.Find(r.Context(), query, opts)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tips")
		return
	}

	tips := []models.CommunityTip{}
	if err := cursor.All(r.Context(), &tips); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to decode tips")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tips)
}

// CreateTip publishes a tip under the caller's name.
func CreateTip(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var body struct {
		CropName string `json:"cropName"`
		Title    string `json:"title"`
		Content  string `json:"content"`
		Location string `json:"location"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
		return
	}
	if body.CropName == "" || body.Title == "" || body.Content == "" {
		utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "cropName, title and content are required"})
		return
	}

	tip := models.CommunityTip{
		ID:        uuid.NewString(),
		UserID:    userID,
		CropName:  body.CropName,
		Title:     body.Title,
		Content:   body.Content,
		Location:  body.Location,
		Upvotes:   0,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := db.TipsCollection.InsertOne(r.Context(), tip); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to create tip")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, tip)
}

// UpvoteTip bumps the counter on any published tip.
func UpvoteTip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.TipsCollection.UpdateOne(r.Context(),
		bson.M{"_id": ps.ByName("id")},
		bson.M{"$inc": bson.M{"upvotes": 1}})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to upvote tip")
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Tip not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// DeleteTip removes the caller's own tip.
func DeleteTip(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	userID := utils.GetUserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	res, err := db.TipsCollection.DeleteOne(r.Context(),
		bson.M{"_id": ps.ByName("id"), "userId": userID})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete tip")
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondWithJSON(w, http.StatusNotFound, utils.M{"success": false, "message": "Tip not found"})
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
