package home

import (
	"context"
	"net/http"
	"strings"

	"tanam/catalog"
	"tanam/db"
	"tanam/models"
	"tanam/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// GetHomeContent handles the dashboard endpoints under /home/:apiRoute.
func GetHomeContent(cat *catalog.Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		apiRoute := strings.ToLower(ps.ByName("apiRoute"))

		var data interface{}
		switch apiRoute {
		case "crops":
			data = cat.IDs()
		case "categories":
			data = getCropCategories(cat)
		case "seasonal-tips":
			data = getSeasonalTips()
		case "latest-tips":
			tips, err := getLatestTips(r.Context())
			if err != nil {
				utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch tips")
				return
			}
			data = tips
		default:
			http.Error(w, "Invalid API route", http.StatusNotFound)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, data)
	}
}

func getLatestTips(ctx context.Context) ([]models.CommunityTip, error) {
	cursor, err := db.TipsCollection.Find(ctx, bson.M{}, db.OptionsFindLatest(5))
	if err != nil {
		return nil, err
	}
	tips := []models.CommunityTip{}
	if err := cursor.All(ctx, &tips); err != nil {
		return nil, err
	}
	return tips, nil
}

func getCropCategories(cat *catalog.Catalog) map[string][]string {
	categories := map[string][]string{}
	for _, def := range cat.All() {
		categories[def.Category] = append(categories[def.Category], def.ID)
	}
	return categories
}

// getSeasonalTips returns a list of seasonal farming tips
func getSeasonalTips() []string {
	return []string{
		"🌾 Musim tanam padi dimulai, siapkan benih unggul",
		"🍅 Tomat tumbuh baik di sore yang hangat",
		"🥬 Gunakan jaring peneduh untuk bayam saat matahari terik",
	}
}
