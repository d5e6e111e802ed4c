package estimate

import (
	"encoding/json"
	"net/http"

	"tanam/utils"

	"github.com/julienschmidt/httprouter"
)

type estimateRequest struct {
	CropType     string   `json:"crop_type"`
	Area         float64  `json:"area"`
	PlantingDate string   `json:"planting_date"`
	PricePerKg   *float64 `json:"price_per_kg"`
}

// EstimateHandler exposes the projector at POST /api/v1/harvest/estimate.
func EstimateHandler(est *Estimator) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req estimateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			utils.RespondWithJSON(w, http.StatusBadRequest, utils.M{"success": false, "message": "Invalid JSON body"})
			return
		}

		result, err := est.Estimate(req.CropType, req.Area, req.PlantingDate, req.PricePerKg)
		if err != nil {
			utils.RespondWithAppError(w, err)
			return
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "data": result})
	}
}
