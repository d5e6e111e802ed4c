package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"tanam/rdx"
	"tanam/utils"

	"github.com/julienschmidt/httprouter"
)

const catalogueCacheKey = "crop_catalogue"

// CatalogueHandler serves the full crop table. The table is static, so the
// serialized response is parked in Redis and reused across instances.
func CatalogueHandler(cat *Catalog) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if val, err := rdx.Conn.Get(ctx, catalogueCacheKey).Result(); err == nil && val != "" {
			var crops []CropDefinition
			if err := json.Unmarshal([]byte(val), &crops); err == nil {
				utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "crops": crops})
				return
			}
		}

		crops := cat.All()
		if jsonBytes, err := json.Marshal(crops); err == nil {
			_ = rdx.Conn.Set(ctx, catalogueCacheKey, jsonBytes, 2*time.Hour).Err()
		}

		utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "crops": crops})
	}
}
