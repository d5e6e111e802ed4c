package plantings_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"tanam/db"
	"tanam/globals"
	"tanam/models"
	"tanam/plantings"
	"tanam/rewards"

	"github.com/google/uuid"
)

// Needs a running MongoDB; set MONGODB_TEST_URI to enable.
func TestCreatePlantingResponse(t *testing.T) {
	uri := os.Getenv("MONGODB_TEST_URI")
	if uri == "" {
		t.Skip("MONGODB_TEST_URI not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := db.Connect(ctx, uri); err != nil {
		t.Fatalf("Connect() error = %v", err)
	}

	userID := uuid.NewString()

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("cropName", "tomat")
	form.WriteField("plantedDate", "2024-03-01")
	form.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/plantings", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req = req.WithContext(context.WithValue(req.Context(), globals.UserIDKey, userID))
	rec := httptest.NewRecorder()
	plantings.CreatePlanting(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Profile  models.FarmerProfile `json:"profile"`
		Unlocked []models.Achievement `json:"unlocked"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	// The returned profile must reflect the plant_added activity too, not just
	// the counter bump.
	if resp.Profile.TotalPlantsPlanted != 1 {
		t.Errorf("profile.totalPlantsPlanted = %d, want 1", resp.Profile.TotalPlantsPlanted)
	}
	if resp.Profile.CurrentStreak < 1 {
		t.Errorf("profile.currentStreak = %d, want at least 1", resp.Profile.CurrentStreak)
	}

	found := false
	for _, a := range resp.Unlocked {
		if a.AchievementType == rewards.FirstPlant {
			found = true
		}
	}
	if !found {
		t.Errorf("unlocked = %+v, want first_plant included", resp.Unlocked)
	}
}
