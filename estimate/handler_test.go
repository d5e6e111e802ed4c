package estimate_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tanam/estimate"
)

func TestEstimateHandler(t *testing.T) {
	t.Parallel()

	handler := estimate.EstimateHandler(newEstimator())

	body := `{"crop_type":"Padi","area":10000,"planting_date":"2023-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvest/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success bool                     `json:"success"`
		Data    estimate.HarvestEstimate `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Data.EstimatedYieldKg != 6000 {
		t.Errorf("unexpected response: %+v", resp)
	}
}

func TestEstimateHandlerUnknownCrop(t *testing.T) {
	t.Parallel()

	handler := estimate.EstimateHandler(newEstimator())

	body := `{"crop_type":"unicorn-fruit","area":100,"planting_date":"2023-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvest/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestEstimateHandlerBadInput(t *testing.T) {
	t.Parallel()

	handler := estimate.EstimateHandler(newEstimator())

	body := `{"crop_type":"padi","area":-3,"planting_date":"2023-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/harvest/estimate", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler(rec, req, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
