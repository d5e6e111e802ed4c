package estimate

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"tanam/apperr"
	"tanam/catalog"
)

// HarvestEstimate is the full projection for one planting scenario.
type HarvestEstimate struct {
	CropType             string  `json:"crop_type"`
	AreaM2               float64 `json:"area_m2"`
	PricePerKg           float64 `json:"price_per_kg"`
	YieldKg              float64 `json:"yield_kg"`
	EstimatedYieldKg     float64 `json:"estimated_yield_kg"`
	YieldTonPerHectare   float64 `json:"estimated_yield_ton_per_hectare"`
	EstimatedIncome      int64   `json:"estimated_income"`
	FormattedIncome      string  `json:"formatted_income"`
	PlantingDate         string  `json:"planting_date"`
	EstimatedHarvestDate string  `json:"estimated_harvest_date"`
	HarvestDurationDays  int     `json:"harvest_duration_days"`
	Category             string  `json:"category"`
	Notes                string  `json:"notes"`
}

// Estimator projects yields from the static crop catalog. Pure: identical
// inputs always produce identical estimates.
type Estimator struct {
	Catalog *catalog.Catalog
}

// Estimate validates the request, resolves the crop and projects harvest date,
// yield and income. Validation reports every violated field at once.
func (e *Estimator) Estimate(cropID string, areaM2 float64, plantingDate string, pricePerKg *float64) (*HarvestEstimate, error) {
	var violations []string
	if strings.TrimSpace(cropID) == "" {
		violations = append(violations, "crop_type harus string valid")
	}
	if areaM2 <= 0 {
		violations = append(violations, "area harus number positif (dalam m²)")
	}

	planted, dateErr := time.Parse("2006-01-02", plantingDate)
	if dateErr != nil {
		violations = append(violations, "planting_date harus format ISO date valid (YYYY-MM-DD)")
	}
	if pricePerKg != nil && *pricePerKg < 0 {
		violations = append(violations, "price_per_kg harus number positif atau undefined")
	}
	if len(violations) > 0 {
		return nil, &apperr.ValidationError{Violations: violations}
	}

	normalized := catalog.Normalize(cropID)
	crop, ok := e.Catalog.Lookup(normalized)
	if !ok {
		return nil, &apperr.NotFoundError{Resource: "crop", ID: cropID, Valid: e.Catalog.IDs()}
	}

	var yieldKg float64
	var durationDays int
	if crop.Category == catalog.CategoryAnnual {
		yieldKg = crop.YieldPerM2 * areaM2
		durationDays = crop.DaysToHarvest
	} else {
		// First perennial cycle: yield per tree times planting density.
		yieldKg = crop.YieldPerTree * crop.TreesPerM2 * areaM2
		durationDays = crop.FirstHarvestDays
	}
	harvestDate := planted.AddDate(0, 0, durationDays)

	effectivePrice := crop.PricePerKg
	if pricePerKg != nil {
		effectivePrice = *pricePerKg
	}
	income := int64(math.Round(yieldKg * effectivePrice))

	return &HarvestEstimate{
		CropType:             normalized,
		AreaM2:               areaM2,
		PricePerKg:           effectivePrice,
		YieldKg:              yieldKg,
		EstimatedYieldKg:     math.Round(yieldKg*100) / 100,
		YieldTonPerHectare:   math.Round(yieldKg/areaM2*10*10) / 10, // 1 kg/m² = 10 ton/ha
		EstimatedIncome:      income,
		FormattedIncome:      FormatRupiah(income),
		PlantingDate:         planted.Format("2006-01-02"),
		EstimatedHarvestDate: harvestDate.Format("2006-01-02"),
		HarvestDurationDays:  durationDays,
		Category:             crop.Category,
		Notes:                crop.Notes,
	}, nil
}

// FormatRupiah renders an amount the id-ID way: "Rp 6.000.000".
func FormatRupiah(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	digits := strconv.FormatInt(amount, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	if neg {
		return fmt.Sprintf("-Rp %s", b.String())
	}
	return fmt.Sprintf("Rp %s", b.String())
}
