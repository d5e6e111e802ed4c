package estimate_test

import (
	"errors"
	"strings"
	"testing"

	"tanam/apperr"
	"tanam/catalog"
	"tanam/estimate"
)

func newEstimator() *estimate.Estimator {
	return &estimate.Estimator{Catalog: catalog.New()}
}

func TestEstimateAnnual(t *testing.T) {
	t.Parallel()

	est := newEstimator()
	// 2023 is not a leap year: 2023-01-01 + 120 days lands on May 1.
	got, err := est.Estimate("padi", 10000, "2023-01-01", nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}

	if got.CropType != "padi" {
		t.Errorf("CropType = %q", got.CropType)
	}
	if got.EstimatedYieldKg != 6000 {
		t.Errorf("EstimatedYieldKg = %v, want 6000", got.EstimatedYieldKg)
	}
	if got.EstimatedHarvestDate != "2023-05-01" {
		t.Errorf("EstimatedHarvestDate = %q, want 2023-05-01", got.EstimatedHarvestDate)
	}
	if got.HarvestDurationDays != 120 {
		t.Errorf("HarvestDurationDays = %d, want 120", got.HarvestDurationDays)
	}
	if got.PricePerKg != 7000 {
		t.Errorf("PricePerKg = %v, want catalog default 7000", got.PricePerKg)
	}
	if got.EstimatedIncome != 42000000 {
		t.Errorf("EstimatedIncome = %d, want 42000000", got.EstimatedIncome)
	}
	if got.FormattedIncome != "Rp 42.000.000" {
		t.Errorf("FormattedIncome = %q", got.FormattedIncome)
	}
	if got.YieldTonPerHectare != 6.0 {
		t.Errorf("YieldTonPerHectare = %v, want 6.0", got.YieldTonPerHectare)
	}
}

func TestEstimateLeapYear(t *testing.T) {
	t.Parallel()

	got, err := newEstimator().Estimate("padi", 100, "2024-01-01", nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	// Calendar-day addition: the leap day shifts the projection to April 30.
	if got.EstimatedHarvestDate != "2024-04-30" {
		t.Errorf("EstimatedHarvestDate = %q, want 2024-04-30", got.EstimatedHarvestDate)
	}
}

func TestEstimateDeterministic(t *testing.T) {
	t.Parallel()

	est := newEstimator()
	a, err := est.Estimate("jagung", 2500, "2023-06-15", nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	b, err := est.Estimate("jagung", 2500, "2023-06-15", nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if *a != *b {
		t.Errorf("identical inputs gave different estimates: %+v vs %+v", a, b)
	}
}

func TestEstimatePerennial(t *testing.T) {
	t.Parallel()

	got, err := newEstimator().Estimate("jeruk", 1000, "2023-01-01", nil)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	// 80 kg/tree × 0.05 trees/m² × 1000 m²
	if got.EstimatedYieldKg != 4000 {
		t.Errorf("EstimatedYieldKg = %v, want 4000", got.EstimatedYieldKg)
	}
	if got.HarvestDurationDays != 1095 {
		t.Errorf("HarvestDurationDays = %d, want 1095", got.HarvestDurationDays)
	}
	if got.Category != catalog.CategoryPerennial {
		t.Errorf("Category = %q", got.Category)
	}
}

func TestEstimatePriceOverride(t *testing.T) {
	t.Parallel()

	price := 10000.0
	got, err := newEstimator().Estimate("padi", 100, "2023-01-01", &price)
	if err != nil {
		t.Fatalf("Estimate() error = %v", err)
	}
	if got.PricePerKg != 10000 {
		t.Errorf("PricePerKg = %v, want override 10000", got.PricePerKg)
	}
	if got.EstimatedIncome != 600000 {
		t.Errorf("EstimatedIncome = %d, want 600000", got.EstimatedIncome)
	}
}

func TestEstimateUnknownCrop(t *testing.T) {
	t.Parallel()

	_, err := newEstimator().Estimate("unicorn-fruit", 100, "2023-01-01", nil)
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if nf.ID != "unicorn-fruit" {
		t.Errorf("NotFoundError.ID = %q", nf.ID)
	}
	if len(nf.Valid) == 0 || !strings.Contains(err.Error(), "padi") {
		t.Errorf("expected valid crop ids in error, got %v", err)
	}
}

func TestEstimateValidation(t *testing.T) {
	t.Parallel()

	bad := -5.0
	_, err := newEstimator().Estimate("padi", 0, "not-a-date", &bad)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	// Every violated field is reported, not just the first.
	if len(ve.Violations) != 3 {
		t.Errorf("violations = %v, want 3 entries", ve.Violations)
	}

	for _, area := range []float64{0, -10} {
		if _, err := newEstimator().Estimate("padi", area, "2023-01-01", nil); !apperr.IsValidation(err) {
			t.Errorf("area %v: expected ValidationError, got %v", area, err)
		}
	}
}

func TestFormatRupiah(t *testing.T) {
	t.Parallel()

	cases := map[int64]string{
		0:        "Rp 0",
		999:      "Rp 999",
		1000:     "Rp 1.000",
		42000000: "Rp 42.000.000",
	}
	for in, want := range cases {
		if got := estimate.FormatRupiah(in); got != want {
			t.Errorf("FormatRupiah(%d) = %q, want %q", in, got, want)
		}
	}
}
