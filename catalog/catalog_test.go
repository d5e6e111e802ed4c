package catalog_test

import (
	"sort"
	"testing"

	"tanam/catalog"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"Padi":           "padi",
		"  Bawang Merah": "bawang-merah",
		"BAWANG  PUTIH":  "bawang-putih",
		"tomat":          "tomat",
	}
	for in, want := range cases {
		if got := catalog.Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()

	cat := catalog.New()

	padi, ok := cat.Lookup("Padi")
	if !ok {
		t.Fatalf("expected padi in catalog")
	}
	if padi.Category != catalog.CategoryAnnual {
		t.Errorf("padi category = %q, want annual", padi.Category)
	}
	if padi.YieldPerM2 != 0.6 || padi.DaysToHarvest != 120 || padi.PricePerKg != 7000 {
		t.Errorf("padi coefficients = %+v", padi)
	}

	mangga, ok := cat.Lookup("mangga")
	if !ok {
		t.Fatalf("expected mangga in catalog")
	}
	if mangga.Category != catalog.CategoryPerennial || mangga.FirstHarvestDays != 1825 {
		t.Errorf("mangga coefficients = %+v", mangga)
	}

	if _, ok := cat.Lookup("unicorn-fruit"); ok {
		t.Errorf("unexpected hit for unknown crop")
	}
}

func TestIDsSorted(t *testing.T) {
	t.Parallel()

	cat := catalog.New()
	ids := cat.IDs()
	if len(ids) != 19 {
		t.Fatalf("len(IDs()) = %d, want 19", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("IDs() not sorted: %v", ids)
	}
}
