package catalog

import (
	"sort"
	"strings"
)

const (
	CategoryAnnual    = "annual"
	CategoryPerennial = "perennial"
)

// CropDefinition holds the agronomic coefficients for one crop. Annual crops
// use YieldPerM2/DaysToHarvest; perennials use YieldPerTree/TreesPerM2 with a
// longer first cycle. 1 kg/m² corresponds to 10 ton/ha.
type CropDefinition struct {
	ID                string  `json:"id"`
	Category          string  `json:"category"`
	YieldPerM2        float64 `json:"yieldPerM2,omitempty"`
	YieldPerTree      float64 `json:"yieldPerTree,omitempty"`
	TreesPerM2        float64 `json:"treesPerM2,omitempty"`
	PricePerKg        float64 `json:"pricePerKg"`
	DaysToHarvest     int     `json:"daysToHarvest,omitempty"`
	FirstHarvestDays  int     `json:"firstHarvestDays,omitempty"`
	AnnualHarvestDays int     `json:"annualHarvestDays,omitempty"`
	Notes             string  `json:"notes"`
}

// Catalog is immutable after New; look-ups only.
type Catalog struct {
	crops map[string]CropDefinition
	ids   []string
}

// Normalize turns user input into a catalog key: lowercase, trimmed,
// whitespace collapsed to hyphens ("Bawang Merah" -> "bawang-merah").
func Normalize(cropID string) string {
	return strings.Join(strings.Fields(strings.ToLower(strings.TrimSpace(cropID))), "-")
}

// Lookup returns the definition for a normalized or raw crop id.
func (c *Catalog) Lookup(cropID string) (CropDefinition, bool) {
	def, ok := c.crops[Normalize(cropID)]
	return def, ok
}

// IDs returns every known crop id, sorted.
func (c *Catalog) IDs() []string {
	return c.ids
}

// All returns the definitions sorted by id.
func (c *Catalog) All() []CropDefinition {
	out := make([]CropDefinition, 0, len(c.ids))
	for _, id := range c.ids {
		out = append(out, c.crops[id])
	}
	return out
}

// New builds the static crop table. Yields are deliberately on the
// conservative side of Indonesian field data.
func New() *Catalog {
	defs := []CropDefinition{
		{ID: "tomat", Category: CategoryAnnual, YieldPerM2: 0.6, PricePerKg: 5000, DaysToHarvest: 75,
			Notes: "Dapat panen bertahap selama 30 hari"},
		{ID: "cabai", Category: CategoryAnnual, YieldPerM2: 0.5, PricePerKg: 12000, DaysToHarvest: 90,
			Notes: "Panen berkala tiap 3-5 hari"},
		{ID: "selada", Category: CategoryAnnual, YieldPerM2: 0.4, PricePerKg: 3000, DaysToHarvest: 45,
			Notes: "Tanam rapat, hidroponik lebih tinggi hasil"},
		{ID: "wortel", Category: CategoryAnnual, YieldPerM2: 0.4, PricePerKg: 4000, DaysToHarvest: 70,
			Notes: "Butuh tanah dalam, bebatu mengurangi hasil"},
		{ID: "bayam", Category: CategoryAnnual, YieldPerM2: 0.6, PricePerKg: 2500, DaysToHarvest: 30,
			Notes: "Dapat dipanen muda (20 hari) atau dewasa"},
		{ID: "bawang-merah", Category: CategoryAnnual, YieldPerM2: 0.5, PricePerKg: 14000, DaysToHarvest: 65,
			Notes: "Butuh penyimpanan kering post-panen"},
		{ID: "bawang-putih", Category: CategoryAnnual, YieldPerM2: 0.4, PricePerKg: 30000, DaysToHarvest: 90,
			Notes: "Butuh musim dingin, sulit di dataran rendah"},
		{ID: "kentang", Category: CategoryAnnual, YieldPerM2: 1.0, PricePerKg: 6000, DaysToHarvest: 90,
			Notes: "Butuh tanah gembur subur"},
		{ID: "terong", Category: CategoryAnnual, YieldPerM2: 0.5, PricePerKg: 4500, DaysToHarvest: 70,
			Notes: "Panen bertahap selama 30 hari"},
		{ID: "mentimun", Category: CategoryAnnual, YieldPerM2: 0.7, PricePerKg: 3500, DaysToHarvest: 45,
			Notes: "Panen tiap 2-3 hari setelah mulai berbuah"},
		{ID: "kangkung", Category: CategoryAnnual, YieldPerM2: 0.8, PricePerKg: 2000, DaysToHarvest: 25,
			Notes: "Tumbuh cepat, dapat dipanen muda"},
		{ID: "sawi", Category: CategoryAnnual, YieldPerM2: 0.7, PricePerKg: 2200, DaysToHarvest: 30,
			Notes: "Sensitif panas, musim hujan lebih baik"},
		{ID: "semangka", Category: CategoryAnnual, YieldPerM2: 0.8, PricePerKg: 4000, DaysToHarvest: 80,
			Notes: "Butuh banyak ruang, 1 tanaman per 2-3 m²"},
		{ID: "melon", Category: CategoryAnnual, YieldPerM2: 0.6, PricePerKg: 5000, DaysToHarvest: 75,
			Notes: "Perlu dukungan tali, 1 tanaman per 1 m²"},
		{ID: "padi", Category: CategoryAnnual, YieldPerM2: 0.6, PricePerKg: 7000, DaysToHarvest: 120,
			Notes: "Sawah irigasi, tanam-tebang 3x setahun"},
		{ID: "jagung", Category: CategoryAnnual, YieldPerM2: 0.5, PricePerKg: 4000, DaysToHarvest: 90,
			Notes: "Butuh pollinasi, tanam 2-3 tanaman/m²"},
		{ID: "kedelai", Category: CategoryAnnual, YieldPerM2: 0.3, PricePerKg: 10000, DaysToHarvest: 85,
			Notes: "Fix nitrogen, baik untuk rotasi"},

		{ID: "jeruk", Category: CategoryPerennial, YieldPerTree: 80, TreesPerM2: 0.05, PricePerKg: 8000,
			FirstHarvestDays: 1095, AnnualHarvestDays: 365,
			Notes: "Pohon, panen pertama 3 tahun. Hasil meningkat tiap tahun"},
		{ID: "mangga", Category: CategoryPerennial, YieldPerTree: 100, TreesPerM2: 0.04, PricePerKg: 12000,
			FirstHarvestDays: 1825, AnnualHarvestDays: 365,
			Notes: "Pohon, panen pertama 5-7 tahun"},
	}

	crops := make(map[string]CropDefinition, len(defs))
	ids := make([]string, 0, len(defs))
	for _, d := range defs {
		crops[d.ID] = d
		ids = append(ids, d.ID)
	}
	sort.Strings(ids)

	return &Catalog{crops: crops, ids: ids}
}
