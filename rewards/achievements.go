package rewards

import "tanam/models"

const (
	FirstPlant   = "first_plant"
	FivePlants   = "five_plants"
	FirstHarvest = "first_harvest"
	TenHarvests  = "ten_harvests"
	Streak7      = "streak_7"
	Streak30     = "streak_30"
)

// AchievementConfig describes one unlockable milestone.
type AchievementConfig struct {
	Type        string
	Title       string
	Description string
	Points      int
	Icon        string
}

// Configs is the fixed achievement catalog.
var Configs = map[string]AchievementConfig{
	FirstPlant: {
		Type: FirstPlant, Title: "Petani Pemula",
		Description: "Catat tanaman pertama Anda", Points: 50, Icon: "Sprout",
	},
	FirstHarvest: {
		Type: FirstHarvest, Title: "Panen Pertama",
		Description: "Selesaikan panen pertama", Points: 100, Icon: "Trophy",
	},
	Streak7: {
		Type: Streak7, Title: "Konsisten 7 Hari",
		Description: "Aktif selama 7 hari berturut-turut", Points: 150, Icon: "Flame",
	},
	Streak30: {
		Type: Streak30, Title: "Master Petani",
		Description: "Aktif selama 30 hari berturut-turut", Points: 500, Icon: "Target",
	},
	FivePlants: {
		Type: FivePlants, Title: "Perekebunan",
		Description: "Tanam 5 tanaman berbeda", Points: 200, Icon: "Leaf",
	},
	TenHarvests: {
		Type: TenHarvests, Title: "Veteran Panen",
		Description: "Selesaikan 10 kali panen", Points: 300, Icon: "Crown",
	},
}

type trigger struct {
	achievementType string
	threshold       int
	counter         func(*models.FarmerProfile) int
}

var triggers = []trigger{
	{FirstPlant, 1, func(p *models.FarmerProfile) int { return p.TotalPlantsPlanted }},
	{FivePlants, 5, func(p *models.FarmerProfile) int { return p.TotalPlantsPlanted }},
	{FirstHarvest, 1, func(p *models.FarmerProfile) int { return p.TotalHarvestsCompleted }},
	{TenHarvests, 10, func(p *models.FarmerProfile) int { return p.TotalHarvestsCompleted }},
	{Streak7, 7, func(p *models.FarmerProfile) int { return p.CurrentStreak }},
	{Streak30, 30, func(p *models.FarmerProfile) int { return p.CurrentStreak }},
}

// Evaluate returns the configs whose threshold the profile has just reached
// and that are not in the unlocked set. Pure; calling it twice with the same
// state after the first unlock round yields nothing.
func Evaluate(profile *models.FarmerProfile, unlocked map[string]bool) []AchievementConfig {
	var newly []AchievementConfig
	for _, t := range triggers {
		if unlocked[t.achievementType] {
			continue
		}
		if t.counter(profile) == t.threshold {
			newly = append(newly, Configs[t.achievementType])
		}
	}
	return newly
}
