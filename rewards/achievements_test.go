package rewards_test

import (
	"testing"

	"tanam/models"
	"tanam/rewards"
)

func TestEvaluateFirstPlant(t *testing.T) {
	t.Parallel()

	profile := &models.FarmerProfile{TotalPlantsPlanted: 1}

	newly := rewards.Evaluate(profile, map[string]bool{})
	if len(newly) != 1 || newly[0].Type != rewards.FirstPlant {
		t.Fatalf("Evaluate() = %+v, want first_plant only", newly)
	}
	if newly[0].Points != 50 {
		t.Errorf("first_plant points = %d, want 50", newly[0].Points)
	}

	// Second evaluation with the unlock recorded is a no-op.
	again := rewards.Evaluate(profile, map[string]bool{rewards.FirstPlant: true})
	if len(again) != 0 {
		t.Errorf("repeat Evaluate() = %+v, want empty", again)
	}
}

func TestEvaluateThresholdsAreExact(t *testing.T) {
	t.Parallel()

	// Between thresholds nothing fires.
	profile := &models.FarmerProfile{TotalPlantsPlanted: 3, TotalHarvestsCompleted: 4, CurrentStreak: 12}
	if newly := rewards.Evaluate(profile, map[string]bool{}); len(newly) != 0 {
		t.Errorf("Evaluate() = %+v, want empty between thresholds", newly)
	}
}

func TestEvaluateStreakAchievements(t *testing.T) {
	t.Parallel()

	profile := &models.FarmerProfile{CurrentStreak: 7}
	newly := rewards.Evaluate(profile, map[string]bool{})
	if len(newly) != 1 || newly[0].Type != rewards.Streak7 {
		t.Fatalf("Evaluate() = %+v, want streak_7", newly)
	}

	profile.CurrentStreak = 30
	newly = rewards.Evaluate(profile, map[string]bool{rewards.Streak7: true})
	if len(newly) != 1 || newly[0].Type != rewards.Streak30 {
		t.Fatalf("Evaluate() = %+v, want streak_30", newly)
	}
	if newly[0].Points != 500 {
		t.Errorf("streak_30 points = %d, want 500", newly[0].Points)
	}
}

func TestEvaluateMultipleAtOnce(t *testing.T) {
	t.Parallel()

	// A first planting logged on a day that also completes the first harvest.
	profile := &models.FarmerProfile{TotalPlantsPlanted: 1, TotalHarvestsCompleted: 1}
	newly := rewards.Evaluate(profile, map[string]bool{})
	if len(newly) != 2 {
		t.Fatalf("Evaluate() = %+v, want two unlocks", newly)
	}
}

func TestConfigsCoverEveryTrigger(t *testing.T) {
	t.Parallel()

	for _, typ := range []string{
		rewards.FirstPlant, rewards.FivePlants,
		rewards.FirstHarvest, rewards.TenHarvests,
		rewards.Streak7, rewards.Streak30,
	} {
		cfg, ok := rewards.Configs[typ]
		if !ok {
			t.Errorf("missing config for %s", typ)
			continue
		}
		if cfg.Title == "" || cfg.Points <= 0 {
			t.Errorf("incomplete config for %s: %+v", typ, cfg)
		}
	}
}
