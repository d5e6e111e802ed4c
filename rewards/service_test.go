package rewards

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"tanam/db"
	"tanam/models"

	"github.com/google/uuid"
)

// Needs a running MongoDB; set MONGODB_TEST_URI to enable.
func TestApplyAchievementPointsAwardsOnce(t *testing.T) {
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
	if _, err := GetOrCreateProfile(ctx, userID); err != nil {
		t.Fatalf("GetOrCreateProfile() error = %v", err)
	}

	cfg := Configs[FirstPlant]
	ach := models.Achievement{
		ID:              uuid.NewString(),
		UserID:          userID,
		AchievementType: cfg.Type,
		Title:           cfg.Title,
		Description:     cfg.Description,
		RewardPoints:    cfg.Points,
		PointsApplied:   false,
		UnlockedAt:      time.Now().UTC(),
	}
	if _, err := db.AchievementsCollection.InsertOne(ctx, ach); err != nil {
		t.Fatalf("InsertOne() error = %v", err)
	}

	// The unlock path and the reconcile sweep can both see the same pending
	// award; only the claim winner may add the points.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := ach
			_ = applyAchievementPoints(ctx, &local)
		}()
	}
	wg.Wait()

	profile, err := GetOrCreateProfile(ctx, userID)
	if err != nil {
		t.Fatalf("GetOrCreateProfile() error = %v", err)
	}
	if profile.TotalRewardPoints != cfg.Points {
		t.Errorf("TotalRewardPoints = %d, want %d awarded exactly once", profile.TotalRewardPoints, cfg.Points)
	}
}
