package rewards

import (
	"context"
	"time"

	"tanam/apperr"
	"tanam/db"
	"tanam/models"
	"tanam/mq"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetOrCreateProfile materializes the farmer profile in one atomic upsert, so
// first access and every later access go through the same path.
func GetOrCreateProfile(ctx context.Context, userID string) (*models.FarmerProfile, error) {
	now := time.Now().UTC()
	filter := bson.M{"userId": userID}
	update := bson.M{
		"$setOnInsert": bson.M{
			"_id":                    uuid.NewString(),
			"userId":                 userID,
			"totalPlantsPlanted":     0,
			"totalHarvestsCompleted": 0,
			"currentStreak":          0,
			"longestStreak":          0,
			"totalRewardPoints":      0,
			"level":                  1,
			"createdAt":              now,
			"updatedAt":              now,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var profile models.FarmerProfile
	if err := db.ProfilesCollection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&profile); err != nil {
		return nil, apperr.Storage("get-or-create profile", err)
	}
	return &profile, nil
}

// AddPoints adds reward points to the profile and recomputes the level in the
// same call, keeping level = points/200 + 1 after every mutation.
func AddPoints(ctx context.Context, userID string, points int) (*models.FarmerProfile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile models.FarmerProfile
	err := db.ProfilesCollection.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$inc": bson.M{"totalRewardPoints": points},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		}, opts).Decode(&profile)
	if err == mongo.ErrNoDocuments {
		return nil, &apperr.NotFoundError{Resource: "profile", ID: userID}
	}
	if err != nil {
		return nil, apperr.Storage("add points", err)
	}

	profile.Level = Level(profile.TotalRewardPoints)
	_, err = db.ProfilesCollection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{"level": profile.Level}})
	if err != nil {
		return nil, apperr.Storage("update level", err)
	}
	return &profile, nil
}

// TrackActivity appends the event, advances the streak from the stored
// boundary (no history rescan) and runs an achievement evaluation.
func TrackActivity(ctx context.Context, userID, activityType, description string) (*models.FarmerProfile, []models.Achievement, error) {
	now := time.Now().UTC()
	event := models.ActivityEvent{
		ID:           uuid.NewString(),
		UserID:       userID,
		ActivityType: activityType,
		ActivityDate: now,
		Description:  description,
	}
	if _, err := db.ActivitiesCollection.InsertOne(ctx, event); err != nil {
		return nil, nil, apperr.Storage("insert activity", err)
	}

	profile, err := GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	last, current := AdvanceStreak(profile.LastActiveDate, profile.CurrentStreak, now)
	longest := profile.LongestStreak
	if current > longest {
		longest = current
	}

	_, err = db.ProfilesCollection.UpdateOne(ctx,
		bson.M{"userId": userID},
		bson.M{"$set": bson.M{
			"currentStreak":  current,
			"longestStreak":  longest,
			"lastActiveDate": last,
			"updatedAt":      now,
		}})
	if err != nil {
		return nil, nil, apperr.Storage("update streak", err)
	}

	profile.CurrentStreak = current
	profile.LongestStreak = longest
	profile.LastActiveDate = &last

	unlocked, err := EvaluateAndUnlock(ctx, profile)
	if err != nil {
		return nil, nil, err
	}

	fresh, err := GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return fresh, unlocked, nil
}

// UnlockedTypes lists the achievement types the user already holds.
func UnlockedTypes(ctx context.Context, userID string) (map[string]bool, error) {
	cursor, err := db.AchievementsCollection.Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, apperr.Storage("list achievements", err)
	}
	var achievements []models.Achievement
	if err := cursor.All(ctx, &achievements); err != nil {
		return nil, apperr.Storage("decode achievements", err)
	}

	types := make(map[string]bool, len(achievements))
	for _, a := range achievements {
		types[a.AchievementType] = true
	}
	return types, nil
}

// EvaluateAndUnlock checks every trigger against the profile and persists the
// new unlocks. The unique (userId, achievementType) index turns a concurrent
// duplicate insert into a no-op instead of a double award. Each unlock is
// insert-then-apply-points; a half-failure leaves pointsApplied=false and is
// settled by reconcile on the next evaluation.
func EvaluateAndUnlock(ctx context.Context, profile *models.FarmerProfile) ([]models.Achievement, error) {
	if err := reconcile(ctx, profile.UserID); err != nil {
		return nil, err
	}

	unlockedTypes, err := UnlockedTypes(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}

	var unlocked []models.Achievement
	for _, cfg := range Evaluate(profile, unlockedTypes) {
		ach := models.Achievement{
			ID:              uuid.NewString(),
			UserID:          profile.UserID,
			AchievementType: cfg.Type,
			Title:           cfg.Title,
			Description:     cfg.Description,
			RewardPoints:    cfg.Points,
			PointsApplied:   false,
			UnlockedAt:      time.Now().UTC(),
		}
		if _, err := db.AchievementsCollection.InsertOne(ctx, ach); err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue // lost the race, the other writer owns the award
			}
			return nil, apperr.Storage("insert achievement", err)
		}

		if err := applyAchievementPoints(ctx, &ach); err != nil {
			return nil, err
		}

		mq.Emit("achievement-unlocked", mq.Index{
			EntityType: "achievement",
			Method:     "POST",
			EntityId:   ach.ID,
			ItemType:   ach.AchievementType,
			ItemId:     profile.UserID,
		})
		unlocked = append(unlocked, ach)
	}
	return unlocked, nil
}

// applyAchievementPoints claims the pending award by flipping pointsApplied
// false -> true in one conditional write. The unlock path and the reconcile
// sweep both route through here; only the claim winner adds the points, so a
// concurrent evaluation cannot award twice.
func applyAchievementPoints(ctx context.Context, ach *models.Achievement) error {
	err := db.AchievementsCollection.FindOneAndUpdate(ctx,
		bson.M{"_id": ach.ID, "pointsApplied": false},
		bson.M{"$set": bson.M{"pointsApplied": true}}).Err()
	if err == mongo.ErrNoDocuments {
		// another writer already settled this award
		ach.PointsApplied = true
		return nil
	}
	if err != nil {
		return apperr.Storage("claim pending award", err)
	}

	if _, err := AddPoints(ctx, ach.UserID, ach.RewardPoints); err != nil {
		// hand the award back to the reconcile sweep
		_, _ = db.AchievementsCollection.UpdateOne(ctx,
			bson.M{"_id": ach.ID},
			bson.M{"$set": bson.M{"pointsApplied": false}})
		return err
	}
	ach.PointsApplied = true
	return nil
}

// reconcile settles unlocks whose points never landed on the profile.
func reconcile(ctx context.Context, userID string) error {
	cursor, err := db.AchievementsCollection.Find(ctx,
		bson.M{"userId": userID, "pointsApplied": false})
	if err != nil {
		return apperr.Storage("find pending awards", err)
	}
	var pending []models.Achievement
	if err := cursor.All(ctx, &pending); err != nil {
		return apperr.Storage("decode pending awards", err)
	}

	for i := range pending {
		if err := applyAchievementPoints(ctx, &pending[i]); err != nil {
			return err
		}
	}
	return nil
}

// IncrementPlantsPlanted bumps the planting counter and evaluates the
// plant-count achievements.
func IncrementPlantsPlanted(ctx context.Context, userID string) (*models.FarmerProfile, []models.Achievement, error) {
	return incrementCounter(ctx, userID, "totalPlantsPlanted")
}

// IncrementHarvestsCompleted bumps the harvest counter and evaluates the
// harvest-count achievements.
func IncrementHarvestsCompleted(ctx context.Context, userID string) (*models.FarmerProfile, []models.Achievement, error) {
	return incrementCounter(ctx, userID, "totalHarvestsCompleted")
}

func incrementCounter(ctx context.Context, userID, field string) (*models.FarmerProfile, []models.Achievement, error) {
	if _, err := GetOrCreateProfile(ctx, userID); err != nil {
		return nil, nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var profile models.FarmerProfile
	err := db.ProfilesCollection.FindOneAndUpdate(ctx,
		bson.M{"userId": userID},
		bson.M{
			"$inc": bson.M{field: 1},
			"$set": bson.M{"updatedAt": time.Now().UTC()},
		}, opts).Decode(&profile)
	if err != nil {
		return nil, nil, apperr.Storage("increment "+field, err)
	}

	unlocked, err := EvaluateAndUnlock(ctx, &profile)
	if err != nil {
		return nil, nil, err
	}

	fresh, err := GetOrCreateProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return fresh, unlocked, nil
}
