package models

import "time"

type User struct {
	ID           string    `bson:"_id" json:"id"`
	Username     string    `bson:"username" json:"username"`
	Email        string    `bson:"email" json:"email"`
	PasswordHash string    `bson:"passwordHash" json:"-"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}

// FarmerProfile holds the per-user counters the reward engine works on.
// lastActiveDate + currentStreak are the streak boundary: advancing the streak
// after a new activity never rescans the activity history.
type FarmerProfile struct {
	ID                     string     `bson:"_id" json:"id"`
	UserID                 string     `bson:"userId" json:"userId"`
	FarmName               string     `bson:"farmName,omitempty" json:"farmName,omitempty"`
	Location               string     `bson:"location,omitempty" json:"location,omitempty"`
	FarmSize               float64    `bson:"farmSize,omitempty" json:"farmSize,omitempty"`
	Bio                    string     `bson:"bio,omitempty" json:"bio,omitempty"`
	ProfileImage           string     `bson:"profileImage,omitempty" json:"profileImage,omitempty"`
	TotalPlantsPlanted     int        `bson:"totalPlantsPlanted" json:"totalPlantsPlanted"`
	TotalHarvestsCompleted int        `bson:"totalHarvestsCompleted" json:"totalHarvestsCompleted"`
	CurrentStreak          int        `bson:"currentStreak" json:"currentStreak"`
	LongestStreak          int        `bson:"longestStreak" json:"longestStreak"`
	LastActiveDate         *time.Time `bson:"lastActiveDate,omitempty" json:"lastActiveDate,omitempty"`
	TotalRewardPoints      int        `bson:"totalRewardPoints" json:"totalRewardPoints"`
	Level                  int        `bson:"level" json:"level"`
	CreatedAt              time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt              time.Time  `bson:"updatedAt" json:"updatedAt"`
}

type PlantingRecord struct {
	ID                  string     `bson:"_id" json:"id"`
	UserID              string     `bson:"userId" json:"userId"`
	CropName            string     `bson:"cropName" json:"cropName"`
	CropImage           string     `bson:"cropImage,omitempty" json:"cropImage,omitempty"`
	PlantedDate         time.Time  `bson:"plantedDate" json:"plantedDate"`
	ExpectedHarvestDate *time.Time `bson:"expectedHarvestDate,omitempty" json:"expectedHarvestDate,omitempty"`
	HarvestDate         *time.Time `bson:"harvestDate,omitempty" json:"harvestDate,omitempty"`
	QuantityKg          *float64   `bson:"quantityKg,omitempty" json:"quantityKg,omitempty"`
	Notes               string     `bson:"notes,omitempty" json:"notes,omitempty"`
	IsCompleted         bool       `bson:"isCompleted" json:"isCompleted"`
	CreatedAt           time.Time  `bson:"createdAt" json:"createdAt"`
}

// ActivityEvent rows are append-only; the engine never mutates or deletes them.
type ActivityEvent struct {
	ID           string    `bson:"_id" json:"id"`
	UserID       string    `bson:"userId" json:"userId"`
	ActivityType string    `bson:"activityType" json:"activityType"`
	ActivityDate time.Time `bson:"activityDate" json:"activityDate"`
	Description  string    `bson:"description,omitempty" json:"description,omitempty"`
}

// Achievement is write-once per (userId, achievementType); the achievements
// collection carries a unique index on that pair. PointsApplied flips to true
// once the reward points landed on the profile, so a half-failed unlock is
// reconciled instead of re-awarded.
type Achievement struct {
	ID              string    `bson:"_id" json:"id"`
	UserID          string    `bson:"userId" json:"userId"`
	AchievementType string    `bson:"achievementType" json:"achievementType"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	RewardPoints    int       `bson:"rewardPoints" json:"rewardPoints"`
	PointsApplied   bool      `bson:"pointsApplied" json:"-"`
	UnlockedAt      time.Time `bson:"unlockedAt" json:"unlockedAt"`
}

type Reminder struct {
	ID            string    `bson:"_id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	PlantingID    string    `bson:"plantingId,omitempty" json:"plantingId,omitempty"`
	ReminderType  string    `bson:"reminderType" json:"reminderType"`
	ScheduledDate time.Time `bson:"scheduledDate" json:"scheduledDate"`
	Message       string    `bson:"message" json:"message"`
	IsCompleted   bool      `bson:"isCompleted" json:"isCompleted"`
	CropName      string    `bson:"-" json:"cropName,omitempty"`
	Synthetic     bool      `bson:"-" json:"synthetic,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

type CommunityTip struct {
	ID        string    `bson:"_id" json:"id"`
	UserID    string    `bson:"userId" json:"userId"`
	CropName  string    `bson:"cropName" json:"cropName"`
	Title     string    `bson:"title" json:"title"`
	Content   string    `bson:"content" json:"content"`
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Upvotes   int       `bson:"upvotes" json:"upvotes"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
