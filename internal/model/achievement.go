package model

type CriteriaType string

const (
	CriteriaTotalXP          CriteriaType = "TOTAL_XP"
	CriteriaStreakDays       CriteriaType = "STREAK_DAYS"
	CriteriaLessonsCompleted CriteriaType = "LESSONS_COMPLETED"
	CriteriaGamesWon         CriteriaType = "GAMES_WON"
	CriteriaVocabCollected   CriteriaType = "VOCAB_COLLECTED"
)

// Achievement is an admin-managed permanent unlock with a single
// threshold criterion.
// swagger:model Achievement
type Achievement struct {
	BaseModel
	Name          string       `gorm:"size:100;not null" json:"name"`
	Description   string       `gorm:"size:500" json:"description"`
	Tier          string       `gorm:"size:20;default:'bronze'" json:"tier"`
	ImageURL      string       `gorm:"size:255" json:"imageUrl"`
	CriteriaType  CriteriaType `gorm:"size:30;not null" json:"criteriaType"`
	CriteriaValue int          `gorm:"not null" json:"criteriaValue"`
	Reward        RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`
}

func (Achievement) TableName() string {
	return "achievements"
}

// Badge is created once per (user, achievement) when the criterion is first
// satisfied; the unique index guards against re-granting.
// swagger:model Badge
type Badge struct {
	BaseModel
	UserID        uint   `gorm:"uniqueIndex:idx_user_achievement;not null" json:"userId"`
	AchievementID uint   `gorm:"uniqueIndex:idx_user_achievement;not null" json:"achievementId"`
	Name          string `gorm:"size:100;not null" json:"name"`
	ImageURL      string `gorm:"size:255" json:"imageUrl"`
	IsUnlocked    bool   `gorm:"default:true" json:"isUnlocked"`
}

func (Badge) TableName() string {
	return "badges"
}
