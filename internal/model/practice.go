package model

// PracticeGame is an admin-configured mini game with its win reward.
// swagger:model PracticeGame
type PracticeGame struct {
	BaseModel
	Code     string       `gorm:"size:50;uniqueIndex;not null" json:"code"`
	Title    string       `gorm:"size:200;not null" json:"title"`
	Reward   RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`
	IsActive bool         `gorm:"default:true" json:"isActive"`
}

func (PracticeGame) TableName() string {
	return "practice_games"
}

// GameResult is one finished practice round.
// swagger:model GameResult
type GameResult struct {
	BaseModel
	UserID      uint   `gorm:"index;not null" json:"userId"`
	GameCode    string `gorm:"size:50;index;not null" json:"gameCode"`
	Score       int    `gorm:"default:0" json:"score"`
	Won         bool   `gorm:"default:false" json:"won"`
	DurationSec int    `gorm:"default:0" json:"durationSec"`
}

func (GameResult) TableName() string {
	return "game_results"
}
