package model

// EventType classifies the gameplay events that feed quest progress.
type EventType string

const (
	EventLearningTime     EventType = "LEARNING_TIME"
	EventLessonsCompleted EventType = "LESSONS_COMPLETED"
	EventGameWon          EventType = "GAME_WON"
	EventLogin            EventType = "LOGIN"
)

// Quest is an admin-managed daily objective.
// swagger:model Quest
type Quest struct {
	BaseModel
	Title    string       `gorm:"size:200;not null" json:"title"`
	Type     EventType    `gorm:"size:30;index;not null" json:"type"`
	Target   int          `gorm:"not null" json:"target"`
	Reward   RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`
	IsActive bool         `gorm:"default:true" json:"isActive"`
}

func (Quest) TableName() string {
	return "quests"
}

// QuestProgress accumulates a learner's progress on one quest for one
// calendar day. The tracking date keying is what resets quests daily;
// historical rows are kept.
// swagger:model QuestProgress
type QuestProgress struct {
	BaseModel
	UserID       uint   `gorm:"uniqueIndex:idx_user_quest_date;not null" json:"userId"`
	QuestID      uint   `gorm:"uniqueIndex:idx_user_quest_date;not null" json:"questId"`
	TrackingDate string `gorm:"uniqueIndex:idx_user_quest_date;size:10;not null" json:"trackingDate"`
	Progress     int    `gorm:"default:0" json:"progress"`
	IsClaimed    bool   `gorm:"default:false" json:"isClaimed"`
}

func (QuestProgress) TableName() string {
	return "quest_progresses"
}
