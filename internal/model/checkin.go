package model

import (
	"time"
)

// Checkin records one login day per learner, used for streak tracking.
// swagger:model Checkin
type Checkin struct {
	BaseModel
	UserID     uint      `gorm:"index;not null" json:"userId"`
	CheckinAt  time.Time `gorm:"not null" json:"checkinAt"`
	StreakDays int       `gorm:"default:1" json:"streakDays"`
}

func (Checkin) TableName() string {
	return "checkins"
}
