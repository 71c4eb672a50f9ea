package model

import (
	"time"
)

type UserRole string

const (
	Student UserRole = "student"
	Parent  UserRole = "parent"
	Admin   UserRole = "admin"
)

// swagger:model User
type User struct {
	BaseModel
	Name          string    `gorm:"size:100;not null" json:"name"`
	Email         string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Password      string    `gorm:"size:100;not null" json:"-"`
	Role          UserRole  `gorm:"size:20;default:'student'" json:"role"`
	Avatar        string    `gorm:"size:255" json:"avatar"`
	Disabled      bool      `gorm:"default:false" json:"disabled"`
	EquippedPetID *uint     `json:"equippedPetId"`
	LastSeen      time.Time `json:"lastSeen"`

	Stats *UserStats `gorm:"foreignKey:UserID" json:"stats,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// UserStats holds the learner's progression record. Currency columns are
// only ever changed through atomic SQL increments; XP and level go through
// the reward service.
// swagger:model UserStats
type UserStats struct {
	BaseModel
	UserID      uint      `gorm:"uniqueIndex;not null" json:"-"`
	Level       int       `gorm:"default:1" json:"level"`
	CurrentXP   int       `gorm:"default:0" json:"currentXp"`
	NextLevelXP int       `gorm:"default:100" json:"nextLevelXp"`
	TotalXP     int       `gorm:"default:0" json:"totalXp"`
	Gold        int       `gorm:"default:0" json:"gold"`
	Diamond     int       `gorm:"default:0" json:"diamond"`
	Streak      int       `gorm:"default:0" json:"streak"`
	LastLogin   time.Time `json:"lastLogin"`
}

func (UserStats) TableName() string {
	return "user_stats"
}
