package model

type MilestoneType string

const (
	MilestoneUnit   MilestoneType = "unit"
	MilestoneCourse MilestoneType = "course"
)

// LessonCompletion records that a learner finished a lesson. One row per
// (user, lesson); unit and course ids are denormalized for aggregate counts.
// swagger:model LessonCompletion
type LessonCompletion struct {
	BaseModel
	UserID      uint `gorm:"uniqueIndex:idx_user_lesson;not null" json:"userId"`
	LessonID    uint `gorm:"uniqueIndex:idx_user_lesson;not null" json:"lessonId"`
	UnitID      uint `gorm:"index;not null" json:"unitId"`
	CourseID    uint `gorm:"index;not null" json:"courseId"`
	IsCompleted bool `gorm:"default:true" json:"isCompleted"`
}

func (LessonCompletion) TableName() string {
	return "lesson_completions"
}

// Milestone is the tombstone that marks a unit or course reward as paid.
// The unique index is what makes the grant happen at most once; rows are
// never updated after creation.
// swagger:model Milestone
type Milestone struct {
	BaseModel
	UserID        uint          `gorm:"uniqueIndex:idx_user_target_type;not null" json:"userId"`
	TargetID      uint          `gorm:"uniqueIndex:idx_user_target_type;not null" json:"targetId"`
	Type          MilestoneType `gorm:"uniqueIndex:idx_user_target_type;size:10;not null" json:"type"`
	RewardClaimed bool          `gorm:"default:true" json:"rewardClaimed"`
}

func (Milestone) TableName() string {
	return "milestones"
}
