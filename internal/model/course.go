package model

type LessonType string

const (
	LessonVideo   LessonType = "video"
	LessonVocab   LessonType = "vocab"
	LessonGrammar LessonType = "grammar"
	LessonExam    LessonType = "exam"
)

// swagger:model Course
type Course struct {
	BaseModel
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"size:1000" json:"description"`
	AgeGroup    string       `gorm:"size:20" json:"ageGroup"`
	CoverURL    string       `gorm:"size:255" json:"coverUrl"`
	Order       int          `gorm:"default:0" json:"order"`
	IsPublished bool         `gorm:"default:false" json:"isPublished"`
	Reward      RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`

	Units []Unit `gorm:"foreignKey:CourseID" json:"units,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// swagger:model Unit
type Unit struct {
	BaseModel
	CourseID    uint         `gorm:"index;not null" json:"courseId"`
	Title       string       `gorm:"size:200;not null" json:"title"`
	Description string       `gorm:"size:1000" json:"description"`
	Order       int          `gorm:"default:0" json:"order"`
	Reward      RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`

	Lessons []Lesson `gorm:"foreignKey:UnitID" json:"lessons,omitempty"`
}

func (Unit) TableName() string {
	return "units"
}

// Lesson carries a denormalized CourseID so completion rows can be counted
// at course scope without joining through units.
// swagger:model Lesson
type Lesson struct {
	BaseModel
	UnitID   uint         `gorm:"index;not null" json:"unitId"`
	CourseID uint         `gorm:"index;not null" json:"courseId"`
	Title    string       `gorm:"size:200;not null" json:"title"`
	Type     LessonType   `gorm:"size:20;default:'video'" json:"type"`
	VideoURL string       `gorm:"size:255" json:"videoUrl"`
	Order    int          `gorm:"default:0" json:"order"`
	Reward   RewardBundle `gorm:"embedded;embeddedPrefix:reward_" json:"reward"`
}

func (Lesson) TableName() string {
	return "lessons"
}
