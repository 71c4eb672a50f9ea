package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CompletionRepository struct {
	DB *gorm.DB
}

func NewCompletionRepository(db *gorm.DB) *CompletionRepository {
	return &CompletionRepository{DB: db}
}

// CreateIfAbsent inserts the completion row unless one already exists for
// the (user, lesson) pair. The unique index backs the conflict target, so
// concurrent duplicate submissions resolve to a single row; the return
// value reports whether this call created it.
func (r *CompletionRepository) CreateIfAbsent(completion *model.LessonCompletion) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "lesson_id"}},
		DoNothing: true,
	}).Create(completion)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *CompletionRepository) CountCompletedInUnit(userID, unitID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ? AND unit_id = ? AND is_completed = ?", userID, unitID, true).
		Count(&count).Error
	return count, err
}

func (r *CompletionRepository) CountCompletedInCourse(userID, courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ? AND course_id = ? AND is_completed = ?", userID, courseID, true).
		Count(&count).Error
	return count, err
}

func (r *CompletionRepository) CountCompletedByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonCompletion{}).
		Where("user_id = ? AND is_completed = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *CompletionRepository) ListByUserAndCourse(userID, courseID uint) ([]model.LessonCompletion, error) {
	var completions []model.LessonCompletion
	err := r.DB.
		Where("user_id = ? AND course_id = ?", userID, courseID).
		Find(&completions).Error
	return completions, err
}
