package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AchievementRepository struct {
	DB *gorm.DB
}

func NewAchievementRepository(db *gorm.DB) *AchievementRepository {
	return &AchievementRepository{DB: db}
}

func (r *AchievementRepository) FindAll() ([]model.Achievement, error) {
	var achievements []model.Achievement
	err := r.DB.Order("id asc").Find(&achievements).Error
	return achievements, err
}

func (r *AchievementRepository) FindByID(id uint) (*model.Achievement, error) {
	var achievement model.Achievement
	err := r.DB.First(&achievement, id).Error
	return &achievement, err
}

func (r *AchievementRepository) Create(achievement *model.Achievement) error {
	return r.DB.Create(achievement).Error
}

func (r *AchievementRepository) Update(achievement *model.Achievement) error {
	return r.DB.Save(achievement).Error
}

func (r *AchievementRepository) FindBadgesByUser(userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&badges).Error
	return badges, err
}

// CreateBadgeOnce unlocks a badge at most once per (user, achievement);
// the unique index makes concurrent unlock attempts converge on one row.
func (r *AchievementRepository) CreateBadgeOnce(badge *model.Badge) (bool, error) {
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "achievement_id"}},
		DoNothing: true,
	}).Create(badge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
