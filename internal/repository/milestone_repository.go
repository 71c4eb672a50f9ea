package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type MilestoneRepository struct {
	DB *gorm.DB
}

func NewMilestoneRepository(db *gorm.DB) *MilestoneRepository {
	return &MilestoneRepository{DB: db}
}

// ClaimOnce writes the tombstone for (user, target, type). The insert and
// the existence check are a single conditional statement, so of any number
// of concurrent callers exactly one sees created=true and pays the reward.
func (r *MilestoneRepository) ClaimOnce(userID, targetID uint, milestoneType model.MilestoneType) (bool, error) {
	milestone := &model.Milestone{
		UserID:        userID,
		TargetID:      targetID,
		Type:          milestoneType,
		RewardClaimed: true,
	}
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "target_id"}, {Name: "type"}},
		DoNothing: true,
	}).Create(milestone)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *MilestoneRepository) Exists(userID, targetID uint, milestoneType model.MilestoneType) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Milestone{}).
		Where("user_id = ? AND target_id = ? AND type = ?", userID, targetID, milestoneType).
		Count(&count).Error
	return count > 0, err
}

func (r *MilestoneRepository) ListByUser(userID uint) ([]model.Milestone, error) {
	var milestones []model.Milestone
	err := r.DB.Where("user_id = ?", userID).Find(&milestones).Error
	return milestones, err
}
