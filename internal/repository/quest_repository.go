package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type QuestRepository struct {
	DB *gorm.DB
}

func NewQuestRepository(db *gorm.DB) *QuestRepository {
	return &QuestRepository{DB: db}
}

func (r *QuestRepository) FindActive() ([]model.Quest, error) {
	var quests []model.Quest
	err := r.DB.Where("is_active = ?", true).Order("id asc").Find(&quests).Error
	return quests, err
}

func (r *QuestRepository) FindActiveByType(eventType model.EventType) ([]model.Quest, error) {
	var quests []model.Quest
	err := r.DB.Where("type = ? AND is_active = ?", eventType, true).Find(&quests).Error
	return quests, err
}

func (r *QuestRepository) FindByID(id uint) (*model.Quest, error) {
	var quest model.Quest
	err := r.DB.First(&quest, id).Error
	return &quest, err
}

func (r *QuestRepository) Create(quest *model.Quest) error {
	return r.DB.Create(quest).Error
}

func (r *QuestRepository) Update(quest *model.Quest) error {
	return r.DB.Save(quest).Error
}

// AddProgress increments today's progress row. The row is first ensured
// with a do-nothing insert, then bumped with an atomic SQL increment, so
// concurrent events never lose updates and a claimed flag is never reset.
func (r *QuestRepository) AddProgress(userID, questID uint, trackingDate string, amount int) error {
	row := &model.QuestProgress{
		UserID:       userID,
		QuestID:      questID,
		TrackingDate: trackingDate,
	}
	err := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "quest_id"}, {Name: "tracking_date"}},
		DoNothing: true,
	}).Create(row).Error
	if err != nil {
		return err
	}

	return r.DB.Model(&model.QuestProgress{}).
		Where("user_id = ? AND quest_id = ? AND tracking_date = ?", userID, questID, trackingDate).
		Update("progress", gorm.Expr("progress + ?", amount)).
		Error
}

func (r *QuestRepository) FindProgress(userID, questID uint, trackingDate string) (*model.QuestProgress, error) {
	var progress model.QuestProgress
	err := r.DB.
		Where("user_id = ? AND quest_id = ? AND tracking_date = ?", userID, questID, trackingDate).
		First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

func (r *QuestRepository) FindProgressForDate(userID uint, trackingDate string) ([]model.QuestProgress, error) {
	var rows []model.QuestProgress
	err := r.DB.
		Where("user_id = ? AND tracking_date = ?", userID, trackingDate).
		Find(&rows).Error
	return rows, err
}

// MarkClaimed flips is_claimed only if it is still unset; the conditional
// update makes double claims lose the race instead of double paying.
func (r *QuestRepository) MarkClaimed(userID, questID uint, trackingDate string) (bool, error) {
	res := r.DB.Model(&model.QuestProgress{}).
		Where("user_id = ? AND quest_id = ? AND tracking_date = ? AND is_claimed = ?",
			userID, questID, trackingDate, false).
		Update("is_claimed", true)
	return res.RowsAffected > 0, res.Error
}
