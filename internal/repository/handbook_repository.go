package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type HandbookRepository struct {
	DB *gorm.DB
}

func NewHandbookRepository(db *gorm.DB) *HandbookRepository {
	return &HandbookRepository{DB: db}
}

func (r *HandbookRepository) FindAll() ([]model.HandbookCard, error) {
	var cards []model.HandbookCard
	err := r.DB.Order("id asc").Find(&cards).Error
	return cards, err
}

func (r *HandbookRepository) FindByID(id uint) (*model.HandbookCard, error) {
	var card model.HandbookCard
	err := r.DB.First(&card, id).Error
	return &card, err
}

func (r *HandbookRepository) FindByIDs(ids []uint) ([]model.HandbookCard, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var cards []model.HandbookCard
	err := r.DB.Where("id IN ?", ids).Find(&cards).Error
	return cards, err
}

func (r *HandbookRepository) Create(card *model.HandbookCard) error {
	return r.DB.Create(card).Error
}

func (r *HandbookRepository) Update(card *model.HandbookCard) error {
	return r.DB.Save(card).Error
}

// AddToUser collects a card with set semantics.
func (r *HandbookRepository) AddToUser(userID, cardID uint) (bool, error) {
	row := &model.UserHandbookCard{UserID: userID, CardID: cardID}
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "card_id"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *HandbookRepository) ListUserCards(userID uint) ([]model.UserHandbookCard, error) {
	var rows []model.UserHandbookCard
	err := r.DB.Preload("Card").Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

func (r *HandbookRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.UserHandbookCard{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}
