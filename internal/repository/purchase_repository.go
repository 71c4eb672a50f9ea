package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
)

type PurchaseRepository struct {
	DB *gorm.DB
}

func NewPurchaseRepository(db *gorm.DB) *PurchaseRepository {
	return &PurchaseRepository{DB: db}
}

func (r *PurchaseRepository) Create(purchase *model.Purchase) error {
	return r.DB.Create(purchase).Error
}

func (r *PurchaseRepository) ListByUser(userID uint) ([]model.Purchase, error) {
	var purchases []model.Purchase
	err := r.DB.Where("user_id = ?", userID).Order("created_at desc").Find(&purchases).Error
	return purchases, err
}
