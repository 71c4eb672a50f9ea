package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ItemRepository struct {
	DB *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{DB: db}
}

func (r *ItemRepository) FindAll() ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Order("id asc").Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindSellable() ([]model.Item, error) {
	var items []model.Item
	err := r.DB.Where("is_sellable = ?", true).Order("id asc").Find(&items).Error
	return items, err
}

func (r *ItemRepository) FindByID(id uint) (*model.Item, error) {
	var item model.Item
	err := r.DB.First(&item, id).Error
	return &item, err
}

func (r *ItemRepository) FindByIDs(ids []uint) ([]model.Item, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var items []model.Item
	err := r.DB.Where("id IN ?", ids).Find(&items).Error
	return items, err
}

func (r *ItemRepository) Create(item *model.Item) error {
	return r.DB.Create(item).Error
}

func (r *ItemRepository) Update(item *model.Item) error {
	return r.DB.Save(item).Error
}

// AddToUser grants an item with set semantics; owning it twice is a no-op.
func (r *ItemRepository) AddToUser(userID, itemID uint) (bool, error) {
	row := &model.UserItem{UserID: userID, ItemID: itemID}
	res := r.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "item_id"}},
		DoNothing: true,
	}).Create(row)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *ItemRepository) Owns(userID, itemID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.UserItem{}).
		Where("user_id = ? AND item_id = ?", userID, itemID).
		Count(&count).Error
	return count > 0, err
}

func (r *ItemRepository) ListUserItems(userID uint) ([]model.UserItem, error) {
	var rows []model.UserItem
	err := r.DB.Preload("Item").Where("user_id = ?", userID).Find(&rows).Error
	return rows, err
}

// SetEquipped equips one owned item and unequips anything else occupying
// the same slot, inside a transaction.
func (r *ItemRepository) SetEquipped(userID, itemID uint, slot model.ItemSlot, equipped bool) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		if equipped {
			err := tx.Model(&model.UserItem{}).
				Where("user_id = ? AND equipped = ? AND item_id IN (?)",
					userID, true,
					tx.Model(&model.Item{}).Select("id").Where("slot = ?", slot),
				).
				Update("equipped", false).Error
			if err != nil {
				return err
			}
		}
		return tx.Model(&model.UserItem{}).
			Where("user_id = ? AND item_id = ?", userID, itemID).
			Update("equipped", equipped).Error
	})
}
