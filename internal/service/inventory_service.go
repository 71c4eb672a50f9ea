package service

import (
	"errors"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"

	"gorm.io/gorm"
)

// InventoryService manages owned items and the learner's equipped look.
type InventoryService struct {
	ItemRepo *repository.ItemRepository
	UserRepo *repository.UserRepository
}

func NewInventoryService(itemRepo *repository.ItemRepository, userRepo *repository.UserRepository) *InventoryService {
	return &InventoryService{
		ItemRepo: itemRepo,
		UserRepo: userRepo,
	}
}

func (s *InventoryService) ListInventory(userID uint) ([]model.UserItem, error) {
	return s.ItemRepo.ListUserItems(userID)
}

// Equip puts an owned item on. Pets are a single dedicated slot on the
// account; other slots hold one equipped item each.
func (s *InventoryService) Equip(userID, itemID uint) error {
	item, err := s.ItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrItemNotFound
		}
		return err
	}

	owned, err := s.ItemRepo.Owns(userID, itemID)
	if err != nil {
		return err
	}
	if !owned {
		return util.ErrItemNotOwned
	}

	if item.Slot == model.SlotPet {
		return s.UserRepo.SetEquippedPet(userID, &itemID)
	}

	return s.ItemRepo.SetEquipped(userID, itemID, item.Slot, true)
}

func (s *InventoryService) Unequip(userID, itemID uint) error {
	item, err := s.ItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrItemNotFound
		}
		return err
	}

	owned, err := s.ItemRepo.Owns(userID, itemID)
	if err != nil {
		return err
	}
	if !owned {
		return util.ErrItemNotOwned
	}

	if item.Slot == model.SlotPet {
		return s.UserRepo.SetEquippedPet(userID, nil)
	}

	return s.ItemRepo.SetEquipped(userID, itemID, item.Slot, false)
}
