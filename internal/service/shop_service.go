package service

import (
	"errors"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"

	"gorm.io/gorm"
)

// ShopService sells catalog items for gold or diamond.
type ShopService struct {
	ItemRepo     *repository.ItemRepository
	UserRepo     *repository.UserRepository
	PurchaseRepo *repository.PurchaseRepository
}

func NewShopService(
	itemRepo *repository.ItemRepository,
	userRepo *repository.UserRepository,
	purchaseRepo *repository.PurchaseRepository,
) *ShopService {
	return &ShopService{
		ItemRepo:     itemRepo,
		UserRepo:     userRepo,
		PurchaseRepo: purchaseRepo,
	}
}

func (s *ShopService) ListItems() ([]model.Item, error) {
	return s.ItemRepo.FindSellable()
}

// Purchase charges the learner and grants the item. The charge is a
// conditional decrement, so a balance can never go negative and two
// concurrent purchases cannot both succeed on insufficient funds.
func (s *ShopService) Purchase(userID, itemID uint) (*model.Purchase, error) {
	item, err := s.ItemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrItemNotFound
		}
		return nil, err
	}
	if !item.IsSellable {
		return nil, util.ErrItemNotSellable
	}

	owned, err := s.ItemRepo.Owns(userID, itemID)
	if err != nil {
		return nil, err
	}
	if owned {
		return nil, util.ErrItemAlreadyOwned
	}

	// make sure the stats row exists before the conditional decrement
	if _, err := s.UserRepo.GetStats(userID); err != nil {
		return nil, err
	}

	paid, err := s.UserRepo.SpendCurrency(userID, item.Currency, item.Price)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, util.ErrInsufficientFunds
	}

	if _, err := s.ItemRepo.AddToUser(userID, itemID); err != nil {
		return nil, err
	}

	purchase := &model.Purchase{
		UserID:   userID,
		ItemID:   itemID,
		Price:    item.Price,
		Currency: item.Currency,
	}
	if err := s.PurchaseRepo.Create(purchase); err != nil {
		return nil, err
	}

	return purchase, nil
}

func (s *ShopService) PurchaseHistory(userID uint) ([]model.Purchase, error) {
	return s.PurchaseRepo.ListByUser(userID)
}

func (s *ShopService) CreateItem(item *model.Item) error {
	return s.ItemRepo.Create(item)
}

func (s *ShopService) UpdateItem(item *model.Item) error {
	return s.ItemRepo.Update(item)
}
