package service

import (
	"testing"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPurchaseInsufficientFunds(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "max")

	item := &model.Item{Name: "Pirate Hat", Slot: model.SlotHat, Price: 100, Currency: model.CurrencyGold, IsSellable: true}
	require.NoError(t, e.itemRepo.Create(item))

	_, err := e.shop.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, util.ErrInsufficientFunds)

	// the failed charge leaves no trace
	assert.Equal(t, 0, e.stats(t, user.ID).Gold)
	owned, err := e.itemRepo.Owns(user.ID, item.ID)
	require.NoError(t, err)
	assert.False(t, owned)
}

func TestPurchaseAndDuplicate(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "nina")

	item := &model.Item{Name: "Star Background", Slot: model.SlotBackground, Price: 80, Currency: model.CurrencyGold, IsSellable: true}
	require.NoError(t, e.itemRepo.Create(item))

	require.NoError(t, e.userRepo.AddCurrency(user.ID, 200, 0))

	purchase, err := e.shop.Purchase(user.ID, item.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, purchase.ID)
	assert.Equal(t, 80, purchase.Price)

	assert.Equal(t, 120, e.stats(t, user.ID).Gold)

	_, err = e.shop.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, util.ErrItemAlreadyOwned)
	assert.Equal(t, 120, e.stats(t, user.ID).Gold)

	history, err := e.shop.PurchaseHistory(user.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestPurchaseDiamondItem(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "oli")

	item := &model.Item{Name: "Baby Dragon", Slot: model.SlotPet, Price: 10, Currency: model.CurrencyDiamond, IsSellable: true}
	require.NoError(t, e.itemRepo.Create(item))

	require.NoError(t, e.userRepo.AddCurrency(user.ID, 1000, 12))

	_, err := e.shop.Purchase(user.ID, item.ID)
	require.NoError(t, err)

	stats := e.stats(t, user.ID)
	assert.Equal(t, 2, stats.Diamond)
	// gold untouched by a diamond purchase
	assert.Equal(t, 1000, stats.Gold)
}

func TestPurchaseNotSellable(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "pam")

	item := &model.Item{Name: "Quest Trophy", Slot: model.SlotBackground, Price: 0, IsSellable: false}
	require.NoError(t, e.itemRepo.Create(item))
	require.NoError(t, e.db.Model(item).Update("is_sellable", false).Error)

	_, err := e.shop.Purchase(user.ID, item.ID)
	assert.ErrorIs(t, err, util.ErrItemNotSellable)

	_, err = e.shop.Purchase(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrItemNotFound)
}
