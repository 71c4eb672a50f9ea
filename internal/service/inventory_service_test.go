package service

import (
	"testing"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newInventoryService(e *testEnv) *InventoryService {
	return NewInventoryService(e.itemRepo, e.userRepo)
}

func TestEquipSwapsWithinSlot(t *testing.T) {
	e := newTestEnv(t)
	inventory := newInventoryService(e)
	user := e.createUser(t, "yui")

	red := &model.Item{Name: "Red Hat", Slot: model.SlotHat}
	blue := &model.Item{Name: "Blue Hat", Slot: model.SlotHat}
	require.NoError(t, e.itemRepo.Create(red))
	require.NoError(t, e.itemRepo.Create(blue))

	for _, item := range []*model.Item{red, blue} {
		_, err := e.itemRepo.AddToUser(user.ID, item.ID)
		require.NoError(t, err)
	}

	require.NoError(t, inventory.Equip(user.ID, red.ID))
	require.NoError(t, inventory.Equip(user.ID, blue.ID))

	items, err := inventory.ListInventory(user.ID)
	require.NoError(t, err)

	equipped := map[uint]bool{}
	for _, row := range items {
		equipped[row.ItemID] = row.Equipped
	}
	// equipping the blue hat takes the red one off
	assert.False(t, equipped[red.ID])
	assert.True(t, equipped[blue.ID])
}

func TestEquipPetUsesAccountSlot(t *testing.T) {
	e := newTestEnv(t)
	inventory := newInventoryService(e)
	user := e.createUser(t, "zed")

	pet := &model.Item{Name: "Baby Fox", Slot: model.SlotPet}
	require.NoError(t, e.itemRepo.Create(pet))
	_, err := e.itemRepo.AddToUser(user.ID, pet.ID)
	require.NoError(t, err)

	require.NoError(t, inventory.Equip(user.ID, pet.ID))

	found, err := e.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	require.NotNil(t, found.EquippedPetID)
	assert.Equal(t, pet.ID, *found.EquippedPetID)

	require.NoError(t, inventory.Unequip(user.ID, pet.ID))
	found, err = e.userRepo.FindByID(user.ID)
	require.NoError(t, err)
	assert.Nil(t, found.EquippedPetID)
}

func TestEquipRequiresOwnership(t *testing.T) {
	e := newTestEnv(t)
	inventory := newInventoryService(e)
	user := e.createUser(t, "ana")

	item := &model.Item{Name: "Gold Crown", Slot: model.SlotHat}
	require.NoError(t, e.itemRepo.Create(item))

	assert.ErrorIs(t, inventory.Equip(user.ID, item.ID), util.ErrItemNotOwned)
	assert.ErrorIs(t, inventory.Equip(user.ID, 9999), util.ErrItemNotFound)
}
