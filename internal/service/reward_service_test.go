package service

import (
	"testing"

	"lingoland_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiveRewardsCurrencyOnly(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "mia")

	got, err := e.reward.GiveRewards(user.ID, model.RewardBundle{Gold: 30, Diamond: 2}, "test")
	require.NoError(t, err)

	assert.Equal(t, 30, got.Gold)
	assert.Equal(t, 2, got.Diamond)
	assert.Equal(t, 0, got.LevelsGained)

	stats := e.stats(t, user.ID)
	assert.Equal(t, 30, stats.Gold)
	assert.Equal(t, 2, stats.Diamond)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, 0, stats.CurrentXP)
}

func TestGiveRewardsXPRollover(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "leo")

	// put the learner at 90/100
	_, err := e.reward.GiveRewards(user.ID, model.RewardBundle{XP: 90}, "test")
	require.NoError(t, err)

	got, err := e.reward.GiveRewards(user.ID, model.RewardBundle{XP: 20}, "test")
	require.NoError(t, err)

	assert.Equal(t, 1, got.LevelsGained)
	assert.Equal(t, 2, got.Level)

	stats := e.stats(t, user.ID)
	assert.Equal(t, 2, stats.Level)
	assert.Equal(t, 10, stats.CurrentXP)
	assert.Equal(t, 120, stats.NextLevelXP)
	assert.Equal(t, 110, stats.TotalXP)

	// level-up bonus on top of the (currency-free) bundle
	assert.Equal(t, 50, stats.Gold)
	assert.Equal(t, 5, stats.Diamond)
}

func TestGiveRewardsMultiLevelGrant(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "zoe")

	// 250 XP from fresh crosses 100 and then 120
	got, err := e.reward.GiveRewards(user.ID, model.RewardBundle{XP: 250}, "test")
	require.NoError(t, err)

	assert.Equal(t, 2, got.LevelsGained)

	stats := e.stats(t, user.ID)
	assert.Equal(t, 3, stats.Level)
	assert.Equal(t, 30, stats.CurrentXP)
	assert.Equal(t, 144, stats.NextLevelXP)
	assert.Less(t, stats.CurrentXP, stats.NextLevelXP)

	assert.Equal(t, 100, stats.Gold)
	assert.Equal(t, 10, stats.Diamond)
}

func TestGiveRewardsItemsAndCards(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "sam")

	item := &model.Item{Name: "Wizard Hat", Slot: model.SlotHat, IsSellable: false}
	require.NoError(t, e.itemRepo.Create(item))
	card := &model.HandbookCard{Word: "dragon"}
	require.NoError(t, e.handbookRepo.Create(card))

	bundle := model.RewardBundle{
		ItemIDs: model.IDList{item.ID},
		CardIDs: model.IDList{card.ID},
	}

	got, err := e.reward.GiveRewards(user.ID, bundle, "test")
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Len(t, got.Cards, 1)

	owned, err := e.itemRepo.Owns(user.ID, item.ID)
	require.NoError(t, err)
	assert.True(t, owned)

	// re-granting the same bundle keeps set semantics
	_, err = e.reward.GiveRewards(user.ID, bundle, "test")
	require.NoError(t, err)

	items, err := e.itemRepo.ListUserItems(user.ID)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	cards, err := e.handbookRepo.ListUserCards(user.ID)
	require.NoError(t, err)
	assert.Len(t, cards, 1)
}
