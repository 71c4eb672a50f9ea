package service

import (
	"testing"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitResultWinPaysReward(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "uma")

	game := &model.PracticeGame{
		Code:   "word-match",
		Title:  "Word Match",
		Reward: model.RewardBundle{Gold: 8, XP: 12},
	}
	require.NoError(t, e.gameRepo.CreateGame(game))

	outcome, err := e.practice.SubmitResult(user.ID, "word-match", 950, true, 120)
	require.NoError(t, err)
	require.NotNil(t, outcome.Rewards)
	assert.Equal(t, 8, outcome.Rewards.Gold)
	assert.Equal(t, 12, outcome.Rewards.XP)

	stats := e.stats(t, user.ID)
	assert.Equal(t, 8, stats.Gold)
	assert.Equal(t, 12, stats.CurrentXP)
}

func TestSubmitResultLossRecordsOnly(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "vik")

	game := &model.PracticeGame{Code: "spelling-bee", Title: "Spelling Bee"}
	require.NoError(t, e.gameRepo.CreateGame(game))

	outcome, err := e.practice.SubmitResult(user.ID, "spelling-bee", 300, false, 90)
	require.NoError(t, err)
	assert.Nil(t, outcome.Rewards)
	assert.False(t, outcome.Result.Won)

	assert.Equal(t, 0, e.stats(t, user.ID).Gold)

	results, err := e.practice.RecentResults(user.ID, 10)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestSubmitResultUnconfiguredRewardFallsBack(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "wes")

	game := &model.PracticeGame{Code: "memory", Title: "Memory"}
	require.NoError(t, e.gameRepo.CreateGame(game))

	outcome, err := e.practice.SubmitResult(user.ID, "memory", 500, true, 60)
	require.NoError(t, err)
	require.NotNil(t, outcome.Rewards)
	assert.Equal(t, 5, outcome.Rewards.Gold)
	assert.Equal(t, 5, outcome.Rewards.XP)
}

func TestSubmitResultUnknownGame(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "xia")

	_, err := e.practice.SubmitResult(user.ID, "no-such-game", 0, true, 0)
	assert.ErrorIs(t, err, util.ErrGameNotFound)
}
