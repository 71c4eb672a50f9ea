package service

import (
	"testing"
	"time"

	"lingoland_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLoginOncePerDay(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "rosa")

	first, streak, err := e.user.RecordLogin(user.ID)
	require.NoError(t, err)
	assert.True(t, first)
	assert.Equal(t, 1, streak)

	again, streak, err := e.user.RecordLogin(user.ID)
	require.NoError(t, err)
	assert.False(t, again)
	assert.Equal(t, 1, streak)

	count, err := e.checkinRepo.CountByUser(user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRecordLoginExtendsStreak(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "sven")

	require.NoError(t, e.checkinRepo.Create(&model.Checkin{
		UserID:     user.ID,
		CheckinAt:  time.Now().AddDate(0, 0, -1),
		StreakDays: 4,
	}))

	first, streak, err := e.user.RecordLogin(user.ID)
	require.NoError(t, err)
	assert.True(t, first)
	assert.Equal(t, 5, streak)

	assert.Equal(t, 5, e.stats(t, user.ID).Streak)
}

func TestRecordLoginGapResetsStreak(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "tara")

	require.NoError(t, e.checkinRepo.Create(&model.Checkin{
		UserID:     user.ID,
		CheckinAt:  time.Now().AddDate(0, 0, -3),
		StreakDays: 9,
	}))

	_, streak, err := e.user.RecordLogin(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}
