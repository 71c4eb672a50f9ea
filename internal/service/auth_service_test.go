package service

import (
	"testing"
	"time"

	"lingoland_backend/internal/config"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(e *testEnv) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "unit-test-secret"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(e.userRepo, cfg)
}

func TestRegisterAndLogin(t *testing.T) {
	e := newTestEnv(t)
	auth := newAuthService(e)

	user := &model.User{
		Name:     "Lily",
		Email:    "lily@test.local",
		Password: "hunter22",
		Role:     model.Student,
	}
	require.NoError(t, auth.Register(user))

	// stored password is hashed, stats row starts at level 1
	assert.NotEqual(t, "hunter22", user.Password)
	stats := e.stats(t, user.ID)
	assert.Equal(t, 1, stats.Level)
	assert.Equal(t, 100, stats.NextLevelXP)

	token, loggedIn, err := auth.Login("lily@test.local", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, _, err = auth.Login("lily@test.local", "wrong")
	assert.Error(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	e := newTestEnv(t)
	auth := newAuthService(e)

	first := &model.User{Name: "A", Email: "dup@test.local", Password: "pw123456"}
	require.NoError(t, auth.Register(first))

	second := &model.User{Name: "B", Email: "dup@test.local", Password: "pw123456"}
	assert.ErrorIs(t, auth.Register(second), util.ErrEmailRegistered)
}

func TestLoginDisabledAccount(t *testing.T) {
	e := newTestEnv(t)
	auth := newAuthService(e)

	user := &model.User{Name: "C", Email: "off@test.local", Password: "pw123456"}
	require.NoError(t, auth.Register(user))
	require.NoError(t, e.db.Model(user).Update("disabled", true).Error)

	_, _, err := auth.Login("off@test.local", "pw123456")
	assert.Error(t, err)
}
