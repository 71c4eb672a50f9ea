package service

import (
	"errors"
	"fmt"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService handles accounts and the daily login check-in.
type UserService struct {
	UserRepo    *repository.UserRepository
	CheckinRepo *repository.CheckinRepository
}

func NewUserService(userRepo *repository.UserRepository, checkinRepo *repository.CheckinRepository) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		CheckinRepo: checkinRepo,
	}
}

func (s *UserService) GetUsers(page, pageSize int, role, search string) ([]model.User, int64, error) {
	return s.UserRepo.List(page, pageSize, role, search)
}

func (s *UserService) GetUserByID(id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByIDWithStats(id)
	if err != nil {
		return nil, util.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateProfile(userID uint, name, avatar string) (*model.User, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return nil, util.ErrUserNotFound
	}

	if name != "" {
		user.Name = name
	}
	if avatar != "" {
		user.Avatar = avatar
	}
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) DisableUser(id uint, disable bool) error {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		return util.ErrUserNotFound
	}

	user.Disabled = disable
	user.UpdatedAt = time.Now()

	return s.UserRepo.Update(user)
}

// ResetPassword sets a temporary password and returns it in plain text for
// the admin to hand over.
func (s *UserService) ResetPassword(userID uint) (string, error) {
	user, err := s.UserRepo.FindByID(userID)
	if err != nil {
		return "", util.ErrUserNotFound
	}

	tempPassword := fmt.Sprintf("temp%d", time.Now().UnixNano()%100000000)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	user.Password = string(hashedPassword)
	user.UpdatedAt = time.Now()

	if err := s.UserRepo.Update(user); err != nil {
		return "", err
	}

	return tempPassword, nil
}

// RecordLogin registers today's check-in at most once per calendar day and
// keeps the streak: consecutive days extend it, a gap resets it to 1.
// Returns whether this call was the first check-in of the day.
func (s *UserService) RecordLogin(userID uint) (bool, int, error) {
	now := time.Now()

	if _, err := s.CheckinRepo.FindByUserAndDate(userID, now); err == nil {
		stats, err := s.UserRepo.GetStats(userID)
		if err != nil {
			return false, 0, err
		}
		return false, stats.Streak, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, err
	}

	streak := 1
	latest, err := s.CheckinRepo.FindLatestByUser(userID)
	if err == nil {
		yesterday := now.AddDate(0, 0, -1)
		if sameDay(latest.CheckinAt, yesterday) {
			streak = latest.StreakDays + 1
		}
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, 0, err
	}

	if err := s.CheckinRepo.Create(&model.Checkin{
		UserID:     userID,
		CheckinAt:  now,
		StreakDays: streak,
	}); err != nil {
		return false, 0, err
	}

	if err := s.UserRepo.UpdateStreak(userID, streak, now); err != nil {
		return false, 0, err
	}

	return true, streak, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
