package repository

import (
	"lingoland_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByIDWithStats(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.Preload("Stats").First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

// GetStats returns the learner's stats row, creating it on first access.
func (r *UserRepository) GetStats(userID uint) (*model.UserStats, error) {
	var stats model.UserStats
	err := r.DB.Where(model.UserStats{UserID: userID}).
		Attrs(model.UserStats{Level: 1, NextLevelXP: 100}).
		FirstOrCreate(&stats).Error
	return &stats, err
}

// UpdateProgression persists level and XP columns without touching currency.
func (r *UserRepository) UpdateProgression(stats *model.UserStats) error {
	return r.DB.Model(&model.UserStats{}).
		Where("user_id = ?", stats.UserID).
		Updates(map[string]interface{}{
			"level":         stats.Level,
			"current_xp":    stats.CurrentXP,
			"next_level_xp": stats.NextLevelXP,
			"total_xp":      stats.TotalXP,
		}).Error
}

// AddCurrency applies gold/diamond grants as a single atomic increment.
func (r *UserRepository) AddCurrency(userID uint, gold, diamond int) error {
	if gold == 0 && diamond == 0 {
		return nil
	}
	return r.DB.Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"gold":    gorm.Expr("gold + ?", gold),
			"diamond": gorm.Expr("diamond + ?", diamond),
		}).Error
}

// SpendCurrency decrements conditionally so balances never go negative.
// Returns false when the learner cannot afford the price.
func (r *UserRepository) SpendCurrency(userID uint, currency model.Currency, amount int) (bool, error) {
	col := "gold"
	if currency == model.CurrencyDiamond {
		col = "diamond"
	}
	res := r.DB.Model(&model.UserStats{}).
		Where("user_id = ? AND "+col+" >= ?", userID, amount).
		Update(col, gorm.Expr(col+" - ?", amount))
	return res.RowsAffected > 0, res.Error
}

func (r *UserRepository) UpdateStreak(userID uint, streak int, lastLogin time.Time) error {
	return r.DB.Model(&model.UserStats{}).
		Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"streak":     streak,
			"last_login": lastLogin,
		}).Error
}

// LeaderboardRow is one ranked learner.
type LeaderboardRow struct {
	UserID  uint   `json:"userId"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar"`
	Level   int    `json:"level"`
	TotalXP int    `json:"totalXp"`
}

func (r *UserRepository) TopByXP(limit int) ([]LeaderboardRow, error) {
	var rows []LeaderboardRow
	err := r.DB.Model(&model.UserStats{}).
		Select("user_stats.user_id, users.name, users.avatar, user_stats.level, user_stats.total_xp").
		Joins("JOIN users ON users.id = user_stats.user_id").
		Where("users.disabled = ?", false).
		Order("user_stats.total_xp DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *UserRepository) List(page, pageSize int, role, search string) ([]model.User, int64, error) {
	var users []model.User
	var total int64

	query := r.DB.Model(&model.User{})
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if search != "" {
		term := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", term, term)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * pageSize
	err := query.Offset(offset).Limit(pageSize).Order("created_at DESC").Find(&users).Error
	return users, total, err
}

func (r *UserRepository) SetEquippedPet(userID uint, itemID *uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("equipped_pet_id", itemID).
		Error
}
