package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{DB: db}
}

func (r *GameRepository) FindActiveGames() ([]model.PracticeGame, error) {
	var games []model.PracticeGame
	err := r.DB.Where("is_active = ?", true).Order("id asc").Find(&games).Error
	return games, err
}

func (r *GameRepository) FindGameByCode(code string) (*model.PracticeGame, error) {
	var game model.PracticeGame
	err := r.DB.Where("code = ?", code).First(&game).Error
	return &game, err
}

func (r *GameRepository) CreateGame(game *model.PracticeGame) error {
	return r.DB.Create(game).Error
}

func (r *GameRepository) UpdateGame(game *model.PracticeGame) error {
	return r.DB.Save(game).Error
}

func (r *GameRepository) CreateResult(result *model.GameResult) error {
	return r.DB.Create(result).Error
}

func (r *GameRepository) CountWins(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.GameResult{}).
		Where("user_id = ? AND won = ?", userID, true).
		Count(&count).Error
	return count, err
}

func (r *GameRepository) ListResults(userID uint, limit int) ([]model.GameResult, error) {
	var results []model.GameResult
	err := r.DB.Where("user_id = ?", userID).
		Order("created_at desc").
		Limit(limit).
		Find(&results).Error
	return results, err
}
