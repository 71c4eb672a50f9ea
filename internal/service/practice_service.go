package service

import (
	"errors"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"

	"gorm.io/gorm"
)

var defaultGameReward = model.RewardBundle{Gold: 5, XP: 5}

// PracticeService records practice game rounds and pays win rewards.
type PracticeService struct {
	GameRepo *repository.GameRepository
	Rewards  *RewardService
}

func NewPracticeService(gameRepo *repository.GameRepository, rewards *RewardService) *PracticeService {
	return &PracticeService{
		GameRepo: gameRepo,
		Rewards:  rewards,
	}
}

func (s *PracticeService) ListGames() ([]model.PracticeGame, error) {
	return s.GameRepo.FindActiveGames()
}

// GameOutcome is the recorded round plus any win reward.
type GameOutcome struct {
	Result  *model.GameResult `json:"result"`
	Rewards *Disbursement     `json:"rewards,omitempty"`
}

// SubmitResult stores the round and, on a win, disburses the game's
// configured bundle. Losses record the round only.
func (s *PracticeService) SubmitResult(userID uint, gameCode string, score int, won bool, durationSec int) (*GameOutcome, error) {
	game, err := s.GameRepo.FindGameByCode(gameCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrGameNotFound
		}
		return nil, err
	}

	result := &model.GameResult{
		UserID:      userID,
		GameCode:    game.Code,
		Score:       score,
		Won:         won,
		DurationSec: durationSec,
	}
	if err := s.GameRepo.CreateResult(result); err != nil {
		return nil, err
	}

	outcome := &GameOutcome{Result: result}
	if won {
		bundle := game.Reward
		if bundle.IsZero() {
			bundle = defaultGameReward
		}
		outcome.Rewards, err = s.Rewards.GiveRewards(userID, bundle, "practice")
		if err != nil {
			return nil, err
		}
	}

	return outcome, nil
}

func (s *PracticeService) RecentResults(userID uint, limit int) ([]model.GameResult, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.GameRepo.ListResults(userID, limit)
}

func (s *PracticeService) CreateGame(game *model.PracticeGame) error {
	return s.GameRepo.CreateGame(game)
}

func (s *PracticeService) UpdateGame(game *model.PracticeGame) error {
	return s.GameRepo.UpdateGame(game)
}
