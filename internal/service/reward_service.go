package service

import (
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/pkg/logger"
	"lingoland_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// Level-up bonus paid on every threshold crossing, independent of the
// bundle being disbursed.
const (
	levelUpBonusGold    = 50
	levelUpBonusDiamond = 5
)

// RewardService applies reward bundles to learner accounts: XP with level
// roll-over, currency, items and handbook cards.
type RewardService struct {
	UserRepo     *repository.UserRepository
	ItemRepo     *repository.ItemRepository
	HandbookRepo *repository.HandbookRepository
}

func NewRewardService(
	userRepo *repository.UserRepository,
	itemRepo *repository.ItemRepository,
	handbookRepo *repository.HandbookRepository,
) *RewardService {
	return &RewardService{
		UserRepo:     userRepo,
		ItemRepo:     itemRepo,
		HandbookRepo: handbookRepo,
	}
}

// Disbursement is what the client shows in the loot popup: the granted
// amounts plus resolved item/card details.
type Disbursement struct {
	Gold         int                  `json:"gold"`
	Diamond      int                  `json:"diamond"`
	XP           int                  `json:"xp"`
	LevelsGained int                  `json:"levelsGained"`
	Level        int                  `json:"level"`
	Items        []model.Item         `json:"items,omitempty"`
	Cards        []model.HandbookCard `json:"cards,omitempty"`
}

// GiveRewards applies the bundle to the learner. XP is rolled over in a
// loop, so one oversized grant advances through every threshold it covers
// and the invariant currentXP < nextLevelXP holds afterwards. Each crossed
// threshold pays the fixed level-up bonus on top of the bundle currency;
// bundle plus bonus land in a single atomic increment. Item and card grants
// have set semantics and are best-effort: a failed grant is logged, not
// rolled back.
func (s *RewardService) GiveRewards(userID uint, bundle model.RewardBundle, source string) (*Disbursement, error) {
	stats, err := s.UserRepo.GetStats(userID)
	if err != nil {
		return nil, err
	}

	levelsGained := 0
	if bundle.XP > 0 {
		stats.CurrentXP += bundle.XP
		stats.TotalXP += bundle.XP
		for stats.CurrentXP >= stats.NextLevelXP {
			stats.CurrentXP -= stats.NextLevelXP
			stats.Level++
			stats.NextLevelXP = stats.NextLevelXP * 12 / 10
			levelsGained++
		}
		if err := s.UserRepo.UpdateProgression(stats); err != nil {
			return nil, err
		}
	}

	gold := bundle.Gold + levelsGained*levelUpBonusGold
	diamond := bundle.Diamond + levelsGained*levelUpBonusDiamond
	if err := s.UserRepo.AddCurrency(userID, gold, diamond); err != nil {
		return nil, err
	}

	result := &Disbursement{
		Gold:         gold,
		Diamond:      diamond,
		XP:           bundle.XP,
		LevelsGained: levelsGained,
		Level:        stats.Level,
	}

	for _, itemID := range bundle.ItemIDs {
		if _, err := s.ItemRepo.AddToUser(userID, itemID); err != nil {
			logger.Log.Error("item grant failed",
				zap.Uint("userId", userID), zap.Uint("itemId", itemID), zap.Error(err))
		}
	}
	if items, err := s.ItemRepo.FindByIDs(bundle.ItemIDs); err == nil {
		result.Items = items
	}

	for _, cardID := range bundle.CardIDs {
		if _, err := s.HandbookRepo.AddToUser(userID, cardID); err != nil {
			logger.Log.Error("card grant failed",
				zap.Uint("userId", userID), zap.Uint("cardId", cardID), zap.Error(err))
		}
	}
	if cards, err := s.HandbookRepo.FindByIDs(bundle.CardIDs); err == nil {
		result.Cards = cards
	}

	monitoring.RewardsGranted.WithLabelValues(source).Inc()

	return result, nil
}
