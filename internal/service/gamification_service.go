package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/pkg/logger"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"lingoland_backend/internal/util"
)

const (
	trackingDateLayout  = "2006-01-02"
	leaderboardCacheKey = "gamification:leaderboard"
	leaderboardCacheTTL = 60 * time.Second
	leaderboardSize     = 50
)

// GamificationService runs the quest/achievement pipeline: gameplay events
// accumulate into daily quest progress and are checked against permanent
// achievement thresholds.
type GamificationService struct {
	QuestRepo       *repository.QuestRepository
	AchievementRepo *repository.AchievementRepository
	CompletionRepo  *repository.CompletionRepository
	GameRepo        *repository.GameRepository
	HandbookRepo    *repository.HandbookRepository
	UserRepo        *repository.UserRepository
	Rewards         *RewardService
	Redis           *redis.Client
}

func NewGamificationService(
	questRepo *repository.QuestRepository,
	achievementRepo *repository.AchievementRepository,
	completionRepo *repository.CompletionRepository,
	gameRepo *repository.GameRepository,
	handbookRepo *repository.HandbookRepository,
	userRepo *repository.UserRepository,
	rewards *RewardService,
	rdb *redis.Client,
) *GamificationService {
	return &GamificationService{
		QuestRepo:       questRepo,
		AchievementRepo: achievementRepo,
		CompletionRepo:  completionRepo,
		GameRepo:        gameRepo,
		HandbookRepo:    handbookRepo,
		UserRepo:        userRepo,
		Rewards:         rewards,
		Redis:           rdb,
	}
}

// TrackProgress feeds one gameplay event into every active quest of that
// type for today, then re-evaluates achievements. Newly unlocked badges
// are returned so the caller can surface them.
func (s *GamificationService) TrackProgress(userID uint, event model.EventType, amount int) ([]model.Badge, error) {
	if amount <= 0 {
		amount = 1
	}

	quests, err := s.QuestRepo.FindActiveByType(event)
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(trackingDateLayout)
	for _, quest := range quests {
		if err := s.QuestRepo.AddProgress(userID, quest.ID, today, amount); err != nil {
			return nil, err
		}
	}

	return s.CheckAndUnlockAchievements(userID)
}

// CheckAndUnlockAchievements compares the learner's current totals against
// every achievement they do not own yet. Unlocks are monotonic: the badge
// row's unique index means an achievement pays its bonus at most once.
func (s *GamificationService) CheckAndUnlockAchievements(userID uint) ([]model.Badge, error) {
	stats, err := s.UserRepo.GetStats(userID)
	if err != nil {
		return nil, err
	}

	lessonsCompleted, err := s.CompletionRepo.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	gamesWon, err := s.GameRepo.CountWins(userID)
	if err != nil {
		return nil, err
	}
	vocabCollected, err := s.HandbookRepo.CountByUser(userID)
	if err != nil {
		return nil, err
	}

	achievements, err := s.AchievementRepo.FindAll()
	if err != nil {
		return nil, err
	}
	badges, err := s.AchievementRepo.FindBadgesByUser(userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(badges))
	for _, b := range badges {
		owned[b.AchievementID] = true
	}

	var unlocked []model.Badge
	for _, achievement := range achievements {
		if owned[achievement.ID] {
			continue
		}

		satisfied, err := evaluateCriteria(achievement, stats, lessonsCompleted, gamesWon, vocabCollected)
		if err != nil {
			return nil, err
		}
		if !satisfied {
			continue
		}

		badge := model.Badge{
			UserID:        userID,
			AchievementID: achievement.ID,
			Name:          achievement.Name,
			ImageURL:      achievement.ImageURL,
			IsUnlocked:    true,
		}
		created, err := s.AchievementRepo.CreateBadgeOnce(&badge)
		if err != nil {
			return nil, err
		}
		if !created {
			continue
		}

		if !achievement.Reward.IsZero() {
			if _, err := s.Rewards.GiveRewards(userID, achievement.Reward, "achievement"); err != nil {
				logger.Log.Error("achievement bonus failed",
					zap.Uint("userId", userID), zap.Uint("achievementId", achievement.ID), zap.Error(err))
			}
		}
		unlocked = append(unlocked, badge)
	}

	return unlocked, nil
}

// evaluateCriteria is deliberately exhaustive: a criteria type without an
// evaluation branch is an error, not a silent no-op.
func evaluateCriteria(
	a model.Achievement,
	stats *model.UserStats,
	lessonsCompleted, gamesWon, vocabCollected int64,
) (bool, error) {
	switch a.CriteriaType {
	case model.CriteriaTotalXP:
		return stats.TotalXP >= a.CriteriaValue, nil
	case model.CriteriaStreakDays:
		return stats.Streak >= a.CriteriaValue, nil
	case model.CriteriaLessonsCompleted:
		return lessonsCompleted >= int64(a.CriteriaValue), nil
	case model.CriteriaGamesWon:
		return gamesWon >= int64(a.CriteriaValue), nil
	case model.CriteriaVocabCollected:
		return vocabCollected >= int64(a.CriteriaValue), nil
	default:
		return false, fmt.Errorf("achievement %d has unknown criteria type %q", a.ID, a.CriteriaType)
	}
}

// ClaimQuestReward validates and claims today's progress on a quest.
// The flag flip is conditional, so two racing claims settle on one payout.
func (s *GamificationService) ClaimQuestReward(userID, questID uint) (*Disbursement, error) {
	quest, err := s.QuestRepo.FindByID(questID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestNotFound
		}
		return nil, err
	}

	today := time.Now().Format(trackingDateLayout)
	progress, err := s.QuestRepo.FindProgress(userID, questID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrQuestNotStarted
		}
		return nil, err
	}

	if progress.Progress < quest.Target {
		return nil, util.ErrQuestNotCompleted
	}
	if progress.IsClaimed {
		return nil, util.ErrQuestAlreadyClaimed
	}

	claimed, err := s.QuestRepo.MarkClaimed(userID, questID, today)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, util.ErrQuestAlreadyClaimed
	}

	return s.Rewards.GiveRewards(userID, quest.Reward, "quest")
}

// DailyQuest is one active quest with the learner's progress for today.
type DailyQuest struct {
	model.Quest
	Progress  int  `json:"progress"`
	IsClaimed bool `json:"isClaimed"`
}

func (s *GamificationService) GetDailyQuests(userID uint) ([]DailyQuest, error) {
	quests, err := s.QuestRepo.FindActive()
	if err != nil {
		return nil, err
	}

	today := time.Now().Format(trackingDateLayout)
	rows, err := s.QuestRepo.FindProgressForDate(userID, today)
	if err != nil {
		return nil, err
	}
	byQuest := make(map[uint]model.QuestProgress, len(rows))
	for _, row := range rows {
		byQuest[row.QuestID] = row
	}

	result := make([]DailyQuest, len(quests))
	for i, quest := range quests {
		dq := DailyQuest{Quest: quest}
		if row, ok := byQuest[quest.ID]; ok {
			dq.Progress = row.Progress
			dq.IsClaimed = row.IsClaimed
		}
		result[i] = dq
	}
	return result, nil
}

func (s *GamificationService) GetBadges(userID uint) ([]model.Badge, error) {
	return s.AchievementRepo.FindBadgesByUser(userID)
}

func (s *GamificationService) ListAchievements() ([]model.Achievement, error) {
	return s.AchievementRepo.FindAll()
}

func (s *GamificationService) CreateQuest(quest *model.Quest) error {
	return s.QuestRepo.Create(quest)
}

func (s *GamificationService) UpdateQuest(quest *model.Quest) error {
	return s.QuestRepo.Update(quest)
}

func (s *GamificationService) CreateAchievement(achievement *model.Achievement) error {
	if _, err := evaluateCriteria(*achievement, &model.UserStats{}, 0, 0, 0); err != nil {
		return err
	}
	return s.AchievementRepo.Create(achievement)
}

// GetLeaderboard serves the ranked learners, through a short-lived redis
// snapshot when redis is configured.
func (s *GamificationService) GetLeaderboard(limit int) ([]repository.LeaderboardRow, error) {
	if limit <= 0 || limit > leaderboardSize {
		limit = leaderboardSize
	}

	if s.Redis != nil {
		ctx := context.Background()
		if cached, err := s.Redis.Get(ctx, leaderboardCacheKey).Result(); err == nil {
			var rows []repository.LeaderboardRow
			if json.Unmarshal([]byte(cached), &rows) == nil {
				if len(rows) > limit {
					rows = rows[:limit]
				}
				return rows, nil
			}
		}
	}

	rows, err := s.UserRepo.TopByXP(leaderboardSize)
	if err != nil {
		return nil, err
	}

	s.cacheLeaderboard(rows)

	if len(rows) > limit {
		rows = rows[:limit]
	}
	return rows, nil
}

// RefreshLeaderboardCache is called from the background ticker.
func (s *GamificationService) RefreshLeaderboardCache() error {
	rows, err := s.UserRepo.TopByXP(leaderboardSize)
	if err != nil {
		return err
	}
	s.cacheLeaderboard(rows)
	return nil
}

func (s *GamificationService) cacheLeaderboard(rows []repository.LeaderboardRow) {
	if s.Redis == nil {
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.Redis.Set(context.Background(), leaderboardCacheKey, payload, leaderboardCacheTTL).Err(); err != nil {
		logger.Log.Warn("leaderboard cache write failed", zap.Error(err))
	}
}
