package service

import (
	"testing"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.UserStats{},
		&model.Course{},
		&model.Unit{},
		&model.Lesson{},
		&model.LessonCompletion{},
		&model.Milestone{},
		&model.Quest{},
		&model.QuestProgress{},
		&model.Achievement{},
		&model.Badge{},
		&model.Item{},
		&model.UserItem{},
		&model.Purchase{},
		&model.HandbookCard{},
		&model.UserHandbookCard{},
		&model.Checkin{},
		&model.PracticeGame{},
		&model.GameResult{},
	))

	return db
}

type testEnv struct {
	db *gorm.DB

	userRepo        *repository.UserRepository
	courseRepo      *repository.CourseRepository
	completionRepo  *repository.CompletionRepository
	milestoneRepo   *repository.MilestoneRepository
	questRepo       *repository.QuestRepository
	achievementRepo *repository.AchievementRepository
	itemRepo        *repository.ItemRepository
	handbookRepo    *repository.HandbookRepository
	checkinRepo     *repository.CheckinRepository
	gameRepo        *repository.GameRepository
	purchaseRepo    *repository.PurchaseRepository

	reward       *RewardService
	course       *CourseService
	gamification *GamificationService
	shop         *ShopService
	user         *UserService
	practice     *PracticeService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	e := &testEnv{
		db:              db,
		userRepo:        repository.NewUserRepository(db),
		courseRepo:      repository.NewCourseRepository(db),
		completionRepo:  repository.NewCompletionRepository(db),
		milestoneRepo:   repository.NewMilestoneRepository(db),
		questRepo:       repository.NewQuestRepository(db),
		achievementRepo: repository.NewAchievementRepository(db),
		itemRepo:        repository.NewItemRepository(db),
		handbookRepo:    repository.NewHandbookRepository(db),
		checkinRepo:     repository.NewCheckinRepository(db),
		gameRepo:        repository.NewGameRepository(db),
		purchaseRepo:    repository.NewPurchaseRepository(db),
	}

	e.reward = NewRewardService(e.userRepo, e.itemRepo, e.handbookRepo)
	e.course = NewCourseService(e.courseRepo, e.completionRepo, e.milestoneRepo, e.reward)
	e.gamification = NewGamificationService(
		e.questRepo, e.achievementRepo, e.completionRepo,
		e.gameRepo, e.handbookRepo, e.userRepo, e.reward, nil,
	)
	e.shop = NewShopService(e.itemRepo, e.userRepo, e.purchaseRepo)
	e.user = NewUserService(e.userRepo, e.checkinRepo)
	e.practice = NewPracticeService(e.gameRepo, e.reward)

	return e
}

func (e *testEnv) createUser(t *testing.T, name string) *model.User {
	t.Helper()

	user := &model.User{
		Name:     name,
		Email:    name + "@test.local",
		Password: "hashed",
		Role:     model.Student,
		Stats:    &model.UserStats{Level: 1, NextLevelXP: 100},
	}
	require.NoError(t, e.userRepo.Create(user))
	return user
}

func (e *testEnv) stats(t *testing.T, userID uint) *model.UserStats {
	t.Helper()

	stats, err := e.userRepo.GetStats(userID)
	require.NoError(t, err)
	return stats
}

// createCourse builds a published course whose units each hold the given
// number of lessons. Rewards stay zero so the platform defaults apply.
func (e *testEnv) createCourse(t *testing.T, units, lessonsPerUnit int) *model.Course {
	t.Helper()

	course := &model.Course{Title: "Test Course", IsPublished: true}
	require.NoError(t, e.courseRepo.Create(course))

	for u := 0; u < units; u++ {
		unit := &model.Unit{CourseID: course.ID, Title: "Unit", Order: u + 1}
		require.NoError(t, e.courseRepo.CreateUnit(unit))
		for l := 0; l < lessonsPerUnit; l++ {
			lesson := &model.Lesson{
				UnitID:   unit.ID,
				CourseID: course.ID,
				Title:    "Lesson",
				Order:    l + 1,
			}
			require.NoError(t, e.courseRepo.CreateLesson(lesson))
		}
	}

	found, err := e.courseRepo.FindByIDWithTree(course.ID)
	require.NoError(t, err)
	return found
}
