package database

import (
	"fmt"
	"lingoland_backend/internal/config"
	"lingoland_backend/internal/model"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	return db, nil
}

// Migrate runs the schema migration and seeds baseline content.
func Migrate(db *gorm.DB) error {
	if err := autoMigrate(db); err != nil {
		return err
	}

	log.Println("Database migration completed")

	seedDefaults(db)
	return nil
}

func autoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

// seedDefaults inserts baseline gamification content on an empty database
// so a fresh deployment has working quests, achievements and a shop.
func seedDefaults(db *gorm.DB) {
	var questCount int64
	db.Model(&model.Quest{}).Count(&questCount)
	if questCount == 0 {
		defaultQuests := []model.Quest{
			{Title: "Log in today", Type: model.EventLogin, Target: 1, Reward: model.RewardBundle{Gold: 20, XP: 5}, IsActive: true},
			{Title: "Complete 3 lessons", Type: model.EventLessonsCompleted, Target: 3, Reward: model.RewardBundle{Gold: 30, XP: 20}, IsActive: true},
			{Title: "Win 2 practice games", Type: model.EventGameWon, Target: 2, Reward: model.RewardBundle{Gold: 25, XP: 15}, IsActive: true},
			{Title: "Study for 15 minutes", Type: model.EventLearningTime, Target: 15, Reward: model.RewardBundle{Gold: 20, XP: 10}, IsActive: true},
		}
		for _, q := range defaultQuests {
			db.Create(&q)
		}
	}

	var achievementCount int64
	db.Model(&model.Achievement{}).Count(&achievementCount)
	if achievementCount == 0 {
		defaultAchievements := []model.Achievement{
			{Name: "First Steps", Description: "Complete your first lesson", Tier: "bronze", CriteriaType: model.CriteriaLessonsCompleted, CriteriaValue: 1, Reward: model.RewardBundle{Gold: 50}},
			{Name: "Bookworm", Description: "Complete 50 lessons", Tier: "silver", CriteriaType: model.CriteriaLessonsCompleted, CriteriaValue: 50, Reward: model.RewardBundle{Gold: 200, Diamond: 2}},
			{Name: "Rising Star", Description: "Earn 1000 XP", Tier: "silver", CriteriaType: model.CriteriaTotalXP, CriteriaValue: 1000, Reward: model.RewardBundle{Gold: 150}},
			{Name: "Seven Day Streak", Description: "Log in seven days in a row", Tier: "gold", CriteriaType: model.CriteriaStreakDays, CriteriaValue: 7, Reward: model.RewardBundle{Gold: 100, Diamond: 5}},
			{Name: "Game Champion", Description: "Win 25 practice games", Tier: "gold", CriteriaType: model.CriteriaGamesWon, CriteriaValue: 25, Reward: model.RewardBundle{Gold: 250, Diamond: 3}},
			{Name: "Word Collector", Description: "Collect 30 handbook cards", Tier: "gold", CriteriaType: model.CriteriaVocabCollected, CriteriaValue: 30, Reward: model.RewardBundle{Gold: 300, Diamond: 5}},
		}
		for _, a := range defaultAchievements {
			db.Create(&a)
		}
	}

	var itemCount int64
	db.Model(&model.Item{}).Count(&itemCount)
	if itemCount == 0 {
		defaultItems := []model.Item{
			{Name: "Explorer Outfit", Slot: model.SlotOutfit, Price: 100, Currency: model.CurrencyGold},
			{Name: "Wizard Hat", Slot: model.SlotHat, Price: 80, Currency: model.CurrencyGold},
			{Name: "Space Background", Slot: model.SlotBackground, Price: 150, Currency: model.CurrencyGold},
			{Name: "Baby Dragon", Slot: model.SlotPet, Price: 10, Currency: model.CurrencyDiamond},
		}
		for _, it := range defaultItems {
			db.Create(&it)
		}
	}

	var cardCount int64
	db.Model(&model.HandbookCard{}).Count(&cardCount)
	if cardCount == 0 {
		defaultCards := []model.HandbookCard{
			{Word: "apple", Meaning: "a round fruit", Example: "I eat an apple.", Rarity: "common"},
			{Word: "cat", Meaning: "a small furry pet", Example: "The cat sleeps.", Rarity: "common"},
			{Word: "tiger", Meaning: "a big striped cat", Example: "The tiger is fast.", Rarity: "rare"},
			{Word: "rainbow", Meaning: "colors in the sky after rain", Example: "Look at the rainbow!", Rarity: "epic"},
		}
		for _, c := range defaultCards {
			db.Create(&c)
		}
	}

	var gameCount int64
	db.Model(&model.PracticeGame{}).Count(&gameCount)
	if gameCount == 0 {
		defaultGames := []model.PracticeGame{
			{Code: "word-match", Title: "Word Match", Reward: model.RewardBundle{Gold: 5, XP: 5}, IsActive: true},
			{Code: "spelling-bee", Title: "Spelling Bee", Reward: model.RewardBundle{Gold: 8, XP: 6}, IsActive: true},
			{Code: "listen-choose", Title: "Listen and Choose", Reward: model.RewardBundle{Gold: 5, XP: 5}, IsActive: true},
		}
		for _, g := range defaultGames {
			db.Create(&g)
		}
	}
}
