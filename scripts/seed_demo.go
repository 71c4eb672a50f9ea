// Demo content seeder.
//
// Creates a small published course tree plus a few handbook cards so a
// fresh install has something to play with. Safe to run more than once:
// it skips seeding when any course already exists.
//
// Usage: go run scripts/seed_demo.go

package main

import (
	"lingoland_backend/internal/config"
	"lingoland_backend/internal/model"
	"lingoland_backend/pkg/database"
	"lingoland_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}

	var count int64
	if err := db.Model(&model.Course{}).Count(&count).Error; err != nil {
		log.Fatalf("course count failed: %v", err)
	}
	if count > 0 {
		log.Println("courses already present, nothing to do")
		return
	}

	cards := []model.HandbookCard{
		{Word: "apple", Meaning: "a round fruit", Example: "I eat an apple.", ImageURL: "/uploads/cards/apple.png", Rarity: "common"},
		{Word: "tiger", Meaning: "a big striped cat", Example: "The tiger is fast.", ImageURL: "/uploads/cards/tiger.png", Rarity: "rare"},
		{Word: "rainbow", Meaning: "colors in the sky after rain", Example: "Look at the rainbow!", ImageURL: "/uploads/cards/rainbow.png", Rarity: "epic"},
	}
	if err := db.Create(&cards).Error; err != nil {
		log.Fatalf("card seed failed: %v", err)
	}

	course := model.Course{
		Title:       "First Words",
		Description: "Everyday words for absolute beginners.",
		AgeGroup:    "4-6",
		IsPublished: true,
		Reward:      model.RewardBundle{Gold: 500, Diamond: 5},
		Units: []model.Unit{
			{
				Title:  "Fruits",
				Order:  1,
				Reward: model.RewardBundle{Gold: 50, XP: 100, CardIDs: model.IDList{cards[0].ID}},
				Lessons: []model.Lesson{
					{Title: "Apple & Banana", Type: model.LessonVocab, Order: 1},
					{Title: "At the Market", Type: model.LessonVideo, Order: 2},
					{Title: "Fruit Quiz", Type: model.LessonExam, Order: 3, Reward: model.RewardBundle{Gold: 20, XP: 30}},
				},
			},
			{
				Title:  "Animals",
				Order:  2,
				Reward: model.RewardBundle{Gold: 50, XP: 100, CardIDs: model.IDList{cards[1].ID}},
				Lessons: []model.Lesson{
					{Title: "Farm Animals", Type: model.LessonVocab, Order: 1},
					{Title: "Wild Animals", Type: model.LessonVocab, Order: 2},
					{Title: "Animal Sounds", Type: model.LessonVideo, Order: 3},
				},
			},
		},
	}
	if err := db.Create(&course).Error; err != nil {
		log.Fatalf("course seed failed: %v", err)
	}

	// lessons carry the course id denormalized
	if err := db.Model(&model.Lesson{}).
		Where("course_id = ?", 0).
		Update("course_id", course.ID).Error; err != nil {
		log.Fatalf("lesson backfill failed: %v", err)
	}

	log.Println("demo content seeded")
}
