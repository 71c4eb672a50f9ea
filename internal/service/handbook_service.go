package service

import (
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
)

// HandbookService serves the collectible vocabulary card book.
type HandbookService struct {
	HandbookRepo *repository.HandbookRepository
}

func NewHandbookService(handbookRepo *repository.HandbookRepository) *HandbookService {
	return &HandbookService{HandbookRepo: handbookRepo}
}

// HandbookCardView is one card with the learner's ownership flag.
type HandbookCardView struct {
	model.HandbookCard
	Owned bool `json:"owned"`
}

func (s *HandbookService) ListCards(userID uint) ([]HandbookCardView, error) {
	cards, err := s.HandbookRepo.FindAll()
	if err != nil {
		return nil, err
	}

	ownedRows, err := s.HandbookRepo.ListUserCards(userID)
	if err != nil {
		return nil, err
	}
	owned := make(map[uint]bool, len(ownedRows))
	for _, row := range ownedRows {
		owned[row.CardID] = true
	}

	views := make([]HandbookCardView, len(cards))
	for i, card := range cards {
		views[i] = HandbookCardView{HandbookCard: card, Owned: owned[card.ID]}
	}
	return views, nil
}

func (s *HandbookService) ListOwned(userID uint) ([]model.UserHandbookCard, error) {
	return s.HandbookRepo.ListUserCards(userID)
}

func (s *HandbookService) CreateCard(card *model.HandbookCard) error {
	return s.HandbookRepo.Create(card)
}

func (s *HandbookService) UpdateCard(card *model.HandbookCard) error {
	return s.HandbookRepo.Update(card)
}
