package model

// HandbookCard is a collectible vocabulary card.
// swagger:model HandbookCard
type HandbookCard struct {
	BaseModel
	Word     string `gorm:"size:100;not null" json:"word"`
	Meaning  string `gorm:"size:500" json:"meaning"`
	Example  string `gorm:"size:500" json:"example"`
	ImageURL string `gorm:"size:255" json:"imageUrl"`
	Rarity   string `gorm:"size:20;default:'common'" json:"rarity"`
}

func (HandbookCard) TableName() string {
	return "handbook_cards"
}

// swagger:model UserHandbookCard
type UserHandbookCard struct {
	BaseModel
	UserID uint `gorm:"uniqueIndex:idx_user_card;not null" json:"userId"`
	CardID uint `gorm:"uniqueIndex:idx_user_card;not null" json:"cardId"`

	Card *HandbookCard `gorm:"foreignKey:CardID" json:"card,omitempty"`
}

func (UserHandbookCard) TableName() string {
	return "user_handbook_cards"
}
