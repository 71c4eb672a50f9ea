package model

type ItemSlot string

const (
	SlotOutfit     ItemSlot = "outfit"
	SlotHat        ItemSlot = "hat"
	SlotBackground ItemSlot = "background"
	SlotPet        ItemSlot = "pet"
)

type Currency string

const (
	CurrencyGold    Currency = "gold"
	CurrencyDiamond Currency = "diamond"
)

// swagger:model Item
type Item struct {
	BaseModel
	Name       string   `gorm:"size:100;not null" json:"name"`
	Slot       ItemSlot `gorm:"size:20;not null" json:"slot"`
	ImageURL   string   `gorm:"size:255" json:"imageUrl"`
	Price      int      `gorm:"default:0" json:"price"`
	Currency   Currency `gorm:"size:10;default:'gold'" json:"currency"`
	IsSellable bool     `gorm:"default:true" json:"isSellable"`
}

func (Item) TableName() string {
	return "items"
}

// UserItem is one owned item; set semantics via the unique index.
// swagger:model UserItem
type UserItem struct {
	BaseModel
	UserID   uint `gorm:"uniqueIndex:idx_user_item;not null" json:"userId"`
	ItemID   uint `gorm:"uniqueIndex:idx_user_item;not null" json:"itemId"`
	Equipped bool `gorm:"default:false" json:"equipped"`

	Item *Item `gorm:"foreignKey:ItemID" json:"item,omitempty"`
}

func (UserItem) TableName() string {
	return "user_items"
}

// Purchase is the receipt row written when a shop purchase settles.
// swagger:model Purchase
type Purchase struct {
	UUIDBase
	UserID   uint     `gorm:"index;not null" json:"userId"`
	ItemID   uint     `gorm:"not null" json:"itemId"`
	Price    int      `gorm:"not null" json:"price"`
	Currency Currency `gorm:"size:10;not null" json:"currency"`
}

func (Purchase) TableName() string {
	return "purchases"
}
