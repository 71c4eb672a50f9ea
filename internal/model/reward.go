package model

// RewardBundle is the grant configuration attached to lessons, units,
// courses, quests, achievements and practice games. It is consumed by the
// reward service, never mutated.
// swagger:model RewardBundle
type RewardBundle struct {
	Gold    int    `gorm:"default:0" json:"gold"`
	Diamond int    `gorm:"default:0" json:"diamond"`
	XP      int    `gorm:"default:0" json:"xp"`
	ItemIDs IDList `gorm:"type:text;serializer:json" json:"itemIds,omitempty"`
	CardIDs IDList `gorm:"type:text;serializer:json" json:"cardIds,omitempty"`
}

// IDList is stored as a JSON array in a text column.
type IDList []uint

// IsZero reports whether the bundle grants nothing, i.e. the entity was
// never configured and the platform default applies.
func (b RewardBundle) IsZero() bool {
	return b.Gold == 0 && b.Diamond == 0 && b.XP == 0 &&
		len(b.ItemIDs) == 0 && len(b.CardIDs) == 0
}
