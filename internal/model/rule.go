package model

import (
	"time"
)

// Rule maps a divisor to its replacement text. Only active rules take part
// in the game's answer computation. Rules are hard-deleted so a divisor can
// be reused after its rule is removed.
type Rule struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Divisor         int       `json:"divisor" gorm:"not null;uniqueIndex"`
	ReplacementText string    `json:"replacementText" gorm:"size:50;not null"`
	IsActive        bool      `json:"isActive" gorm:"not null;default:true;index"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}
