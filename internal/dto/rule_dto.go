package dto

import "time"

// RuleCreateDTO is the request body for creating a rule.
type RuleCreateDTO struct {
	Divisor         int    `json:"divisor" binding:"required,gt=0"`
	ReplacementText string `json:"replacementText" binding:"required,max=50"`
	IsActive        bool   `json:"isActive"`
}

// RuleUpdateDTO is a partial update: nil fields keep their current value.
// An empty replacement text is treated the same as an omitted one.
type RuleUpdateDTO struct {
	Divisor         *int    `json:"divisor" binding:"omitempty,gt=0"`
	ReplacementText *string `json:"replacementText" binding:"omitempty,max=50"`
	IsActive        *bool   `json:"isActive"`
}

type RuleResponseDTO struct {
	ID              uint      `json:"id"`
	Divisor         int       `json:"divisor"`
	ReplacementText string    `json:"replacementText"`
	IsActive        bool      `json:"isActive"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
