package domain

import (
	"errors"
	"time"
)

// MinInstructionsLen is the minimum length of a recipe's instructions text.
const MinInstructionsLen = 50

var (
	ErrTitleRequired        = errors.New("recipe title is required")
	ErrInstructionsRequired = errors.New("recipe instructions are required")
	ErrInstructionsTooShort = errors.New("recipe instructions must be at least 50 characters")
)

// Recipe is user-owned content. OwnerID is a relational foreign key to the
// users table; deleting the owner cascades to their recipes, not the other
// way around.
type Recipe struct {
	ID                string
	Title             string
	Instructions      string
	MinutesToComplete int
	OwnerID           string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Validate enforces the entity-level rules. The database carries matching
// constraints as a safety net, but this is the primary gate: a recipe that
// fails here never reaches the store.
func (r Recipe) Validate() error {
	if r.Title == "" {
		return ErrTitleRequired
	}
	if r.Instructions == "" {
		return ErrInstructionsRequired
	}
	if len(r.Instructions) < MinInstructionsLen {
		return ErrInstructionsTooShort
	}
	return nil
}
