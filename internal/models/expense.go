// Package models implements the persisted resources of the expense tracker.
package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Expense represents a single spending event of one participant.
type Expense struct {
	ID uint `json:"id" gorm:"primarykey" example:"14"` // Sequence number of the expense, assigned by the store

	// CreatedAt is the instant the expense is attributed to, not necessarily
	// the instant the row was inserted. Backdated expenses carry midnight UTC
	// of the chosen day.
	CreatedAt time.Time      `json:"createdAt" example:"2024-03-05T12:00:00Z"`
	UpdatedAt time.Time      `json:"updatedAt" example:"2024-03-05T12:00:00Z"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	UserName    string          `json:"userName" example:"Nayoon"`                                    // Name of the participant who spent the money
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" example:"14.03" minimum:"0"` // The amount spent
	Description string          `json:"description" example:"cafe"`                                   // Category label. The configured enumeration is advisory, older records may carry free text
	Memo        string          `json:"memo" example:"birthday cake" default:""`                      // Optional note
}

func (Expense) Self() string {
	return "Expense"
}

// BeforeSave trims string fields and normalizes the attribution instant
// to UTC. A zero instant defaults to now.
func (e *Expense) BeforeSave(_ *gorm.DB) error {
	e.UserName = strings.TrimSpace(e.UserName)
	e.Description = strings.TrimSpace(e.Description)
	e.Memo = strings.TrimSpace(e.Memo)

	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().In(time.UTC)
	} else {
		e.CreatedAt = e.CreatedAt.In(time.UTC)
	}

	return nil
}

// AfterFind updates the timestamps to use UTC as
// timezone, not +0000. Yes, this is different.
//
// We already store them in UTC, but somehow reading
// them from the database returns them as +0000.
func (e *Expense) AfterFind(_ *gorm.DB) error {
	e.CreatedAt = e.CreatedAt.In(time.UTC)
	e.UpdatedAt = e.UpdatedAt.In(time.UTC)

	return nil
}
