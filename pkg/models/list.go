package models

import (
	"time"
)

// Column limits shared by the schema and form validation.
const (
	ListNameMaxLen        = 50
	ListDescriptionMaxLen = 500
	ItemTextMaxLen        = 250
)

// List represents a named to-do list
type List struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:50;not null;uniqueIndex:idx_lists_name"`
	Description string    `json:"description" gorm:"size:500;not null"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// One-to-Many Relations
	Items []Item `json:"items,omitempty" gorm:"foreignKey:ListID;constraint:OnDelete:CASCADE"`

	// ItemCount is filled by overview queries and never persisted.
	ItemCount int64 `json:"item_count" gorm:"-"`
}

// TableName specifies the table name for GORM
func (List) TableName() string {
	return "lists"
}
