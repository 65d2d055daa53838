package models

import "time"

// Item represents a single text entry owned by exactly one list
type Item struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ListID    uint      `json:"list_id" gorm:"not null;index:idx_items_list"`
	Text      string    `json:"text" gorm:"size:250;not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for GORM
func (Item) TableName() string {
	return "items"
}
