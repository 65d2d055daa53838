package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kutbudev/listkeeper/pkg/models"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a list or item id matches no stored record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateName is returned when a list name is already taken.
	ErrDuplicateName = errors.New("a list with this name already exists")
)

// ListRepository stores lists and their items.
type ListRepository struct {
	db *gorm.DB
}

// NewListRepository wires a repository onto an open database.
func NewListRepository(d *Database) *ListRepository {
	return &ListRepository{db: d.DB}
}

// All returns every list in insertion order with ItemCount filled in.
func (r *ListRepository) All(ctx context.Context) ([]models.List, error) {
	var lists []models.List
	if err := r.db.WithContext(ctx).Order("id").Find(&lists).Error; err != nil {
		return nil, fmt.Errorf("failed to load lists: %w", err)
	}
	if len(lists) == 0 {
		return lists, nil
	}

	type countRow struct {
		ListID uint
		Count  int64
	}
	var counts []countRow
	err := r.db.WithContext(ctx).Model(&models.Item{}).
		Select("list_id, COUNT(*) AS count").
		Group("list_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count items: %w", err)
	}

	byList := make(map[uint]int64, len(counts))
	for _, c := range counts {
		byList[c.ListID] = c.Count
	}
	for i := range lists {
		lists[i].ItemCount = byList[lists[i].ID]
	}
	return lists, nil
}

// Get returns one list with its items ordered by id.
func (r *ListRepository) Get(ctx context.Context, id uint) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("id") }).
		First(&list, id).Error
	if err != nil {
		return nil, translate(err, "list")
	}
	list.ItemCount = int64(len(list.Items))
	return &list, nil
}

// Create inserts a new list. The list's ID is set on success.
func (r *ListRepository) Create(ctx context.Context, list *models.List) error {
	list.ID = 0
	list.Items = nil
	if err := r.db.WithContext(ctx).Create(list).Error; err != nil {
		return translate(err, "list")
	}
	return nil
}

// Update replaces the name and description of list id.
func (r *ListRepository) Update(ctx context.Context, id uint, name, description string) (*models.List, error) {
	var list models.List
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&list, id).Error; err != nil {
			return err
		}
		list.Name = name
		list.Description = description
		return tx.Save(&list).Error
	})
	if err != nil {
		return nil, translate(err, "list")
	}
	return &list, nil
}

// Delete removes list id and all of its items in one transaction.
func (r *ListRepository) Delete(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.List
		if err := tx.Select("id").First(&list, id).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id = ?", id).Delete(&models.Item{}).Error; err != nil {
			return err
		}
		return tx.Delete(&list).Error
	})
	if err != nil {
		return translate(err, "list")
	}
	return nil
}

// AddItem inserts an item under listID.
func (r *ListRepository) AddItem(ctx context.Context, listID uint, text string) (*models.Item, error) {
	item := models.Item{ListID: listID, Text: text}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var list models.List
		if err := tx.Select("id").First(&list, listID).Error; err != nil {
			return err
		}
		return tx.Create(&item).Error
	})
	if err != nil {
		return nil, translate(err, "list")
	}
	return &item, nil
}

// GetItem returns item itemID if it belongs to listID.
func (r *ListRepository) GetItem(ctx context.Context, listID, itemID uint) (*models.Item, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("list_id = ?", listID).First(&item, itemID).Error
	if err != nil {
		return nil, translate(err, "item")
	}
	return &item, nil
}

// DeleteItem removes item itemID if it belongs to listID.
func (r *ListRepository) DeleteItem(ctx context.Context, listID, itemID uint) error {
	res := r.db.WithContext(ctx).
		Where("id = ? AND list_id = ?", itemID, listID).
		Delete(&models.Item{})
	if res.Error != nil {
		return translate(res.Error, "item")
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("item %d in list %d: %w", itemID, listID, ErrNotFound)
	}
	return nil
}

// CountItems returns the number of items owned by listID.
func (r *ListRepository) CountItems(ctx context.Context, listID uint) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Item{}).Where("list_id = ?", listID).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count items: %w", err)
	}
	return n, nil
}

// translate maps gorm errors onto the package sentinels.
func translate(err error, what string) error {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, ErrNotFound)
	case isDuplicate(err):
		return ErrDuplicateName
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
