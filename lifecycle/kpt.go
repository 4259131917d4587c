package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"khanabook-pos/models"
)

// DefaultKptMinutes is assumed for menu items without a configured
// preparation-time record.
const DefaultKptMinutes = 15

// kptForMenuItem looks up the configured prep time for a menu item,
// falling back to the default.
func kptForMenuItem(tx *gorm.DB, menuItemID uint) int {
	var kpt models.KitchenPreparationTime
	if err := tx.Where("menu_item_id = ?", menuItemID).First(&kpt).Error; err != nil {
		return DefaultKptMinutes
	}
	return kpt.EstimatedMinutes
}

// estimateOrderKpt computes an order's expected prep time as the maximum
// across its line items.
func estimateOrderKpt(tx *gorm.DB, items []models.OrderItem) int {
	maxKpt := 0
	for _, item := range items {
		if minutes := kptForMenuItem(tx, item.MenuItemID); minutes > maxKpt {
			maxKpt = minutes
		}
	}
	return maxKpt
}

// KptService manages per-menu-item preparation-time records.
type KptService struct {
	db *gorm.DB
}

func NewKptService(db *gorm.DB) *KptService {
	return &KptService{db: db}
}

// PrepTimeFor returns the configured prep time for a menu item, or the
// default when no record exists.
func (s *KptService) PrepTimeFor(menuItemID uint) int {
	return kptForMenuItem(s.db, menuItemID)
}

// SetPrepTime creates or updates the prep-time record for a menu item.
// Minutes outside the record's bounds fail with invalid-input and leave the
// previous value intact.
func (s *KptService) SetPrepTime(menuItemID uint, minutes int, setByID uint) (*models.KitchenPreparationTime, error) {
	var kpt models.KitchenPreparationTime
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var item models.MenuItem
		if err := tx.First(&item, menuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: menu item %d", ErrNotFound, menuItemID)
			}
			return err
		}

		if err := tx.Where("menu_item_id = ?", menuItemID).First(&kpt).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			kpt = models.KitchenPreparationTime{
				MenuItemID:       menuItemID,
				EstimatedMinutes: DefaultKptMinutes,
				MinMinutes:       1,
				MaxMinutes:       30,
			}
		}

		if minutes < kpt.MinMinutes || minutes > kpt.MaxMinutes {
			return fmt.Errorf("%w: prep time must be between %d and %d minutes, got %d",
				ErrInvalidInput, kpt.MinMinutes, kpt.MaxMinutes, minutes)
		}

		kpt.EstimatedMinutes = minutes
		if setByID != 0 {
			kpt.SetByID = &setByID
		}
		kpt.LastUpdated = time.Now()
		return tx.Save(&kpt).Error
	})
	if err != nil {
		return nil, err
	}
	return &kpt, nil
}
