package lifecycle

import (
	"fmt"

	"gorm.io/gorm"

	"khanabook-pos/models"
)

// Table occupancy glue shared by the order and booking lifecycles. Status
// writes are compare-and-swap style: the UPDATE carries the expected current
// status so two lifecycles racing on the same table cannot silently clobber
// each other. All helpers run inside the caller's transaction.

// occupyTable marks a table OCCUPIED for a dine-in order. The table must
// currently be AVAILABLE or OCCUPIED; RESERVED tables go through the booking
// SEATED transition first, CLEANING/MAINTENANCE tables cannot take orders.
func occupyTable(tx *gorm.DB, table *models.Table) error {
	res := tx.Model(&models.Table{}).
		Where("id = ? AND status IN ?", table.ID, []models.TableStatus{models.TableAvailable, models.TableOccupied}).
		Update("status", models.TableOccupied)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("%w: table %s is %s and cannot take an order", ErrInvalidInput, table.Name, table.Status)
	}
	table.Status = models.TableOccupied
	return nil
}

// releaseTable returns a table to AVAILABLE when its order completes or is
// cancelled. Unconditional: order completion is the authoritative release.
func releaseTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", models.TableAvailable).Error
}

// reserveTable marks a table RESERVED when its booking is confirmed.
func reserveTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", models.TableReserved).Error
}

// seatTable marks a table OCCUPIED when a booked party is seated.
func seatTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("status", models.TableOccupied).Error
}

// revertReservedTable frees a table when its booking is cancelled or marked a
// no-show, but only if the table is still RESERVED. An OCCUPIED table set by
// an unrelated order is left alone.
func revertReservedTable(tx *gorm.DB, tableID uint) error {
	return tx.Model(&models.Table{}).
		Where("id = ? AND status = ?", tableID, models.TableReserved).
		Update("status", models.TableAvailable).Error
}
