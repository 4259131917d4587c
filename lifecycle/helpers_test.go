package lifecycle

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"khanabook-pos/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.MenuItem{},
		&models.KitchenPreparationTime{},
		&models.Table{},
		&models.Order{},
		&models.OrderItem{},
		&models.Booking{},
	); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if err := db.Create(&models.Category{Name: "Mains", Active: true}).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	return db
}

func seedMenuItem(t *testing.T, db *gorm.DB, name string, price float64, available bool) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		CategoryID: 1,
		Name:       name,
		Price:      price,
		Available:  available,
	}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed menu item %s: %v", name, err)
	}
	return item
}

func seedTable(t *testing.T, db *gorm.DB, name string, status models.TableStatus) models.Table {
	t.Helper()
	table := models.Table{
		Name:     name,
		Status:   status,
		Capacity: 4,
		QrToken:  "qr-" + name,
	}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table %s: %v", name, err)
	}
	return table
}

func seedPrepTime(t *testing.T, db *gorm.DB, menuItemID uint, minutes int) {
	t.Helper()
	kpt := models.KitchenPreparationTime{
		MenuItemID:       menuItemID,
		EstimatedMinutes: minutes,
		MinMinutes:       1,
		MaxMinutes:       30,
	}
	if err := db.Create(&kpt).Error; err != nil {
		t.Fatalf("seed prep time: %v", err)
	}
}

func reloadTable(t *testing.T, db *gorm.DB, id uint) models.Table {
	t.Helper()
	var table models.Table
	if err := db.First(&table, id).Error; err != nil {
		t.Fatalf("reload table %d: %v", id, err)
	}
	return table
}

func reloadOrder(t *testing.T, db *gorm.DB, id uint) models.Order {
	t.Helper()
	var order models.Order
	if err := db.First(&order, id).Error; err != nil {
		t.Fatalf("reload order %d: %v", id, err)
	}
	return order
}

type fakeSink struct {
	err  error
	sent []uint
}

func (f *fakeSink) SendBill(order *models.Order) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, order.ID)
	return nil
}
