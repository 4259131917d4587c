package models

import "time"

// TableStatus represents the occupancy state of a restaurant table.
// It is the one piece of state shared between the order and booking lifecycles.
type TableStatus string

const (
	TableAvailable   TableStatus = "AVAILABLE"
	TableOccupied    TableStatus = "OCCUPIED"
	TableReserved    TableStatus = "RESERVED"
	TableCleaning    TableStatus = "CLEANING"
	TableMaintenance TableStatus = "MAINTENANCE"
)

type Table struct {
	ID        uint        `json:"id" gorm:"primaryKey"`
	Name      string      `json:"name" gorm:"uniqueIndex;not null"` // T1, T2, VIP-1
	Status    TableStatus `json:"status" gorm:"not null;default:'AVAILABLE'"`
	Capacity  int         `json:"capacity" gorm:"not null;default:4"`
	QrToken   string      `json:"qr_token" gorm:"uniqueIndex;not null"` // immutable, generated at creation
	QrCode    string      `json:"qr_code,omitempty" gorm:"type:text"`   // base64 PNG
	Location  string      `json:"location"` // "Ground Floor", "Terrace"
	Section   string      `json:"section"`  // "Smoking", "Non-Smoking"
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

func (Table) TableName() string {
	return "restaurant_tables"
}
