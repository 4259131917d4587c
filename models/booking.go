package models

import "time"

// BookingStatus represents all possible states of a table booking
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingSeated    BookingStatus = "SEATED"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingNoShow    BookingStatus = "NO_SHOW"
)

type Booking struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	TableID uint   `json:"table_id" gorm:"not null"`
	Table   *Table `json:"table,omitempty" gorm:"foreignKey:TableID"`

	CustomerName  string `json:"customer_name" gorm:"not null"`
	CustomerPhone string `json:"customer_phone" gorm:"not null"`
	CustomerEmail string `json:"customer_email"`
	PartySize     int    `json:"party_size" gorm:"not null"`

	BookingDateTime time.Time     `json:"booking_date_time" gorm:"not null"`
	Status          BookingStatus `json:"status" gorm:"not null;default:'PENDING'"`
	ConfirmedAt     *time.Time    `json:"confirmed_at"`

	SpecialRequests string `json:"special_requests"`

	// Set when the party is seated and an order is opened for them
	OrderID *uint  `json:"order_id"`
	Order   *Order `json:"order,omitempty" gorm:"foreignKey:OrderID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Booking) TableName() string {
	return "table_bookings"
}
