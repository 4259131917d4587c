package models

import "time"

// OrderStatus represents all possible states of a customer order
type OrderStatus string

const (
	StatusPending      OrderStatus = "PENDING"
	StatusConfirmed    OrderStatus = "CONFIRMED"
	StatusInKitchen    OrderStatus = "IN_KITCHEN"
	StatusReadyToServe OrderStatus = "READY_TO_SERVE"
	StatusServed       OrderStatus = "SERVED"
	StatusCompleted    OrderStatus = "COMPLETED"
	StatusCancelled    OrderStatus = "CANCELLED"
)

type OrderType string

const (
	DineIn   OrderType = "DINE_IN"
	Takeaway OrderType = "TAKEAWAY"
	Delivery OrderType = "DELIVERY"
)

type Order struct {
	ID          uint        `json:"id" gorm:"primaryKey"`
	OrderType   OrderType   `json:"order_type" gorm:"not null"`
	Status      OrderStatus `json:"status" gorm:"not null;default:'PENDING'"`
	TotalAmount float64     `json:"total_amount" gorm:"not null"`

	ConfirmedAt     *time.Time `json:"confirmed_at"`
	SentToKitchenAt *time.Time `json:"sent_to_kitchen_at"`
	ReadyAt         *time.Time `json:"ready_at"`
	ServedAt        *time.Time `json:"served_at"`
	CompletedAt     *time.Time `json:"completed_at"`

	// 2-minute edit window, set for QR orders only
	EditableUntil *time.Time `json:"editable_until"`
	IsEditable    bool       `json:"is_editable" gorm:"not null;default:true"`
	IsQrOrder     bool       `json:"is_qr_order" gorm:"not null;default:false"`

	EstimatedKptMinutes int        `json:"estimated_kpt_minutes"`
	ActualKptMinutes    *int       `json:"actual_kpt_minutes"`
	EstimatedReadyTime  *time.Time `json:"estimated_ready_time"`

	TableID *uint  `json:"table_id"`
	Table   *Table `json:"table,omitempty" gorm:"foreignKey:TableID"`

	Items []OrderItem `json:"items,omitempty" gorm:"foreignKey:OrderID"`

	CreatedByID *uint `json:"created_by_id"`
	CreatedBy   *User `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`

	WhatsappBillSent    bool   `json:"whatsapp_bill_sent" gorm:"not null;default:false"`
	CustomerPhone       string `json:"customer_phone"`
	SpecialInstructions string `json:"special_instructions"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type OrderItem struct {
	ID                  uint      `json:"id" gorm:"primaryKey"`
	OrderID             uint      `json:"order_id" gorm:"not null"`
	MenuItemID          uint      `json:"menu_item_id" gorm:"not null"`
	MenuItem            *MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Quantity            int       `json:"quantity" gorm:"not null"`
	Price               float64   `json:"price" gorm:"not null"` // snapshot price at time of order
	Name                string    `json:"name"`                  // snapshot name
	SpecialInstructions string    `json:"special_instructions"`
}

func (i OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// EditAllowed reports whether the order's line items may still be changed.
// The IsEditable latch is permanent once the order is confirmed; EditableUntil
// additionally bounds QR orders to their edit window.
func (o *Order) EditAllowed() bool {
	if !o.IsEditable {
		return false
	}
	if o.EditableUntil == nil {
		return true
	}
	return time.Now().Before(*o.EditableUntil)
}

// CalculateEstimatedReadyTime derives the kitchen ETA once the order has been
// sent to the kitchen.
func (o *Order) CalculateEstimatedReadyTime() {
	if o.EstimatedKptMinutes > 0 && o.SentToKitchenAt != nil {
		t := o.SentToKitchenAt.Add(time.Duration(o.EstimatedKptMinutes) * time.Minute)
		o.EstimatedReadyTime = &t
	}
}
