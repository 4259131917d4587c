package lifecycle

import (
	"time"

	"khanabook-pos/models"
)

// OrderResponse is the projection returned by every order operation.
type OrderResponse struct {
	ID                  uint               `json:"id"`
	OrderType           models.OrderType   `json:"order_type"`
	Status              models.OrderStatus `json:"status"`
	TotalAmount         float64            `json:"total_amount"`
	CreatedAt           time.Time          `json:"created_at"`
	ConfirmedAt         *time.Time         `json:"confirmed_at,omitempty"`
	SentToKitchenAt     *time.Time         `json:"sent_to_kitchen_at,omitempty"`
	ReadyAt             *time.Time         `json:"ready_at,omitempty"`
	ServedAt            *time.Time         `json:"served_at,omitempty"`
	CompletedAt         *time.Time         `json:"completed_at,omitempty"`
	EstimatedKptMinutes int                `json:"estimated_kpt_minutes"`
	ActualKptMinutes    *int               `json:"actual_kpt_minutes,omitempty"`
	EstimatedReadyTime  *time.Time         `json:"estimated_ready_time,omitempty"`
	IsEditable          bool               `json:"is_editable"`
	EditableUntil       *time.Time         `json:"editable_until,omitempty"`
	IsQrOrder           bool               `json:"is_qr_order"`
	WhatsappBillSent    bool               `json:"whatsapp_bill_sent"`
	TableName           string             `json:"table_name,omitempty"`
	CustomerPhone       string             `json:"customer_phone,omitempty"`
	SpecialInstructions string             `json:"special_instructions,omitempty"`
	Items               []OrderItemView    `json:"items"`
}

type OrderItemView struct {
	ID                  uint    `json:"id"`
	MenuItemID          uint    `json:"menu_item_id"`
	Name                string  `json:"name"`
	Quantity            int     `json:"quantity"`
	Price               float64 `json:"price"`
	Subtotal            float64 `json:"subtotal"`
	SpecialInstructions string  `json:"special_instructions,omitempty"`
}

func orderResponse(o *models.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:                  o.ID,
		OrderType:           o.OrderType,
		Status:              o.Status,
		TotalAmount:         o.TotalAmount,
		CreatedAt:           o.CreatedAt,
		ConfirmedAt:         o.ConfirmedAt,
		SentToKitchenAt:     o.SentToKitchenAt,
		ReadyAt:             o.ReadyAt,
		ServedAt:            o.ServedAt,
		CompletedAt:         o.CompletedAt,
		EstimatedKptMinutes: o.EstimatedKptMinutes,
		ActualKptMinutes:    o.ActualKptMinutes,
		EstimatedReadyTime:  o.EstimatedReadyTime,
		IsEditable:          o.EditAllowed(),
		EditableUntil:       o.EditableUntil,
		IsQrOrder:           o.IsQrOrder,
		WhatsappBillSent:    o.WhatsappBillSent,
		CustomerPhone:       o.CustomerPhone,
		SpecialInstructions: o.SpecialInstructions,
		Items:               make([]OrderItemView, 0, len(o.Items)),
	}
	if o.Table != nil {
		resp.TableName = o.Table.Name
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemView{
			ID:                  item.ID,
			MenuItemID:          item.MenuItemID,
			Name:                item.Name,
			Quantity:            item.Quantity,
			Price:               item.Price,
			Subtotal:            item.Subtotal(),
			SpecialInstructions: item.SpecialInstructions,
		})
	}
	return resp
}
