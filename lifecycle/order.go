package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"khanabook-pos/models"
	"khanabook-pos/notification"
	"khanabook-pos/statemachine"
)

// QrEditWindow is how long a QR-sourced order stays editable after creation.
const QrEditWindow = 2 * time.Minute

// OrderService owns the customer-order state machine and its table-occupancy
// side effects. Every command runs as a single transaction; the notification
// sink is the only external call and happens outside of it.
type OrderService struct {
	db   *gorm.DB
	sink notification.Sink
}

func NewOrderService(db *gorm.DB, sink notification.Sink) *OrderService {
	return &OrderService{db: db, sink: sink}
}

type OrderItemInput struct {
	MenuItemID          uint   `json:"menu_item_id" binding:"required"`
	Quantity            int    `json:"quantity" binding:"required,min=1"`
	SpecialInstructions string `json:"special_instructions"`
}

type CreateOrderInput struct {
	OrderType           models.OrderType `json:"order_type" binding:"required,oneof=DINE_IN TAKEAWAY DELIVERY"`
	TableID             *uint            `json:"table_id"`
	CustomerPhone       string           `json:"customer_phone"`
	SpecialInstructions string           `json:"special_instructions"`
	Items               []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type QrOrderInput struct {
	QrToken             string           `json:"qr_token" binding:"required"`
	CustomerPhone       string           `json:"customer_phone"`
	SpecialInstructions string           `json:"special_instructions"`
	Items               []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

type UpdateOrderInput struct {
	SpecialInstructions string           `json:"special_instructions"`
	Items               []OrderItemInput `json:"items" binding:"required,min=1,dive"`
}

// CreateOrder creates a staff-entered order. Dine-in orders require a table,
// which is marked OCCUPIED in the same transaction. createdByID identifies
// the staff member entering the order; zero means unattributed.
func (s *OrderService) CreateOrder(in CreateOrderInput, createdByID uint) (*OrderResponse, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order = models.Order{
			OrderType:           in.OrderType,
			Status:              models.StatusPending,
			IsEditable:          true,
			CustomerPhone:       in.CustomerPhone,
			SpecialInstructions: in.SpecialInstructions,
		}
		if createdByID != 0 {
			order.CreatedByID = &createdByID
		}

		if in.OrderType == models.DineIn {
			if in.TableID == nil {
				return fmt.Errorf("%w: table id is required for dine-in orders", ErrInvalidInput)
			}
			table, err := getTable(tx, *in.TableID)
			if err != nil {
				return err
			}
			if err := occupyTable(tx, table); err != nil {
				return err
			}
			order.TableID = &table.ID
		}

		items, err := buildOrderItems(tx, in.Items)
		if err != nil {
			return err
		}
		order.Items = items
		order.TotalAmount = orderTotal(items)
		order.EstimatedKptMinutes = estimateOrderKpt(tx, items)

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(order.ID)
}

// CreateQrOrder creates a customer order from a scanned table QR token.
// QR orders are always dine-in and carry a short edit window.
func (s *OrderService) CreateQrOrder(in QrOrderInput) (*OrderResponse, error) {
	var order models.Order
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var table models.Table
		if err := tx.Where("qr_token = ?", in.QrToken).First(&table).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: invalid QR code", ErrNotFound)
			}
			return err
		}
		if err := occupyTable(tx, &table); err != nil {
			return err
		}

		editableUntil := time.Now().Add(QrEditWindow)
		order = models.Order{
			OrderType:           models.DineIn,
			Status:              models.StatusPending,
			TableID:             &table.ID,
			IsEditable:          true,
			IsQrOrder:           true,
			EditableUntil:       &editableUntil,
			CustomerPhone:       in.CustomerPhone,
			SpecialInstructions: in.SpecialInstructions,
		}

		items, err := buildOrderItems(tx, in.Items)
		if err != nil {
			return err
		}
		order.Items = items
		order.TotalAmount = orderTotal(items)
		order.EstimatedKptMinutes = estimateOrderKpt(tx, items)

		return tx.Create(&order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(order.ID)
}

// GetOrder returns the full projection of a single order.
func (s *OrderService) GetOrder(id uint) (*OrderResponse, error) {
	order, err := getOrderFull(s.db, id)
	if err != nil {
		return nil, err
	}
	return orderResponse(order), nil
}

// ListOrders returns order projections, newest first, optionally filtered by
// status.
func (s *OrderService) ListOrders(status models.OrderStatus) ([]*OrderResponse, error) {
	var orders []models.Order
	query := s.db.Preload("Items").Preload("Table")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, err
	}
	responses := make([]*OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orderResponse(&orders[i]))
	}
	return responses, nil
}

// UpdateOrder replaces the order's line items while it is still PENDING and
// inside its edit window. Total and prep-time estimate are recomputed from
// scratch.
func (s *OrderService) UpdateOrder(id uint, in UpdateOrderInput) (*OrderResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := getOrder(tx, id)
		if err != nil {
			return err
		}
		if order.Status != models.StatusPending {
			return fmt.Errorf("%w: only pending orders can be edited", ErrNotEditable)
		}
		if !order.EditAllowed() {
			return fmt.Errorf("%w: edit window has expired or order is being processed", ErrNotEditable)
		}

		items, err := buildOrderItems(tx, in.Items)
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&models.OrderItem{}).Error; err != nil {
			return err
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		return tx.Model(order).Updates(map[string]interface{}{
			"total_amount":          orderTotal(items),
			"estimated_kpt_minutes": estimateOrderKpt(tx, items),
			"special_instructions":  in.SpecialInstructions,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

// UpdateStatus moves an order along the state machine, stamping transition
// timestamps and applying table side effects. Illegal transitions leave the
// order unchanged.
func (s *OrderService) UpdateStatus(id uint, next models.OrderStatus) (*OrderResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := getOrder(tx, id)
		if err != nil {
			return err
		}
		if err := statemachine.OrderCanTransition(order.Status, next); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		now := time.Now()
		order.Status = next
		switch next {
		case models.StatusConfirmed:
			order.ConfirmedAt = &now
			order.IsEditable = false // permanent latch
		case models.StatusInKitchen:
			order.SentToKitchenAt = &now
			order.CalculateEstimatedReadyTime()
		case models.StatusReadyToServe:
			order.ReadyAt = &now
			if order.SentToKitchenAt != nil {
				minutes := int(now.Sub(*order.SentToKitchenAt).Minutes())
				order.ActualKptMinutes = &minutes
			}
		case models.StatusServed:
			order.ServedAt = &now
		case models.StatusCompleted:
			order.CompletedAt = &now
			if order.TableID != nil {
				if err := releaseTable(tx, *order.TableID); err != nil {
					return err
				}
			}
		case models.StatusCancelled:
			if order.TableID != nil {
				if err := releaseTable(tx, *order.TableID); err != nil {
					return err
				}
			}
		}

		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

// Cancel forces an order to CANCELLED and frees its table. Served and
// completed orders cannot be cancelled.
func (s *OrderService) Cancel(id uint) (*OrderResponse, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		order, err := getOrder(tx, id)
		if err != nil {
			return err
		}
		if order.Status == models.StatusCompleted {
			return fmt.Errorf("%w: cannot cancel completed order", ErrInvalidTransition)
		}
		if order.Status == models.StatusServed {
			return fmt.Errorf("%w: cannot cancel served order", ErrInvalidTransition)
		}

		order.Status = models.StatusCancelled
		if order.TableID != nil {
			if err := releaseTable(tx, *order.TableID); err != nil {
				return err
			}
		}
		return tx.Save(order).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}

// SendWhatsAppBill dispatches the bill for a completed order through the
// notification sink. The sink is called outside the order's transaction so a
// slow or failing gateway cannot touch the COMPLETED state; the bill-sent
// flag flips only on confirmed success.
func (s *OrderService) SendWhatsAppBill(id uint) (*OrderResponse, error) {
	order, err := getOrderFull(s.db, id)
	if err != nil {
		return nil, err
	}
	if order.CustomerPhone == "" {
		return nil, fmt.Errorf("%w: customer phone number is required", ErrInvalidInput)
	}
	if order.Status != models.StatusCompleted {
		return nil, fmt.Errorf("%w: can only send bill for completed orders", ErrInvalidTransition)
	}

	if err := s.sink.SendBill(order); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBillDispatch, err)
	}

	if err := s.db.Model(&models.Order{}).Where("id = ?", id).
		Update("whatsapp_bill_sent", true).Error; err != nil {
		return nil, err
	}
	order.WhatsappBillSent = true
	return orderResponse(order), nil
}

// buildOrderItems resolves requested items against the menu catalog and
// snapshots each item's current price and name, so later menu changes never
// retroactively alter existing orders.
func buildOrderItems(tx *gorm.DB, inputs []OrderItemInput) ([]models.OrderItem, error) {
	if len(inputs) == 0 {
		return nil, fmt.Errorf("%w: order must contain at least one item", ErrInvalidInput)
	}
	items := make([]models.OrderItem, 0, len(inputs))
	for _, in := range inputs {
		var menuItem models.MenuItem
		if err := tx.First(&menuItem, in.MenuItemID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: menu item %d", ErrNotFound, in.MenuItemID)
			}
			return nil, err
		}
		if !menuItem.Available {
			return nil, fmt.Errorf("%w: menu item not available: %s", ErrInvalidInput, menuItem.Name)
		}
		if in.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
		}
		items = append(items, models.OrderItem{
			MenuItemID:          menuItem.ID,
			Quantity:            in.Quantity,
			Price:               menuItem.Price,
			Name:                menuItem.Name,
			SpecialInstructions: in.SpecialInstructions,
		})
	}
	return items, nil
}

func orderTotal(items []models.OrderItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Subtotal()
	}
	return total
}

func getOrder(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := tx.First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func getOrderFull(tx *gorm.DB, id uint) (*models.Order, error) {
	var order models.Order
	if err := tx.Preload("Items").Preload("Table").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: order %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &order, nil
}

func getTable(tx *gorm.DB, id uint) (*models.Table, error) {
	var table models.Table
	if err := tx.First(&table, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: table %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &table, nil
}
