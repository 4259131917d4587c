package lifecycle

import (
	"fmt"

	"khanabook-pos/models"
)

// Kitchen views and operations on orders.

// KitchenPending returns orders the kitchen has yet to start or finish
// (CONFIRMED and IN_KITCHEN), oldest first.
func (s *OrderService) KitchenPending() ([]*OrderResponse, error) {
	return s.ordersInStatuses([]models.OrderStatus{models.StatusConfirmed, models.StatusInKitchen})
}

// KitchenActive returns orders currently being prepared or waiting to be
// served (IN_KITCHEN and READY_TO_SERVE).
func (s *OrderService) KitchenActive() ([]*OrderResponse, error) {
	return s.ordersInStatuses([]models.OrderStatus{models.StatusInKitchen, models.StatusReadyToServe})
}

func (s *OrderService) ordersInStatuses(statuses []models.OrderStatus) ([]*OrderResponse, error) {
	var orders []models.Order
	if err := s.db.Preload("Items").Preload("Table").
		Where("status IN ?", statuses).
		Order("created_at asc").
		Find(&orders).Error; err != nil {
		return nil, err
	}
	responses := make([]*OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, orderResponse(&orders[i]))
	}
	return responses, nil
}

// MarkReady is the kitchen's IN_KITCHEN -> READY_TO_SERVE transition.
func (s *OrderService) MarkReady(id uint) (*OrderResponse, error) {
	return s.UpdateStatus(id, models.StatusReadyToServe)
}

// OverrideKpt lets the kitchen adjust a single order's prep-time estimate
// after seeing the ticket, within the same 1-30 minute bounds as the
// per-item records. The kitchen ETA is recomputed.
func (s *OrderService) OverrideKpt(id uint, minutes int) (*OrderResponse, error) {
	if minutes < 1 || minutes > 30 {
		return nil, fmt.Errorf("%w: prep time must be between 1 and 30 minutes, got %d", ErrInvalidInput, minutes)
	}
	order, err := getOrder(s.db, id)
	if err != nil {
		return nil, err
	}
	order.EstimatedKptMinutes = minutes
	order.CalculateEstimatedReadyTime()
	if err := s.db.Save(order).Error; err != nil {
		return nil, err
	}
	return s.GetOrder(id)
}
