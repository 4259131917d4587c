package handlers

import (
	"net/http"
	"strconv"

	"khanabook-pos/lifecycle"
	"khanabook-pos/middleware"
	"khanabook-pos/models"
	"khanabook-pos/statemachine"

	"github.com/gin-gonic/gin"
)

func orderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order id"})
		return 0, false
	}
	return uint(id), true
}

// CreateOrder places a staff-entered order
func CreateOrder(c *gin.Context) {
	var in lifecycle.CreateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := orders.CreateOrder(in, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": resp})
}

// CreateQrOrder places a customer order from a scanned table QR code (public)
func CreateQrOrder(c *gin.Context) {
	var in lifecycle.QrOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := orders.CreateQrOrder(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":        "Order placed successfully",
		"order":          resp,
		"editable_until": resp.EditableUntil,
	})
}

// GetOrder returns a single order projection
func GetOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	resp, err := orders.GetOrder(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"order": resp})
}

// ListOrders returns orders, optionally filtered by status
func ListOrders(c *gin.Context) {
	responses, err := orders.ListOrders(models.OrderStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}

	// Dashboard summary grouped by status
	summary := map[string]int{}
	for _, o := range responses {
		summary[string(o.Status)]++
	}

	c.JSON(http.StatusOK, gin.H{
		"order_summary": summary,
		"count":         len(responses),
		"orders":        responses,
	})
}

// UpdateOrder replaces a pending order's items while the edit window is open
func UpdateOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var in lifecycle.UpdateOrderInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := orders.UpdateOrder(id, in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order updated", "order": resp})
}

type UpdateOrderStatusRequest struct {
	Status models.OrderStatus `json:"status" binding:"required"`
}

// UpdateOrderStatus moves an order along its state machine
func UpdateOrderStatus(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := orders.UpdateStatus(id, req.Status)
	if err != nil {
		current := models.OrderStatus("")
		if existing, gerr := orders.GetOrder(id); gerr == nil {
			current = existing.Status
		}
		c.JSON(statusForLifecycleError(err), gin.H{
			"error":             err.Error(),
			"current_status":    current,
			"requested":         req.Status,
			"valid_next_states": statemachine.OrderTransitionsFrom(current),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order status updated", "order": resp})
}

// CancelOrder cancels an order that has not been served or completed
func CancelOrder(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	resp, err := orders.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order cancelled successfully", "order": resp})
}

// SendWhatsAppBill dispatches the bill for a completed order
func SendWhatsAppBill(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	resp, err := orders.SendWhatsAppBill(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill sent via WhatsApp", "order": resp})
}

// GetStateMachineInfo returns the order state machine for documentation
func GetStateMachineInfo(c *gin.Context) {
	machine := map[string][]models.OrderStatus{}
	for _, status := range []models.OrderStatus{
		models.StatusPending, models.StatusConfirmed, models.StatusInKitchen,
		models.StatusReadyToServe, models.StatusServed, models.StatusCompleted,
		models.StatusCancelled,
	} {
		machine[string(status)] = statemachine.OrderTransitionsFrom(status)
	}
	c.JSON(http.StatusOK, gin.H{
		"state_machine":   machine,
		"terminal_states": []string{"COMPLETED", "CANCELLED"},
		"description":     "Restaurant POS Order Lifecycle State Machine",
	})
}
