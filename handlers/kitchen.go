package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetKitchenPending returns orders the kitchen still has to deal with
// (CONFIRMED and IN_KITCHEN), oldest first
func GetKitchenPending(c *gin.Context) {
	responses, err := orders.KitchenPending()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(responses), "orders": responses})
}

// GetKitchenActive returns orders being prepared or waiting to be served
func GetKitchenActive(c *gin.Context) {
	responses, err := orders.KitchenActive()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(responses), "orders": responses})
}

// MarkOrderReady transitions an order IN_KITCHEN -> READY_TO_SERVE
func MarkOrderReady(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}
	resp, err := orders.MarkReady(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order marked ready to serve", "order": resp})
}

type OrderKptRequest struct {
	Minutes int `json:"minutes" binding:"required"`
}

// UpdateOrderKpt lets the kitchen adjust a single order's prep-time estimate
func UpdateOrderKpt(c *gin.Context) {
	id, ok := orderID(c)
	if !ok {
		return
	}

	var req OrderKptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := orders.OverrideKpt(id, req.Minutes)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Preparation time updated", "order": resp})
}
