package handlers

import (
	"net/http"
	"strconv"
	"time"

	"khanabook-pos/lifecycle"
	"khanabook-pos/models"

	"github.com/gin-gonic/gin"
)

func bookingID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid booking id"})
		return 0, false
	}
	return uint(id), true
}

// CreateBooking registers a new table booking
func CreateBooking(c *gin.Context) {
	var in lifecycle.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookings.Create(in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Booking created", "booking": booking})
}

// GetBooking returns a single booking
func GetBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := bookings.Get(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"booking": booking})
}

// ListBookings returns bookings, filtered by status or a date range
func ListBookings(c *gin.Context) {
	start, end := c.Query("start"), c.Query("end")
	if start != "" && end != "" {
		startTime, err := time.Parse(time.RFC3339, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339"})
			return
		}
		endTime, err := time.Parse(time.RFC3339, end)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC3339"})
			return
		}
		list, err := bookings.ListBetween(startTime, endTime)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"count": len(list), "bookings": list})
		return
	}

	list, err := bookings.List(models.BookingStatus(c.Query("status")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(list), "bookings": list})
}

type UpdateBookingStatusRequest struct {
	Status models.BookingStatus `json:"status" binding:"required"`
}

// UpdateBookingStatus moves a booking along its state machine
func UpdateBookingStatus(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookings.UpdateStatus(id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated", "booking": booking})
}

// ConfirmBooking transitions a booking PENDING -> CONFIRMED
func ConfirmBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := bookings.Confirm(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking confirmed", "booking": booking})
}

// CancelBooking cancels a booking
func CancelBooking(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}
	booking, err := bookings.Cancel(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking cancelled", "booking": booking})
}

type AttachOrderRequest struct {
	OrderID uint `json:"order_id" binding:"required"`
}

// AttachBookingOrder links the order opened for a seated party to its booking
func AttachBookingOrder(c *gin.Context) {
	id, ok := bookingID(c)
	if !ok {
		return
	}

	var req AttachOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	booking, err := bookings.AttachOrder(id, req.OrderID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Order attached to booking", "booking": booking})
}
