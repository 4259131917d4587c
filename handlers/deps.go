package handlers

import (
	"errors"
	"net/http"

	"khanabook-pos/config"
	"khanabook-pos/lifecycle"
	"khanabook-pos/notification"

	"github.com/gin-gonic/gin"
)

var (
	orders   *lifecycle.OrderService
	bookings *lifecycle.BookingService
	kpt      *lifecycle.KptService
)

// Init wires the lifecycle services. Call after config.InitDB.
func Init() {
	sink := notification.NewWhatsAppSink(config.WhatsAppAPIURL, config.WhatsAppAPIKey)
	orders = lifecycle.NewOrderService(config.DB, sink)
	bookings = lifecycle.NewBookingService(config.DB)
	kpt = lifecycle.NewKptService(config.DB)
}

// statusForLifecycleError maps the lifecycle failure taxonomy onto HTTP
// status codes.
func statusForLifecycleError(err error) int {
	switch {
	case errors.Is(err, lifecycle.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, lifecycle.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, lifecycle.ErrNotEditable):
		return http.StatusConflict
	case errors.Is(err, lifecycle.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, lifecycle.ErrBillDispatch):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusForLifecycleError(err), gin.H{"error": err.Error()})
}
