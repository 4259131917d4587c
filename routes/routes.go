package routes

import (
	"khanabook-pos/handlers"
	"khanabook-pos/middleware"
	"khanabook-pos/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/auth/login", handlers.Login)

		// Menu browsing (QR customers need this without auth)
		public.GET("/menu", handlers.ListMenu)
		public.GET("/categories", handlers.ListCategories)

		// QR orders: created and edited by the customer at the table
		public.POST("/qr-orders", handlers.CreateQrOrder)
		public.PUT("/qr-orders/:id", handlers.UpdateOrder)
		public.GET("/qr-orders/:id", handlers.GetOrder)

		// State machine info (great for docs/Postman)
		public.GET("/state-machine", handlers.GetStateMachineInfo)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
	}

	// ── Admin & manager: staff, tables, menu, reports ──────────────
	admin := r.Group("/api/admin")
	admin.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleAdmin, models.RoleManager))
	{
		admin.POST("/users", handlers.Register)

		admin.POST("/tables", handlers.CreateTable)
		admin.PUT("/tables/:id/status", handlers.UpdateTableStatus)
		admin.GET("/tables/:id/qr", handlers.GetTableQr)

		admin.POST("/categories", handlers.CreateCategory)
		admin.POST("/menu", handlers.AddMenuItem)
		admin.PUT("/menu/:itemId", handlers.UpdateMenuItem)
		admin.DELETE("/menu/:itemId", handlers.DeleteMenuItem)

		admin.GET("/reports/sales", handlers.GetSalesReport)
		admin.GET("/reports/orders/summary", handlers.GetOrderSummary)
	}

	// ── Front of house: orders and bookings ────────────────────────
	staff := r.Group("/api")
	staff.Use(middleware.AuthRequired(), middleware.RoleRequired(
		models.RoleAdmin, models.RoleManager, models.RoleWaiter, models.RoleCashier))
	{
		staff.GET("/tables", handlers.ListTables)
		staff.GET("/tables/:id", handlers.GetTable)

		staff.POST("/orders", handlers.CreateOrder)
		staff.GET("/orders", handlers.ListOrders)
		staff.GET("/orders/:id", handlers.GetOrder)
		staff.PUT("/orders/:id", handlers.UpdateOrder)
		staff.PUT("/orders/:id/status", handlers.UpdateOrderStatus)
		staff.PUT("/orders/:id/cancel", handlers.CancelOrder)
		staff.POST("/orders/:id/bill/whatsapp", handlers.SendWhatsAppBill)

		staff.POST("/bookings", handlers.CreateBooking)
		staff.GET("/bookings", handlers.ListBookings)
		staff.GET("/bookings/:id", handlers.GetBooking)
		staff.PUT("/bookings/:id/status", handlers.UpdateBookingStatus)
		staff.PUT("/bookings/:id/confirm", handlers.ConfirmBooking)
		staff.PUT("/bookings/:id/cancel", handlers.CancelBooking)
		staff.PUT("/bookings/:id/order", handlers.AttachBookingOrder)
	}

	// ── Kitchen ────────────────────────────────────────────────────
	kitchen := r.Group("/api/kitchen")
	kitchen.Use(middleware.AuthRequired(), middleware.RoleRequired(
		models.RoleAdmin, models.RoleManager, models.RoleChef))
	{
		kitchen.GET("/orders/pending", handlers.GetKitchenPending)
		kitchen.GET("/orders/active", handlers.GetKitchenActive)
		kitchen.PUT("/orders/:id/ready", handlers.MarkOrderReady)
		kitchen.PUT("/orders/:id/kpt", handlers.UpdateOrderKpt)
		kitchen.PUT("/menu/:itemId/prep-time", handlers.SetPrepTime)
	}
}
