package handlers

import (
	"net/http"
	"time"

	"khanabook-pos/config"
	"khanabook-pos/models"

	"github.com/gin-gonic/gin"
)

// GetSalesReport returns orders and COMPLETED revenue for a date range
func GetSalesReport(c *gin.Context) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start must be RFC3339"})
		return
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end must be RFC3339"})
		return
	}

	var orders []models.Order
	config.DB.Preload("Items").Preload("Table").
		Where("created_at BETWEEN ? AND ?", start, end).
		Order("created_at desc").
		Find(&orders)

	var revenue float64
	for _, o := range orders {
		if o.Status == models.StatusCompleted {
			revenue += o.TotalAmount
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"start":         start,
		"end":           end,
		"count":         len(orders),
		"total_revenue": revenue,
		"orders":        orders,
	})
}

// GetOrderSummary returns order counts grouped by status and by type
func GetOrderSummary(c *gin.Context) {
	type statusCount struct {
		Status models.OrderStatus
		Count  int64
	}
	type typeCount struct {
		OrderType models.OrderType
		Count     int64
	}

	var byStatus []statusCount
	config.DB.Model(&models.Order{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&byStatus)

	var byType []typeCount
	config.DB.Model(&models.Order{}).
		Select("order_type, count(*) as count").
		Group("order_type").
		Scan(&byType)

	statusSummary := map[string]int64{}
	for _, s := range byStatus {
		statusSummary[string(s.Status)] = s.Count
	}
	typeSummary := map[string]int64{}
	for _, t := range byType {
		typeSummary[string(t.OrderType)] = t.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"by_status": statusSummary,
		"by_type":   typeSummary,
	})
}
