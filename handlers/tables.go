package handlers

import (
	"net/http"

	"khanabook-pos/config"
	"khanabook-pos/models"
	"khanabook-pos/util"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreateTableRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"omitempty,min=1"`
	Location string `json:"location"`
	Section  string `json:"section"`
}

// CreateTable registers a new table with a stable QR token and rendered QR image
func CreateTable(c *gin.Context) {
	var req CreateTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var existing models.Table
	if result := config.DB.Where("name = ?", req.Name).First(&existing); result.Error == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Table name already exists"})
		return
	}

	capacity := req.Capacity
	if capacity == 0 {
		capacity = 4
	}

	table := models.Table{
		Name:     req.Name,
		Status:   models.TableAvailable,
		Capacity: capacity,
		QrToken:  uuid.NewString(),
		Location: req.Location,
		Section:  req.Section,
	}

	qrCode, err := util.GenerateQrCode(table.QrToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate QR code"})
		return
	}
	table.QrCode = qrCode

	if err := config.DB.Create(&table).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create table"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Table created", "table": table})
}

// ListTables returns all tables, optionally filtered by status
func ListTables(c *gin.Context) {
	var tables []models.Table
	query := config.DB
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	query.Order("name asc").Find(&tables)
	c.JSON(http.StatusOK, gin.H{"count": len(tables), "tables": tables})
}

// GetTable returns a single table
func GetTable(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": table})
}

type UpdateTableStatusRequest struct {
	Status models.TableStatus `json:"status" binding:"required,oneof=AVAILABLE OCCUPIED RESERVED CLEANING MAINTENANCE"`
}

// UpdateTableStatus is the manual override for table status (cleaning,
// maintenance). Lifecycle transitions normally manage this flag.
func UpdateTableStatus(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}

	var req UpdateTableStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	config.DB.Model(&table).Update("status", req.Status)
	c.JSON(http.StatusOK, gin.H{"message": "Table status updated", "table": table})
}

// GetTableQr returns the table's rendered QR code image
func GetTableQr(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Table not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"table":    table.Name,
		"qr_token": table.QrToken,
		"qr_code":  table.QrCode,
	})
}
