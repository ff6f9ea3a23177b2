package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/utils"
)

// DashboardStats is the admin overview payload. The change percentages are
// the same fixed figures the storefront has always shown; there is no
// historical comparison behind them.
type DashboardStats struct {
	TotalRevenue   decimal.Decimal `json:"total_revenue"`
	TotalOrders    int64           `json:"total_orders"`
	PendingOrders  int64           `json:"pending_orders"`
	TotalProducts  int64           `json:"total_products"`
	TotalCustomers int64           `json:"total_customers"`
	RevenueChange  float64         `json:"revenue_change"`
	OrdersChange   float64         `json:"orders_change"`
}

// GetDashboardStats handles GET /api/admin/stats
func GetDashboardStats(c *gin.Context) {
	db := config.GetDB()
	stats := DashboardStats{RevenueChange: 12.5, OrdersChange: 8.3}

	var revenue struct {
		Total decimal.Decimal
	}
	if err := db.Model(&models.Order{}).
		Select("COALESCE(SUM(total), 0) AS total").
		Scan(&revenue).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	stats.TotalRevenue = revenue.Total
	if err := db.Model(&models.Order{}).Count(&stats.TotalOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	if err := db.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPending).
		Count(&stats.PendingOrders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	if err := db.Model(&models.Product{}).Count(&stats.TotalProducts).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}
	if err := db.Model(&models.User{}).
		Where("role = ?", "customer").
		Count(&stats.TotalCustomers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// CreateProductRequest represents the request body for creating a product
type CreateProductRequest struct {
	Name           string              `json:"name" binding:"required"`
	CategoryID     *uuid.UUID          `json:"category_id"`
	Description    string              `json:"description"`
	Price          decimal.Decimal     `json:"price" binding:"required"`
	CompareAtPrice decimal.NullDecimal `json:"compare_at_price"`
	ImageURL       string              `json:"image_url"`
	Stock          int                 `json:"stock"`
	Featured       bool                `json:"featured"`
}

// CreateProduct handles POST /api/admin/products. The slug is derived from
// the name, never taken from the client.
func CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	product := models.Product{
		Name:           req.Name,
		Slug:           utils.Slugify(req.Name),
		CategoryID:     req.CategoryID,
		Description:    req.Description,
		Price:          req.Price.Round(2),
		CompareAtPrice: req.CompareAtPrice,
		ImageURL:       req.ImageURL,
		Stock:          req.Stock,
		Featured:       req.Featured,
	}

	if err := config.GetDB().Create(&product).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

// UpdateProductRequest represents the request body for a partial product
// update. Absent fields keep their current values; compare_at_price is
// overwritten outright so it can be cleared.
type UpdateProductRequest struct {
	Name           *string             `json:"name"`
	CategoryID     *uuid.UUID          `json:"category_id"`
	Description    *string             `json:"description"`
	Price          *decimal.Decimal    `json:"price"`
	CompareAtPrice decimal.NullDecimal `json:"compare_at_price"`
	ImageURL       *string             `json:"image_url"`
	Stock          *int                `json:"stock"`
	Featured       *bool               `json:"featured"`
}

// UpdateProduct handles PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product data"})
		return
	}

	db := config.GetDB()
	var product models.Product
	if err := db.First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}

	updates := map[string]interface{}{
		"compare_at_price": req.CompareAtPrice,
	}
	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = utils.Slugify(*req.Name)
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = req.Price.Round(2)
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Stock != nil {
		updates["stock"] = *req.Stock
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}

	if err := db.Model(&product).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /api/admin/products/:id. Historical order
// items keep their snapshot fields; deleting a product never rewrites them.
func DeleteProduct(c *gin.Context) {
	res := config.GetDB().Delete(&models.Product{}, "id = ?", c.Param("id"))
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}

// GetAllOrders handles GET /api/admin/orders
func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.GetDB().
		Preload("Items").
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// UpdateStatusRequest represents a status patch body
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateOrderStatus handles PATCH /api/admin/orders/:id. Any known status
// may overwrite any other; there is no transition state machine.
func UpdateOrderStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status data"})
		return
	}
	if !models.IsValidOrderStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown order status"})
		return
	}

	db := config.GetDB()
	var order models.Order
	if err := db.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	if err := db.Model(&order).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetAllPayments handles GET /api/admin/payments
func GetAllPayments(c *gin.Context) {
	var payments []models.Payment
	if err := config.GetDB().Order("created_at DESC").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payments"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

// UpdatePaymentStatus handles PATCH /api/admin/payments/:id
func UpdatePaymentStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status data"})
		return
	}
	if !models.IsValidPaymentStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown payment status"})
		return
	}

	db := config.GetDB()
	var payment models.Payment
	if err := db.First(&payment, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Payment not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load payment"})
		return
	}

	if err := db.Model(&payment).Update("status", req.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment"})
		return
	}

	c.JSON(http.StatusOK, payment)
}
