package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/middleware"
	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/services"
)

// CreateOrder handles POST /api/orders - places an order for the
// authenticated user. The heavy lifting happens in services.PlaceOrder
// inside a single transaction; any failure leaves no partial order behind.
func CreateOrder(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req services.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order data"})
		return
	}

	order, err := services.PlaceOrder(config.GetDB(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyOrder), errors.Is(err, services.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrProductNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, services.ErrInsufficientStock):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
		}
		return
	}

	c.JSON(http.StatusCreated, order)
}

// GetMyOrders handles GET /api/orders - lists the caller's orders, newest
// first, items included.
func GetMyOrders(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var orders []models.Order
	if err := config.GetDB().
		Preload("Items").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load orders"})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrderByID handles GET /api/orders/:id - returns one of the caller's
// orders. Orders belonging to other users are indistinguishable from missing
// ones.
func GetOrderByID(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var order models.Order
	if err := config.GetDB().
		Preload("Items").
		Where("id = ? AND user_id = ?", c.Param("id"), user.ID).
		First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load order"})
		return
	}

	c.JSON(http.StatusOK, order)
}
