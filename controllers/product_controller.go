package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/models"
)

// productSortOrder maps catalog sort keys onto ORDER BY clauses. Unknown
// keys fall back to newest.
var productSortOrder = map[string]string{
	"newest":     "created_at DESC",
	"price-asc":  "price ASC",
	"price-desc": "price DESC",
	"name-asc":   "name ASC",
	"name-desc":  "name DESC",
}

// GetProducts handles GET /api/products - lists the catalog with optional
// category, search and stock filters. The full result set is returned; the
// catalog is assumed small enough that pagination is not needed.
func GetProducts(c *gin.Context) {
	db := config.GetDB()
	query := db.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category_id = ?", category)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + search + "%"
		// lower() keeps the match case-insensitive on both PostgreSQL and SQLite
		query = query.Where("LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)", pattern, pattern)
	}
	if c.Query("inStock") == "true" {
		query = query.Where("stock > 0")
	}

	orderBy, ok := productSortOrder[c.Query("sort")]
	if !ok {
		orderBy = productSortOrder["newest"]
	}

	var products []models.Product
	if err := query.Order(orderBy).Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}

	c.JSON(http.StatusOK, products)
}

// GetFeaturedProducts handles GET /api/products/featured
func GetFeaturedProducts(c *gin.Context) {
	var products []models.Product
	if err := config.GetDB().Where("featured = ?", true).Order("created_at DESC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductByID handles GET /api/products/:id
func GetProductByID(c *gin.Context) {
	var product models.Product
	if err := config.GetDB().First(&product, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// GetProductBySlug handles GET /api/products/slug/:slug
func GetProductBySlug(c *gin.Context) {
	var product models.Product
	if err := config.GetDB().First(&product, "slug = ?", c.Param("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load product"})
		return
	}
	c.JSON(http.StatusOK, product)
}
