package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/models"
)

// GetCategories handles GET /api/categories
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := config.GetDB().Order("name").Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load categories"})
		return
	}
	c.JSON(http.StatusOK, categories)
}

// GetCategoryBySlug handles GET /api/categories/:slug
func GetCategoryBySlug(c *gin.Context) {
	var category models.Category
	if err := config.GetDB().First(&category, "slug = ?", c.Param("slug")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load category"})
		return
	}
	c.JSON(http.StatusOK, category)
}
