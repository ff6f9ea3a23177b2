package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-lane/storefront-api/models"
)

func TestGetCategories(t *testing.T) {
	db := setupTestDB(t)
	createCategory(t, db, "Sports", "sports")
	createCategory(t, db, "Books", "books")
	createCategory(t, db, "Electronics", "electronics")

	router := setupTestRouter()
	router.GET("/api/categories", GetCategories)

	w := doJSON(router, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	decodeJSON(t, w, &categories)
	require.Len(t, categories, 3)

	// Listed alphabetically by name.
	assert.Equal(t, "Books", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
	assert.Equal(t, "Sports", categories[2].Name)
}

func TestGetCategoryBySlug(t *testing.T) {
	db := setupTestDB(t)
	category := createCategory(t, db, "Books", "books")

	router := setupTestRouter()
	router.GET("/api/categories/:slug", GetCategoryBySlug)

	w := doJSON(router, http.MethodGet, "/api/categories/books", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Category
	decodeJSON(t, w, &got)
	assert.Equal(t, category.ID, got.ID)

	w = doJSON(router, http.MethodGet, "/api/categories/garden", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}
