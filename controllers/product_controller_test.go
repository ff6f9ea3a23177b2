package controllers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harper-lane/storefront-api/models"
)

func TestGetProducts(t *testing.T) {
	db := setupTestDB(t)

	electronics := createCategory(t, db, "Electronics", "electronics")
	books := createCategory(t, db, "Books", "books")

	headphones := createProduct(t, db, "Wireless Headphones", "wireless-headphones", "299.99", 45)
	headphones.CategoryID = &electronics.ID
	headphones.Description = "Noise cancelling over-ear headphones"
	require.NoError(t, db.Save(&headphones).Error)

	novel := createProduct(t, db, "A Long Novel", "a-long-novel", "24.99", 0)
	novel.CategoryID = &books.ID
	require.NoError(t, db.Save(&novel).Error)

	cheap := createProduct(t, db, "Bookmark", "bookmark", "2.99", 100)
	cheap.CategoryID = &books.ID
	require.NoError(t, db.Save(&cheap).Error)

	router := setupTestRouter()
	router.GET("/api/products", GetProducts)

	tests := []struct {
		name          string
		query         string
		expectedSlugs []string
	}{
		{
			name:          "Filter by category",
			query:         "?category=" + books.ID.String(),
			expectedSlugs: []string{"a-long-novel", "bookmark"},
		},
		{
			name:          "Search matches name case-insensitively",
			query:         "?search=WIRELESS",
			expectedSlugs: []string{"wireless-headphones"},
		},
		{
			name:          "Search matches description",
			query:         "?search=noise+cancelling",
			expectedSlugs: []string{"wireless-headphones"},
		},
		{
			name:          "In-stock filter drops sold-out products",
			query:         "?inStock=true",
			expectedSlugs: []string{"wireless-headphones", "bookmark"},
		},
		{
			name:          "Sort by price ascending",
			query:         "?sort=price-asc",
			expectedSlugs: []string{"bookmark", "a-long-novel", "wireless-headphones"},
		},
		{
			name:          "Sort by price descending",
			query:         "?sort=price-desc",
			expectedSlugs: []string{"wireless-headphones", "a-long-novel", "bookmark"},
		},
		{
			name:          "Sort by name ascending",
			query:         "?sort=name-asc",
			expectedSlugs: []string{"a-long-novel", "bookmark", "wireless-headphones"},
		},
		{
			name:          "Search with no hits returns empty list",
			query:         "?search=zzzznope",
			expectedSlugs: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, http.MethodGet, "/api/products"+tt.query, nil)
			require.Equal(t, http.StatusOK, w.Code)

			var products []models.Product
			decodeJSON(t, w, &products)

			slugs := make([]string, 0, len(products))
			for _, p := range products {
				slugs = append(slugs, p.Slug)
			}
			if len(tt.expectedSlugs) == 0 {
				assert.Empty(t, slugs)
			} else if tt.query == "?inStock=true" || tt.query[:9] == "?category" {
				assert.ElementsMatch(t, tt.expectedSlugs, slugs)
			} else {
				assert.Equal(t, tt.expectedSlugs, slugs)
			}
		})
	}
}

func TestGetProductsUnknownSortFallsBackToNewest(t *testing.T) {
	db := setupTestDB(t)
	createProduct(t, db, "First", "first", "10.00", 1)
	createProduct(t, db, "Second", "second", "20.00", 1)

	router := setupTestRouter()
	router.GET("/api/products", GetProducts)

	w := doJSON(router, http.MethodGet, "/api/products?sort=bogus", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decodeJSON(t, w, &products)
	require.Len(t, products, 2)
}

func TestGetFeaturedProducts(t *testing.T) {
	db := setupTestDB(t)

	featured := createProduct(t, db, "Featured Item", "featured-item", "99.99", 5)
	featured.Featured = true
	require.NoError(t, db.Save(&featured).Error)
	createProduct(t, db, "Plain Item", "plain-item", "9.99", 5)

	router := setupTestRouter()
	router.GET("/api/products/featured", GetFeaturedProducts)

	w := doJSON(router, http.MethodGet, "/api/products/featured", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var products []models.Product
	decodeJSON(t, w, &products)
	require.Len(t, products, 1)
	assert.Equal(t, "featured-item", products[0].Slug)
}

func TestGetProductByID(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Desk Lamp", "desk-lamp", "49.99", 10)

	router := setupTestRouter()
	router.GET("/api/products/:id", GetProductByID)

	w := doJSON(router, http.MethodGet, "/api/products/"+product.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	decodeJSON(t, w, &got)
	assert.Equal(t, product.ID, got.ID)
	assert.True(t, got.Price.Equal(product.Price))

	w = doJSON(router, http.MethodGet, "/api/products/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestGetProductBySlug(t *testing.T) {
	db := setupTestDB(t)
	product := createProduct(t, db, "Desk Lamp", "desk-lamp", "49.99", 10)

	router := setupTestRouter()
	router.GET("/api/products/slug/:slug", GetProductBySlug)

	w := doJSON(router, http.MethodGet, "/api/products/slug/desk-lamp", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.Product
	decodeJSON(t, w, &got)
	assert.Equal(t, product.ID, got.ID)

	w = doJSON(router, http.MethodGet, "/api/products/slug/no-such-slug", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
