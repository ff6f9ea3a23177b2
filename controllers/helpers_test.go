package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/config"
	"github.com/harper-lane/storefront-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	config.SetConfig(&config.Config{
		DatabaseURL: "sqlite::memory:",
		Port:        "8080",
		GoEnv:       "test",
		JWTSecret:   "test-secret",
	})
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// mockAuthMiddleware loads a fixed user into the context, standing in for
// middleware.RequireAuth in handler-level tests.
func mockAuthMiddleware(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("current_user", user)
		c.Next()
	}
}

func createUser(t *testing.T, db *gorm.DB, email, role string) models.User {
	user := models.User{
		Email:        email,
		PasswordHash: "$2a$10$invalidhashforunittests0000000000000000000000000000",
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createCategory(t *testing.T, db *gorm.DB, name, slug string) models.Category {
	category := models.Category{Name: name, Slug: slug}
	require.NoError(t, db.Create(&category).Error)
	return category
}

func createProduct(t *testing.T, db *gorm.DB, name, slug, price string, stock int) models.Product {
	product := models.Product{
		Name:     name,
		Slug:     slug,
		Price:    decimal.RequireFromString(price),
		ImageURL: "https://example.com/" + slug + ".jpg",
		Stock:    stock,
	}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			panic(err)
		}
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}
