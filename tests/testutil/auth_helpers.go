package testutil

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/harper-lane/storefront-api/models"
	"github.com/harper-lane/storefront-api/services"
)

// CreateUser inserts a user with a bcrypt-hashed password and returns it.
func CreateUser(t *testing.T, db *gorm.DB, email, password, role string) models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

// IssueToken signs a real bearer token for the given user.
func IssueToken(t *testing.T, user *models.User, secret string) string {
	t.Helper()

	token, err := services.GenerateToken(user, secret)
	require.NoError(t, err)
	return token
}

// Authorize sets the Authorization header for a request.
func Authorize(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}
