package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"crm/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

const jwtSecret = "test-secret-key"

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.RequestLogger())

	protected := r.Group("/pipeline")
	protected.Use(middleware.JWTAuthMiddleware(jwtSecret))
	protected.GET("", func(c *gin.Context) {
		userID, exists := c.Get(middleware.UserIDKey)
		if !exists {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "User ID not found in context"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID.(uuid.UUID).String()})
	})

	return r
}

func signedToken(userID string, expiresIn time.Duration) string {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	return token
}

func TestJWTAuthMiddleware_ValidToken(t *testing.T) {
	router := setupRouter()
	userID := uuid.New()

	req, _ := http.NewRequest(http.MethodGet, "/pipeline", nil)
	req.Header.Set("Authorization", "Bearer "+signedToken(userID.String(), time.Hour))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), userID.String())
}

func TestJWTAuthMiddleware_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		header  string
		message string
	}{
		{"missing header", "", "Authorization header is required"},
		{"wrong scheme", "Token abc", "Authorization header format must be Bearer {token}"},
		{"empty bearer", "Bearer ", "Authorization header format must be Bearer {token}"},
		{"garbage token", "Bearer invalid-token", "Invalid or expired token"},
		{"expired token", "Bearer " + signedToken(uuid.NewString(), -time.Hour), "Invalid or expired token"},
		{"non-uuid subject", "Bearer " + signedToken("not-a-valid-uuid", time.Hour), "Invalid user ID in token"},
	}

	router := setupRouter()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/pipeline", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp := httptest.NewRecorder()
			router.ServeHTTP(resp, req)

			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Contains(t, resp.Body.String(), tc.message)
		})
	}
}
