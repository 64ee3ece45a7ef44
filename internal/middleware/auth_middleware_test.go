package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Garvit-office/smart-agriguard/internal/auth"
	"github.com/Garvit-office/smart-agriguard/internal/config"
	"github.com/Garvit-office/smart-agriguard/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// protectedRouter guards a route with AuthMiddleware (plus any extra
// middleware) and echoes the identity the middleware set.
func protectedRouter(secret []byte, extra ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	handlers := append([]gin.HandlerFunc{middleware.AuthMiddleware(secret)}, extra...)
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetString("user_id_validated"),
			"role":    c.GetString("role"),
		})
	})
	r.GET("/secure", handlers...)
	return r
}

func signToken(t *testing.T, secret []byte, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware_AcceptsServiceIssuedToken(t *testing.T) {
	// The middleware must verify with the same configured secret the
	// registration service signs with, so a token from a real register
	// call passes the admin gate under default config.
	cfg := config.Load()
	svc := auth.NewService(auth.NewMemoryRegistrar(), nil, cfg.JWTSecret)

	res, err := svc.Register(context.Background(), auth.RegisterRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Username:        "jdoe",
		Email:           "jdoe@example.com",
		DateOfBirth:     "1990-01-01",
		Gender:          "Female",
		Country:         "India",
		Password:        "Abcdefg1!",
		ConfirmPassword: "Abcdefg1!",
		Role:            "farmer",
		PhoneNumber:     "+919876543210",
		Location:        "Mumbai",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)

	r := protectedRouter([]byte(cfg.JWTSecret))

	t.Run("via_cookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: res.AccessToken})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), res.User.ID)
		assert.Contains(t, w.Body.String(), `"role":"farmer"`)
	})

	t.Run("via_bearer_header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.Header.Set("Authorization", "Bearer "+res.AccessToken)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthMiddleware_RejectsBadTokens(t *testing.T) {
	secret := []byte("configured-secret")
	r := protectedRouter(secret)

	t.Run("missing_token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Unauthorized access")
	})

	t.Run("wrong_secret", func(t *testing.T) {
		token := signToken(t, []byte("some-other-secret"), jwt.MapClaims{
			"user_id": "u1",
			"role":    "admin",
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid authentication token")
	})

	t.Run("expired_token", func(t *testing.T) {
		token := signToken(t, secret, jwt.MapClaims{
			"user_id": "u1",
			"role":    "admin",
			"exp":     time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Authentication token expired")
	})

	t.Run("missing_user_id_claim", func(t *testing.T) {
		token := signToken(t, secret, jwt.MapClaims{
			"role": "admin",
			"exp":  time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: token})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRoleMiddleware(t *testing.T) {
	secret := []byte("configured-secret")
	r := protectedRouter(secret, middleware.RoleMiddleware("admin"))

	tokenFor := func(role string) string {
		return signToken(t, secret, jwt.MapClaims{
			"user_id": "u1",
			"role":    role,
			"exp":     time.Now().Add(time.Hour).Unix(),
		})
	}

	t.Run("allowed_role_passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenFor("admin")})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("other_role_is_forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/secure", nil)
		req.AddCookie(&http.Cookie{Name: "access_token", Value: tokenFor("farmer")})
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Contains(t, w.Body.String(), "Access forbidden")
	})
}
