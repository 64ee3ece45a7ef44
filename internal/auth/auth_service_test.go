package auth_test

import (
	"context"
	"testing"

	"github.com/Garvit-office/smart-agriguard/internal/auth"
	autherrors "github.com/Garvit-office/smart-agriguard/internal/auth/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

// ==================== FAKE REGISTRAR ====================

type fakeRegistrar struct {
	calls      int
	gotPayload auth.RegistrationPayload
	RegisterFn func(ctx context.Context, p auth.RegistrationPayload) (auth.AuthResponse, error)
}

func (f *fakeRegistrar) Register(ctx context.Context, p auth.RegistrationPayload) (auth.AuthResponse, error) {
	f.calls++
	f.gotPayload = p
	if f.RegisterFn != nil {
		return f.RegisterFn(ctx, p)
	}
	return auth.AuthResponse{
		ID:       "user-1",
		Email:    p.Email,
		Username: p.Username,
		FullName: p.FullName,
		Role:     p.Role,
	}, nil
}

const testSecret = "test-secret"

// ==================== TEST CASES ====================

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("mismatch_aborts_before_validation_and_registrar", func(t *testing.T) {
		registrar := &fakeRegistrar{}
		svc := auth.NewService(registrar, nil, testSecret)

		// Otherwise-empty form: a full validation pass would report many
		// fields, but the mismatch alone must be surfaced.
		req := auth.RegisterRequest{Password: "a", ConfirmPassword: "b"}

		_, err := svc.Register(ctx, req)
		assert.ErrorIs(t, err, autherrors.ErrPasswordMismatch)
		assert.Zero(t, registrar.calls)
	})

	t.Run("invalid_form_aborts_before_registrar", func(t *testing.T) {
		registrar := &fakeRegistrar{}
		svc := auth.NewService(registrar, nil, testSecret)

		req := validRequest()
		req.Email = "not-an-email"

		_, err := svc.Register(ctx, req)

		var validationErr *auth.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, []string{"Valid email is required"}, validationErr.Fields["email"])
		assert.Zero(t, registrar.calls)
	})

	t.Run("valid_form_registers_and_issues_tokens", func(t *testing.T) {
		registrar := &fakeRegistrar{}
		svc := auth.NewService(registrar, nil, testSecret)

		res, err := svc.Register(ctx, validRequest())
		assert.NoError(t, err)
		assert.Equal(t, 1, registrar.calls)
		assert.Equal(t, "jdoe", res.User.Username)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)

		token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
			return []byte(testSecret), nil
		})
		assert.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		assert.Equal(t, "user-1", claims["user_id"])
		assert.Equal(t, "farmer", claims["role"])
	})

	t.Run("derived_payload", func(t *testing.T) {
		registrar := &fakeRegistrar{}
		svc := auth.NewService(registrar, nil, testSecret)

		_, err := svc.Register(ctx, validRequest())
		assert.NoError(t, err)
		assert.Equal(t, "Jane Doe", registrar.gotPayload.FullName)
		assert.Equal(t, "Mumbai", registrar.gotPayload.Location)
	})


	t.Run("registrar_errors_propagate", func(t *testing.T) {
		registrar := &fakeRegistrar{
			RegisterFn: func(ctx context.Context, p auth.RegistrationPayload) (auth.AuthResponse, error) {
				return auth.AuthResponse{}, autherrors.ErrEmailAlreadyInUse
			},
		}
		svc := auth.NewService(registrar, nil, testSecret)

		_, err := svc.Register(ctx, validRequest())
		assert.ErrorIs(t, err, autherrors.ErrEmailAlreadyInUse)
	})
}
