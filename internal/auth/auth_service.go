package auth

import (
	"context"
	"strings"
	"time"

	autherrors "github.com/Garvit-office/smart-agriguard/internal/auth/errors"
	"github.com/Garvit-office/smart-agriguard/internal/messaging/kafka/producer"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// ValidationError carries the full field mapping when a registration
// form fails rule evaluation.
type ValidationError struct {
	Fields ValidationErrors
}

func (e *ValidationError) Error() string {
	return "registration validation failed"
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)
}

type service struct {
	registrar Registrar
	events    *producer.Publisher
	secret    []byte
	logger    *zap.Logger
}

// NewService wires the registrar and an optional event publisher (nil
// disables event publishing).
func NewService(registrar Registrar, events *producer.Publisher, jwtSecret string, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{
		registrar: registrar,
		events:    events,
		secret:    []byte(jwtSecret),
		logger:    l,
	}
}

// Register runs the submission protocol: the password/confirmation check
// aborts before any field validation, a non-empty rule mapping aborts
// before the registrar is called, and only a fully valid form produces
// the derived payload.
func (s *service) Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error) {
	if req.Password != req.ConfirmPassword {
		return RegisterResponse{}, autherrors.ErrPasswordMismatch
	}

	if fieldErrs := ValidateRegistration(req); len(fieldErrs) > 0 {
		return RegisterResponse{}, &ValidationError{Fields: fieldErrs}
	}

	user, err := s.registrar.Register(ctx, buildPayload(req))
	if err != nil {
		return RegisterResponse{}, err
	}

	accessToken, err := s.generateToken(user.ID, user.Role, 15*time.Minute)
	if err != nil {
		return RegisterResponse{}, autherrors.ErrTokenGenerationFailed
	}
	refreshToken, err := s.generateToken(user.ID, user.Role, 7*24*time.Hour)
	if err != nil {
		return RegisterResponse{}, autherrors.ErrTokenGenerationFailed
	}

	s.publishRegistered(ctx, user)

	return RegisterResponse{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// buildPayload derives the outbound record: full name joins the name
// parts with a single space, location falls back to country when blank.
func buildPayload(req RegisterRequest) RegistrationPayload {
	location := req.Location
	if strings.TrimSpace(location) == "" {
		location = req.Country
	}

	return RegistrationPayload{
		Username:    req.Username,
		Email:       req.Email,
		Password:    req.Password,
		Role:        req.Role,
		FullName:    strings.TrimSpace(req.FirstName + " " + req.LastName),
		PhoneNumber: req.PhoneNumber,
		Location:    location,
	}
}

func (s *service) publishRegistered(ctx context.Context, user AuthResponse) {
	if s.events == nil {
		return
	}

	// Fire-and-forget: a broker outage never fails a registration.
	err := s.events.PublishUserRegistered(ctx, producer.UserRegisteredEvent{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
	})
	if err != nil {
		s.logger.Warn("user registered event publish failed",
			zap.String("user_id", user.ID),
			zap.Error(err),
		)
	}
}

func (s *service) generateToken(userID, role string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
