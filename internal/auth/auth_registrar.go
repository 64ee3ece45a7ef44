package auth

import (
	"context"
	"strings"
	"sync"

	autherrors "github.com/Garvit-office/smart-agriguard/internal/auth/errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Registrar persists a validated registration. Two implementations
// exist: the in-process memory registrar and the upstream HTTP one.
//
//go:generate mockgen -source=auth_registrar.go -destination=../mock/auth/auth_registrar_mock.go -package=mock
type Registrar interface {
	Register(ctx context.Context, payload RegistrationPayload) (AuthResponse, error)
}

type account struct {
	id           uuid.UUID
	email        string
	username     string
	fullName     string
	role         string
	passwordHash []byte
}

// memoryRegistrar keeps accounts for the process lifetime only. It
// exists so the service runs self-contained without the upstream API,
// producing the same duplicate-email/username failures.
type memoryRegistrar struct {
	mu         sync.Mutex
	byEmail    map[string]*account
	byUsername map[string]*account
}

func NewMemoryRegistrar() Registrar {
	return &memoryRegistrar{
		byEmail:    make(map[string]*account),
		byUsername: make(map[string]*account),
	}
}

func (r *memoryRegistrar) Register(_ context.Context, payload RegistrationPayload) (AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(payload.Email))
	username := strings.TrimSpace(payload.Username)

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResponse{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[email]; exists {
		return AuthResponse{}, autherrors.ErrEmailAlreadyInUse
	}
	if _, exists := r.byUsername[username]; exists {
		return AuthResponse{}, autherrors.ErrUsernameTaken
	}

	acc := &account{
		id:           uuid.New(),
		email:        email,
		username:     username,
		fullName:     payload.FullName,
		role:         payload.Role,
		passwordHash: hash,
	}
	r.byEmail[email] = acc
	r.byUsername[username] = acc

	return AuthResponse{
		ID:       acc.id.String(),
		Email:    acc.email,
		Username: acc.username,
		FullName: acc.fullName,
		Role:     acc.role,
	}, nil
}
