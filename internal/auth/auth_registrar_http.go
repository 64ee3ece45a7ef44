package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	autherrors "github.com/Garvit-office/smart-agriguard/internal/auth/errors"
	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"

	"go.uber.org/zap"
)

// Upstream failure messages recognized by the taxonomy. Anything else
// collapses to the generic registration failure.
const (
	upstreamEmailInUse    = "Email already in use"
	upstreamUsernameTaken = "Username already taken"
)

type httpRegistrar struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

func NewHTTPRegistrar(baseURL string, logger ...*zap.Logger) Registrar {
	l := zap.L().Named("auth.registrar")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.registrar")
	}
	return &httpRegistrar{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  l,
	}
}

func (r *httpRegistrar) Register(ctx context.Context, payload RegistrationPayload) (AuthResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return AuthResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+"/api/auth/register", bytes.NewReader(body))
	if err != nil {
		return AuthResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("upstream register transport failure", zap.Error(err))
		return AuthResponse{}, autherrors.ErrRegistrationFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return AuthResponse{}, r.mapFailure(resp)
	}

	var user AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		r.logger.Error("upstream register decode failure", zap.Error(err))
		return AuthResponse{}, autherrors.ErrRegistrationFailed
	}
	return user, nil
}

func (r *httpRegistrar) mapFailure(resp *http.Response) error {
	var serverErr struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&serverErr)

	switch serverErr.Message {
	case upstreamEmailInUse:
		return autherrors.ErrEmailAlreadyInUse
	case upstreamUsernameTaken:
		return autherrors.ErrUsernameTaken
	}

	r.logger.Warn("upstream register rejected",
		zap.Int("status", resp.StatusCode),
		zap.String("message", serverErr.Message),
	)

	// Unrecognized server messages are surfaced verbatim; a missing
	// message falls back to the generic text.
	if serverErr.Message != "" {
		return apperror.New(apperror.CodeInvalidInput, serverErr.Message, http.StatusBadRequest)
	}
	return autherrors.ErrRegistrationFailed
}
