package auth

import (
	"errors"
	"net/http"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"
	"github.com/Garvit-office/smart-agriguard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service       Service
	secureCookies bool
	logger        *zap.Logger
}

// NewHandler builds the registration handler. secureCookies marks the
// issued token cookies Secure, which production deployments want.
func NewHandler(s Service, secureCookies bool, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{service: s, secureCookies: secureCookies, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	h.logger.Debug("http register request started")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http register bind failed", zap.Error(err))
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid registration payload", err.Error())
		return
	}

	// Input pre-filter: name fields never accept digits. This guards the
	// request boundary and is separate from the rule mapping.
	if containsDigit(req.FirstName) || containsDigit(req.LastName) {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Name fields cannot contain digits", nil)
		return
	}

	logger := h.logger.With(zap.String("email", req.Email))

	res, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			logger.Warn("http register validation failed",
				zap.Int("field_count", len(validationErr.Fields)),
			)
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input data, please try again.", validationErr.Fields)
			return
		}

		logger.Error("http register service failed", zap.Error(err))
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, "REGISTER_FAILED", httpErr.Message, nil)
		return
	}

	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Path:     "/",
		MaxAge:   15 * 60,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     "refresh_token",
		Value:    res.RefreshToken,
		Path:     "/",
		MaxAge:   3600 * 24 * 7,
		HttpOnly: true,
		Secure:   h.secureCookies,
		SameSite: http.SameSiteLaxMode,
	})

	logger.Info("http register success", zap.String("user_id", res.User.ID))

	response.Success(c, http.StatusCreated, res)
}
