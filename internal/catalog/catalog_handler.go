package catalog

import (
	"net/http"

	"github.com/Garvit-office/smart-agriguard/internal/pkg/apperror"
	"github.com/Garvit-office/smart-agriguard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(s Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalog.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalog.handler")
	}
	return &Handler{service: s, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context())
	if err != nil {
		// Only reachable when the fallback itself fails.
		h.logger.Error("catalog list failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "FETCH_ERROR", "Failed to fetch products", nil)
		return
	}

	response.Success(c, http.StatusOK, products)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "Invalid product payload", err.Error())
		return
	}

	product, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, product)
}
