package cart

import (
	"net/http"

	carterrors "github.com/Garvit-office/smart-agriguard/internal/cart/errors"
	"github.com/Garvit-office/smart-agriguard/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	store  Store
	logger *zap.Logger
}

func NewHandler(store Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("cart.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("cart.handler")
	}
	return &Handler{store: store, logger: l}
}

func (h *Handler) sessionID(c *gin.Context) (string, bool) {
	sid := c.GetString("session_id")
	if sid == "" {
		response.Error(c,
			carterrors.ErrSessionRequired.HTTPStatus,
			carterrors.ErrSessionRequired.Code,
			carterrors.ErrSessionRequired.Message,
			nil,
		)
		return "", false
	}
	return sid, true
}

func (h *Handler) AddItem(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}
	productID := c.Param("productId")

	if err := h.store.Add(c.Request.Context(), sid, productID); err != nil {
		h.logger.Error("cart add failed", zap.String("product_id", productID), zap.Error(err))
		response.Error(c, carterrors.ErrCartUnavailable.HTTPStatus, carterrors.ErrCartUnavailable.Code, carterrors.ErrCartUnavailable.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, nil)
}

func (h *Handler) ChangeQuantity(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}
	productID := c.Param("productId")

	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "BAD_REQUEST", "delta is required and must be a non-zero integer", err.Error())
		return
	}

	if err := h.store.ChangeQuantity(c.Request.Context(), sid, productID, req.Delta); err != nil {
		h.logger.Error("cart change quantity failed", zap.String("product_id", productID), zap.Error(err))
		response.Error(c, carterrors.ErrCartUnavailable.HTTPStatus, carterrors.ErrCartUnavailable.Code, carterrors.ErrCartUnavailable.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) RemoveItem(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}
	productID := c.Param("productId")

	if err := h.store.Remove(c.Request.Context(), sid, productID); err != nil {
		h.logger.Error("cart remove failed", zap.String("product_id", productID), zap.Error(err))
		response.Error(c, carterrors.ErrCartUnavailable.HTTPStatus, carterrors.ErrCartUnavailable.Code, carterrors.ErrCartUnavailable.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) Clear(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.store.Clear(c.Request.Context(), sid); err != nil {
		h.logger.Error("cart clear failed", zap.Error(err))
		response.Error(c, carterrors.ErrCartUnavailable.HTTPStatus, carterrors.ErrCartUnavailable.Code, carterrors.ErrCartUnavailable.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, nil)
}

func (h *Handler) Detail(c *gin.Context) {
	sid, ok := h.sessionID(c)
	if !ok {
		return
	}

	items, err := h.store.Get(c.Request.Context(), sid)
	if err != nil {
		h.logger.Error("cart detail failed", zap.Error(err))
		response.Error(c, carterrors.ErrCartUnavailable.HTTPStatus, carterrors.ErrCartUnavailable.Code, carterrors.ErrCartUnavailable.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, newCartResponse(items))
}
