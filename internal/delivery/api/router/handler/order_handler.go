package handler

import (
	"bytes"
	"encoding/json"
	"net/http"

	"coderr/internal/delivery/api/response"
	deliverycontext "coderr/internal/delivery/context"
	"coderr/internal/domain/entity"
	"coderr/internal/errors"
	"coderr/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
}

// OrderHandler serves the order workflow and the per-business counters.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{orderUC: params.OrderUC}
}

// CreateOrderRequest accepts offer_detail_id as either a JSON number or a string.
type CreateOrderRequest struct {
	OfferDetailID json.RawMessage `json:"offer_detail_id"`
}

// UpdateOrderRequest carries the requested status.
type UpdateOrderRequest struct {
	Status string `json:"status"`
}

// rawScalar flattens a JSON string or number into its text. Absent and null become "".
func rawScalar(raw json.RawMessage) string {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return ""
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err == nil {
		return s
	}

	return string(trimmed)
}

// List handles GET /orders/.
func (h *OrderHandler) List(c echo.Context) error {
	orders, err := h.orderUC.ListForCaller(c.Request().Context(), deliverycontext.GetCaller(c))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOrders(orders))
}

// Create handles POST /orders/.
func (h *OrderHandler) Create(c echo.Context) error {
	var req CreateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Create(c.Request().Context(), deliverycontext.GetCaller(c), rawScalar(req.OfferDetailID))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, presentOrder(order))
}

// Get handles GET /orders/:id/.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.Get(c.Request().Context(), deliverycontext.GetCaller(c), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOrder(order))
}

// UpdateStatus handles PATCH /orders/:id/.
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.UpdateStatus(c.Request().Context(), deliverycontext.GetCaller(c), id, req.Status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, presentOrder(order))
}

// Delete handles DELETE /orders/:id/.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.Delete(c.Request().Context(), deliverycontext.GetCaller(c), id); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// InProgressCount handles GET /order-count/:business_user_id/.
func (h *OrderHandler) InProgressCount(c echo.Context) error {
	return h.count(c, entity.OrderStatusInProgress, "order_count")
}

// CompletedCount handles GET /completed-order-count/:business_user_id/.
func (h *OrderHandler) CompletedCount(c echo.Context) error {
	return h.count(c, entity.OrderStatusCompleted, "completed_order_count")
}

func (h *OrderHandler) count(c echo.Context, status entity.OrderStatus, key string) error {
	businessID, err := pathID(c, "business_user_id")
	if err != nil {
		return err
	}

	n, err := h.orderUC.CountByStatus(c.Request().Context(), deliverycontext.GetCaller(c), businessID, status)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{key: n})
}
