package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/order"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// OrderHandler handles order endpoints.
type OrderHandler struct {
	*BaseHandler
	service *order.Service
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(base *BaseHandler, service *order.Service) *OrderHandler {
	return &OrderHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/orders. The whole order succeeds or
// nothing is written.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindJSON(c, &req) {
		return
	}
	customer, err := req.ToCustomer()
	if err != nil {
		h.Error(c, err)
		return
	}
	lines, err := req.ToLines()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), h.OrgID(c), customer, lines)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /orgs/:orgId/orders with an optional ?status= filter.
func (h *OrderHandler) List(c *gin.Context) {
	var status *order.Status
	if raw := c.Query("status"); raw != "" {
		parsed, err := order.ParseStatus(raw)
		if err != nil {
			h.Error(c, err)
			return
		}
		status = &parsed
	}

	orders, err := h.service.List(c.Request.Context(), h.OrgID(c), status)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, orders, len(orders))
}

// Get handles GET /orgs/:orgId/orders/:id.
func (h *OrderHandler) Get(c *gin.Context) {
	orderID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	o, err := h.service.Get(c.Request.Context(), h.OrgID(c), orderID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, o)
}

// UpdateStatus handles PATCH /orgs/:orgId/orders/:id/status. Only PENDING
// orders can transition; anything else answers not found.
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateOrderStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}
	status, err := order.ParseStatus(req.Status)
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), h.OrgID(c), orderID, status, h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/orders/:id.
func (h *OrderHandler) Delete(c *gin.Context) {
	orderID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), orderID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
