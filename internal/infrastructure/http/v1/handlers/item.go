package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/item"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// ItemHandler handles inventory item endpoints.
type ItemHandler struct {
	*BaseHandler
	service *item.Service
}

// NewItemHandler creates a new item handler.
func NewItemHandler(base *BaseHandler, service *item.Service) *ItemHandler {
	return &ItemHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/items.
func (h *ItemHandler) Create(c *gin.Context) {
	var req dto.CreateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	model, err := req.ToModel()
	if err != nil {
		h.Error(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), h.OrgID(c), model)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /orgs/:orgId/items.
func (h *ItemHandler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, rows, len(rows))
}

// Get handles GET /orgs/:orgId/items/:id.
func (h *ItemHandler) Get(c *gin.Context) {
	itemID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	it, err := h.service.Get(c.Request.Context(), h.OrgID(c), itemID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, it)
}

// Update handles PATCH /orgs/:orgId/items/:id.
func (h *ItemHandler) Update(c *gin.Context) {
	itemID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateItemRequest
	if !h.BindJSON(c, &req) {
		return
	}
	upd, err := req.ToUpdate()
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.OrgID(c), itemID, upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/items/:id.
func (h *ItemHandler) Delete(c *gin.Context) {
	itemID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), itemID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// ListUnits handles GET /orgs/:orgId/units.
func (h *ItemHandler) ListUnits(c *gin.Context) {
	units, err := h.service.ListUnits(c.Request.Context())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, units, len(units))
}
