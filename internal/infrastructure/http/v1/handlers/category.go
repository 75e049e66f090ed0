package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/category"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// CategoryHandler handles category endpoints.
type CategoryHandler struct {
	*BaseHandler
	service *category.Service
}

// NewCategoryHandler creates a new category handler.
func NewCategoryHandler(base *BaseHandler, service *category.Service) *CategoryHandler {
	return &CategoryHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/categories.
func (h *CategoryHandler) Create(c *gin.Context) {
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.Create(c.Request.Context(), h.OrgID(c), req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, cat)
}

// List handles GET /orgs/:orgId/categories.
func (h *CategoryHandler) List(c *gin.Context) {
	cats, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, cats, len(cats))
}

// Get handles GET /orgs/:orgId/categories/:id.
func (h *CategoryHandler) Get(c *gin.Context) {
	catID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	cat, err := h.service.Get(c.Request.Context(), h.OrgID(c), catID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cat)
}

// Update handles PATCH /orgs/:orgId/categories/:id.
func (h *CategoryHandler) Update(c *gin.Context) {
	catID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.CategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	cat, err := h.service.Update(c.Request.Context(), h.OrgID(c), catID, req.Name)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, cat)
}

// Delete handles DELETE /orgs/:orgId/categories/:id.
func (h *CategoryHandler) Delete(c *gin.Context) {
	catID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), catID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
