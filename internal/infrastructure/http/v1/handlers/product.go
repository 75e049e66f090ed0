package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/product"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// ProductHandler handles finished product endpoints.
type ProductHandler struct {
	*BaseHandler
	service *product.Service
}

// NewProductHandler creates a new product handler.
func NewProductHandler(base *BaseHandler, service *product.Service) *ProductHandler {
	return &ProductHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
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

// List handles GET /orgs/:orgId/products. Each entry carries the full
// two-level cost rollup.
func (h *ProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, products, len(products))
}

// Get handles GET /orgs/:orgId/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	p, err := h.service.Get(c.Request.Context(), h.OrgID(c), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, p)
}

// Cost handles GET /orgs/:orgId/products/:id/cost.
func (h *ProductHandler) Cost(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	breakdown, err := h.service.ComposeCost(c.Request.Context(), h.OrgID(c), productID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, breakdown)
}

// Update handles PATCH /orgs/:orgId/products/:id. Field changes and
// whole-composition replacement land in one unit of work.
func (h *ProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if !h.BindJSON(c, &req) {
		return
	}
	upd, err := req.ToUpdate()
	if err != nil {
		h.Error(c, err)
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.OrgID(c), productID, upd)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/products/:id.
func (h *ProductHandler) Delete(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), productID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// DeleteRecipeLine handles DELETE /orgs/:orgId/products/:id/recipes/:recipeId.
func (h *ProductHandler) DeleteRecipeLine(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	recipeID, ok := h.ParamID(c, "recipeId")
	if !ok {
		return
	}

	if err := h.service.DeleteRecipeLine(c.Request.Context(), h.OrgID(c), productID, recipeID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// DeleteItemLine handles DELETE /orgs/:orgId/products/:id/items/:itemId.
func (h *ProductHandler) DeleteItemLine(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.ParamID(c, "itemId")
	if !ok {
		return
	}

	if err := h.service.DeleteItemLine(c.Request.Context(), h.OrgID(c), productID, itemID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
