package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/saleproduct"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// SaleProductHandler handles sale product endpoints.
type SaleProductHandler struct {
	*BaseHandler
	service *saleproduct.Service
}

// NewSaleProductHandler creates a new sale product handler.
func NewSaleProductHandler(base *BaseHandler, service *saleproduct.Service) *SaleProductHandler {
	return &SaleProductHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/sale-products.
func (h *SaleProductHandler) Create(c *gin.Context) {
	var req dto.CreateSaleProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), h.OrgID(c), req.ToModel())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /orgs/:orgId/sale-products.
func (h *SaleProductHandler) List(c *gin.Context) {
	products, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, products, len(products))
}

// Get handles GET /orgs/:orgId/sale-products/:id.
func (h *SaleProductHandler) Get(c *gin.Context) {
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

// Update handles PATCH /orgs/:orgId/sale-products/:id.
func (h *SaleProductHandler) Update(c *gin.Context) {
	productID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSaleProductRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.OrgID(c), productID, req.ToUpdate())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/sale-products/:id.
func (h *SaleProductHandler) Delete(c *gin.Context) {
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
