package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/employee"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// EmployeeHandler handles organization staff endpoints.
type EmployeeHandler struct {
	*BaseHandler
	service *employee.Service
}

// NewEmployeeHandler creates a new employee handler.
func NewEmployeeHandler(base *BaseHandler, service *employee.Service) *EmployeeHandler {
	return &EmployeeHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/employees.
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req dto.CreateEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), h.OrgID(c), req.ToRequest())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, created)
}

// List handles GET /orgs/:orgId/employees.
func (h *EmployeeHandler) List(c *gin.Context) {
	employees, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, employees, len(employees))
}

// Get handles GET /orgs/:orgId/employees/:id.
func (h *EmployeeHandler) Get(c *gin.Context) {
	memberID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	emp, err := h.service.Get(c.Request.Context(), h.OrgID(c), memberID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, emp)
}

// Update handles PATCH /orgs/:orgId/employees/:id.
func (h *EmployeeHandler) Update(c *gin.Context) {
	memberID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.OrgID(c), memberID, req.ToUpdate())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/employees/:id.
func (h *EmployeeHandler) Delete(c *gin.Context) {
	memberID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), memberID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
