package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/recipe"
	"github.com/sbolivar95/lechem-backend/internal/infrastructure/http/v1/dto"
)

// RecipeHandler handles recipe endpoints.
type RecipeHandler struct {
	*BaseHandler
	service *recipe.Service
}

// NewRecipeHandler creates a new recipe handler.
func NewRecipeHandler(base *BaseHandler, service *recipe.Service) *RecipeHandler {
	return &RecipeHandler{BaseHandler: base, service: service}
}

// Create handles POST /orgs/:orgId/recipes.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.CreateRecipeRequest
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

// List handles GET /orgs/:orgId/recipes. Each entry carries its computed
// cost rollup.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.service.List(c.Request.Context(), h.OrgID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, recipes, len(recipes))
}

// Get handles GET /orgs/:orgId/recipes/:id.
func (h *RecipeHandler) Get(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	r, err := h.service.Get(c.Request.Context(), h.OrgID(c), recipeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, recipe.WithCost{Recipe: *r, CostBreakdown: r.ComposeCost()})
}

// Cost handles GET /orgs/:orgId/recipes/:id/cost.
func (h *RecipeHandler) Cost(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	breakdown, err := h.service.ComposeCost(c.Request.Context(), h.OrgID(c), recipeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, breakdown)
}

// Update handles PATCH /orgs/:orgId/recipes/:id.
func (h *RecipeHandler) Update(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateRecipeRequest
	if !h.BindJSON(c, &req) {
		return
	}

	updated, err := h.service.Update(c.Request.Context(), h.OrgID(c), recipeID, req.ToUpdate())
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, updated)
}

// Delete handles DELETE /orgs/:orgId/recipes/:id.
func (h *RecipeHandler) Delete(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), h.OrgID(c), recipeID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

// ListLines handles GET /orgs/:orgId/recipes/:id/items.
func (h *RecipeHandler) ListLines(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}

	lines, err := h.service.ListLines(c.Request.Context(), h.OrgID(c), recipeID)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.BaseHandler.List(c, lines, len(lines))
}

// UpsertLine handles PUT /orgs/:orgId/recipes/:id/items/:itemId.
// Writing the same (recipe, item) pair again replaces qty and waste.
func (h *RecipeHandler) UpsertLine(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.ParamID(c, "itemId")
	if !ok {
		return
	}
	var req dto.UpsertRecipeLineRequest
	if !h.BindJSON(c, &req) {
		return
	}

	line, err := h.service.UpsertLine(c.Request.Context(), h.OrgID(c), recipeID, itemID, recipe.Line{
		Qty:      req.Qty,
		WastePct: req.WastePct,
	})
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, line)
}

// DeleteLine handles DELETE /orgs/:orgId/recipes/:id/items/:itemId.
func (h *RecipeHandler) DeleteLine(c *gin.Context) {
	recipeID, ok := h.ParamID(c, "id")
	if !ok {
		return
	}
	itemID, ok := h.ParamID(c, "itemId")
	if !ok {
		return
	}

	if err := h.service.DeleteLine(c.Request.Context(), h.OrgID(c), recipeID, itemID); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
