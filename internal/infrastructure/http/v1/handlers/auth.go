package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sbolivar95/lechem-backend/internal/domain/auth"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	*BaseHandler
	service *auth.Service
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(base *BaseHandler, service *auth.Service) *AuthHandler {
	return &AuthHandler{BaseHandler: base, service: service}
}

// Register handles owner self-registration.
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req auth.RegisterRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.RegisterOwner(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, resp)
}

// Login handles credential login.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// Me returns the authenticated user's profile.
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, user)
}

// Organizations lists the caller's organization memberships.
// GET /api/v1/auth/organizations
func (h *AuthHandler) Organizations(c *gin.Context) {
	members, err := h.service.ListUserOrganizations(c.Request.Context(), h.UserID(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.List(c, members, len(members))
}
