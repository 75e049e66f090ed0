package dto

import (
	"github.com/sbolivar95/lechem-backend/internal/core/security"
	"github.com/sbolivar95/lechem-backend/internal/domain/employee"
)

// CreateEmployeeRequest is the request body for hiring an employee.
type CreateEmployeeRequest struct {
	Email     string `json:"email" binding:"required"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role" binding:"required"`
}

// ToRequest converts the DTO to the domain create request.
func (r *CreateEmployeeRequest) ToRequest() employee.CreateRequest {
	return employee.CreateRequest{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Role:      security.Role(r.Role),
	}
}

// UpdateEmployeeRequest is the request body for a partial employee update.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Role      *string `json:"role"`
	IsActive  *bool   `json:"isActive"`
}

// ToUpdate converts the DTO to the domain partial update.
func (r *UpdateEmployeeRequest) ToUpdate() employee.Update {
	upd := employee.Update{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		IsActive:  r.IsActive,
	}
	if r.Role != nil {
		role := security.Role(*r.Role)
		upd.Role = &role
	}
	return upd
}
