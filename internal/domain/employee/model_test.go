package employee

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sbolivar95/lechem-backend/internal/core/security"
)

func TestValidateRole(t *testing.T) {
	assert.NoError(t, validateRole(security.RoleAdmin))
	assert.NoError(t, validateRole(security.RoleEmployee))
	assert.Error(t, validateRole(security.RoleOwner), "ownership is established at registration, never assigned")
	assert.Error(t, validateRole(security.Role("MANAGER")))
}

func TestValidateEmail(t *testing.T) {
	tests := []struct {
		email   string
		wantErr bool
	}{
		{"ana@bakery.com", false},
		{"  ana@bakery.com  ", false},
		{"", true},
		{"   ", true},
		{"no-at-sign", true},
		{"@bakery.com", true},
		{"ana@", true},
	}

	for _, tt := range tests {
		err := validateEmail(tt.email)
		if tt.wantErr {
			assert.Error(t, err, "email %q", tt.email)
		} else {
			assert.NoError(t, err, "email %q", tt.email)
		}
	}
}

func TestUpdate_Empty(t *testing.T) {
	assert.True(t, Update{}.Empty())

	role := security.RoleAdmin
	assert.False(t, Update{Role: &role}.Empty())
}
