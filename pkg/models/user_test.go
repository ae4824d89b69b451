package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleForEmail(t *testing.T) {
	t.Parallel()

	admins := []string{"owner@canvascart.com", "ops@canvascart.com"}

	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"listed address", "owner@canvascart.com", RoleAdmin},
		{"second listed address", "ops@canvascart.com", RoleAdmin},
		{"case insensitive", "Owner@CanvasCart.COM", RoleAdmin},
		{"surrounding whitespace", "  owner@canvascart.com ", RoleAdmin},
		{"unlisted address", "buyer@example.com", RoleBuyer},
		{"empty address", "", RoleBuyer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleForEmail(tt.email, admins))
		})
	}
}

func TestIsAdminEmailEmptyList(t *testing.T) {
	t.Parallel()

	assert.False(t, IsAdminEmail("owner@canvascart.com", nil))
	assert.False(t, IsAdminEmail("owner@canvascart.com", []string{}))
}

func TestGetFullName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ada Lovelace", (&User{FirstName: "Ada", LastName: "Lovelace"}).GetFullName())
	assert.Equal(t, "Ada", (&User{FirstName: "Ada"}).GetFullName())
	assert.Equal(t, "", (&User{}).GetFullName())
}
