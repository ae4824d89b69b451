package global

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEnvOrDefault(t *testing.T) {
	t.Setenv("SOME_TEST_KEY", "value")
	assert.Equal(t, "value", GetEnvOrDefault("SOME_TEST_KEY", "fallback"))

	t.Setenv("SOME_TEST_KEY", "")
	assert.Equal(t, "fallback", GetEnvOrDefault("SOME_TEST_KEY", "fallback"))
}

func TestGetJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-secret")
	assert.Equal(t, []byte("unit-secret"), GetJWTSecret())
}

func TestAdminEmails(t *testing.T) {
	t.Setenv("ADMIN_EMAILS", "")
	assert.Nil(t, AdminEmails())

	t.Setenv("ADMIN_EMAILS", "Owner@CanvasCart.com , ops@canvascart.com,")
	assert.Equal(t, []string{"owner@canvascart.com", "ops@canvascart.com"}, AdminEmails())
}
