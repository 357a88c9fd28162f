package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty("  a  "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("admin@offisbridge.io"))
	assert.True(t, IsValidEmail("first.last+tag@example.co.kr"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
	assert.False(t, IsValidEmail("@example.com"))
}

func TestIsValidPayMonth(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPayMonth("2025-01"))
	assert.True(t, IsValidPayMonth("2025-12"))
	assert.False(t, IsValidPayMonth("2025-13"))
	assert.False(t, IsValidPayMonth("2025-1"))
	assert.False(t, IsValidPayMonth("202501"))
	assert.False(t, IsValidPayMonth(""))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidDate("2025-12-27"))
	assert.False(t, IsValidDate("2025-02-30"))
	assert.False(t, IsValidDate("27-12-2025"))
	assert.False(t, IsValidDate(""))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "amount", Message: "must be non-negative"},
	}

	assert.Equal(t, "name: is required; amount: must be non-negative", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"amount": "must be non-negative",
	}, errs.ToMap())
}
