package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2026-09-15"))
	assert.False(t, IsValidDate("15/09/2026"))
	assert.False(t, IsValidDate("2026-13-01"))
	assert.False(t, IsValidDate(""))
}

func TestIsValidTime(t *testing.T) {
	assert.True(t, IsValidTime("14:30"))
	assert.True(t, IsValidTime("00:00"))
	assert.False(t, IsValidTime("25:00"))
	assert.False(t, IsValidTime("2:30 PM"))
	assert.False(t, IsValidTime(""))
}
