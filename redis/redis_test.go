package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheHelpersWithoutClient(t *testing.T) {
	// Redis is optional; every helper must be a safe no-op when the client
	// was never initialized.
	Client = nil

	var dest []string
	assert.False(t, GetJSON("catalog:cities", &dest))
	assert.Empty(t, dest)

	assert.NotPanics(t, func() {
		SetJSON("catalog:cities", []string{"Springfield"}, 0)
		Invalidate("catalog:cities")
		Invalidate()
	})
}
