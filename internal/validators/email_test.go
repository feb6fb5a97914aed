package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	valid := []string{
		"alice@example.com",
		"alice.carter+pt@example.co.uk",
		"a@b.io",
	}
	for _, e := range valid {
		assert.True(t, IsValidEmail(e), e)
	}

	invalid := []string{
		"",
		"alice",
		"alice@",
		"@example.com",
		"alice@example",
		"alice @example.com",
		"alice@exa mple.com",
	}
	for _, e := range invalid {
		assert.False(t, IsValidEmail(e), e)
	}
}
