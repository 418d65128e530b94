package auth

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGenerator_SixDigitsInRange(t *testing.T) {
	gen := NewCodeGenerator()

	for range 2000 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.Len(t, code, 6)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestCodeGenerator_NotConstant(t *testing.T) {
	gen := NewCodeGenerator()

	seen := make(map[string]struct{})
	for range 50 {
		code, err := gen.Generate()
		require.NoError(t, err)
		seen[code] = struct{}{}
	}

	assert.Greater(t, len(seen), 1)
}
