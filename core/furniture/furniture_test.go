package furniture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectorNames(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)

	tests := []struct {
		key  string
		want string
	}{
		{"sofa", "sofa"},
		{"tabouret", "tabouret"},
		{"none", "none"},
		{"anything-else", "none"},
		{"", "none"},
		{"Sofa", "none"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			f, err := sel.Select(tt.key)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.ShowName())
		})
	}
}

func TestUnknownKindIsStable(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)
	first, err := sel.Select("chair")
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := sel.Select("chair")
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.IsType(t, None{}, first)
}

func TestFallbackDocumented(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)
	key, ok := sel.Fallback()
	assert.True(t, ok)
	assert.Equal(t, KindNone, key)
	assert.Equal(t, []string{"none", "sofa", "tabouret"}, sel.Keys())
}
