package gui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kilianp07/patterns/core/pluggable"
)

func TestFamilies(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)

	tests := []struct {
		platform string
		push     string
		check    string
	}{
		{"linux", "linux button pushed !", "linux checkbox checked !"},
		{"windows", "windows button pushed !", "windows checkbox checked !"},
	}
	for _, tt := range tests {
		t.Run(tt.platform, func(t *testing.T) {
			f, err := sel.Select(tt.platform)
			require.NoError(t, err)
			assert.Equal(t, tt.platform, f.Platform())
			assert.Equal(t, tt.push, f.CreateButton().Push())
			assert.Equal(t, tt.check, f.CreateCheckBox().Check())
			assert.Equal(t, []string{tt.push, tt.check}, Interact(f))
		})
	}
}

func TestSamePlatformSameBehavior(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)
	a, err := sel.Select(PlatformLinux)
	require.NoError(t, err)
	b, err := sel.Select(PlatformLinux)
	require.NoError(t, err)
	assert.Equal(t, Interact(a), Interact(b))
}

func TestUnknownPlatformFails(t *testing.T) {
	sel, err := NewSelector()
	require.NoError(t, err)
	_, ok := sel.Fallback()
	assert.False(t, ok)
	for _, key := range []string{"macos", "", "Linux"} {
		_, err := sel.Select(key)
		assert.ErrorIs(t, err, pluggable.ErrUnknownKey, key)
	}
}
