package platform

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/domain/keyboard"
)

func TestFromGOOS(t *testing.T) {
	tests := []struct {
		goos string
		want keyboard.Platform
	}{
		{"darwin", keyboard.PlatformMac},
		{"ios", keyboard.PlatformMac},
		{"windows", keyboard.PlatformWindows},
		{"linux", keyboard.PlatformLinux},
		{"freebsd", keyboard.PlatformLinux},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			assert.Equal(t, tt.want, FromGOOS(tt.goos))
		})
	}
}

func TestNewDetector(t *testing.T) {
	ctx := context.Background()

	d, err := newDetector(ctx, "", "darwin")
	require.NoError(t, err)
	assert.Equal(t, keyboard.PlatformMac, d.Platform())

	d, err = newDetector(ctx, " Windows ", "darwin")
	require.NoError(t, err)
	assert.Equal(t, keyboard.PlatformWindows, d.Platform())

	_, err = newDetector(ctx, "beos", "linux")
	assert.Error(t, err)
}
