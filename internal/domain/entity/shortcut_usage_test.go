package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShortcutUsage_Since(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	u := &ShortcutUsage{ActionID: "console.clear"}
	assert.Zero(t, u.Since(now))

	u.LastFiredAt = now.Add(-90 * time.Second)
	assert.Equal(t, 90*time.Second, u.Since(now))
}
