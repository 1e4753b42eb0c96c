package config

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/domain/shortcut"
)

func TestBindingsGateway_NewBindingsOnlyReportsAdditions(t *testing.T) {
	mgr, err := NewManager(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	require.NoError(t, mgr.Load())
	gw := NewBindingsGateway(mgr)

	initial, err := gw.Bindings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DefaultBindings(), initial)

	extra := shortcut.Binding{ActionID: "find", Shortcut: "Ctrl+F"}
	added := gw.newBindings(append(initial, extra))

	assert.Equal(t, []shortcut.Binding{extra}, added)
	assert.Empty(t, gw.newBindings(append(initial, extra)))
}
