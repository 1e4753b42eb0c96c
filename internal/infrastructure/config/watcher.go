package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/bnema/keyroute/internal/logging"
)

// Watch reloads the config whenever the file changes on disk and hands the
// new config to the OnConfigChange callbacks. An edit that fails to decode
// or validate is logged and the previous config stays active.
func (m *Manager) Watch(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.watching {
		return nil
	}

	log := logging.FromContext(ctx).With().Str("file", m.targetFile()).Logger()
	m.viper.OnConfigChange(func(e fsnotify.Event) {
		log.Debug().Str("op", e.Op.String()).Msg("config file changed")

		cfg, callbacks, ok := m.applyChange(log.Warn)
		if !ok {
			return
		}
		for _, cb := range callbacks {
			cb(cfg)
		}
	})
	m.viper.WatchConfig()
	m.watching = true
	return nil
}

// applyChange reloads under the write lock and returns what to notify.
// A change caused by our own Save only resyncs viper.
func (m *Manager) applyChange(warn func() *zerolog.Event) (*Config, []func(*Config), bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.skipNextReload {
		m.skipNextReload = false
		if err := m.viper.ReadInConfig(); err != nil {
			warn().Err(err).Msg("resync after save failed")
		}
	} else if err := m.reload(); err != nil {
		warn().Err(err).Msg("config reload failed, keeping previous config")
		return nil, nil, false
	}

	callbacks := make([]func(*Config), len(m.callbacks))
	copy(callbacks, m.callbacks)
	return m.config, callbacks, true
}

// OnConfigChange registers a callback run after every successful reload.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.callbacks = append(m.callbacks, callback)
}

// reload must be called with m.mu held for write.
func (m *Manager) reload() error {
	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	return m.decodeLocked()
}
