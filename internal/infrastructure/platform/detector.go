// Package platform resolves which platform's bindings apply on this host.
package platform

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/logging"
)

// Detector reports the host platform, or a configured override.
type Detector struct {
	platform keyboard.Platform
}

var _ port.PlatformProvider = (*Detector)(nil)

// FromGOOS maps a Go GOOS value to a binding platform.
func FromGOOS(goos string) keyboard.Platform {
	switch goos {
	case "darwin", "ios":
		return keyboard.PlatformMac
	case "windows":
		return keyboard.PlatformWindows
	default:
		return keyboard.PlatformLinux
	}
}

// NewDetector returns a detector for the running host. A non-empty
// override wins over detection.
func NewDetector(ctx context.Context, override string) (*Detector, error) {
	return newDetector(ctx, override, runtime.GOOS)
}

func newDetector(ctx context.Context, override, goos string) (*Detector, error) {
	log := logging.FromContext(ctx)

	override = strings.ToLower(strings.TrimSpace(override))
	if override == "" {
		p := FromGOOS(goos)
		log.Debug().Str("goos", goos).Str("platform", string(p)).Msg("platform detected")
		return &Detector{platform: p}, nil
	}

	p := keyboard.Platform(override)
	if !p.Valid() {
		return nil, fmt.Errorf("unknown platform %q (want mac, windows or linux)", override)
	}
	log.Debug().Str("platform", string(p)).Msg("platform overridden by config")
	return &Detector{platform: p}, nil
}

// Platform implements port.PlatformProvider.
func (d *Detector) Platform() keyboard.Platform {
	return d.platform
}
