package keyboard

import "strings"

// Platform identifies the host operating system family for binding filters.
type Platform string

const (
	// PlatformMac is macOS.
	PlatformMac Platform = "mac"
	// PlatformWindows is Microsoft Windows.
	PlatformWindows Platform = "windows"
	// PlatformLinux covers Linux and the other unix-likes.
	PlatformLinux Platform = "linux"
)

// IsMac reports whether p is an Apple-style platform.
func (p Platform) IsMac() bool {
	return p == PlatformMac
}

// IsWindows reports whether p is Windows.
func (p Platform) IsWindows() bool {
	return p == PlatformWindows
}

// Valid reports whether p is one of the known platform tags.
func (p Platform) Valid() bool {
	switch p {
	case PlatformMac, PlatformWindows, PlatformLinux:
		return true
	default:
		return false
	}
}

// Matches reports whether p appears in a comma-separated allow-list.
// An empty list matches every platform.
func (p Platform) Matches(list string) bool {
	if list == "" {
		return true
	}
	for _, tag := range strings.Split(list, ",") {
		if Platform(strings.TrimSpace(tag)) == p {
			return true
		}
	}
	return false
}
