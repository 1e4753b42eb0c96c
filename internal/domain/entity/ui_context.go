package entity

import "sort"

// UIContext is the ambient UI state used to decide which of several actions
// sharing a shortcut currently applies. The shortcut registry never looks
// inside it; only the action catalog interprets the flags.
type UIContext struct {
	flags map[string]any
}

// NewUIContext returns an empty context.
func NewUIContext() UIContext {
	return UIContext{}
}

// With returns a copy of the context with key set to value.
func (c UIContext) With(key string, value any) UIContext {
	next := c.Clone()
	if next.flags == nil {
		next.flags = make(map[string]any, 1)
	}
	next.flags[key] = value
	return next
}

// Set stores value under key in place.
func (c *UIContext) Set(key string, value any) {
	if c.flags == nil {
		c.flags = make(map[string]any)
	}
	c.flags[key] = value
}

// Value returns the value stored under key.
func (c UIContext) Value(key string) (any, bool) {
	v, ok := c.flags[key]
	return v, ok
}

// Flags returns a copy of every flag.
func (c UIContext) Flags() map[string]any {
	out := make(map[string]any, len(c.flags))
	for k, v := range c.flags {
		out[k] = v
	}
	return out
}

// Keys returns the flag names in sorted order.
func (c UIContext) Keys() []string {
	keys := make([]string, 0, len(c.flags))
	for k := range c.flags {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns an independent copy.
func (c UIContext) Clone() UIContext {
	if c.flags == nil {
		return UIContext{}
	}
	return UIContext{flags: c.Flags()}
}
