package shortcut

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/logging"
)

// Store indexes bindings both ways: key to action ids and action id to
// descriptors. Every key present in one index is reachable from the other.
// Entries are only ever appended.
type Store struct {
	mu          sync.RWMutex
	keyToAction *Multimap[keyboard.Key, string]
	actionToKey *Multimap[string, keyboard.Descriptor]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		keyToAction: NewMultimap[keyboard.Key, string](),
		actionToKey: NewMultimap[string, keyboard.Descriptor](),
	}
}

// Register binds desc to actionID and reports whether the pair was new.
// Registering the same pair twice has no further effect.
func (s *Store) Register(actionID string, desc keyboard.Descriptor) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	added := s.actionToKey.Set(actionID, desc)
	s.keyToAction.Set(desc.Key, actionID)
	return added
}

// DescriptorsFor returns the descriptors of actionID in registration order.
func (s *Store) DescriptorsFor(actionID string) []keyboard.Descriptor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actionToKey.Get(actionID)
}

// ActionIDsFor returns the action ids bound to key in registration order.
func (s *Store) ActionIDsFor(key keyboard.Key) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyToAction.Get(key)
}

// Keys returns every bound key in registration order.
func (s *Store) Keys() []keyboard.Key {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.keyToAction.Keys()
}

// Actions returns every action id with at least one descriptor.
func (s *Store) Actions() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actionToKey.Keys()
}

// HasAction reports whether actionID has at least one descriptor.
func (s *Store) HasAction(actionID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.actionToKey.Has(actionID)
}

// Load registers every binding whose platform matches the codec's platform.
// Shortcut text is split on whitespace so a single record can bind several
// chords. Unparseable chords are skipped and logged.
func (s *Store) Load(ctx context.Context, bindings []Binding, codec keyboard.Codec) LoadReport {
	log := logging.FromContext(ctx)
	var report LoadReport

	for _, b := range bindings {
		if !codec.Platform().Matches(b.Platform) {
			report.SkippedPlatform++
			log.Trace().
				Str("action", b.ActionID).
				Str("shortcut", b.Shortcut).
				Str("platform", b.Platform).
				Msg("binding skipped for platform")
			continue
		}

		for _, text := range strings.Fields(b.Shortcut) {
			desc, ok := codec.ParseShortcut(text)
			if !ok {
				report.Unparseable = append(report.Unparseable, text)
				log.Warn().
					Err(fmt.Errorf("%w: %q", ErrUnparseable, text)).
					Str("action", b.ActionID).
					Msg("binding dropped")
				continue
			}
			if s.Register(b.ActionID, desc) {
				report.Registered++
			}
		}
	}

	log.Debug().
		Int("registered", report.Registered).
		Int("skipped_platform", report.SkippedPlatform).
		Int("unparseable", len(report.Unparseable)).
		Msg("shortcut bindings loaded")

	return report
}
