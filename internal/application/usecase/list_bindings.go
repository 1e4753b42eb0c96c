package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/keyroute/internal/application/port"
)

// ListBindingsUseCase lists every bound action with its shortcuts.
type ListBindingsUseCase struct {
	index  port.ShortcutIndex
	titles port.ActionTitles
}

// NewListBindingsUseCase creates a new ListBindingsUseCase.
func NewListBindingsUseCase(index port.ShortcutIndex, titles port.ActionTitles) *ListBindingsUseCase {
	return &ListBindingsUseCase{index: index, titles: titles}
}

// ListBindingsInput narrows the listing.
type ListBindingsInput struct {
	// Filter keeps entries whose id, title or shortcut contains it
	// (case-insensitive). Empty keeps everything.
	Filter string
}

// ListBindingsOutput holds the entries in binding order.
type ListBindingsOutput struct {
	Entries []port.BindingEntry
}

// Execute builds the listing.
func (uc *ListBindingsUseCase) Execute(_ context.Context, in ListBindingsInput) (*ListBindingsOutput, error) {
	if uc == nil || uc.index == nil {
		return nil, fmt.Errorf("shortcut index is nil")
	}

	filter := strings.ToLower(strings.TrimSpace(in.Filter))
	out := &ListBindingsOutput{}
	for _, id := range uc.index.BoundActions() {
		entry := port.BindingEntry{ActionID: id, Title: id}
		if uc.titles != nil {
			if title, ok := uc.titles.ActionTitle(id); ok {
				entry.Title = title
			}
		}
		for _, desc := range uc.index.ShortcutDescriptorsForAction(id) {
			entry.Shortcuts = append(entry.Shortcuts, desc.Name)
		}

		if filter != "" && !entryMatches(entry, filter) {
			continue
		}
		out.Entries = append(out.Entries, entry)
	}
	return out, nil
}

func entryMatches(e port.BindingEntry, filter string) bool {
	if strings.Contains(strings.ToLower(e.ActionID), filter) ||
		strings.Contains(strings.ToLower(e.Title), filter) {
		return true
	}
	for _, s := range e.Shortcuts {
		if strings.Contains(strings.ToLower(s), filter) {
			return true
		}
	}
	return false
}
