package input

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/keyroute/internal/application/port"
	"github.com/bnema/keyroute/internal/application/port/mocks"
	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/domain/keyboard"
	"github.com/bnema/keyroute/internal/domain/shortcut"
	"github.com/bnema/keyroute/internal/logging"
)

type registryFixture struct {
	catalog  *mocks.MockActionCatalog
	dialogs  *mocks.MockDialogPresence
	focus    *mocks.MockEditingFocus
	contexts *mocks.MockUIContextProvider
	metrics  *mocks.MockShortcutMetrics
	registry *ShortcutRegistry
}

func newFixture(t *testing.T, platform keyboard.Platform, bindings []shortcut.Binding) *registryFixture {
	t.Helper()

	platforms := mocks.NewMockPlatformProvider(t)
	platforms.EXPECT().Platform().Return(platform)
	source := mocks.NewMockBindingSource(t)
	source.EXPECT().Bindings(mock.Anything).Return(bindings, nil)

	f := &registryFixture{
		catalog:  mocks.NewMockActionCatalog(t),
		dialogs:  mocks.NewMockDialogPresence(t),
		focus:    mocks.NewMockEditingFocus(t),
		contexts: mocks.NewMockUIContextProvider(t),
		metrics:  mocks.NewMockShortcutMetrics(t),
	}

	registry, err := NewShortcutRegistry(context.Background(), RegistryDeps{
		Catalog:  f.catalog,
		Platform: platforms,
		Bindings: source,
		Dialogs:  f.dialogs,
		Focus:    f.focus,
		Contexts: f.contexts,
		Metrics:  f.metrics,
	})
	require.NoError(t, err)
	f.registry = registry
	return f
}

func newAction(t *testing.T, id string, ok bool, err error) *mocks.MockAction {
	t.Helper()
	a := mocks.NewMockAction(t)
	a.EXPECT().ID().Return(id).Maybe()
	a.EXPECT().Execute(mock.Anything).Return(ok, err).Maybe()
	return a
}

func keyEvent(r rune, domKey string, mods keyboard.Modifier) *keyboard.Event {
	ev := keyboard.NewEventForKey(keyboard.MakeKeyFromChar(r, mods))
	ev.Key = domKey
	return ev
}

func TestNewShortcutRegistry_RequiresCollaborators(t *testing.T) {
	_, err := NewShortcutRegistry(context.Background(), RegistryDeps{})
	assert.EqualError(t, err, "action catalog is nil")

	_, err = NewShortcutRegistry(context.Background(), RegistryDeps{Catalog: mocks.NewMockActionCatalog(t)})
	assert.EqualError(t, err, "platform provider is nil")
}

func TestNewShortcutRegistry_BindingSourceError(t *testing.T) {
	platforms := mocks.NewMockPlatformProvider(t)
	platforms.EXPECT().Platform().Return(keyboard.PlatformLinux)
	source := mocks.NewMockBindingSource(t)
	source.EXPECT().Bindings(mock.Anything).Return(nil, errors.New("boom"))

	_, err := NewShortcutRegistry(context.Background(), RegistryDeps{
		Catalog:  mocks.NewMockActionCatalog(t),
		Platform: platforms,
		Bindings: source,
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestHandleShortcut_FirstSuccessfulCandidateFires(t *testing.T) {
	// Arrange
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{
		{ActionID: "a", Shortcut: "Ctrl+K"},
		{ActionID: "b", Shortcut: "Ctrl+K"},
	})
	a := mocks.NewMockAction(t)
	a.EXPECT().ID().Return("a").Maybe()
	a.EXPECT().Execute(mock.Anything).Return(false, nil).Once()
	b := mocks.NewMockAction(t)
	b.EXPECT().ID().Return("b").Maybe()
	b.EXPECT().Execute(mock.Anything).Return(true, nil).Once()
	c := mocks.NewMockAction(t)
	c.EXPECT().ID().Return("c").Maybe()

	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a", "b"}, mock.Anything).Return([]port.Action{a, b, c})
	f.dialogs.EXPECT().HasDialog().Return(false)
	f.metrics.EXPECT().KeyboardShortcutFired(mock.Anything, "b").Once()

	ev := keyEvent('k', "k", keyboard.ModCtrl)

	// Act
	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Fired{ActionID: "b"}, outcome)
	assert.True(t, ev.Consumed())
	c.AssertNotCalled(t, "Execute", mock.Anything)
	f.metrics.AssertNumberOfCalls(t, "KeyboardShortcutFired", 1)
}

func TestHandleShortcut_UnboundKeyIsForwarded(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "Ctrl+K"}})
	ev := keyEvent('j', "j", keyboard.ModCtrl)

	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	require.NoError(t, err)
	assert.Equal(t, ForwardedShortcut{}, outcome)
	assert.False(t, outcome.Consumed())
	assert.False(t, ev.Consumed())
}

func TestHandleShortcut_PlainLetterWhileEditingIsTyping(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "console.focus", Shortcut: "A"}})
	f.focus.EXPECT().IsEditing().Return(true)
	ev := keyEvent('a', "a", keyboard.ModNone)

	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	require.NoError(t, err)
	assert.Equal(t, ForwardedShortcut{}, outcome)
	assert.False(t, ev.Consumed())
	f.catalog.AssertNotCalled(t, "ApplicableActions", mock.Anything, mock.Anything)
}

func TestHandleShortcut_UndoWhileEditingStillFires(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "edit.undo", Shortcut: "Ctrl+Z"}})
	undo := newAction(t, "edit.undo", true, nil)
	f.focus.EXPECT().IsEditing().Return(true)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"edit.undo"}, mock.Anything).Return([]port.Action{undo})
	f.dialogs.EXPECT().HasDialog().Return(false)
	f.metrics.EXPECT().KeyboardShortcutFired(mock.Anything, "edit.undo")

	outcome, err := f.registry.HandleShortcut(context.Background(), keyEvent('z', "z", keyboard.ModCtrl))

	require.NoError(t, err)
	assert.Equal(t, Fired{ActionID: "edit.undo"}, outcome)
}

func TestHandleShortcut_DialogBlocksAfterConsuming(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "F8"}})
	a := mocks.NewMockAction(t)
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a"}, mock.Anything).Return([]port.Action{a})
	f.dialogs.EXPECT().HasDialog().Return(true)
	ev := keyboard.NewEventForKey(keyboard.MakeKey(keyboard.CodeF1+7, keyboard.ModNone))

	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	require.NoError(t, err)
	assert.Equal(t, Blocked{}, outcome)
	assert.True(t, ev.Consumed())
	a.AssertNotCalled(t, "Execute", mock.Anything)
	f.metrics.AssertNotCalled(t, "KeyboardShortcutFired", mock.Anything, mock.Anything)
}

func TestHandleShortcut_NoApplicableCandidate(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "F8"}})
	uctx := entity.NewUIContext().With("debugger.paused", false)
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(uctx)
	f.catalog.EXPECT().ApplicableActions([]string{"a"}, uctx).Return(nil)
	ev := keyboard.NewEventForKey(keyboard.MakeKey(keyboard.CodeF1+7, keyboard.ModNone))

	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	require.NoError(t, err)
	assert.Equal(t, ForwardedShortcut{}, outcome)
	assert.False(t, ev.Consumed())
}

func TestHandleShortcut_AllCandidatesDecline(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "F8"}})
	a := newAction(t, "a", false, nil)
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a"}, mock.Anything).Return([]port.Action{a})
	f.dialogs.EXPECT().HasDialog().Return(false)
	ev := keyboard.NewEventForKey(keyboard.MakeKey(keyboard.CodeF1+7, keyboard.ModNone))

	outcome, err := f.registry.HandleShortcut(context.Background(), ev)

	require.NoError(t, err)
	assert.Equal(t, Unhandled{}, outcome)
	assert.True(t, ev.Consumed())
	f.metrics.AssertNotCalled(t, "KeyboardShortcutFired", mock.Anything, mock.Anything)
}

func TestHandleShortcut_ActionErrorStopsLoop(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(),
		logging.New(logging.Config{Level: zerolog.ErrorLevel, Format: "json", Output: &buf}))

	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{
		{ActionID: "a", Shortcut: "F8"},
		{ActionID: "b", Shortcut: "F8"},
	})
	cause := errors.New("debugger detached")
	a := newAction(t, "a", false, cause)
	b := mocks.NewMockAction(t)
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a", "b"}, mock.Anything).Return([]port.Action{a, b})
	f.dialogs.EXPECT().HasDialog().Return(false)
	ev := keyboard.NewEventForKey(keyboard.MakeKey(keyboard.CodeF1+7, keyboard.ModNone))

	outcome, err := f.registry.HandleShortcut(ctx, ev)

	assert.Nil(t, outcome)
	var actionErr *ActionError
	require.ErrorAs(t, err, &actionErr)
	assert.Equal(t, "a", actionErr.ActionID)
	assert.ErrorIs(t, err, cause)
	assert.True(t, ev.Consumed())
	b.AssertNotCalled(t, "Execute", mock.Anything)
	assert.Contains(t, buf.String(), "shortcut action failed")
	assert.Contains(t, buf.String(), `"action_id":"a"`)
}

func TestHandleKey_WithoutEventSkipsGuard(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "A"}})
	a := newAction(t, "a", true, nil)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a"}, mock.Anything).Return([]port.Action{a})
	f.dialogs.EXPECT().HasDialog().Return(false)
	f.metrics.EXPECT().KeyboardShortcutFired(mock.Anything, "a")

	outcome, err := f.registry.HandleKey(context.Background(), keyboard.MakeKeyFromChar('a', keyboard.ModNone), "a", nil)

	require.NoError(t, err)
	assert.Equal(t, Fired{ActionID: "a"}, outcome)
	f.focus.AssertNotCalled(t, "IsEditing")
}

func TestPrepare_DefersExecution(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "a", Shortcut: "F8"}})
	a := mocks.NewMockAction(t)
	a.EXPECT().ID().Return("a").Maybe()
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a"}, mock.Anything).Return([]port.Action{a})
	f.dialogs.EXPECT().HasDialog().Return(false)
	ev := keyboard.NewEventForKey(keyboard.MakeKey(keyboard.CodeF1+7, keyboard.ModNone))

	pending, outcome := f.registry.Prepare(context.Background(), f.registry.Codec().FromEvent(ev), ev.Key, ev)

	require.NotNil(t, pending)
	assert.Nil(t, outcome)
	assert.True(t, ev.Consumed())
	assert.Equal(t, []string{"a"}, pending.Candidates())
	a.AssertNotCalled(t, "Execute", mock.Anything)

	a.EXPECT().Execute(mock.Anything).Return(true, nil).Once()
	f.metrics.EXPECT().KeyboardShortcutFired(mock.Anything, "a").Once()

	outcome, err := pending.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, Fired{ActionID: "a"}, outcome)
}

func TestShortcutRegistry_NilOptionalDeps(t *testing.T) {
	platforms := mocks.NewMockPlatformProvider(t)
	platforms.EXPECT().Platform().Return(keyboard.PlatformLinux)
	source := mocks.NewMockBindingSource(t)
	source.EXPECT().Bindings(mock.Anything).Return([]shortcut.Binding{{ActionID: "a", Shortcut: "A"}}, nil)
	catalog := mocks.NewMockActionCatalog(t)
	a := newAction(t, "a", true, nil)
	catalog.EXPECT().ApplicableActions([]string{"a"}, entity.NewUIContext()).Return([]port.Action{a})

	registry, err := NewShortcutRegistry(context.Background(), RegistryDeps{
		Catalog:  catalog,
		Platform: platforms,
		Bindings: source,
	})
	require.NoError(t, err)

	outcome, err := registry.HandleShortcut(context.Background(), keyEvent('a', "a", keyboard.ModNone))

	require.NoError(t, err)
	assert.Equal(t, Fired{ActionID: "a"}, outcome)
}

func TestKeysForActions_ConcatenatesInInputOrder(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{
		{ActionID: "a", Shortcut: "Ctrl+A F2"},
		{ActionID: "b", Shortcut: "Ctrl+B"},
	})
	r := f.registry

	ab := r.KeysForActions([]string{"a", "b"})
	want := append(r.KeysForActions([]string{"a"}), r.KeysForActions([]string{"b"})...)

	assert.Equal(t, want, ab)
	assert.Len(t, ab, 3)
	assert.Equal(t, r.KeysForActions([]string{"b"}), ab[2:])
	assert.Empty(t, r.KeysForActions(nil))
}

func TestShortcutTitleForAction(t *testing.T) {
	f := newFixture(t, keyboard.PlatformMac, []shortcut.Binding{
		{ActionID: "quick-open", Shortcut: "CtrlOrMeta+P CtrlOrMeta+O"},
	})

	title, ok := f.registry.ShortcutTitleForAction("quick-open")
	assert.True(t, ok)
	assert.Equal(t, "⌘P", title)

	_, ok = f.registry.ShortcutTitleForAction("missing")
	assert.False(t, ok)
}

func TestGlobalShortcutKeys_SkipsOtherPlatforms(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{
		{ActionID: "mac-only", Shortcut: "Ctrl+J", Platform: "mac"},
		{ActionID: "everywhere", Shortcut: "Ctrl+L"},
		{ActionID: "contextual", Shortcut: "Ctrl+M"},
	})
	everywhere := mocks.NewMockAction(t)
	f.catalog.EXPECT().ApplicableActions([]string{"everywhere"}, entity.NewUIContext()).Return([]port.Action{everywhere})
	f.catalog.EXPECT().ApplicableActions([]string{"contextual"}, entity.NewUIContext()).Return(nil)

	keys := f.registry.GlobalShortcutKeys()

	assert.Equal(t, []keyboard.Key{keyboard.MakeKeyFromChar('l', keyboard.ModCtrl)}, keys)
	assert.NotContains(t, keys, keyboard.MakeKeyFromChar('j', keyboard.ModCtrl))
}

func TestGlobalShortcutKeys_SharedKeyKeptByUnconditionalBinding(t *testing.T) {
	ctrlJ := keyboard.MakeKeyFromChar('j', keyboard.ModCtrl)
	bindings := []shortcut.Binding{
		{ActionID: "mac-only", Shortcut: "Ctrl+J", Platform: "mac"},
		{ActionID: "everywhere", Shortcut: "Ctrl+J"},
	}

	t.Run("other platform", func(t *testing.T) {
		f := newFixture(t, keyboard.PlatformLinux, bindings)
		everywhere := mocks.NewMockAction(t)
		f.catalog.EXPECT().ApplicableActions([]string{"everywhere"}, entity.NewUIContext()).
			Return([]port.Action{everywhere}).Once()

		assert.Equal(t, []keyboard.Key{ctrlJ}, f.registry.GlobalShortcutKeys())
		assert.Equal(t, []string{"everywhere"}, f.registry.ActionIDsForKey(ctrlJ))
	})

	t.Run("matching platform", func(t *testing.T) {
		f := newFixture(t, keyboard.PlatformMac, bindings)
		macOnly := mocks.NewMockAction(t)
		f.catalog.EXPECT().ApplicableActions([]string{"mac-only", "everywhere"}, entity.NewUIContext()).
			Return([]port.Action{macOnly}).Once()

		assert.Equal(t, []keyboard.Key{ctrlJ}, f.registry.GlobalShortcutKeys())
	})
}

func TestEventMatchesAction(t *testing.T) {
	var buf bytes.Buffer
	ctx := logging.WithContext(context.Background(),
		logging.New(logging.Config{Level: zerolog.ErrorLevel, Format: "json", Output: &buf}))
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{{ActionID: "save", Shortcut: "Ctrl+S"}})

	assert.True(t, f.registry.EventMatchesAction(ctx, keyEvent('s', "s", keyboard.ModCtrl), "save"))
	assert.False(t, f.registry.EventMatchesAction(ctx, keyEvent('s', "S", keyboard.ModCtrl|keyboard.ModShift), "save"))
	assert.Empty(t, buf.String())

	assert.False(t, f.registry.EventMatchesAction(ctx, keyEvent('s', "s", keyboard.ModCtrl), "nope"))
	assert.Contains(t, buf.String(), "unknown action: nope")
}

func TestRegisterShortcut(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, nil)

	require.NoError(t, f.registry.RegisterShortcut(context.Background(), "find", "Ctrl+F"))
	err := f.registry.RegisterShortcut(context.Background(), "find", "Ctrl+Nope")

	assert.ErrorIs(t, err, shortcut.ErrUnparseable)
	assert.Equal(t, []string{"find"}, f.registry.BoundActions())
	assert.Len(t, f.registry.ShortcutDescriptorsForAction("find"), 1)
}

func TestOutcome_Consumed(t *testing.T) {
	assert.True(t, Fired{ActionID: "x"}.Consumed())
	assert.False(t, ForwardedShortcut{}.Consumed())
	assert.True(t, Blocked{}.Consumed())
	assert.True(t, Unhandled{}.Consumed())
	assert.Equal(t, Outcome(ForwardedShortcut{}), Outcome(ForwardedShortcut{}))
}

func TestDispatch_ReturnsPortOutcome(t *testing.T) {
	f := newFixture(t, keyboard.PlatformLinux, []shortcut.Binding{
		{ActionID: "a", Shortcut: "Ctrl+K"},
		{ActionID: "b", Shortcut: "Ctrl+K"},
	})
	assert.Equal(t, []string{"a", "b"}, f.registry.ActionIDsForKey(keyboard.MakeKeyFromChar('k', keyboard.ModCtrl)))
	assert.Empty(t, f.registry.ActionIDsForKey(keyboard.MakeKeyFromChar('j', keyboard.ModCtrl)))

	outcome, err := f.registry.Dispatch(context.Background(), keyEvent('j', "j", keyboard.ModCtrl))
	require.NoError(t, err)
	assert.False(t, outcome.Consumed())
	assert.Equal(t, "forwarded", outcome.String())

	a := newAction(t, "a", false, errors.New("nope"))
	f.focus.EXPECT().IsEditing().Return(false)
	f.contexts.EXPECT().CurrentContext().Return(entity.NewUIContext())
	f.catalog.EXPECT().ApplicableActions([]string{"a", "b"}, mock.Anything).Return([]port.Action{a})
	f.dialogs.EXPECT().HasDialog().Return(false)

	outcome, err = f.registry.Dispatch(context.Background(), keyEvent('k', "k", keyboard.ModCtrl))
	assert.Nil(t, outcome)
	var actionErr *ActionError
	assert.ErrorAs(t, err, &actionErr)
}
