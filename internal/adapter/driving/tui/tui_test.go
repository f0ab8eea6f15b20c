package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

var _ driven.PreferenceStore = (*mockPreferenceStore)(nil)

type mockPreferenceStore struct {
	values map[string]string
	setErr error
}

func newMockPreferenceStore() *mockPreferenceStore {
	return &mockPreferenceStore{values: make(map[string]string)}
}

func (m *mockPreferenceStore) Get(_ context.Context, scope, key string) (*model.Preference, error) {
	v, ok := m.values[scope+"/"+key]
	if !ok {
		return nil, nil
	}
	return &model.Preference{Scope: scope, Key: key, Value: v}, nil
}

func (m *mockPreferenceStore) Set(_ context.Context, scope, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.values[scope+"/"+key] = value
	return nil
}

func (m *mockPreferenceStore) Delete(_ context.Context, scope, key string) error {
	delete(m.values, scope+"/"+key)
	return nil
}

func (m *mockPreferenceStore) List(_ context.Context, _ string) ([]model.Preference, error) {
	return nil, nil
}

func newTestModel(store driven.PreferenceStore) Model {
	return New(context.Background(), store, "terminal", slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// helper to send a message through Update and return the updated model.
func update(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func typeText(m Model, s string) Model {
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func TestNew_LoadsStoredColor(t *testing.T) {
	store := newMockPreferenceStore()
	store.values["terminal/color"] = "#00ff00"

	m := newTestModel(store)

	assert.Equal(t, RouteColor, m.Route())
	assert.Contains(t, m.View(), "color: #00ff00")
}

func TestNew_DefaultsWithoutStore(t *testing.T) {
	m := newTestModel(nil)

	assert.Contains(t, m.View(), "Color Page")
	assert.Contains(t, m.View(), "color: #ff0000")
}

func TestEnterAppliesAndPersistsColor(t *testing.T) {
	store := newMockPreferenceStore()
	m := newTestModel(store)

	m = typeText(m, "#00FF00")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Nil(t, cmd)
	assert.NoError(t, m.Err())
	assert.Equal(t, "#00ff00", store.values["terminal/color"])
	assert.Contains(t, m.View(), "color: #00ff00")

	// A fresh program against the same store starts from the saved color.
	fresh := newTestModel(store)
	assert.Contains(t, fresh.View(), "color: #00ff00")
}

func TestEnterRejectsInvalidColor(t *testing.T) {
	store := newMockPreferenceStore()
	m := newTestModel(store)

	m = typeText(m, "blue")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, store.values)
	assert.Contains(t, m.View(), "Enter a color in #RRGGBB form.")
	assert.Contains(t, m.View(), "color: #ff0000")
}

func TestPersistFailureQuits(t *testing.T) {
	store := newMockPreferenceStore()
	store.setErr = errors.New("disk full")
	m := newTestModel(store)

	m = typeText(m, "#00ff00")
	m, cmd := update(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.ErrorIs(t, m.Err(), application.ErrPersistColor)
	assert.Contains(t, m.View(), "color: #ff0000")
}

func TestTabSwitchesRoute(t *testing.T) {
	m := newTestModel(nil)

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, RouteReadTime, m.Route())
	assert.Contains(t, m.View(), "0s read time - Words 0")

	// Wrap around.
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, RouteColor, m.Route())

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, RouteReadTime, m.Route())
}

func TestTypingUpdatesReadTime(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})

	m = typeText(m, "one two three")

	assert.Contains(t, m.View(), "00:01 read time - Words 3")
}

func TestDraftSurvivesTabSwitch(t *testing.T) {
	m := newTestModel(nil)
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m = typeText(m, "hello")

	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Contains(t, m.View(), "0s read time - Words 1")
}

func TestCtrlCQuits(t *testing.T) {
	m := newTestModel(nil)

	_, cmd := update(m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestReadTimeKeysIgnoredOnColorTab(t *testing.T) {
	m := newTestModel(nil)

	m = typeText(m, "#abc")
	m, _ = update(m, tea.KeyMsg{Type: tea.KeyTab})

	assert.Contains(t, m.View(), "0s read time - Words 0")
}
