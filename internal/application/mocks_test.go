package application_test

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

var _ driven.PreferenceStore = (*mockPreferenceStore)(nil)

// mockPreferenceStore is an in-memory PreferenceStore that can be told to fail.
type mockPreferenceStore struct {
	mu     sync.Mutex
	values map[string]map[string]string
	getErr error
	setErr error
	gets   int
	sets   int
}

func newMockPreferenceStore() *mockPreferenceStore {
	return &mockPreferenceStore{values: make(map[string]map[string]string)}
}

func (m *mockPreferenceStore) Get(_ context.Context, scope, key string) (*model.Preference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	if m.getErr != nil {
		return nil, m.getErr
	}
	v, ok := m.values[scope][key]
	if !ok {
		return nil, nil
	}
	return &model.Preference{Scope: scope, Key: key, Value: v}, nil
}

func (m *mockPreferenceStore) Set(_ context.Context, scope, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sets++
	if m.setErr != nil {
		return m.setErr
	}
	if m.values[scope] == nil {
		m.values[scope] = make(map[string]string)
	}
	m.values[scope][key] = value
	return nil
}

func (m *mockPreferenceStore) Delete(_ context.Context, scope, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values[scope], key)
	return nil
}

func (m *mockPreferenceStore) List(_ context.Context, scope string) ([]model.Preference, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefs := make([]model.Preference, 0, len(m.values[scope]))
	for k, v := range m.values[scope] {
		prefs = append(prefs, model.Preference{Scope: scope, Key: k, Value: v})
	}
	sort.Slice(prefs, func(i, j int) bool { return prefs[i].Key < prefs[j].Key })
	return prefs, nil
}

var errStoreDown = errors.New("store unavailable")
