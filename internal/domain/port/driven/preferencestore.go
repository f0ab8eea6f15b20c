package driven

import (
	"context"

	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
)

// PreferenceStore defines the driven port for per-user preference persistence.
// Scope identifies the user the preference belongs to; values survive restarts.
type PreferenceStore interface {
	// Get returns the preference stored under key for scope.
	// Returns (nil, nil) if no such preference exists.
	Get(ctx context.Context, scope, key string) (*model.Preference, error)

	// Set stores or replaces the preference value under key for scope.
	Set(ctx context.Context, scope, key, value string) error

	// Delete removes the preference. Deleting a missing preference is not an error.
	Delete(ctx context.Context, scope, key string) error

	// List returns every preference stored for scope, ordered by key.
	List(ctx context.Context, scope string) ([]model.Preference, error)
}
