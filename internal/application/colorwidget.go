package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
	"github.com/ericfisherdev/widgetpanel/internal/domain/port/driven"
)

// ErrPersistColor wraps a failed write of the color preference. A caller that
// receives it must abort the operation in progress.
var ErrPersistColor = errors.New("persist color")

// ColorWidget keeps the selected heading color in memory and mirrors every
// change to a PreferenceStore under model.ColorKey.
//
// The store is passed per call rather than held: a nil store means the caller
// runs without access to per-user storage, and the widget then neither reads
// nor writes.
type ColorWidget struct {
	color  *Cell[string]
	style  *Derived[string, string]
	logger *slog.Logger
}

// NewColorWidget creates a ColorWidget holding model.DefaultColor. Every
// change, including the initial load, is logged at debug level.
func NewColorWidget(logger *slog.Logger) *ColorWidget {
	color := NewCell(model.DefaultColor)
	w := &ColorWidget{
		color:  color,
		style:  NewDerived(color, model.StyleOf),
		logger: logger,
	}
	color.Subscribe(func(c string) {
		w.logger.Debug("color changed", "color", c)
	})
	return w
}

// Initialize loads the stored color for scope. When store is nil, the key is
// absent, or the read fails, the default color is kept; read failures are
// logged and never returned.
func (w *ColorWidget) Initialize(ctx context.Context, store driven.PreferenceStore, scope string) string {
	if store == nil {
		return w.color.Get()
	}

	pref, err := store.Get(ctx, scope, model.ColorKey)
	if err != nil {
		w.logger.Warn("failed to read stored color, using default", "scope", scope, "error", err)
		return w.color.Get()
	}
	if pref == nil {
		return w.color.Get()
	}

	w.logger.Debug("starting color loaded", "scope", scope, "color", pref.Value)
	w.color.Set(pref.Value)
	return pref.Value
}

// SetColor writes color to the store, when one is given, and then updates the
// in-memory value. If the write fails the in-memory value is left unchanged
// and an error wrapping ErrPersistColor is returned.
func (w *ColorWidget) SetColor(ctx context.Context, store driven.PreferenceStore, scope, color string) error {
	if store != nil {
		if err := store.Set(ctx, scope, model.ColorKey, color); err != nil {
			return fmt.Errorf("%w for %s: %w", ErrPersistColor, scope, err)
		}
	}

	w.color.Set(color)
	return nil
}

// Color returns the current color.
func (w *ColorWidget) Color() string {
	return w.color.Get()
}

// Style returns the CSS declaration for the current color.
func (w *ColorWidget) Style() string {
	return w.style.Get()
}

// Subscribe registers fn to be called with every new color.
func (w *ColorWidget) Subscribe(fn func(color string)) (unsubscribe func()) {
	return w.color.Subscribe(fn)
}
