package application

import (
	"log/slog"

	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
)

// ReadTimeWidget holds a draft text and derives its word count and reading
// time on every change.
type ReadTimeWidget struct {
	text     *Cell[string]
	estimate *Derived[string, model.ReadTimeEstimate]
	logger   *slog.Logger
}

// NewReadTimeWidget creates a ReadTimeWidget with an empty draft.
func NewReadTimeWidget(logger *slog.Logger) *ReadTimeWidget {
	text := NewCell("")
	w := &ReadTimeWidget{
		text:     text,
		estimate: NewDerived(text, model.EstimateReadTime),
		logger:   logger,
	}
	text.Subscribe(func(string) {
		w.logger.Debug("read time changed", "read_time", w.ReadTime())
	})
	return w
}

// SetText replaces the draft text.
func (w *ReadTimeWidget) SetText(text string) {
	w.text.Set(text)
}

// Text returns the current draft.
func (w *ReadTimeWidget) Text() string {
	return w.text.Get()
}

// WordCount returns the number of words in the draft.
func (w *ReadTimeWidget) WordCount() int {
	return w.estimate.Get().WordCount
}

// ReadTime returns the formatted reading time of the draft.
func (w *ReadTimeWidget) ReadTime() string {
	return w.estimate.Get().ReadTime
}

// Estimate returns both derived values at once.
func (w *ReadTimeWidget) Estimate() model.ReadTimeEstimate {
	return w.estimate.Get()
}

// Subscribe registers fn to be called with the new estimate after every
// change to the draft.
func (w *ReadTimeWidget) Subscribe(fn func(model.ReadTimeEstimate)) (unsubscribe func()) {
	return w.text.Subscribe(func(string) {
		fn(w.estimate.Get())
	})
}
