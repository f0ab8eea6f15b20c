package application_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ericfisherdev/widgetpanel/internal/application"
	"github.com/ericfisherdev/widgetpanel/internal/domain/model"
)

func TestReadTimeWidget_EmptyDraft(t *testing.T) {
	w := application.NewReadTimeWidget(slog.Default())

	assert.Equal(t, "", w.Text())
	assert.Equal(t, 0, w.WordCount())
	assert.Equal(t, "0s", w.ReadTime())
}

func TestReadTimeWidget_RecomputesOnEveryChange(t *testing.T) {
	w := application.NewReadTimeWidget(slog.Default())

	w.SetText("one two three")
	assert.Equal(t, model.ReadTimeEstimate{WordCount: 3, ReadTime: "00:01"}, w.Estimate())

	w.SetText(strings.Repeat("word ", 200))
	assert.Equal(t, 200, w.WordCount())
	assert.Equal(t, "01:00", w.ReadTime())

	w.SetText("  a   b  ")
	assert.Equal(t, 2, w.WordCount())
}

func TestReadTimeWidget_SubscribersSeeFreshEstimate(t *testing.T) {
	w := application.NewReadTimeWidget(slog.Default())

	var seen []model.ReadTimeEstimate
	w.Subscribe(func(e model.ReadTimeEstimate) { seen = append(seen, e) })

	w.SetText("a b")
	w.SetText("")

	assert.Equal(t, []model.ReadTimeEstimate{
		{WordCount: 2, ReadTime: "00:01"},
		{WordCount: 0, ReadTime: "0s"},
	}, seen)
}
