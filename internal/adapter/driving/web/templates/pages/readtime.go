package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/viewmodel"
)

// ReadTimeStatsID is the element replaced on every keystroke.
const ReadTimeStatsID = "read-time-stats"

// ReadTimePage renders the full read-time page.
func ReadTimePage(layout vm.LayoutViewModel, m vm.ReadTimeViewModel) templ.Component {
	return templates.Layout(layout, ReadTimeWidget(m))
}

// ReadTimeWidget renders the stats heading, the draft preview and the text area.
func ReadTimeWidget(m vm.ReadTimeViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewHTMLWriter(w)

		hw.Raw(`<section class="widget" id="read-time-widget">`)
		hw.Raw(`<div id="` + ReadTimeStatsID + `">`)
		hw.Render(ctx, ReadTimeStats(m))
		hw.Raw(`</div>`)

		hw.Raw(`<form method="post" data-live-trigger="input" data-live-target="#` + ReadTimeStatsID + `"`)
		hw.Attr("action", m.ActionURL)
		hw.Raw(`>`)
		hw.Raw(`<input type="hidden" name="csrf_token"`)
		hw.Attr("value", m.CSRFToken)
		hw.Raw(`>`)
		hw.Raw(`<textarea name="text" rows="10" cols="50" aria-label="Draft text">`)
		hw.Text(m.Text)
		hw.Raw(`</textarea>`)
		hw.Raw(`<noscript><button type="submit">Estimate</button></noscript>`)
		hw.Raw(`</form></section>`)

		return hw.Err()
	})
}

// ReadTimeStats renders "<read time> read time - Words <n>" and the preview.
func ReadTimeStats(m vm.ReadTimeViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewHTMLWriter(w)

		hw.Raw(`<h1>`)
		hw.Text(fmt.Sprintf("%s read time - Words %d", m.ReadTime, m.WordCount))
		hw.Raw(`</h1>`)

		if m.PreviewHTML != "" {
			// PreviewHTML is sanitized by the handler before it reaches the view model.
			hw.Raw(`<article class="preview">`)
			hw.Raw(m.PreviewHTML)
			hw.Raw(`</article>`)
		}

		return hw.Err()
	})
}
