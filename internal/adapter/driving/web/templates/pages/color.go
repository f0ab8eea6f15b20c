// Package pages holds the GUI page components and the fragments swapped in
// by the widget script.
package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/templates"
	vm "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/viewmodel"
)

// ColorDisplayID is the element replaced after a color change.
const ColorDisplayID = "color-display"

// ColorPage renders the full color page.
func ColorPage(layout vm.LayoutViewModel, m vm.ColorViewModel) templ.Component {
	return templates.Layout(layout, ColorWidget(m))
}

// ColorWidget renders the heading and the color input.
func ColorWidget(m vm.ColorViewModel) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := templates.NewHTMLWriter(w)

		hw.Raw(`<section class="widget" id="color-widget">`)
		hw.Raw(`<div id="` + ColorDisplayID + `">`)
		hw.Render(ctx, ColorDisplay(m))
		hw.Raw(`</div>`)

		hw.Raw(`<form method="post" data-live-trigger="change" data-live-target="#` + ColorDisplayID + `"`)
		hw.Attr("action", m.ActionURL)
		hw.Raw(`>`)
		hw.Raw(`<input type="hidden" name="csrf_token"`)
		hw.Attr("value", m.CSRFToken)
		hw.Raw(`>`)
		hw.Raw(`<input type="color" name="color" aria-label="Heading color"`)
		hw.Attr("value", m.Color)
		hw.Raw(`>`)
		hw.Raw(`<noscript><button type="submit">Save color</button></noscript>`)
		hw.Raw(`</form></section>`)

		return hw.Err()
	})
}

// ColorDisplay renders the colored heading plus any status message. It is
// the fragment returned for live color changes.
func ColorDisplay(m vm.ColorViewModel) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := templates.NewHTMLWriter(w)

		hw.Raw(`<h1`)
		hw.Attr("style", m.Style)
		hw.Raw(`>Color Page</h1>`)

		if m.Error != "" {
			hw.Raw(`<p class="error" role="alert">`)
			hw.Text(m.Error)
			hw.Raw(`</p>`)
		}
		if !m.Persistent {
			hw.Raw(`<p class="hint">Your color is not saved between visits.</p>`)
		}

		return hw.Err()
	})
}
