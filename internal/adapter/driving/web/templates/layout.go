// Package templates holds the page chrome shared by every GUI page.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	vm "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/viewmodel"
)

// AppName is the product name shown in titles and the header.
const AppName = "widgetpanel"

// PageTitle composes the document title for a page.
func PageTitle(title string) string {
	if title == "" {
		return AppName
	}
	return title + " | " + AppName
}

// Layout renders the full HTML document around body.
func Layout(m vm.LayoutViewModel, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := NewHTMLWriter(w)

		hw.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		hw.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		hw.Raw(`<title>`)
		hw.Text(PageTitle(m.Title))
		hw.Raw(`</title>`)
		hw.Raw(`<meta name="csrf-token"`)
		hw.Attr("content", m.CSRFToken)
		hw.Raw(`>`)
		hw.Raw(`<link rel="stylesheet" href="/static/app.css">`)
		hw.Raw(`<script src="/static/widgets.js" defer></script>`)
		hw.Raw(`</head><body><header class="topbar"><span class="brand">`)
		hw.Text(AppName)
		hw.Raw(`</span><nav>`)
		for _, item := range m.Nav {
			hw.Raw(`<a`)
			hw.Attr("href", item.Path)
			if item.Active {
				hw.Raw(` class="active" aria-current="page"`)
			}
			hw.Raw(`>`)
			hw.Text(item.Label)
			hw.Raw(`</a>`)
		}
		hw.Raw(`</nav></header><main>`)
		hw.Render(ctx, body)
		hw.Raw(`</main></body></html>`)

		return hw.Err()
	})
}
