package web

import (
	vm "github.com/ericfisherdev/widgetpanel/internal/adapter/driving/web/viewmodel"
	"github.com/ericfisherdev/widgetpanel/internal/application"
)

const (
	colorPath    = "/"
	readTimePath = "/read-time"
	colorAction  = "/color"
)

// navItems returns the top navigation with the entry for activePath marked.
func navItems(activePath string) []vm.NavItem {
	items := []vm.NavItem{
		{Label: "Color", Path: colorPath},
		{Label: "Read time", Path: readTimePath},
	}
	for i := range items {
		items[i].Active = items[i].Path == activePath
	}
	return items
}

func toLayoutViewModel(title, activePath, csrf string) vm.LayoutViewModel {
	return vm.LayoutViewModel{
		Title:     title,
		CSRFToken: csrf,
		Nav:       navItems(activePath),
	}
}

// toColorViewModel converts a ColorWidget into its view model. persistent
// reports whether the widget is backed by the visitor's preference store.
func toColorViewModel(w *application.ColorWidget, persistent bool, csrf string) vm.ColorViewModel {
	return vm.ColorViewModel{
		Color:      w.Color(),
		Style:      w.Style(),
		Persistent: persistent,
		ActionURL:  colorAction,
		CSRFToken:  csrf,
	}
}

// toReadTimeViewModel converts a ReadTimeWidget into its view model,
// rendering the markdown preview of the draft.
func toReadTimeViewModel(w *application.ReadTimeWidget, csrf string) vm.ReadTimeViewModel {
	est := w.Estimate()
	return vm.ReadTimeViewModel{
		Text:        w.Text(),
		WordCount:   est.WordCount,
		ReadTime:    est.ReadTime,
		PreviewHTML: RenderMarkdown(w.Text()),
		ActionURL:   readTimePath,
		CSRFToken:   csrf,
	}
}
