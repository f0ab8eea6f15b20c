// Package viewmodel defines presentation-ready structs for templ components.
// View models decouple template rendering from application widget types.
package viewmodel

// NavItem is one entry of the top navigation.
type NavItem struct {
	Label  string
	Path   string
	Active bool
}

// LayoutViewModel holds the page chrome shared by every page.
type LayoutViewModel struct {
	Title     string
	CSRFToken string
	Nav       []NavItem
}

// ColorViewModel holds presentation-ready data for the color widget.
type ColorViewModel struct {
	Color      string
	Style      string
	Persistent bool   // false when the color is not saved for this visitor
	ActionURL  string // POST target for color changes
	CSRFToken  string
	Error      string
}

// ReadTimeViewModel holds presentation-ready data for the read-time widget.
type ReadTimeViewModel struct {
	Text        string
	WordCount   int
	ReadTime    string
	PreviewHTML string // sanitized markdown rendering of Text
	ActionURL   string // POST target for draft updates
	CSRFToken   string
}
