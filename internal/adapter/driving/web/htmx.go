package web

import (
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// htmxRequestHeader is set by the widget script on live updates.
const htmxRequestHeader = "HX-Request"

// IsHTMXRequest reports whether the request asks for a fragment response.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxRequestHeader), "true")
}

// renderPage writes fragment for live requests and full otherwise. A nil
// fragment falls back to full.
func renderPage(w http.ResponseWriter, r *http.Request, status int, fragment, full templ.Component) {
	target := full
	if IsHTMXRequest(r) && fragment != nil {
		target = fragment
	}
	w.Header().Set("Vary", htmxRequestHeader)
	templ.Handler(target, templ.WithStatus(status)).ServeHTTP(w, r)
}
