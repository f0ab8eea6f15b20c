package web

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// VisitorCookieName holds the visitor's preference scope.
const VisitorCookieName = "widgetpanel_visitor"

const visitorCookieMaxAge = 365 * 24 * time.Hour

// visitorFromRequest returns the scope carried by the visitor cookie. Values
// that are not UUIDs are ignored.
func visitorFromRequest(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(VisitorCookieName)
	if err != nil {
		return "", false
	}
	id, err := uuid.Parse(cookie.Value)
	if err != nil {
		return "", false
	}
	return id.String(), true
}

// ensureVisitor returns the request's visitor scope, issuing a fresh one when
// the request has none. known is false for a newly issued scope.
func (h *Handler) ensureVisitor(w http.ResponseWriter, r *http.Request) (scope string, known bool) {
	if scope, ok := visitorFromRequest(r); ok {
		return scope, true
	}

	scope = uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     VisitorCookieName,
		Value:    scope,
		Path:     "/",
		MaxAge:   int(visitorCookieMaxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   h.secureCookies,
	})
	return scope, false
}
