// Package session resolves the opaque session identity carried by the
// sessionId cookie. A session is not an account: it is only a grouping key
// for transactions, minted lazily on a client's first write.
package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the session id.
const CookieName = "sessionId"

// TTL is how long a client keeps its session cookie.
const TTL = 7 * 24 * time.Hour

// FromRequest returns the session id supplied by the request, verbatim.
// The value is never checked against stored rows; a forged or stale id
// simply matches nothing.
func FromRequest(r *http.Request) (string, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Issue mints a fresh session id and instructs the client to hold on to it
// for TTL. Called at most once per request, only on a cookieless write.
func Issue(w http.ResponseWriter) string {
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:   CookieName,
		Value:  id,
		Path:   "/",
		MaxAge: int(TTL / time.Second),
	})
	return id
}
