// Package session maps a session token onto the browser-held cookie.
// The cookie value is always exactly a token issued by the token
// service, or empty after Clear.
package session

import (
	"net/http"
	"time"
)

type Cookie struct {
	name   string
	ttl    time.Duration
	secure bool
}

// NewCookie configures the session cookie. secure should be on in
// production-like deployments; it also switches SameSite from Strict
// to None so a cross-site browser client can send the cookie, which is
// safe only in combination with the Secure attribute.
func NewCookie(name string, ttl time.Duration, secure bool) *Cookie {
	return &Cookie{name: name, ttl: ttl, secure: secure}
}

func (c *Cookie) Name() string {
	return c.name
}

func (c *Cookie) Attach(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.ttl.Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite(),
	})
}

// Clear overwrites the cookie with an empty value and a negative
// max-age so the browser drops it on receipt.
func (c *Cookie) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: c.sameSite(),
	})
}

func (c *Cookie) Read(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(c.name)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

func (c *Cookie) sameSite() http.SameSite {
	if c.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}
