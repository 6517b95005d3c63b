package web

import (
	"net/http"
	"net/url"
	"strings"
)

const themeCookie = "theme"

// Theme is the visual mode the site renders in. It is read per request and
// handed to templates explicitly.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

func (t Theme) Dark() bool {
	return t != ThemeLight
}

func (t Theme) Toggle() Theme {
	if t.Dark() {
		return ThemeLight
	}
	return ThemeDark
}

// ThemeFromRequest reads the theme cookie. Anything other than "light"
// renders dark.
func ThemeFromRequest(r *http.Request) Theme {
	c, err := r.Cookie(themeCookie)
	if err != nil {
		return ThemeDark
	}
	if Theme(strings.TrimSpace(c.Value)) == ThemeLight {
		return ThemeLight
	}
	return ThemeDark
}

func setTheme(w http.ResponseWriter, t Theme) {
	http.SetCookie(w, &http.Cookie{
		Name:     themeCookie,
		Value:    string(t),
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// safeReturn keeps redirects on this site. Only absolute paths are honored.
func safeReturn(raw string) string {
	if raw == "" || !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.HasPrefix(raw, "/\\") {
		return "/"
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host != "" || u.Scheme != "" {
		return "/"
	}
	return raw
}
