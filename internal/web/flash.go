package web

import (
	"net/http"
	"net/url"
	"strings"
)

const flashCookie = "flash"

type flashKind string

const (
	flashSuccess flashKind = "success"
	flashError   flashKind = "error"
)

// Flash is a one-shot toast carried across a redirect.
type Flash struct {
	Kind    flashKind
	Message string
}

func (f Flash) Title() string {
	if f.Kind == flashError {
		return "Error"
	}
	return "Success"
}

func setFlash(w http.ResponseWriter, kind flashKind, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    string(kind) + "|" + url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// popFlash returns the pending flash, if any, and clears it.
func popFlash(w http.ResponseWriter, r *http.Request) *Flash {
	c, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	kind, raw, ok := strings.Cut(c.Value, "|")
	if !ok {
		return nil
	}
	msg, err := url.QueryUnescape(raw)
	if err != nil || msg == "" {
		return nil
	}
	switch flashKind(kind) {
	case flashSuccess, flashError:
		return &Flash{Kind: flashKind(kind), Message: msg}
	default:
		return nil
	}
}
