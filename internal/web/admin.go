package web

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"repaired-site/internal/httpx"
	"repaired-site/internal/logos"
	"repaired-site/internal/middleware"

	"github.com/go-chi/chi/v5"
)

const (
	adminPath = "/admin/logos"

	msgLoadFailed    = "Failed to load logos"
	msgLogoNotFound  = "Logo not found"
	msgAdded         = "Logo added successfully"
	msgUpdated       = "Logo updated successfully"
	msgDeleted       = "Logo deleted successfully"
	msgAddFailed     = "Failed to add logo"
	msgUpdateFailed  = "Failed to update logo"
	msgDeleteFailed  = "Failed to delete logo"
	msgFieldRequired = "This field is required"
	msgOrderInvalid  = "Must be a whole number"
)

type logoFormValues struct {
	Name         string
	ImageURL     string
	DarkModeURL  string
	AltText      string
	DisplayOrder string
	IsActive     bool
}

// logoForm is the add/edit dialog. A nil form means the dialog is closed.
type logoForm struct {
	Edit   bool
	ID     int64
	Values logoFormValues
	Errors map[string]string
}

func (f *logoForm) Action() string {
	if f.Edit {
		return adminPath + "/" + strconv.FormatInt(f.ID, 10)
	}
	return adminPath
}

type adminData struct {
	Logos     []logos.Logo
	LoadError string
	Form      *logoForm
	Dark      bool
}

func (h *Handler) AdminList(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var form *logoForm
	if q.Get("new") != "" {
		form = &logoForm{Values: logoFormValues{IsActive: true}}
	}
	h.renderAdmin(w, r, http.StatusOK, form, q.Get("edit"))
}

// renderAdmin always refetches the list so the table reflects the store.
// editID opens the edit dialog for that logo when form is nil.
func (h *Handler) renderAdmin(w http.ResponseWriter, r *http.Request, status int, form *logoForm, editID string) {
	log := h.logWithRequest(r)
	theme := ThemeFromRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	data := adminData{Form: form, Dark: theme.Dark()}
	timing := middleware.StartTiming(ctx, "logos", "admin list")
	items, err := h.logos.List(ctx)
	timing.Stop()
	if err != nil {
		log.Error("admin logos list: database error", slog.String("error", err.Error()))
		data.LoadError = msgLoadFailed
		items = nil
	}
	data.Logos = items

	if form != nil && !form.Edit && form.Values.DisplayOrder == "" {
		form.Values.DisplayOrder = strconv.Itoa(len(items) + 1)
	}

	var flash *Flash
	if form == nil && editID != "" {
		id, ok := httpx.ParseID(editID)
		l, found := findLogo(items, id)
		if ok && found {
			data.Form = editForm(l)
		} else if err == nil {
			flash = &Flash{Kind: flashError, Message: msgLogoNotFound}
		}
	}

	h.renderPage(w, r, status, "admin", "Logo Management | repaired.co", data, flash)
}

func (h *Handler) AdminCreate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	vals, err := parseLogoForm(w, r)
	if err != nil {
		log.Warn("admin logos create: invalid form", slog.String("error", err.Error()))
		h.redirectAdmin(w, r, flashError, msgAddFailed)
		return
	}

	order, orderErr := parseOrderField(vals.DisplayOrder)
	if orderErr != "" {
		h.renderAdmin(w, r, http.StatusBadRequest, &logoForm{Values: vals, Errors: map[string]string{"displayOrder": orderErr}}, "")
		return
	}

	req := logos.CreateRequest{
		Name:         vals.Name,
		ImageURL:     vals.ImageURL,
		DarkModeURL:  stringRef(vals.DarkModeURL),
		AltText:      stringRef(vals.AltText),
		DisplayOrder: order,
		IsActive:     boolRef(vals.IsActive),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	created, err := h.logos.Create(ctx, req)
	var verr *logos.ValidationError
	switch {
	case errors.As(err, &verr):
		log.Warn("admin logos create: validation failed")
		h.renderAdmin(w, r, http.StatusBadRequest, &logoForm{Values: vals, Errors: fieldMessages(verr.Fields)}, "")
	case err != nil:
		log.Error("admin logos create: database error", slog.String("error", err.Error()))
		h.redirectAdmin(w, r, flashError, msgAddFailed)
	default:
		log.Info("admin logos create: ok", slog.Int64("id", created.ID))
		h.redirectAdmin(w, r, flashSuccess, msgAdded)
	}
}

func (h *Handler) AdminUpdate(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id, ok := httpx.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.redirectAdmin(w, r, flashError, msgLogoNotFound)
		return
	}

	vals, err := parseLogoForm(w, r)
	if err != nil {
		log.Warn("admin logos update: invalid form", slog.String("error", err.Error()))
		h.redirectAdmin(w, r, flashError, msgUpdateFailed)
		return
	}

	form := &logoForm{Edit: true, ID: id, Values: vals}
	order, orderErr := parseOrderField(vals.DisplayOrder)
	if orderErr == "" && order == nil {
		orderErr = msgFieldRequired
	}
	if orderErr != "" {
		form.Errors = map[string]string{"displayOrder": orderErr}
		h.renderAdmin(w, r, http.StatusBadRequest, form, "")
		return
	}

	req := logos.UpdateRequest{
		Name:         stringRef(vals.Name),
		ImageURL:     stringRef(vals.ImageURL),
		DarkModeURL:  stringRef(vals.DarkModeURL),
		AltText:      stringRef(vals.AltText),
		DisplayOrder: order,
		IsActive:     boolRef(vals.IsActive),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	_, err = h.logos.Update(ctx, id, req)
	var verr *logos.ValidationError
	switch {
	case errors.Is(err, logos.ErrNotFound):
		log.Warn("admin logos update: not found", slog.Int64("id", id))
		h.redirectAdmin(w, r, flashError, msgLogoNotFound)
	case errors.As(err, &verr):
		log.Warn("admin logos update: validation failed", slog.Int64("id", id))
		form.Errors = fieldMessages(verr.Fields)
		h.renderAdmin(w, r, http.StatusBadRequest, form, "")
	case err != nil:
		log.Error("admin logos update: database error", slog.String("error", err.Error()))
		h.redirectAdmin(w, r, flashError, msgUpdateFailed)
	default:
		log.Info("admin logos update: ok", slog.Int64("id", id))
		h.redirectAdmin(w, r, flashSuccess, msgUpdated)
	}
}

func (h *Handler) AdminDelete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	id, ok := httpx.ParseID(chi.URLParam(r, "id"))
	if !ok {
		h.redirectAdmin(w, r, flashError, msgLogoNotFound)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	err := h.logos.Delete(ctx, id)
	switch {
	case errors.Is(err, logos.ErrNotFound):
		log.Warn("admin logos delete: not found", slog.Int64("id", id))
		h.redirectAdmin(w, r, flashError, msgLogoNotFound)
	case err != nil:
		log.Error("admin logos delete: database error", slog.String("error", err.Error()))
		h.redirectAdmin(w, r, flashError, msgDeleteFailed)
	default:
		log.Info("admin logos delete: ok", slog.Int64("id", id))
		h.redirectAdmin(w, r, flashSuccess, msgDeleted)
	}
}

func (h *Handler) redirectAdmin(w http.ResponseWriter, r *http.Request, kind flashKind, message string) {
	setFlash(w, kind, message)
	http.Redirect(w, r, adminPath, http.StatusSeeOther)
}

func parseLogoForm(w http.ResponseWriter, r *http.Request) (logoFormValues, error) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<10)
	if err := r.ParseForm(); err != nil {
		return logoFormValues{}, err
	}
	return logoFormValues{
		Name:         strings.TrimSpace(r.PostFormValue("name")),
		ImageURL:     strings.TrimSpace(r.PostFormValue("imageUrl")),
		DarkModeURL:  strings.TrimSpace(r.PostFormValue("darkModeUrl")),
		AltText:      strings.TrimSpace(r.PostFormValue("altText")),
		DisplayOrder: strings.TrimSpace(r.PostFormValue("displayOrder")),
		IsActive:     r.PostFormValue("isActive") != "",
	}, nil
}

// parseOrderField returns a nil order for a blank field and a message when
// the text is not a whole number.
func parseOrderField(raw string) (*logos.Order, string) {
	if raw == "" {
		return nil, ""
	}
	o, err := logos.ParseOrder(raw)
	if err != nil {
		return nil, msgOrderInvalid
	}
	return &o, ""
}

// fieldMessages turns validator rule names into text for the form.
func fieldMessages(fields map[string]string) map[string]string {
	out := make(map[string]string, len(fields))
	for field, rule := range fields {
		switch rule {
		case "required", "min", "notblank":
			out[field] = msgFieldRequired
		case "max":
			out[field] = "Too long"
		case "gte":
			out[field] = "Must be 1 or greater"
		case "imageref":
			out[field] = "Must be a path starting with / or an http(s) URL"
		default:
			out[field] = "Invalid value"
		}
	}
	return out
}

func editForm(l logos.Logo) *logoForm {
	vals := logoFormValues{
		Name:         l.Name,
		ImageURL:     l.ImageURL,
		DisplayOrder: strconv.Itoa(l.DisplayOrder),
		IsActive:     l.IsActive,
	}
	if l.DarkModeURL != nil {
		vals.DarkModeURL = *l.DarkModeURL
	}
	if l.AltText != nil {
		vals.AltText = *l.AltText
	}
	return &logoForm{Edit: true, ID: l.ID, Values: vals}
}

func findLogo(items []logos.Logo, id int64) (logos.Logo, bool) {
	for _, l := range items {
		if l.ID == id {
			return l, true
		}
	}
	return logos.Logo{}, false
}

func stringRef(s string) *string { return &s }

func boolRef(b bool) *bool { return &b }
