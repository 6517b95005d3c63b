package web

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"repaired-site/internal/logos"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func formValues(name, image, order string, active bool) url.Values {
	v := url.Values{
		"name":         {name},
		"imageUrl":     {image},
		"darkModeUrl":  {""},
		"altText":      {""},
		"displayOrder": {order},
	}
	if active {
		v.Set("isActive", "on")
	}
	return v
}

func TestAdminCreateRedirectsWithToast(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())

	rec := s.post(t, "/admin/logos", formValues("Acme", "/images/logos/acme.png", "1", true))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/logos", rec.Header().Get("Location"))

	flash := cookieNamed(rec, flashCookie)
	require.NotNil(t, flash)

	rec = s.get(t, "/admin/logos", flash)
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Logo added successfully")
	assert.Contains(t, body, "Acme")
	assert.Contains(t, body, "Active")

	cleared := cookieNamed(rec, flashCookie)
	require.NotNil(t, cleared)
	assert.Less(t, cleared.MaxAge, 0)

	items, err := s.logos.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.True(t, items[0].IsActive)
	assert.Nil(t, items[0].AltText)
}

func TestAdminCreateValidationRerendersDialog(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())

	rec := s.post(t, "/admin/logos", formValues("", "not a url", "1", true))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "<dialog")
	assert.Contains(t, body, "This field is required")
	assert.Contains(t, body, "Must be a path starting with / or an http(s) URL")

	rec = s.post(t, "/admin/logos", formValues("Acme", "/a.png", "abc", true))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must be a whole number")
	assert.Contains(t, rec.Body.String(), `value="Acme"`)

	items, err := s.logos.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAdminEditDialogAndUpdate(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())
	l := s.seed(t, "Acme", 1, true)

	rec := s.get(t, "/admin/logos?edit=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `action="/admin/logos/1"`)
	assert.Contains(t, rec.Body.String(), `value="Acme"`)

	rec = s.post(t, "/admin/logos/1", formValues("Acme Corp", l.ImageURL, "4", false))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Logo updated successfully")
	assert.Contains(t, rec.Body.String(), "Inactive")

	got, err := s.logos.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Corp", got.Name)
	assert.Equal(t, 4, got.DisplayOrder)
	assert.False(t, got.IsActive)

	rec = s.post(t, "/admin/logos/1", formValues("Acme Corp", l.ImageURL, "", false))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "This field is required")
}

func TestAdminUpdateUnknownLogo(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())

	rec := s.post(t, "/admin/logos/77", formValues("Acme", "/a.png", "1", true))
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Logo not found")

	rec = s.get(t, "/admin/logos?edit=77")
	assert.Contains(t, rec.Body.String(), "Logo not found")
	assert.NotContains(t, rec.Body.String(), "<dialog")
}

func TestAdminDelete(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())
	s.seed(t, "Acme", 1, true)

	rec := s.post(t, "/admin/logos/1/delete", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Logo deleted successfully")
	assert.Contains(t, rec.Body.String(), "No logos yet")

	rec = s.post(t, "/admin/logos/1/delete", nil)
	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Logo not found")
}

func TestAdminDeleteShowsRowInFlightState(t *testing.T) {
	s := newTestSite(t, logos.NewMemoryRepository())
	s.seed(t, "Acme", 1, true)

	rec := s.get(t, "/admin/logos")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/admin/logos/1/delete" data-delete-form`)
	assert.Contains(t, body, "b.disabled=true")
	assert.Contains(t, body, "Deleting…")
}

func TestAdminStoreFailures(t *testing.T) {
	s := newTestSite(t, logos.UnavailableRepository{})

	rec := s.get(t, "/admin/logos")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to load logos")

	rec = s.post(t, "/admin/logos", formValues("Acme", "/a.png", "1", true))
	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Failed to add logo")

	rec = s.post(t, "/admin/logos/1/delete", nil)
	rec = s.get(t, "/admin/logos", cookieNamed(rec, flashCookie))
	assert.Contains(t, rec.Body.String(), "Failed to delete logo")
}

func TestFieldMessages(t *testing.T) {
	assert.Equal(t, map[string]string{
		"name":         msgFieldRequired,
		"displayOrder": "Must be 1 or greater",
		"altText":      "Too long",
	}, fieldMessages(map[string]string{"name": "min", "displayOrder": "gte", "altText": "max"}))
}
