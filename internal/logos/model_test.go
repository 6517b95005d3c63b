package logos

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderAcceptsNumbersAndNumericStrings(t *testing.T) {
	cases := map[string]Order{
		`{"displayOrder":3}`:     3,
		`{"displayOrder":"4"}`:   4,
		`{"displayOrder":" 5 "}`: 5,
		`{"displayOrder":6.0}`:   6,
	}
	for raw, want := range cases {
		var req CreateRequest
		require.NoError(t, json.Unmarshal([]byte(raw), &req), raw)
		require.NotNil(t, req.DisplayOrder, raw)
		assert.Equal(t, want, *req.DisplayOrder, raw)
	}
}

func TestOrderRejectsNonIntegers(t *testing.T) {
	for _, raw := range []string{`{"displayOrder":"abc"}`, `{"displayOrder":1.5}`, `{"displayOrder":true}`} {
		var req CreateRequest
		var oerr *OrderError
		assert.ErrorAs(t, json.Unmarshal([]byte(raw), &req), &oerr, raw)
	}

	var req UpdateRequest
	require.NoError(t, json.Unmarshal([]byte(`{"displayOrder":null}`), &req))
	assert.Nil(t, req.DisplayOrder)
}

func TestAltFallsBackToName(t *testing.T) {
	l := Logo{Name: "Acme"}
	assert.Equal(t, "Acme logo", l.Alt())

	l.AltText = stringPtr("  ")
	assert.Equal(t, "Acme logo", l.Alt())

	l.AltText = stringPtr("Acme Corp")
	assert.Equal(t, "Acme Corp", l.Alt())
}

func TestSrcPicksThemeAsset(t *testing.T) {
	l := Logo{ImageURL: "/light.png"}
	assert.Equal(t, "/light.png", l.Src(false))
	assert.Equal(t, "/light.png", l.Src(true))

	l.DarkModeURL = stringPtr("/dark.png")
	assert.Equal(t, "/light.png", l.Src(false))
	assert.Equal(t, "/dark.png", l.Src(true))
}

func TestPatchApply(t *testing.T) {
	base := Logo{ID: 7, Name: "Acme", ImageURL: "/a.png", AltText: stringPtr("alt"), DarkModeURL: stringPtr("/d.png"), DisplayOrder: 2, IsActive: true}

	order := 9
	inactive := false
	got := Patch{Name: stringPtr("Beta"), DisplayOrder: &order, IsActive: &inactive, ClearAltText: true}.Apply(base)

	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "Beta", got.Name)
	assert.Equal(t, "/a.png", got.ImageURL)
	assert.Nil(t, got.AltText)
	require.NotNil(t, got.DarkModeURL)
	assert.Equal(t, "/d.png", *got.DarkModeURL)
	assert.Equal(t, 9, got.DisplayOrder)
	assert.False(t, got.IsActive)

	assert.True(t, Patch{}.Empty())
	assert.False(t, Patch{ClearDarkModeURL: true}.Empty())
}

func TestLogoJSONShape(t *testing.T) {
	raw, err := json.Marshal(Logo{ID: 1, Name: "Acme", ImageURL: "/a.png", DisplayOrder: 1, IsActive: true})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":1,"name":"Acme","imageUrl":"/a.png","darkModeUrl":null,"altText":null,"displayOrder":1,"isActive":true}`, string(raw))
}
