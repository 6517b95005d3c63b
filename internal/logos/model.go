package logos

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Logo is one company logo shown in the trusted-by carousel.
type Logo struct {
	ID           int64   `json:"id" bson:"_id"`
	Name         string  `json:"name" bson:"name"`
	ImageURL     string  `json:"imageUrl" bson:"image_url"`
	DarkModeURL  *string `json:"darkModeUrl" bson:"dark_mode_url,omitempty"`
	AltText      *string `json:"altText" bson:"alt_text,omitempty"`
	DisplayOrder int     `json:"displayOrder" bson:"display_order"`
	IsActive     bool    `json:"isActive" bson:"is_active"`
}

// Alt returns the accessibility text, defaulting to "<name> logo".
func (l Logo) Alt() string {
	if l.AltText != nil && strings.TrimSpace(*l.AltText) != "" {
		return *l.AltText
	}
	return l.Name + " logo"
}

// Src picks the asset for the given theme.
func (l Logo) Src(dark bool) string {
	if dark && l.DarkModeURL != nil && strings.TrimSpace(*l.DarkModeURL) != "" {
		return *l.DarkModeURL
	}
	return l.ImageURL
}

// Order is an integer that also accepts numeric strings ("3") and
// integral floats (3.0) when decoded from JSON.
type Order int

func (o *Order) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return &OrderError{Raw: string(data)}
		}
		data = []byte(strings.TrimSpace(s))
	}
	n, err := ParseOrder(string(data))
	if err != nil {
		return err
	}
	*o = n
	return nil
}

// OrderError reports a display order that is not an integer.
type OrderError struct {
	Raw string
}

func (e *OrderError) Error() string {
	return fmt.Sprintf("display order %q is not an integer", e.Raw)
}

// ParseOrder coerces a textual number to an Order.
func ParseOrder(raw string) (Order, error) {
	raw = strings.TrimSpace(raw)
	if i, err := strconv.Atoi(raw); err == nil {
		return Order(i), nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != float64(int(f)) {
		return 0, &OrderError{Raw: raw}
	}
	return Order(int(f)), nil
}

// CreateRequest is the shape accepted when adding a logo.
type CreateRequest struct {
	Name         string  `json:"name" validate:"required,max=200"`
	ImageURL     string  `json:"imageUrl" validate:"required,max=2048,imageref"`
	DarkModeURL  *string `json:"darkModeUrl" validate:"omitempty,max=2048,imageref"`
	AltText      *string `json:"altText" validate:"omitempty,max=300"`
	DisplayOrder *Order  `json:"displayOrder" validate:"required,gte=1"`
	IsActive     *bool   `json:"isActive"`
}

// UpdateRequest carries any subset of the logo fields. An empty altText or
// darkModeUrl clears the stored value.
type UpdateRequest struct {
	Name         *string `json:"name" validate:"omitempty,min=1,max=200"`
	ImageURL     *string `json:"imageUrl" validate:"omitempty,max=2048,imageref"`
	DarkModeURL  *string `json:"darkModeUrl" validate:"omitempty,max=2048,imageref"`
	AltText      *string `json:"altText" validate:"omitempty,max=300"`
	DisplayOrder *Order  `json:"displayOrder" validate:"omitempty,gte=1"`
	IsActive     *bool   `json:"isActive"`
}

// Patch is a normalized partial update handed to the repository. A nil
// field is left untouched; ClearAltText and ClearDarkModeURL reset a column
// to NULL.
type Patch struct {
	Name             *string
	ImageURL         *string
	DarkModeURL      *string
	ClearDarkModeURL bool
	AltText          *string
	ClearAltText     bool
	DisplayOrder     *int
	IsActive         *bool
}

func (p Patch) Empty() bool {
	return p.Name == nil && p.ImageURL == nil && p.DarkModeURL == nil && !p.ClearDarkModeURL &&
		p.AltText == nil && !p.ClearAltText && p.DisplayOrder == nil && p.IsActive == nil
}

// Apply returns l with the patch applied.
func (p Patch) Apply(l Logo) Logo {
	if p.Name != nil {
		l.Name = *p.Name
	}
	if p.ImageURL != nil {
		l.ImageURL = *p.ImageURL
	}
	if p.ClearDarkModeURL {
		l.DarkModeURL = nil
	} else if p.DarkModeURL != nil {
		l.DarkModeURL = stringPtr(*p.DarkModeURL)
	}
	if p.ClearAltText {
		l.AltText = nil
	} else if p.AltText != nil {
		l.AltText = stringPtr(*p.AltText)
	}
	if p.DisplayOrder != nil {
		l.DisplayOrder = *p.DisplayOrder
	}
	if p.IsActive != nil {
		l.IsActive = *p.IsActive
	}
	return l
}

func stringPtr(s string) *string {
	return &s
}
