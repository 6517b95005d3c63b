package logos

import (
	"context"
	"strings"
)

var defaultLogoNames = []string{"baldor", "lafert", "nae", "nidec", "teco", "toshiba", "weg", "worldwide"}

var defaultDisplayNames = map[string]string{
	"nae":       "NAE",
	"teco":      "TECO",
	"weg":       "WEG",
	"worldwide": "Worldwide Electric",
}

// Defaults returns the trusted-by logos a fresh install starts with. The
// assets ship under /images/logos.
func Defaults() []Logo {
	out := make([]Logo, 0, len(defaultLogoNames))
	for i, name := range defaultLogoNames {
		display, ok := defaultDisplayNames[name]
		if !ok {
			display = strings.ToUpper(name[:1]) + name[1:]
		}
		out = append(out, Logo{
			Name:         display,
			ImageURL:     "/images/logos/" + name + ".png",
			DisplayOrder: i + 1,
			IsActive:     true,
		})
	}
	return out
}

// Seed inserts the default logos when the store is empty and reports how
// many were added.
func Seed(ctx context.Context, repo Repository) (int, error) {
	existing, err := repo.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	n := 0
	for _, l := range Defaults() {
		if _, err := repo.Create(ctx, l); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
