package logos

import (
	"context"
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"repaired-site/internal/cache"
	"repaired-site/internal/validation"
)

const (
	cacheKeyAll    = "logos:all"
	cacheKeyActive = "logos:active"
)

// ValidationError lists the fields that failed the logo schema, keyed by
// json name with the failed rule as value.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "invalid logo data"
}

type Service struct {
	repo     Repository
	val      *validation.Validator
	cache    cache.Cache
	cacheTTL time.Duration
	log      *slog.Logger

	// gen counts writes so a list loaded before a write is never stored
	// after it. stale is set while the list keys could not be deleted.
	gen   atomic.Uint64
	stale atomic.Bool
}

func NewService(repo Repository, val *validation.Validator, c cache.Cache, cacheTTL time.Duration) *Service {
	if c == nil {
		c = cache.NewNoop()
	}
	return &Service{
		repo:     repo,
		val:      val,
		cache:    c,
		cacheTTL: cacheTTL,
		log:      slog.Default(),
	}
}

func (s *Service) WithLogger(log *slog.Logger) *Service {
	if log != nil {
		s.log = log
	}
	return s
}

func (s *Service) List(ctx context.Context) ([]Logo, error) {
	return s.cachedList(ctx, cacheKeyAll, s.repo.List)
}

func (s *Service) ListActive(ctx context.Context) ([]Logo, error) {
	return s.cachedList(ctx, cacheKeyActive, s.repo.ListActive)
}

func (s *Service) Get(ctx context.Context, id int64) (Logo, error) {
	l, ok, err := s.repo.Get(ctx, id)
	if err != nil {
		return Logo{}, err
	}
	if !ok {
		return Logo{}, ErrNotFound
	}
	return l, nil
}

func (s *Service) Create(ctx context.Context, req CreateRequest) (Logo, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.ImageURL = strings.TrimSpace(req.ImageURL)
	req.DarkModeURL = trimOptional(req.DarkModeURL)
	req.AltText = trimOptional(req.AltText)

	if err := s.val.Struct(req); err != nil {
		if details := s.val.Details(err); details != nil {
			return Logo{}, &ValidationError{Fields: details}
		}
		return Logo{}, err
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item := Logo{
		Name:         req.Name,
		ImageURL:     req.ImageURL,
		DarkModeURL:  req.DarkModeURL,
		AltText:      req.AltText,
		DisplayOrder: int(*req.DisplayOrder),
		IsActive:     isActive,
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return Logo{}, err
	}
	s.invalidate(ctx)
	return created, nil
}

// Update applies a partial update. Concurrent updates to the same logo are
// last-write-wins.
func (s *Service) Update(ctx context.Context, id int64, req UpdateRequest) (Logo, error) {
	if _, err := s.Get(ctx, id); err != nil {
		return Logo{}, err
	}

	patch := Patch{IsActive: req.IsActive}

	if req.Name != nil {
		req.Name = stringPtr(strings.TrimSpace(*req.Name))
	}
	if req.ImageURL != nil {
		req.ImageURL = stringPtr(strings.TrimSpace(*req.ImageURL))
	}
	if req.AltText != nil {
		req.AltText = trimOptional(req.AltText)
		patch.ClearAltText = req.AltText == nil
	}
	if req.DarkModeURL != nil {
		req.DarkModeURL = trimOptional(req.DarkModeURL)
		patch.ClearDarkModeURL = req.DarkModeURL == nil
	}

	if err := s.val.Struct(req); err != nil {
		if details := s.val.Details(err); details != nil {
			return Logo{}, &ValidationError{Fields: details}
		}
		return Logo{}, err
	}

	patch.Name = req.Name
	patch.ImageURL = req.ImageURL
	patch.AltText = req.AltText
	patch.DarkModeURL = req.DarkModeURL
	if req.DisplayOrder != nil {
		order := int(*req.DisplayOrder)
		patch.DisplayOrder = &order
	}

	updated, ok, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return Logo{}, err
	}
	if !ok {
		return Logo{}, ErrNotFound
	}
	s.invalidate(ctx)
	return updated, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

// cachedList serves a list from the cache when possible. Cache failures
// fall through to the repository, and the cache is bypassed until a failed
// invalidation has been retried successfully.
func (s *Service) cachedList(ctx context.Context, key string, load func(context.Context) ([]Logo, error)) ([]Logo, error) {
	usable := s.cacheUsable(ctx)
	if usable {
		var cached []Logo
		if ok, err := cache.GetJSON(ctx, s.cache, key, &cached); err == nil && ok && cached != nil {
			return cached, nil
		}
	}

	gen := s.gen.Load()
	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if usable && !s.stale.Load() && s.gen.Load() == gen {
		_ = cache.SetJSON(ctx, s.cache, key, items, s.cacheTTL)
	}
	return items, nil
}

func (s *Service) cacheUsable(ctx context.Context) bool {
	if !s.stale.Load() {
		return true
	}
	if err := s.cache.Delete(ctx, cacheKeyAll, cacheKeyActive); err != nil {
		return false
	}
	s.stale.Store(false)
	s.log.Info("logos cache: invalidation recovered")
	return true
}

func (s *Service) invalidate(ctx context.Context) {
	s.gen.Add(1)
	if err := s.cache.Delete(ctx, cacheKeyAll, cacheKeyActive); err != nil {
		s.stale.Store(true)
		s.log.Warn("logos cache: invalidation failed", slog.String("error", err.Error()))
	}
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
