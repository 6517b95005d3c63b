package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	rec := httptest.NewRecorder()
	healthHandler(pingFunc(func(context.Context) error { return nil }), "memory", log).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok","database":"memory"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	healthHandler(pingFunc(func(context.Context) error { return errors.New("down") }), "postgres", log).
		ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"degraded","database":"postgres"}`, rec.Body.String())
}
