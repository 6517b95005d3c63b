package logos

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"repaired-site/internal/httpx"
	"repaired-site/internal/middleware"
	"repaired-site/internal/transport"

	"github.com/go-chi/chi/v5"
)

const (
	msgNotFound     = "Logo not found"
	msgInvalidLogo  = "Invalid logo data"
	msgDeleted      = "Logo deleted successfully"
	msgListFailed   = "Failed to fetch logos"
	msgActiveFailed = "Failed to fetch active logos"
	msgGetFailed    = "Failed to fetch logo"
	msgCreateFailed = "Failed to create logo"
	msgUpdateFailed = "Failed to update logo"
	msgDeleteFailed = "Failed to delete logo"
)

type Handler struct {
	service *Service
	log     *slog.Logger
}

func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log,
	}
}

// Routes mounts the logo API on r.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/logos", h.List)
	r.Get("/logos/active", h.ListActive)
	r.Get("/logos/{id}", h.Get)
	r.Post("/logos", h.Create)
	r.Put("/logos/{id}", h.Update)
	r.Delete("/logos/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "list")
	items, err := h.service.List(ctx)
	timing.Stop()
	if err != nil {
		log.Error("logos list: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, msgListFailed, nil)
		return
	}

	log.Info("logos list: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"logos": items})
}

func (h *Handler) ListActive(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "list active")
	items, err := h.service.ListActive(ctx)
	timing.Stop()
	if err != nil {
		log.Error("logos list active: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, msgActiveFailed, nil)
		return
	}

	log.Info("logos list active: ok", slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"logos": items})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, ok := httpx.ParseID(chi.URLParam(r, "id"))
	if !ok {
		log.Warn("logos get: invalid id", slog.String("id", chi.URLParam(r, "id")))
		transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "get")
	item, err := h.service.Get(ctx, id)
	timing.Stop()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("logos get: not found", slog.Int64("logo_id", id))
			transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
			return
		}
		log.Error("logos get: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, msgGetFailed, nil)
		return
	}

	transport.WriteJSON(w, http.StatusOK, map[string]interface{}{"logo": item})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req CreateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("logos create: invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, msgInvalidLogo, decodeErrorFields(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "create")
	item, err := h.service.Create(ctx, req)
	timing.Stop()
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			log.Warn("logos create: validation error")
			transport.WriteError(w, http.StatusBadRequest, msgInvalidLogo, verr.Fields)
			return
		}
		log.Error("logos create: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, msgCreateFailed, nil)
		return
	}

	log.Info("logos create: ok", slog.Int64("logo_id", item.ID))
	transport.WriteSuccess(w, http.StatusCreated, map[string]interface{}{"logo": item})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, ok := httpx.ParseID(chi.URLParam(r, "id"))
	if !ok {
		log.Warn("logos update: invalid id", slog.String("id", chi.URLParam(r, "id")))
		transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
		return
	}

	var req UpdateRequest
	if err := httpx.DecodeJSON(r.Body, &req); err != nil {
		log.Warn("logos update: invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, msgInvalidLogo, decodeErrorFields(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 8*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "update")
	item, err := h.service.Update(ctx, id, req)
	timing.Stop()
	if err != nil {
		var verr *ValidationError
		switch {
		case errors.Is(err, ErrNotFound):
			log.Warn("logos update: not found", slog.Int64("logo_id", id))
			transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
		case errors.As(err, &verr):
			log.Warn("logos update: validation error", slog.Int64("logo_id", id))
			transport.WriteError(w, http.StatusBadRequest, msgInvalidLogo, verr.Fields)
		default:
			log.Error("logos update: database error", slog.String("error", err.Error()))
			transport.WriteError(w, http.StatusInternalServerError, msgUpdateFailed, nil)
		}
		return
	}

	log.Info("logos update: ok", slog.Int64("logo_id", id))
	transport.WriteSuccess(w, http.StatusOK, map[string]interface{}{"logo": item})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)
	id, ok := httpx.ParseID(chi.URLParam(r, "id"))
	if !ok {
		log.Warn("logos delete: invalid id", slog.String("id", chi.URLParam(r, "id")))
		transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	timing := middleware.StartTiming(ctx, "logos", "delete")
	err := h.service.Delete(ctx, id)
	timing.Stop()
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			log.Warn("logos delete: not found", slog.Int64("logo_id", id))
			transport.WriteError(w, http.StatusNotFound, msgNotFound, nil)
			return
		}
		log.Error("logos delete: database error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, msgDeleteFailed, nil)
		return
	}

	log.Info("logos delete: ok", slog.Int64("logo_id", id))
	transport.WriteSuccess(w, http.StatusOK, map[string]interface{}{"message": msgDeleted})
}

func (h *Handler) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return h.log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return h.log.With(slog.String("request_id", id))
	}
	return h.log
}

// decodeErrorFields maps a body decode failure to field details. Syntax
// errors carry no field and yield nil.
func decodeErrorFields(err error) map[string]string {
	var oerr *OrderError
	if errors.As(err, &oerr) {
		return map[string]string{"displayOrder": "int"}
	}
	if field, want, ok := httpx.TypeError(err); ok {
		return map[string]string{field: want}
	}
	return nil
}
