package contact

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"repaired-site/internal/middleware"
	"repaired-site/internal/transport"
)

const (
	msgReceived       = "Message received! We will contact you shortly."
	msgMissingFields  = "All fields are required"
	msgFieldTooLong   = "One or more fields are too long"
	msgProcessingFail = "An error occurred while processing your request"
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

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := h.logWithRequest(r)

	var req Request
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		log.Warn("contact create: invalid json", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusBadRequest, msgMissingFields, nil)
		return
	}

	msg, err := h.service.Submit(req)
	if errors.Is(err, ErrFieldTooLong) {
		log.Warn("contact create: field too long")
		transport.WriteError(w, http.StatusBadRequest, msgFieldTooLong, nil)
		return
	}
	if err != nil {
		log.Warn("contact create: missing fields")
		transport.WriteError(w, http.StatusBadRequest, msgMissingFields, nil)
		return
	}

	h.service.ForwardAsync(msg, h.log)

	log.Info("contact create: ok", slog.String("company", msg.Company))
	transport.WriteSuccess(w, http.StatusOK, map[string]interface{}{"message": msgReceived})
}

// Recover turns a panic inside the contact flow into the canned 500.
func (h *Handler) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				h.logWithRequest(r).Error("contact create: panic", slog.Any("panic", rec))
				transport.WriteError(w, http.StatusInternalServerError, msgProcessingFail, nil)
			}
		}()
		next.ServeHTTP(w, r)
	})
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
