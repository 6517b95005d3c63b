package contact

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"repaired-site/internal/validation"
)

var (
	ErrMissingFields = errors.New("all fields are required")
	ErrFieldTooLong  = errors.New("field too long")
)

type Notifier interface {
	SendContactMessage(ctx context.Context, to string, msg Request) (string, error)
}

// Service accepts contact form submissions. Nothing is stored; when an
// inbox and notifier are configured the message is forwarded by mail.
type Service struct {
	val      *validation.Validator
	notifier Notifier
	inbox    string
}

func NewService(val *validation.Validator, notifier Notifier, inbox string) *Service {
	return &Service{
		val:      val,
		notifier: notifier,
		inbox:    strings.TrimSpace(inbox),
	}
}

// Submit normalizes and validates req.
func (s *Service) Submit(req Request) (Request, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Company = strings.TrimSpace(req.Company)
	req.Message = strings.TrimSpace(req.Message)

	if err := s.val.Struct(req); err != nil {
		details := s.val.Details(err)
		for _, rule := range details {
			if rule == "required" {
				return Request{}, ErrMissingFields
			}
		}
		if len(details) == 0 {
			return Request{}, ErrMissingFields
		}
		return Request{}, ErrFieldTooLong
	}
	return req, nil
}

func (s *Service) ForwardEnabled() bool {
	return s.notifier != nil && s.inbox != ""
}

func (s *Service) Forward(ctx context.Context, msg Request) error {
	if !s.ForwardEnabled() {
		return nil
	}
	_, err := s.notifier.SendContactMessage(ctx, s.inbox, msg)
	return err
}

// ForwardAsync forwards msg in the background. Failures are logged and never
// reach the submitter.
func (s *Service) ForwardAsync(msg Request, log *slog.Logger) {
	if !s.ForwardEnabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
		defer cancel()
		if err := s.Forward(ctx, msg); err != nil {
			log.Warn("contact forward: failed", slog.String("error", err.Error()))
		}
	}()
}
