package notifications

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultBrevoEndpoint = "https://api.brevo.com/v3/smtp/email"

// BrevoClient sends transactional mail through Brevo. A nil client is
// returned when credentials are missing; callers treat that as disabled.
type BrevoClient struct {
	apiKey      string
	senderEmail string
	senderName  string
	sandbox     bool
	endpoint    string
	httpClient  *http.Client
}

func NewBrevoClient(apiKey, senderEmail, senderName string, sandbox bool) *BrevoClient {
	if strings.TrimSpace(apiKey) == "" || strings.TrimSpace(senderEmail) == "" {
		return nil
	}
	if strings.TrimSpace(senderName) == "" {
		senderName = senderEmail
	}
	return &BrevoClient{
		apiKey:      apiKey,
		senderEmail: senderEmail,
		senderName:  senderName,
		sandbox:     sandbox,
		endpoint:    defaultBrevoEndpoint,
		httpClient:  &http.Client{Timeout: 8 * time.Second},
	}
}

// message is one transactional email.
type message struct {
	To      brevoRecipient
	ReplyTo *brevoRecipient
	Subject string
	HTML    string
	Tags    []string
}

func (m message) validate() error {
	switch {
	case strings.TrimSpace(m.To.Email) == "":
		return errors.New("missing recipient email")
	case strings.TrimSpace(m.Subject) == "":
		return errors.New("missing subject")
	case strings.TrimSpace(m.HTML) == "":
		return errors.New("missing html body")
	}
	return nil
}

// send posts m to the Brevo SMTP API and returns the message id.
func (c *BrevoClient) send(ctx context.Context, m message) (string, error) {
	if c == nil {
		return "", errors.New("brevo client is nil")
	}
	if err := m.validate(); err != nil {
		return "", err
	}

	payload := brevoSendRequest{
		Sender:      brevoSender{Name: c.senderName, Email: c.senderEmail},
		To:          []brevoRecipient{m.To},
		ReplyTo:     m.ReplyTo,
		Subject:     m.Subject,
		HtmlContent: m.HTML,
		Tags:        m.Tags,
	}
	if c.sandbox {
		payload.Headers = map[string]string{"X-Sib-Sandbox": "drop"}
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("brevo marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(raw))
	if err != nil {
		return "", fmt.Errorf("brevo create request: %w", err)
	}
	req.Header.Set("accept", "application/json")
	req.Header.Set("content-type", "application/json")
	req.Header.Set("api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("brevo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("brevo send failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var out brevoSendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("brevo decode response: %w", err)
	}
	if strings.TrimSpace(out.MessageID) == "" {
		return "", errors.New("brevo response missing messageId")
	}
	return out.MessageID, nil
}

type brevoSendRequest struct {
	Sender      brevoSender       `json:"sender"`
	To          []brevoRecipient  `json:"to"`
	Subject     string            `json:"subject"`
	HtmlContent string            `json:"htmlContent,omitempty"`
	ReplyTo     *brevoRecipient   `json:"replyTo,omitempty"`
	Headers     map[string]string `json:"headers,omitempty"`
	Tags        []string          `json:"tags,omitempty"`
}

type brevoSender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type brevoRecipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type brevoSendResponse struct {
	MessageID string `json:"messageId"`
}
