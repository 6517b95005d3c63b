package notifications

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"repaired-site/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBrevoClientDisabledWithoutCredentials(t *testing.T) {
	assert.Nil(t, NewBrevoClient("", "sender@repaired.co", "", false))
	assert.Nil(t, NewBrevoClient("key", " ", "", false))
	assert.NotNil(t, NewBrevoClient("key", "sender@repaired.co", "", false))
}

func TestSendContactMessage(t *testing.T) {
	var got brevoSendRequest
	var apiKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"messageId":"<abc@brevo>"}`))
	}))
	defer srv.Close()

	c := NewBrevoClient("key-1", "noreply@repaired.co", "repaired.co", true)
	c.endpoint = srv.URL

	id, err := c.SendContactMessage(context.Background(), "sales@repaired.co", contact.Request{
		Name:    "Ada",
		Email:   "ada@example.com",
		Company: "Acme <Labs>",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "<abc@brevo>", id)
	assert.Equal(t, "key-1", apiKey)

	require.Len(t, got.To, 1)
	assert.Equal(t, "sales@repaired.co", got.To[0].Email)
	require.NotNil(t, got.ReplyTo)
	assert.Equal(t, "ada@example.com", got.ReplyTo.Email)
	assert.Equal(t, "drop", got.Headers["X-Sib-Sandbox"])
	assert.Contains(t, got.HtmlContent, "Acme &lt;Labs&gt;")
	assert.Equal(t, []string{"contact"}, got.Tags)
}

func TestSendContactMessageFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad key", http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewBrevoClient("key-1", "noreply@repaired.co", "", false)
	c.endpoint = srv.URL

	_, err := c.SendContactMessage(context.Background(), "sales@repaired.co", contact.Request{Name: "Ada", Email: "a@b.c", Company: "Acme", Message: "Hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=401")
}

func TestMessageValidate(t *testing.T) {
	assert.Error(t, message{Subject: "s", HTML: "<p>x</p>"}.validate())
	assert.Error(t, message{To: brevoRecipient{Email: "a@b.c"}, HTML: "<p>x</p>"}.validate())
	assert.Error(t, message{To: brevoRecipient{Email: "a@b.c"}, Subject: "s"}.validate())
	assert.NoError(t, message{To: brevoRecipient{Email: "a@b.c"}, Subject: "s", HTML: "<p>x</p>"}.validate())

	var c *BrevoClient
	_, err := c.send(context.Background(), message{})
	assert.Error(t, err)
}
