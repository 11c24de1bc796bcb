package email

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestNewClient_NilWithoutAPIKey(t *testing.T) {
	assert.Nil(t, NewClient(Config{FromEmail: "shop@example.com"}, nopLogger{}))

	var c *Client
	assert.ErrorIs(t, c.Send(context.Background(), Message{To: "a@b.co", Subject: "s"}), ErrNotConfigured)
}

func TestClient_Send(t *testing.T) {
	var payload map[string]interface{}
	var auth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3/mail/send", r.URL.Path)
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &payload)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient(Config{
		APIKey:    "sg-test",
		FromEmail: "shop@example.com",
		FromName:  "Detailing",
		BaseURL:   srv.URL,
	}, nopLogger{})
	require.NotNil(t, c)

	err := c.Send(context.Background(), Message{
		To:      "jane@example.com",
		ToName:  "Jane",
		ReplyTo: "shop@example.com",
		Subject: "Booked",
		Body:    "See you soon",
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer sg-test", auth)
	assert.Equal(t, "Booked", payload["subject"])
	from, ok := payload["from"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "shop@example.com", from["email"])
}

func TestClient_SendErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"errors":[{"message":"bad key"}]}`))
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "bad", FromEmail: "shop@example.com", BaseURL: srv.URL}, nopLogger{})

	err := c.Send(context.Background(), Message{To: "jane@example.com", Subject: "Booked", Body: "x"})
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestClient_SendInvalidMessage(t *testing.T) {
	c := NewClient(Config{APIKey: "key", FromEmail: "shop@example.com"}, nopLogger{})

	err := c.Send(context.Background(), Message{Subject: "Booked"})
	assert.ErrorIs(t, err, ErrInvalidMessage)
}

func TestMailtoLink(t *testing.T) {
	link := MailtoLink(Message{
		To:      "Shawn@Burrellnco.com",
		Subject: "New Booking Request: Jane - Full Interior Detail",
		Body:    "Name: Jane\nPhone: 951-555-0142 & more",
	})

	assert.Equal(t,
		"mailto:Shawn@Burrellnco.com?subject=New%20Booking%20Request%3A%20Jane%20-%20Full%20Interior%20Detail"+
			"&body=Name%3A%20Jane%0APhone%3A%20951-555-0142%20%26%20more",
		link)
}

func TestMailtoSender_Send(t *testing.T) {
	s := NewMailtoSender(nopLogger{})

	assert.NoError(t, s.Send(context.Background(), Message{To: "a@b.co", Subject: "s"}))
	assert.ErrorIs(t, s.Send(context.Background(), Message{Subject: "s"}), ErrInvalidMessage)
}
