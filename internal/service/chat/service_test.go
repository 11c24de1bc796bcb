package chat

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/catalog"
	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/gemini"
)

type fakeCompleter struct {
	reply    string
	err      error
	requests []gemini.Request
}

func (c *fakeCompleter) Complete(_ context.Context, req gemini.Request) (string, error) {
	c.requests = append(c.requests, req)
	if c.err != nil {
		return "", c.err
	}
	return c.reply, nil
}

type memHistory struct {
	items   map[string][]domain.ChatMessage
	listErr error
}

func newMemHistory() *memHistory {
	return &memHistory{items: make(map[string][]domain.ChatMessage)}
}

func (h *memHistory) Append(_ context.Context, sessionID string, messages ...domain.ChatMessage) error {
	h.items[sessionID] = append(h.items[sessionID], messages...)
	return nil
}

func (h *memHistory) List(_ context.Context, sessionID string) ([]domain.ChatMessage, error) {
	if h.listErr != nil {
		return nil, h.listErr
	}
	return h.items[sessionID], nil
}

func (h *memHistory) Clear(_ context.Context, sessionID string) error {
	delete(h.items, sessionID)
	return nil
}

type recordingMetrics struct {
	sources []string
}

func (m *recordingMetrics) ObserveChatReply(_, source string) {
	m.sources = append(m.sources, source)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testBusiness = Business{Name: "Burrell & Co. Mobile Detailing", OwnerName: "Shawn", Phone: "951-751-4278"}

func newService(completer Completer) (*Service, *memHistory, *recordingMetrics) {
	history := newMemHistory()
	metrics := &recordingMetrics{}
	return NewService(completer, history, catalog.Default(), metrics, testBusiness, "test", nopLogger{}), history, metrics
}

func TestService_ReplyFromModel(t *testing.T) {
	completer := &fakeCompleter{reply: "Yes, I bring my own water and power."}
	svc, history, metrics := newService(completer)
	ctx := context.Background()

	require.NoError(t, history.Append(ctx, "s-1",
		domain.ChatMessage{Role: domain.ChatRoleUser, Text: "Hi"},
		domain.ChatMessage{Role: domain.ChatRoleModel, Text: "Hello!"},
	))

	reply, err := svc.Reply(ctx, "s-1", "  Do you need my water?  ")
	require.NoError(t, err)
	assert.Equal(t, SourceModel, reply.Source)
	assert.Equal(t, "Yes, I bring my own water and power.", reply.Text)

	require.Len(t, completer.requests, 1)
	req := completer.requests[0]
	assert.Equal(t, "Do you need my water?", req.Message)
	assert.Len(t, req.History, 2)
	assert.Contains(t, req.System, "- Maintenance Wash: Starting at $65")
	assert.Contains(t, req.System, "951-751-4278")

	stored := history.items["s-1"]
	require.Len(t, stored, 4)
	assert.Equal(t, domain.ChatRoleUser, stored[2].Role)
	assert.Equal(t, domain.ChatRoleModel, stored[3].Role)
	assert.Equal(t, []string{SourceModel}, metrics.sources)
}

func TestService_FallbackWhenModelFails(t *testing.T) {
	svc, history, metrics := newService(&fakeCompleter{err: errors.New("quota exceeded")})

	reply, err := svc.Reply(context.Background(), "s-1", "How much is an interior detail?")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, reply.Source)
	assert.Contains(t, reply.Text, "$65")
	assert.Len(t, history.items["s-1"], 2)
	assert.Equal(t, []string{SourceFallback}, metrics.sources)
}

func TestService_FallbackWithoutModel(t *testing.T) {
	svc, history, _ := newService(nil)
	history.listErr = errors.New("redis down")

	reply, err := svc.Reply(context.Background(), "s-1", "Can I book for Saturday?")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, reply.Source)
	assert.Contains(t, reply.Text, "Book Now")
}

func TestService_RejectsInvalidInput(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Reply(ctx, "s-1", "   ")
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = svc.Reply(ctx, "s-1", strings.Repeat("a", domain.MaxChatMessageLength+1))
	assert.ErrorIs(t, err, ErrInvalidMessage)

	_, err = svc.Reply(ctx, "", "hello")
	assert.ErrorIs(t, err, ErrInvalidSession)
}

func TestService_ConversationAndReset(t *testing.T) {
	svc, _, _ := newService(nil)
	ctx := context.Background()

	_, err := svc.Reply(ctx, "s-1", "hello")
	require.NoError(t, err)

	conv, err := svc.Conversation(ctx, "s-1")
	require.NoError(t, err)
	assert.Equal(t, WelcomeMessage, conv.Welcome)
	assert.Len(t, conv.Messages, 2)

	require.NoError(t, svc.Reset(ctx, "s-1"))
	conv, err = svc.Conversation(ctx, "s-1")
	require.NoError(t, err)
	assert.Empty(t, conv.Messages)
}

func TestFallbackReply(t *testing.T) {
	services := catalog.Default().GetServices()

	tests := []struct {
		name    string
		message string
		want    string
	}{
		{"price", "What does it COST?", "Maintenance washes start at $65 for sedans, while Full Interior Details start at $180"},
		{"interior", "Tell me about interior cleaning", "Prices start at $180 for sedans"},
		{"exterior", "Do you do an exterior wash?", "Full Exterior Detail starting at $250"},
		{"booking", "I want an appointment", "Book Now"},
		{"default", "hello there", "offline mode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, fallbackReply(tt.message, services), tt.want)
		})
	}
}

func TestBuildSystemPrompt(t *testing.T) {
	prompt := BuildSystemPrompt(testBusiness, catalog.Default().GetServices())

	assert.True(t, strings.HasPrefix(prompt, "You are the AI assistant for **Burrell & Co. Mobile Detailing**."))
	assert.Contains(t, prompt, ReferralPhrase(testBusiness))
	assert.Contains(t, prompt, "25. **Trunk Items:**")
	assert.Contains(t, prompt, "- Engine Bay Cleaning: Starting at $125")
	assert.Contains(t, prompt, "- Full Exterior Detail: Starting at $250")
}
