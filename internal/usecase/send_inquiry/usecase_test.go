package send_inquiry

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-DetailingService/internal/integrations/email"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeMailer struct {
	sent []email.Message
	err  error
}

func (m *fakeMailer) Send(_ context.Context, msg email.Message) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, msg)
	return nil
}

var business = Business{
	Name:      "Burrell & Co. Mobile Detailing",
	Email:     "shop@example.com",
	OwnerName: "Shawn",
}

func validRequest() Request {
	return Request{
		Name:    "  Jane Doe ",
		Phone:   "(951) 555-0142",
		Email:   "jane@example.com",
		Message: "Do you service Temecula on weekends?",
	}
}

func TestExecute_DeliversToBusiness(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewUseCase(mailer, business, 10, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "Thanks for reaching out. Shawn will get back to you shortly!", resp.Message)

	require.Len(t, mailer.sent, 1)
	msg := mailer.sent[0]
	assert.Equal(t, "shop@example.com", msg.To)
	assert.Equal(t, "jane@example.com", msg.ReplyTo)
	assert.Equal(t, "New Message: Jane Doe", msg.Subject)
	assert.Contains(t, msg.Body, "Phone: (951) 555-0142")
	assert.Contains(t, msg.Body, "Do you service Temecula on weekends?")
}

func TestExecute_EmailIsOptional(t *testing.T) {
	mailer := &fakeMailer{}
	uc := NewUseCase(mailer, business, 10, nopLogger{})

	req := validRequest()
	req.Email = ""
	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Len(t, mailer.sent, 1)
	assert.Empty(t, mailer.sent[0].ReplyTo)
	assert.NotContains(t, mailer.sent[0].Body, "Email:")
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		modify func(r *Request)
	}{
		{name: "blank name", modify: func(r *Request) { r.Name = "   " }},
		{name: "short phone", modify: func(r *Request) { r.Phone = "555-0142" }},
		{name: "letters in phone", modify: func(r *Request) { r.Phone = "951-555-CALL" }},
		{name: "bad email", modify: func(r *Request) { r.Email = "jane@" }},
		{name: "blank message", modify: func(r *Request) { r.Message = "\n" }},
		{name: "long message", modify: func(r *Request) { r.Message = strings.Repeat("a", 2001) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mailer := &fakeMailer{}
			uc := NewUseCase(mailer, business, 10, nopLogger{})

			req := validRequest()
			tt.modify(&req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInquiry)
			assert.Empty(t, mailer.sent)
		})
	}
}

func TestExecute_DeliveryFailure(t *testing.T) {
	uc := NewUseCase(&fakeMailer{err: errors.New("relay down")}, business, 10, nopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDeliveryFailed)
}

func TestExecute_WorksWithMailtoFallback(t *testing.T) {
	uc := NewUseCase(email.NewMailtoSender(nopLogger{}), business, 10, nopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Message)
}
