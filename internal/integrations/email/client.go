package email

import (
	"context"
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const sendEndpoint = "/v3/mail/send"

// Client отправляет письма через SendGrid API
type Client struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       Logger
}

// NewClient создает клиент SendGrid
// Возвращает nil, если API ключ не задан
func NewClient(cfg Config, log Logger) *Client {
	if cfg.APIKey == "" {
		return nil
	}

	client := sendgrid.NewSendClient(cfg.APIKey)
	if cfg.BaseURL != "" {
		client.Request.BaseURL = strings.TrimRight(cfg.BaseURL, "/") + sendEndpoint
	}

	return &Client{
		client:    client,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
		log:       log,
	}
}

// Send отправляет письмо
func (c *Client) Send(ctx context.Context, msg Message) error {
	if c == nil || c.client == nil {
		return ErrNotConfigured
	}
	if err := validateMessage(msg); err != nil {
		return err
	}

	from := mail.NewEmail(c.fromName, c.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmailPlainText(from, msg.Subject, to, msg.Body)
	if msg.ReplyTo != "" {
		message.SetReplyTo(mail.NewEmail("", msg.ReplyTo))
	}

	response, err := c.client.SendWithContext(ctx, message)
	if err != nil {
		c.log.Error("SendGrid: send to %s failed: %v", msg.To, err)
		return fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	if response.StatusCode >= 400 {
		c.log.Error("SendGrid: status=%d body=%s to=%s", response.StatusCode, response.Body, msg.To)
		return fmt.Errorf("%w: unexpected status code %d", ErrDeliveryFailed, response.StatusCode)
	}

	c.log.Info("SendGrid: email '%s' sent to %s, status=%d", msg.Subject, msg.To, response.StatusCode)
	return nil
}

func validateMessage(msg Message) error {
	if strings.TrimSpace(msg.To) == "" {
		return fmt.Errorf("%w: empty recipient", ErrInvalidMessage)
	}
	if strings.TrimSpace(msg.Subject) == "" {
		return fmt.Errorf("%w: empty subject", ErrInvalidMessage)
	}
	return nil
}
