package email

import (
	"context"
	"net/url"
	"strings"
)

// MailtoSender заглушка для окружений без SendGrid
// Не отправляет письмо, а логирует готовую mailto: ссылку
type MailtoSender struct {
	log Logger
}

// NewMailtoSender создает заглушку отправки писем
func NewMailtoSender(log Logger) *MailtoSender {
	return &MailtoSender{log: log}
}

// Send логирует mailto: ссылку письма
func (s *MailtoSender) Send(ctx context.Context, msg Message) error {
	if err := validateMessage(msg); err != nil {
		return err
	}

	s.log.Info("Mailto: email is not configured, compose manually: %s", MailtoLink(msg))
	return nil
}

// MailtoLink формирует ссылку mailto: с темой и текстом письма
func MailtoLink(msg Message) string {
	query := "subject=" + escape(msg.Subject) + "&body=" + escape(msg.Body)
	return "mailto:" + msg.To + "?" + query
}

// escape кодирует значение для mailto: (пробел как %20, а не +)
func escape(value string) string {
	return strings.ReplaceAll(url.QueryEscape(value), "+", "%20")
}
