package send_inquiry

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/integrations/email"
)

// inquiryMessage письмо бизнесу с сообщением из формы
func inquiryMessage(req Request, business Business) email.Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", req.Name)
	fmt.Fprintf(&body, "Phone: %s\n", req.Phone)
	if req.Email != "" {
		fmt.Fprintf(&body, "Email: %s\n", req.Email)
	}
	fmt.Fprintf(&body, "\n%s\n\n", req.Message)
	fmt.Fprintf(&body, "Sent from %s contact form\n", business.Name)

	return email.Message{
		To:      business.Email,
		ToName:  business.Name,
		ReplyTo: req.Email,
		Subject: fmt.Sprintf("New Message: %s", req.Name),
		Body:    body.String(),
	}
}
