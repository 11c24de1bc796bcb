package submit_booking

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
	"github.com/m04kA/SMC-DetailingService/internal/integrations/email"
)

// businessMessage письмо бизнесу о новой заявке
func businessMessage(b *domain.Booking, req *domain.BookingRequest, business Business) email.Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Name: %s\n", b.Contact.Name)
	fmt.Fprintf(&body, "Email: %s\n", b.Contact.Email)
	fmt.Fprintf(&body, "Phone: %s\n", b.Contact.Phone)
	fmt.Fprintf(&body, "Vehicle: %s\n", b.VehicleClass.Label())
	fmt.Fprintf(&body, "Service: %s\n", b.ServiceTitle)
	fmt.Fprintf(&body, "Add-ons: %s\n", addOnTitles(req))
	fmt.Fprintf(&body, "Preferred Date: %s at %s\n", b.Slot.DateString(), b.Slot.Label)
	fmt.Fprintf(&body, "Location: %s\n\n", b.Contact.Address)
	writePrice(&body, req)
	fmt.Fprintf(&body, "\nConfirmation: %s\n\n", b.ConfirmationCode)
	fmt.Fprintf(&body, "Sent from %s booking service\n", business.Name)

	return email.Message{
		To:      business.Email,
		ToName:  business.Name,
		ReplyTo: b.Contact.Email,
		Subject: fmt.Sprintf("New Booking Request: %s - %s", b.Contact.Name, b.ServiceTitle),
		Body:    body.String(),
	}
}

// customerMessage письмо клиенту с подтверждением заявки
func customerMessage(b *domain.Booking, req *domain.BookingRequest, business Business) email.Message {
	var body strings.Builder
	fmt.Fprintf(&body, "Thank you, %s.\n\n", b.Contact.Name)
	fmt.Fprintf(&body, "We have received your booking request for the %s on %s at %s.\n",
		b.ServiceTitle, b.Slot.DateString(), b.Slot.Label)
	fmt.Fprintf(&body, "Our team will contact you at %s shortly to confirm the details.\n\n", b.Contact.Phone)
	fmt.Fprintf(&body, "Vehicle: %s\n", b.VehicleClass.Label())
	fmt.Fprintf(&body, "Add-ons: %s\n", addOnTitles(req))
	fmt.Fprintf(&body, "Location: %s\n\n", b.Contact.Address)
	writePrice(&body, req)
	fmt.Fprintf(&body, "\nYour confirmation code: %s\n", b.ConfirmationCode)
	fmt.Fprintf(&body, "Questions? Call or text us at %s.\n\n%s\n", business.Phone, business.Name)

	return email.Message{
		To:      b.Contact.Email,
		ToName:  b.Contact.Name,
		ReplyTo: business.Email,
		Subject: business.ConfirmationSubject,
		Body:    body.String(),
	}
}

func writePrice(body *strings.Builder, req *domain.BookingRequest) {
	for _, line := range req.Price.Lines {
		fmt.Fprintf(body, "%s: %s\n", line.Title, domain.FormatCents(line.Amount))
	}
	fmt.Fprintf(body, "Estimated total: %s\n", domain.FormatCents(req.Price.Total))
}

func addOnTitles(req *domain.BookingRequest) string {
	titles := make([]string, 0, len(req.Price.Lines))
	for _, line := range req.Price.Lines {
		if line.ID == req.ServiceID {
			continue
		}
		titles = append(titles, line.Title)
	}
	if len(titles) == 0 {
		return "None"
	}
	return strings.Join(titles, ", ")
}
