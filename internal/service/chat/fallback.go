package chat

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

const offlineReply = "I'm currently operating in offline mode. I can help you with general questions about our services like Interior, Exterior, or Maintenance washes. How can I help?"

// fallbackReply отвечает по ключевым словам, когда модель недоступна
func fallbackReply(message string, services []domain.ServicePackage) string {
	msg := strings.ToLower(message)

	switch {
	case containsAny(msg, "price", "cost", "how much"):
		return fmt.Sprintf("Our pricing depends on your vehicle size. Maintenance washes start at %s for sedans, while Full Interior Details start at %s. Would you like a specific quote for your car?",
			startingAt(services, "maintenance-wash"), startingAt(services, "full-interior"))
	case strings.Contains(msg, "interior"):
		return fmt.Sprintf("Our Full Interior Detail is perfect for refreshing your cabin. It includes deep cleaning of seats, carpets, and all surfaces. Prices start at %s for sedans.",
			startingAt(services, "full-interior"))
	case containsAny(msg, "exterior", "wash"):
		return fmt.Sprintf("We offer a Maintenance Wash starting at %s and a Full Exterior Detail starting at %s which includes clay bar treatment and sealant.",
			startingAt(services, "maintenance-wash"), startingAt(services, "full-exterior"))
	case containsAny(msg, "book", "appointment"):
		return "You can book directly through our website! Just click the 'Book Now' button at the top or bottom of the screen."
	}
	return offlineReply
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func startingAt(services []domain.ServicePackage, id string) string {
	for _, s := range services {
		if s.ID == id {
			return domain.FormatCents(s.PriceFor(domain.VehicleSedan))
		}
	}
	return "a fair price"
}
