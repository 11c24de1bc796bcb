package nominatim

import "strings"

func (a *addressDetail) locality() string {
	for _, v := range []string{a.City, a.Town, a.Village, a.Hamlet} {
		if v != "" {
			return v
		}
	}
	return ""
}

// formatAddress собирает адрес вида "<номер> <улица>, <город>, <штат> <индекс>", пропуская пустые части
func formatAddress(a *addressDetail, state string) string {
	parts := make([]string, 0, 3)
	if street := strings.TrimSpace(a.HouseNumber + " " + a.Road); street != "" {
		parts = append(parts, street)
	}
	if city := a.locality(); city != "" {
		parts = append(parts, city)
	}
	if tail := strings.TrimSpace(state + " " + a.Postcode); tail != "" {
		parts = append(parts, tail)
	}
	return strings.Join(parts, ", ")
}

func toAddress(p place, state string) Address {
	a := p.Address
	if a == nil {
		a = &addressDetail{}
	}
	if state == "" {
		state = a.State
	}

	return Address{
		PlaceID:     p.PlaceID,
		DisplayName: formatAddress(a, state),
		HouseNumber: a.HouseNumber,
		Road:        a.Road,
		City:        a.locality(),
		State:       state,
		Postcode:    a.Postcode,
		Lat:         p.Lat,
		Lon:         p.Lon,
	}
}

// isUsable отбрасывает результаты, не являющиеся адресом
// Если запрос начинается с цифры, нужен конкретный дом на улице
func isUsable(p place, query string) bool {
	if p.Address == nil {
		return false
	}
	if startsWithDigit(query) {
		return p.Address.HouseNumber != "" && p.Address.Road != ""
	}
	return p.Address.Road != "" || p.Address.City != "" || p.Address.Town != "" || p.Address.Village != ""
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}

func isPostcode(s string) bool {
	if len(s) != 5 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
