package domain

import "strings"

// Contact holds the customer's contact details and the service address
type Contact struct {
	Name    string
	Email   string
	Phone   string
	Address string
}

// Normalized returns a copy with surrounding whitespace removed from every field
func (c Contact) Normalized() Contact {
	return Contact{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Address: strings.TrimSpace(c.Address),
	}
}

// IsComplete returns true if no field is blank
func (c Contact) IsComplete() bool {
	n := c.Normalized()
	return n.Name != "" && n.Email != "" && n.Phone != "" && n.Address != ""
}

// MaxPhoneDigits is the longest phone number accepted (E.164)
const MaxPhoneDigits = 15

// PhoneDigits counts the digits of a phone number
// Spaces and "+-()." separators are allowed; ok is false for any other character
func PhoneDigits(phone string) (digits int, ok bool) {
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '+' || r == '-' || r == '(' || r == ')' || r == '.':
		default:
			return digits, false
		}
	}
	return digits, true
}
