package draft

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ContactPolicy правила проверки контактных данных
type ContactPolicy struct {
	MinPhoneDigits int
	MaxFieldLength int
}

// DefaultContactPolicy возвращает правила по умолчанию
func DefaultContactPolicy() ContactPolicy {
	return ContactPolicy{
		MinPhoneDigits: domain.DefaultMinPhoneDigits,
		MaxFieldLength: domain.MaxContactFieldLength,
	}
}

// Validate проверяет контакт (ожидаются значения без пробелов по краям)
func (p ContactPolicy) Validate(c domain.Contact) error {
	fields := []struct {
		name  string
		value string
	}{
		{"name", c.Name},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
	}
	for _, f := range fields {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidContact, f.name)
		}
		if p.MaxFieldLength > 0 && utf8.RuneCountInString(f.value) > p.MaxFieldLength {
			return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidContact, f.name, p.MaxFieldLength)
		}
	}

	if !emailPattern.MatchString(c.Email) {
		return fmt.Errorf("%w: email has invalid format", ErrInvalidContact)
	}

	digits, ok := domain.PhoneDigits(c.Phone)
	if !ok {
		return fmt.Errorf("%w: phone contains invalid characters", ErrInvalidContact)
	}
	if digits < p.MinPhoneDigits || digits > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d to %d digits", ErrInvalidContact, p.MinPhoneDigits, domain.MaxPhoneDigits)
	}

	return nil
}
