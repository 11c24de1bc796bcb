package send_inquiry

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// normalize убирает пробелы по краям полей
func normalize(req Request) Request {
	return Request{
		Name:    strings.TrimSpace(req.Name),
		Phone:   strings.TrimSpace(req.Phone),
		Email:   strings.TrimSpace(req.Email),
		Message: strings.TrimSpace(req.Message),
	}
}

// validateRequest проверяет поля формы (ожидаются нормализованные значения)
func validateRequest(req Request, minPhoneDigits int) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInquiry)
	}
	if utf8.RuneCountInString(req.Name) > domain.MaxContactFieldLength {
		return fmt.Errorf("%w: name exceeds %d characters", ErrInvalidInquiry, domain.MaxContactFieldLength)
	}

	digits, ok := domain.PhoneDigits(req.Phone)
	if req.Phone == "" || !ok || digits < minPhoneDigits || digits > domain.MaxPhoneDigits {
		return fmt.Errorf("%w: phone must contain %d to %d digits", ErrInvalidInquiry, minPhoneDigits, domain.MaxPhoneDigits)
	}

	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return fmt.Errorf("%w: email has invalid format", ErrInvalidInquiry)
	}

	if req.Message == "" {
		return fmt.Errorf("%w: message is required", ErrInvalidInquiry)
	}
	if utf8.RuneCountInString(req.Message) > domain.MaxInquiryLength {
		return fmt.Errorf("%w: message exceeds %d characters", ErrInvalidInquiry, domain.MaxInquiryLength)
	}

	return nil
}
