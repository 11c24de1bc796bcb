package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "github.com/m04kA/SMC-DetailingService/internal/infra/storage/booking"
	"github.com/m04kA/SMC-DetailingService/internal/service/bookings/models"
)

// Service сервис для просмотра отправленных бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByConfirmationCode получает бронирование по коду подтверждения
// Доступ разрешен только при совпадении email клиента (без учета регистра)
func (s *Service) GetByConfirmationCode(ctx context.Context, code, email string) (*models.BookingResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	email = strings.TrimSpace(email)
	if code == "" || email == "" {
		return nil, fmt.Errorf("%w: confirmation code and email are required", ErrInvalidInput)
	}

	s.logger.Info("GetByConfirmationCode: fetching booking code=%s", code)

	booking, err := s.bookingRepo.GetByConfirmationCode(ctx, code)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByConfirmationCode: booking code=%s not found", code)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByConfirmationCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: GetByConfirmationCode - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if !strings.EqualFold(booking.Contact.Email, email) {
		s.logger.Warn("GetByConfirmationCode: email mismatch for code=%s", code)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByConfirmationCode: successfully fetched booking code=%s", code)
	return models.FromDomainBooking(booking), nil
}
