package submit_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// UseCase use case отправки бронирования
// Реализует шлюз отправки для черновика: сохраняет заявку и уведомляет бизнес и клиента
type UseCase struct {
	bookingRepo  BookingRepository
	mailer       EmailSender
	metrics      MetricsRecorder
	business     Business
	serviceName  string
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	mailer EmailSender,
	metrics MetricsRecorder,
	business Business,
	serviceName string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		mailer:       mailer,
		metrics:      metrics,
		business:     business,
		serviceName:  serviceName,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Submit сохраняет бронирование и отправляет уведомления
// Повторный вызов с тем же ключом идемпотентности возвращает тот же код и не дублирует письма
func (uc *UseCase) Submit(ctx context.Context, req *domain.BookingRequest) (string, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Error("SubmitBooking: rejected request: %v", err)
		uc.observe(OutcomeInvalid)
		return "", err
	}

	uc.logger.Info("SubmitBooking: draft=%s, key=%s, service=%s, slot=%s %s, total=%d",
		req.DraftID, req.IdempotencyKey, req.ServiceID, req.Slot.DateString(), req.Slot.Label, req.Price.Total)

	// 2. Сохраняем бронирование (идемпотентно по ключу)
	booking, inserted, err := uc.bookingRepo.Create(ctx, domain.NewBookingFromRequest(req, ConfirmationCode(req.IdempotencyKey)))
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to save booking key=%s: %v", req.IdempotencyKey, err)
		uc.observe(OutcomeStorageError)
		return "", fmt.Errorf("%w: failed to save booking: %v", ErrInternal, err)
	}

	if !inserted {
		uc.logger.Info("SubmitBooking: retry for existing booking id=%d, code=%s", booking.ID, booking.ConfirmationCode)
	}

	// 3. Уведомления уже отправлены при предыдущей попытке
	if booking.IsNotified() {
		uc.observe(OutcomeDuplicate)
		return booking.ConfirmationCode, nil
	}

	// 4. Письмо бизнесу обязательно, без него заявка не считается доставленной
	if err := uc.mailer.Send(ctx, businessMessage(booking, req, uc.business)); err != nil {
		uc.logger.Error("SubmitBooking: failed to notify business about booking id=%d: %v", booking.ID, err)
		uc.observe(OutcomeNotificationFailed)
		return "", fmt.Errorf("%w: %v", ErrNotificationFailed, err)
	}

	// 5. Письмо клиенту отправляется по возможности
	if err := uc.mailer.Send(ctx, customerMessage(booking, req, uc.business)); err != nil {
		uc.logger.Warn("SubmitBooking: failed to send confirmation to %s for booking id=%d: %v",
			booking.Contact.Email, booking.ID, err)
	}

	// 6. Отмечаем отправку уведомлений
	if err := uc.bookingRepo.MarkNotified(ctx, booking.ID, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("SubmitBooking: failed to mark booking id=%d as notified: %v", booking.ID, err)
	}

	uc.observe(OutcomeConfirmed)
	if uc.metrics != nil {
		uc.metrics.ObserveBookingTotal(uc.serviceName, string(booking.VehicleClass), booking.Total)
	}

	uc.logger.Info("SubmitBooking: booking id=%d confirmed, code=%s", booking.ID, booking.ConfirmationCode)
	return booking.ConfirmationCode, nil
}

func (uc *UseCase) observe(outcome string) {
	if uc.metrics != nil {
		uc.metrics.ObserveBookingSubmission(uc.serviceName, outcome)
	}
}
