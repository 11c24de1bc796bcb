package send_inquiry

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// UseCase use case отправки сообщения из формы обратной связи
type UseCase struct {
	mailer         EmailSender
	business       Business
	minPhoneDigits int
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(mailer EmailSender, business Business, minPhoneDigits int, logger Logger) *UseCase {
	if minPhoneDigits <= 0 {
		minPhoneDigits = domain.DefaultMinPhoneDigits
	}
	return &UseCase{
		mailer:         mailer,
		business:       business,
		minPhoneDigits: minPhoneDigits,
		logger:         logger,
	}
}

// Execute проверяет сообщение и пересылает его бизнесу письмом
func (uc *UseCase) Execute(ctx context.Context, req Request) (*Response, error) {
	// 1. Валидация входных данных
	req = normalize(req)
	if err := validateRequest(req, uc.minPhoneDigits); err != nil {
		uc.logger.Warn("SendInquiry: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("SendInquiry: message from %s, %d characters", req.Name, len(req.Message))

	// 2. Отправляем письмо бизнесу
	if err := uc.mailer.Send(ctx, inquiryMessage(req, uc.business)); err != nil {
		uc.logger.Error("SendInquiry: failed to deliver message from %s: %v", req.Name, err)
		return nil, fmt.Errorf("%w: %v", ErrDeliveryFailed, err)
	}

	uc.logger.Info("SendInquiry: message from %s delivered to %s", req.Name, uc.business.Email)
	return &Response{
		Message: fmt.Sprintf("Thanks for reaching out. %s will get back to you shortly!", uc.ownerName()),
	}, nil
}

func (uc *UseCase) ownerName() string {
	if uc.business.OwnerName != "" {
		return uc.business.OwnerName
	}
	return "We"
}
