package draft

import (
	"time"

	"github.com/m04kA/SMC-DetailingService/internal/domain"
)

// DefaultSubmitTimeout ограничение времени вызова шлюза
const DefaultSubmitTimeout = 30 * time.Second

// Deps зависимости машины состояний черновика
type Deps struct {
	Catalog       Catalog
	Pricing       Pricing
	Availability  Availability
	Gateway       Gateway
	Clock         TimeProvider
	Policy        ContactPolicy
	Listener      Listener // опционально
	Logger        Logger   // опционально
	SubmitTimeout time.Duration
}

// SubmissionResult результат завершенной отправки
type SubmissionResult struct {
	Snapshot       domain.DraftSnapshot
	ConfirmationID string
	Err            error
	Detached       bool // вызывающий код не дождался результата
}
