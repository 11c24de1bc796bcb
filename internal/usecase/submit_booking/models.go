package submit_booking

// Business реквизиты бизнеса для писем
type Business struct {
	Name                string
	Email               string
	Phone               string
	ConfirmationSubject string
}

// Исходы отправки для метрик
const (
	OutcomeConfirmed          = "confirmed"
	OutcomeDuplicate          = "duplicate"
	OutcomeInvalid            = "invalid"
	OutcomeStorageError       = "storage_error"
	OutcomeNotificationFailed = "notification_failed"
)

const (
	confirmationPrefix = "BC-"
	// 48 бит ключа; символ версии UUID в код не попадает
	confirmationHexLen = 12
)
