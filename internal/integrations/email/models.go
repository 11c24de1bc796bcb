package email

// Message письмо для отправки
type Message struct {
	To      string
	ToName  string
	ReplyTo string // опционально
	Subject string
	Body    string // plain text
}

// Config настройки отправителя SendGrid
type Config struct {
	APIKey    string
	FromEmail string
	FromName  string
	BaseURL   string // переопределение адреса API, используется в тестах
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
