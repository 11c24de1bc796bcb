package send_inquiry

// Request сообщение из формы обратной связи
type Request struct {
	Name    string
	Phone   string
	Email   string // опционально, используется как Reply-To
	Message string
}

// Response ответ клиенту после отправки
type Response struct {
	Message string
}

// Business реквизиты бизнеса, получающего сообщения
type Business struct {
	Name      string
	Email     string
	OwnerName string
}
