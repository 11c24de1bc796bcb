package gemini

import "errors"

var (
	// ErrNotConfigured возвращается, если не задан API ключ
	ErrNotConfigured = errors.New("gemini: api key is not configured")

	// ErrEmptyMessage возвращается при пустом сообщении пользователя
	ErrEmptyMessage = errors.New("gemini: empty message")

	// ErrCompletion возвращается при ошибке обращения к модели
	ErrCompletion = errors.New("gemini: completion failed")

	// ErrEmptyResponse возвращается, если модель не вернула текст
	ErrEmptyResponse = errors.New("gemini: empty response")
)
