package chathistory

import "errors"

var (
	// ErrEncode возвращается при ошибке сериализации сообщения
	ErrEncode = errors.New("chathistory.repository: failed to encode message")

	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("chathistory.repository: storage error")
)
