package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда снимок черновика отсутствует или истек
	ErrDraftNotFound = errors.New("drafts.repository: draft not found")

	// ErrEncode возвращается при ошибке сериализации снимка
	ErrEncode = errors.New("drafts.repository: failed to encode snapshot")

	// ErrDecode возвращается при ошибке десериализации снимка
	ErrDecode = errors.New("drafts.repository: failed to decode snapshot")

	// ErrStorage возвращается при ошибке обращения к Redis
	ErrStorage = errors.New("drafts.repository: storage error")
)
