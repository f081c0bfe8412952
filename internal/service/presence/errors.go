package presence

import (
	"errors"

	"dispatch/internal/service/entry"
)

var (
	// Курьеров читает общий репозиторий аккаунтов, sentinel один на всех.
	ErrCourierNotFound = entry.ErrCourierNotFound

	ErrCourierBusy  = errors.New("courier holds an active entry")
	ErrInvalidLimit = errors.New("history limit must be positive")
)
