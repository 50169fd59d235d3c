package authenticating

import "errors"

var (
	ErrInvalidToken    = errors.New("token inválido")
	ErrExpiredToken    = errors.New("token expirado")
	ErrMissingSession  = errors.New("token sem sessão")
	ErrSessionMismatch = errors.New("token pertence a outra sessão")
)
