package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrInvalidNumber     = errors.New("valor numérico inválido")
	ErrInvalidDate       = errors.New("fecha inválida, formato esperado AAAA-MM-DD")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidBackup     = errors.New("archivo de respaldo inválido")
)
