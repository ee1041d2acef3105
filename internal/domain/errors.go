package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrProjectNotFound = errors.New("proyecto no encontrado")
	ErrDuplicate       = errors.New("recurso duplicado")
)
