package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("fruta no encontrada")
	ErrDuplicateName      = errors.New("el nombre de la fruta ya existe")
	ErrInvalidDescription = errors.New("la descripción supera el largo máximo")
	ErrInvalidAmount      = errors.New("cantidad inválida")
	ErrCapacityExceeded   = errors.New("capacidad de almacenamiento excedida")
	ErrInsufficientStock  = errors.New("stock insuficiente")
	ErrNonEmptyStock      = errors.New("la fruta aún tiene stock almacenado")
	ErrDeliveryFailed     = errors.New("entrega del evento fallida")
)
