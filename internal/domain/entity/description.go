package entity

import (
	"unicode/utf8"

	"github.com/jhoicas/fruteria-api/internal/domain"
)

// DescriptionMaxLength largo máximo de la descripción (en caracteres, no bytes).
const DescriptionMaxLength = 30

// Description value object para la descripción de una fruta.
// Se valida al construir y es inmutable: se reemplaza completa, nunca se edita.
type Description struct {
	value string
}

// NewDescription construye la descripción validando el largo máximo.
// No normaliza (sin trim ni case folding).
func NewDescription(value string) (Description, error) {
	if utf8.RuneCountInString(value) > DescriptionMaxLength {
		return Description{}, domain.ErrInvalidDescription
	}
	return Description{value: value}, nil
}

// Value devuelve el texto de la descripción.
func (d Description) Value() string {
	return d.value
}
