package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/fruteria-api/internal/domain"
)

// Fruit representa el registro de inventario de una fruta con capacidad acotada.
// Invariante: 0 <= Stored <= Limit después de toda mutación exitosa.
// Name es la clave única legible; no existe operación de renombre.
type Fruit struct {
	ID          string
	Name        string
	Description Description
	Limit       int
	Stored      int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewFruit fábrica de frutas: genera el ID, valida la descripción y arranca con Stored = 0.
func NewFruit(name, description string, limit int) (*Fruit, error) {
	desc, err := NewDescription(description)
	if err != nil {
		return nil, err
	}
	if limit < 0 {
		return nil, domain.ErrInvalidAmount
	}
	now := time.Now()
	return &Fruit{
		ID:          uuid.New().String(),
		Name:        name,
		Description: desc,
		Limit:       limit,
		Stored:      0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Store suma amount al stock. Rechaza cantidades negativas y falla sin
// efecto parcial si se supera el límite de almacenamiento.
func (f *Fruit) Store(amount int) error {
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	if f.Stored+amount > f.Limit {
		return domain.ErrCapacityExceeded
	}
	f.Stored += amount
	f.UpdatedAt = time.Now()
	return nil
}

// Remove resta amount del stock. Falla sin efecto parcial si no hay suficiente almacenado.
func (f *Fruit) Remove(amount int) error {
	if amount < 0 {
		return domain.ErrInvalidAmount
	}
	if amount > f.Stored {
		return domain.ErrInsufficientStock
	}
	f.Stored -= amount
	f.UpdatedAt = time.Now()
	return nil
}

// SetDescription reemplaza la descripción completa.
func (f *Fruit) SetDescription(desc Description) {
	f.Description = desc
	f.UpdatedAt = time.Now()
}

// SetLimit reemplaza el límite sin re-validar contra Stored: bajar el límite
// por debajo del stock actual es política aceptada (el invariante se exige
// sobre mutaciones de stock, no sobre cambios de límite).
func (f *Fruit) SetLimit(limit int) {
	f.Limit = limit
	f.UpdatedAt = time.Now()
}
