package dto

import "time"

// CreateFruitRequest entrada para crear una fruta.
type CreateFruitRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description" validate:"max=30"`
	Limit       int    `json:"limit" validate:"min=0"`
}

// UpdateFruitRequest entrada para actualizar descripción y límite (reemplazo completo).
type UpdateFruitRequest struct {
	Description string `json:"description" validate:"max=30"`
	Limit       int    `json:"limit" validate:"min=0"`
}

// AmountRequest entrada para almacenar o retirar stock.
type AmountRequest struct {
	Amount int `json:"amount" validate:"min=0"`
}

// FruitResponse salida de una fruta.
type FruitResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Limit       int       `json:"limit"`
	Stored      int       `json:"stored"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
