package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Tipos de evento de dominio conocidos.
const EventTypeFruitCreated = "FruitCreated"

// OutboxEvent evento de dominio pendiente de entrega (patrón transactional outbox).
// Inmutable salvo Delivered/DeliveredAt; nunca referencia la fila viva de la fruta,
// el payload es autocontenido.
type OutboxEvent struct {
	EventID     string
	Type        string
	Payload     json.RawMessage
	OccurredAt  time.Time
	Delivered   bool
	DeliveredAt *time.Time
}

// FruitCreatedPayload datos del evento FruitCreated.
type FruitCreatedPayload struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Limit       int    `json:"limit"`
}

// NewFruitCreatedEvent construye el evento FruitCreated para una fruta recién creada.
// El EventID lo asigna el productor, no el almacén.
func NewFruitCreatedEvent(fruit *Fruit) (*OutboxEvent, error) {
	payload, err := json.Marshal(FruitCreatedPayload{
		ID:          fruit.ID,
		Name:        fruit.Name,
		Description: fruit.Description.Value(),
		Limit:       fruit.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("serializar payload: %w", err)
	}
	return &OutboxEvent{
		EventID:    uuid.New().String(),
		Type:       EventTypeFruitCreated,
		Payload:    payload,
		OccurredAt: time.Now(),
		Delivered:  false,
	}, nil
}
