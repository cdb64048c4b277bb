package repository

import (
	"time"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
)

// OutboxRepository define el puerto para la cola durable de eventos de dominio.
// Es una interfaz pequeña: solo lo que necesitan el productor y el barrido de entrega.
type OutboxRepository interface {
	// SaveEvent agrega el evento con Delivered = false.
	SaveEvent(event *entity.OutboxEvent) error
	// ListPending devuelve los eventos no entregados, del más antiguo al más nuevo.
	ListPending() ([]*entity.OutboxEvent, error)
	// MarkDelivered marca un único evento como entregado con su timestamp.
	MarkDelivered(eventID string, deliveredAt time.Time) error
}
