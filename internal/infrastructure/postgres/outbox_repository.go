package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

var _ repository.OutboxRepository = (*OutboxRepo)(nil)

// OutboxRepo implementación de OutboxRepository sobre PostgreSQL (usable con
// pool o tx). Los eventos son append-only; solo mutan delivered/delivered_at.
type OutboxRepo struct {
	q Querier
}

// NewOutboxRepository construye el adaptador del outbox. Pasar pool o tx (Querier).
func NewOutboxRepository(q Querier) *OutboxRepo {
	return &OutboxRepo{q: q}
}

// SaveEvent agrega el evento con delivered = false.
func (r *OutboxRepo) SaveEvent(event *entity.OutboxEvent) error {
	query := `
		INSERT INTO outbox_events (event_id, type, payload, delivered, occurred_at)
		VALUES ($1, $2, $3, false, $4)`
	_, err := r.q.Exec(context.Background(), query,
		event.EventID, event.Type, event.Payload, event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event: %w", err)
	}
	return nil
}

// ListPending lista los eventos no entregados, del más antiguo al más nuevo.
func (r *OutboxRepo) ListPending() ([]*entity.OutboxEvent, error) {
	query := `
		SELECT event_id, type, payload, delivered, occurred_at, delivered_at
		FROM outbox_events WHERE NOT delivered ORDER BY occurred_at`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list pending events: %w", err)
	}
	defer rows.Close()
	var events []*entity.OutboxEvent
	for rows.Next() {
		var e entity.OutboxEvent
		if err := rows.Scan(&e.EventID, &e.Type, &e.Payload, &e.Delivered, &e.OccurredAt, &e.DeliveredAt); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		events = append(events, &e)
	}
	return events, rows.Err()
}

// MarkDelivered marca un único evento como entregado.
func (r *OutboxRepo) MarkDelivered(eventID string, deliveredAt time.Time) error {
	_, err := r.q.Exec(context.Background(),
		`UPDATE outbox_events SET delivered = true, delivered_at = $2 WHERE event_id = $1`,
		eventID, deliveredAt,
	)
	if err != nil {
		return fmt.Errorf("mark event delivered: %w", err)
	}
	return nil
}
