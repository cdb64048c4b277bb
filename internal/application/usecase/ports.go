package usecase

import (
	"context"

	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la fruta nueva y su evento
// en el outbox se persistan en el mismo límite de durabilidad.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		fruitRepo repository.FruitRepository,
		outboxRepo repository.OutboxRepository,
	) error) error
}
