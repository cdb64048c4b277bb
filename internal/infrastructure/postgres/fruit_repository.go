package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

var _ repository.FruitRepository = (*FruitRepo)(nil)

// FruitRepo implementación del puerto FruitRepository sobre PostgreSQL
// (usable con pool o tx). La unicidad de name la garantiza el constraint
// UNIQUE de la tabla, no esta capa.
type FruitRepo struct {
	q Querier
}

// NewFruitRepository construye el adaptador de persistencia. Pasar pool o tx (Querier).
func NewFruitRepository(q Querier) *FruitRepo {
	return &FruitRepo{q: q}
}

// FindByName busca una fruta por nombre exacto. Devuelve (nil, nil) si no existe.
func (r *FruitRepo) FindByName(name string) (*entity.Fruit, error) {
	query := `
		SELECT id, name, description, storage_limit, amount_stored, created_at, updated_at
		FROM fruits WHERE name = $1`
	var (
		f    entity.Fruit
		desc string
	)
	err := r.q.QueryRow(context.Background(), query, name).Scan(
		&f.ID, &f.Name, &desc, &f.Limit, &f.Stored, &f.CreatedAt, &f.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get fruit: %w", err)
	}
	description, err := entity.NewDescription(desc)
	if err != nil {
		return nil, fmt.Errorf("rehidratar descripción: %w", err)
	}
	f.Description = description
	return &f, nil
}

// Save hace upsert por identidad (id), nunca por nombre. Un choque con el
// UNIQUE de name se traduce a ErrDuplicateName.
func (r *FruitRepo) Save(fruit *entity.Fruit) error {
	query := `
		INSERT INTO fruits (id, name, description, storage_limit, amount_stored, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			description = EXCLUDED.description,
			storage_limit = EXCLUDED.storage_limit,
			amount_stored = EXCLUDED.amount_stored,
			updated_at = EXCLUDED.updated_at`
	_, err := r.q.Exec(context.Background(), query,
		fruit.ID, fruit.Name, fruit.Description.Value(), fruit.Limit, fruit.Stored,
		fruit.CreatedAt, fruit.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("save fruit: %w", err)
	}
	return nil
}

// Delete elimina la fruta por nombre. Idempotente: un nombre ausente no es error.
func (r *FruitRepo) Delete(name string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM fruits WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("delete fruit: %w", err)
	}
	return nil
}
