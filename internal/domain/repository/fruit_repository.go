package repository

import "github.com/jhoicas/fruteria-api/internal/domain/entity"

// FruitRepository define el puerto de persistencia para Fruit (DIP).
// FindByName devuelve (nil, nil) si no existe. Save hace upsert por ID,
// nunca por nombre. Delete es idempotente: borrar un nombre ausente no falla.
type FruitRepository interface {
	FindByName(name string) (*entity.Fruit, error)
	Save(fruit *entity.Fruit) error
	Delete(name string) error
}
