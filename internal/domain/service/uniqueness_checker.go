package service

import (
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
)

// NameUniquenessChecker servicio de dominio: verifica que ningún registro
// existente use el nombre candidato antes de crear una fruta.
// Lectura pura, sin efectos. No protege contra creaciones concurrentes del
// mismo nombre; eso lo cierra el constraint UNIQUE sobre fruits.name.
type NameUniquenessChecker struct {
	repo repository.FruitRepository
}

// NewNameUniquenessChecker construye el servicio.
func NewNameUniquenessChecker(repo repository.FruitRepository) *NameUniquenessChecker {
	return &NameUniquenessChecker{repo: repo}
}

// IsUnique devuelve true si ninguna fruta existente usa el nombre.
func (s *NameUniquenessChecker) IsUnique(name string) (bool, error) {
	fruit, err := s.repo.FindByName(name)
	if err != nil {
		return false, err
	}
	return fruit == nil, nil
}
