package usecase

import (
	"context"

	"github.com/jhoicas/fruteria-api/internal/application/dto"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/internal/domain/service"
)

// FruitUseCase casos de uso del almacén de frutas. Cada operación es una
// unidad de orquestación: cargar → validar/mutar la entidad → persistir →
// devolver la entidad resultante (o el snapshot previo en Delete).
type FruitUseCase struct {
	repo     repository.FruitRepository
	checker  *service.NameUniquenessChecker
	txRunner TxRunner
}

// NewFruitUseCase construye el caso de uso.
func NewFruitUseCase(repo repository.FruitRepository, checker *service.NameUniquenessChecker, txRunner TxRunner) *FruitUseCase {
	return &FruitUseCase{repo: repo, checker: checker, txRunner: txRunner}
}

// Create crea una fruta nueva con Stored = 0 y deja el evento FruitCreated
// en el outbox dentro de la misma transacción que el insert.
func (uc *FruitUseCase) Create(ctx context.Context, in dto.CreateFruitRequest) (*dto.FruitResponse, error) {
	unique, err := uc.checker.IsUnique(in.Name)
	if err != nil {
		return nil, err
	}
	if !unique {
		return nil, domain.ErrDuplicateName
	}

	fruit, err := entity.NewFruit(in.Name, in.Description, in.Limit)
	if err != nil {
		return nil, err
	}
	event, err := entity.NewFruitCreatedEvent(fruit)
	if err != nil {
		return nil, err
	}

	err = uc.txRunner.Run(ctx, func(fruitRepo repository.FruitRepository, outboxRepo repository.OutboxRepository) error {
		if err := fruitRepo.Save(fruit); err != nil {
			return err
		}
		return outboxRepo.SaveEvent(event)
	})
	if err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// Find obtiene una fruta por nombre.
func (uc *FruitUseCase) Find(name string) (*dto.FruitResponse, error) {
	fruit, err := uc.load(name)
	if err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// Store suma stock respetando el límite de almacenamiento.
func (uc *FruitUseCase) Store(name string, amount int) (*dto.FruitResponse, error) {
	fruit, err := uc.load(name)
	if err != nil {
		return nil, err
	}
	if err := fruit.Store(amount); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(fruit); err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// Remove retira stock si hay suficiente almacenado.
func (uc *FruitUseCase) Remove(name string, amount int) (*dto.FruitResponse, error) {
	fruit, err := uc.load(name)
	if err != nil {
		return nil, err
	}
	if err := fruit.Remove(amount); err != nil {
		return nil, err
	}
	if err := uc.repo.Save(fruit); err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// Update reemplaza descripción y límite completos. El nombre no se renombra.
func (uc *FruitUseCase) Update(name string, in dto.UpdateFruitRequest) (*dto.FruitResponse, error) {
	fruit, err := uc.load(name)
	if err != nil {
		return nil, err
	}
	desc, err := entity.NewDescription(in.Description)
	if err != nil {
		return nil, err
	}
	fruit.SetDescription(desc)
	fruit.SetLimit(in.Limit)
	if err := uc.repo.Save(fruit); err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// Delete elimina la fruta y devuelve el snapshot previo al borrado.
// Sin forceDelete solo se permite con stock en cero.
func (uc *FruitUseCase) Delete(name string, forceDelete bool) (*dto.FruitResponse, error) {
	fruit, err := uc.load(name)
	if err != nil {
		return nil, err
	}
	if !forceDelete && fruit.Stored > 0 {
		return nil, domain.ErrNonEmptyStock
	}
	if err := uc.repo.Delete(name); err != nil {
		return nil, err
	}
	return toFruitResponse(fruit), nil
}

// load carga la entidad o falla con ErrNotFound.
func (uc *FruitUseCase) load(name string) (*entity.Fruit, error) {
	fruit, err := uc.repo.FindByName(name)
	if err != nil {
		return nil, err
	}
	if fruit == nil {
		return nil, domain.ErrNotFound
	}
	return fruit, nil
}

func toFruitResponse(f *entity.Fruit) *dto.FruitResponse {
	if f == nil {
		return nil
	}
	return &dto.FruitResponse{
		ID:          f.ID,
		Name:        f.Name,
		Description: f.Description.Value(),
		Limit:       f.Limit,
		Stored:      f.Stored,
		CreatedAt:   f.CreatedAt,
		UpdatedAt:   f.UpdatedAt,
	}
}
