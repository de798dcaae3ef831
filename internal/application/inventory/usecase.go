// Package inventory contiene los casos de uso del estoque de roupas:
// cadastro, listado ordenado, edición con conciliación de vendidos y buscadores.
package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	domaininv "github.com/jhoicas/estoque-api/internal/domain/inventory"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// SearchLimit máximo de sugerencias de los buscadores.
const SearchLimit = 10

// UseCase casos de uso del inventario.
type UseCase struct {
	repo     repository.InventoryRepository
	txRunner TxRunner
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.InventoryRepository, txRunner TxRunner) *UseCase {
	return &UseCase{repo: repo, txRunner: txRunner}
}

// Create cadastra una prenda. Código repetido para el mismo dueño -> domain.ErrDuplicate.
func (uc *UseCase) Create(ctx context.Context, userID int64, in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 || in.UnitPrice.LessThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}
	item := &entity.InventoryItem{
		UserID:    userID,
		Code:      strings.TrimSpace(in.Code),
		EntryDate: in.EntryDate,
		Category:  in.Category,
		Fabric:    in.Fabric,
		Quantity:  in.Quantity,
		Color:     in.Color,
		Sizes:     in.Sizes,
		Details:   in.Details,
		UnitPrice: in.UnitPrice,
	}
	if err := uc.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List lista el inventario ordenado por una columna de la lista blanca (id por defecto).
func (uc *UseCase) List(ctx context.Context, userID int64, in dto.ListRequest) ([]dto.ItemResponse, error) {
	items, err := uc.repo.List(ctx, userID, in.OrderBy, in.Desc())
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, *toItemResponse(it))
	}
	return out, nil
}

// Get obtiene una prenda del dueño. No existe -> domain.ErrNotFound.
func (uc *UseCase) Get(ctx context.Context, userID, id int64) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return toItemResponse(item), nil
}

// Update edita una prenda. Bajar la cantidad suma la diferencia a vendidos; subirla no los toca.
// Cantidad negativa -> domain.ErrInvalidInput sin escribir nada. El resto de campos se sobrescribe.
func (uc *UseCase) Update(ctx context.Context, userID, id int64, in dto.UpdateItemRequest) (*dto.ItemResponse, error) {
	if in.Quantity < 0 {
		return nil, fmt.Errorf("%w: a quantidade em estoque não pode ser negativa", domain.ErrInvalidInput)
	}
	var updated *entity.InventoryItem
	err := uc.txRunner.RunInventory(ctx, func(repo repository.InventoryRepository) error {
		item, err := repo.GetByID(ctx, userID, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		qty, sold, err := domaininv.ReconcileQuantity(item.Quantity, item.Sold, in.Quantity)
		if err != nil {
			return err
		}
		item.Code = strings.TrimSpace(in.Code)
		item.Category = in.Category
		item.Fabric = in.Fabric
		item.Quantity = qty
		item.Sold = sold
		item.Color = in.Color
		item.Sizes = in.Sizes
		item.Details = in.Details
		item.UnitPrice = in.UnitPrice
		if err := repo.Update(ctx, item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toItemResponse(updated), nil
}

// Search sugiere prendas con stock cuyo código contiene term.
func (uc *UseCase) Search(ctx context.Context, userID int64, term string) ([]dto.ProductSuggestionDTO, error) {
	items, err := uc.repo.SearchInStock(ctx, userID, term, SearchLimit)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductSuggestionDTO, 0, len(items))
	for _, it := range items {
		out = append(out, dto.ProductSuggestionDTO{ID: it.ID, Code: it.Code})
	}
	return out, nil
}

// Details devuelve tipo, cor y detalles del código exacto; nil si no existe.
func (uc *UseCase) Details(ctx context.Context, userID int64, code string) (*dto.ProductDetailsDTO, error) {
	item, err := uc.repo.GetByCode(ctx, userID, code)
	if err != nil || item == nil {
		return nil, err
	}
	return &dto.ProductDetailsDTO{Code: item.Code, Category: item.Category, Color: item.Color, Details: item.Details}, nil
}

// GetByCode devuelve la prenda completa del código exacto; nil si no existe.
func (uc *UseCase) GetByCode(ctx context.Context, userID int64, code string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByCode(ctx, userID, code)
	if err != nil || item == nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

func toItemResponse(it *entity.InventoryItem) *dto.ItemResponse {
	return &dto.ItemResponse{
		ID:        it.ID,
		Code:      it.Code,
		EntryDate: it.EntryDate,
		Category:  it.Category,
		Fabric:    it.Fabric,
		Quantity:  it.Quantity,
		Color:     it.Color,
		Sizes:     it.Sizes,
		Details:   it.Details,
		UnitPrice: it.UnitPrice,
		Sold:      it.Sold,
	}
}
