package inventory

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando el repositorio atado a esa tx.
// La edición lee y escribe el ítem en la misma transacción.
type TxRunner interface {
	RunInventory(ctx context.Context, fn func(inventoryRepo repository.InventoryRepository) error) error
}
