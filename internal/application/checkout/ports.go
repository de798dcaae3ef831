package checkout

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Si fn devuelve error no queda nada persistido.
type TxRunner interface {
	RunCheckout(ctx context.Context, fn func(
		userRepo repository.UserRepository,
		clientRepo repository.ClientRepository,
		employeeRepo repository.EmployeeRepository,
		inventoryRepo repository.InventoryRepository,
		saleRepo repository.SaleRepository,
	) error) error
}
