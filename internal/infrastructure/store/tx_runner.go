package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Ensure TxRunner implements the transactional ports of the application layer.
var (
	_ checkout.TxRunner       = (*TxRunner)(nil)
	_ inventory.TxRunner      = (*TxRunner)(nil)
	_ usecase.ProfileTxRunner = (*TxRunner)(nil)
)

// TxRunner ejecuta callbacks dentro de una transacción.
type TxRunner struct {
	db *DB
}

// NewTxRunner construye el runner con la base abierta.
func NewTxRunner(db *DB) *TxRunner {
	return &TxRunner{db: db}
}

// run inicia la transacción, ejecuta fn con un Conn atado a la tx y hace Commit.
// El Rollback diferido libera la conexión en cualquier salida (error o panic).
func (r *TxRunner) run(ctx context.Context, fn func(c Conn) error) error {
	tx, err := r.db.sql.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(Conn{q: tx, dialect: r.db.dialect}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunCheckout inicia una transacción con los repos que necesita el checkout.
func (r *TxRunner) RunCheckout(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	clientRepo repository.ClientRepository,
	employeeRepo repository.EmployeeRepository,
	inventoryRepo repository.InventoryRepository,
	saleRepo repository.SaleRepository,
) error) error {
	return r.run(ctx, func(c Conn) error {
		return fn(
			NewUserRepository(c),
			NewClientRepository(c),
			NewEmployeeRepository(c),
			NewInventoryRepository(c),
			NewSaleRepository(c),
		)
	})
}

// RunInventory inicia una transacción con el repo de inventario (lectura + edición atómica).
func (r *TxRunner) RunInventory(ctx context.Context, fn func(inventoryRepo repository.InventoryRepository) error) error {
	return r.run(ctx, func(c Conn) error {
		return fn(NewInventoryRepository(c))
	})
}

// RunProfile inicia una transacción con usuarios y empresas (actualización de los datos de la empresa).
func (r *TxRunner) RunProfile(ctx context.Context, fn func(
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
) error) error {
	return r.run(ctx, func(c Conn) error {
		return fn(NewUserRepository(c), NewCompanyRepository(c))
	})
}
