// Package storetest abre bases SQLite temporales y siembra datos para los tests
// de repositorios, casos de uso y handlers.
package storetest

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store"
	"github.com/jhoicas/estoque-api/pkg/config"
)

// Open crea una base SQLite en t.TempDir() con el schema aplicado. Se cierra al terminar el test.
func Open(t *testing.T) *store.DB {
	t.Helper()
	db, err := store.Open(context.Background(), config.DBConfig{
		Driver: config.DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "estoque_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// SeedUser crea un dueño con email derivado del nombre.
func SeedUser(t *testing.T, db *store.DB, name string) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:         name,
		LastName:     "Teste",
		BirthDate:    "15/03/1990",
		Email:        name + "@loja.com.br",
		PasswordHash: "x",
	}
	require.NoError(t, store.NewUserRepository(db.Conn()).Create(context.Background(), u))
	return u
}

// SeedClient crea un cliente registrado ahora.
func SeedClient(t *testing.T, db *store.DB, userID int64, name string) *entity.Client {
	t.Helper()
	return SeedClientAt(t, db, userID, name, time.Now())
}

// SeedClientAt crea un cliente con fecha de registro fija.
func SeedClientAt(t *testing.T, db *store.DB, userID int64, name string, at time.Time) *entity.Client {
	t.Helper()
	c := &entity.Client{UserID: userID, Name: name, Phone: "11 99999-0000", RegisteredAt: at}
	require.NoError(t, store.NewClientRepository(db.Conn()).Create(context.Background(), c))
	return c
}

// SeedItem crea una prenda con stock qty y precio unitario price.
func SeedItem(t *testing.T, db *store.DB, userID int64, code, category string, qty int, price string) *entity.InventoryItem {
	t.Helper()
	it := &entity.InventoryItem{
		UserID:    userID,
		Code:      code,
		EntryDate: "2025-01-10",
		Category:  category,
		Fabric:    "Algodão",
		Quantity:  qty,
		Color:     "Azul",
		Sizes:     "P M G",
		Details:   "",
		UnitPrice: decimal.RequireFromString(price),
	}
	require.NoError(t, store.NewInventoryRepository(db.Conn()).Create(context.Background(), it))
	return it
}

// SeedEmployee crea un funcionario. end nil = contrato vigente.
func SeedEmployee(t *testing.T, db *store.DB, userID int64, fullName string, end *string) *entity.Employee {
	t.Helper()
	e := &entity.Employee{
		UserID:        userID,
		FullName:      fullName,
		City:          "São Paulo",
		State:         "SP",
		Country:       "Brasil",
		ContractStart: "2024-02-01",
		ContractEnd:   end,
		Role:          "Vendedor",
	}
	require.NoError(t, store.NewEmployeeRepository(db.Conn()).Create(context.Background(), e))
	return e
}

// SeedSale inserta una venta directamente (sin bajar stock), para preparar métricas.
func SeedSale(t *testing.T, db *store.DB, s entity.Sale) *entity.Sale {
	t.Helper()
	if s.Quantity == 0 {
		s.Quantity = 1
	}
	require.NoError(t, store.NewSaleRepository(db.Conn()).Create(context.Background(), &s))
	return &s
}

// Item relee una prenda (nil si no existe).
func Item(t *testing.T, db *store.DB, userID, id int64) *entity.InventoryItem {
	t.Helper()
	it, err := store.NewInventoryRepository(db.Conn()).GetByID(context.Background(), userID, id)
	require.NoError(t, err)
	return it
}

// CountSales cuenta las ventas persistidas del dueño.
func CountSales(t *testing.T, db *store.DB, userID int64) int {
	t.Helper()
	rows, err := store.NewSaleRepository(db.Conn()).ListRecent(context.Background(), userID, "0000-01-01")
	require.NoError(t, err)
	return len(rows)
}
