package checkout_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store/storetest"
	"github.com/jhoicas/estoque-api/pkg/logger"
)

func line(code string, qty int, preco string) dto.CartItemDTO {
	return dto.CartItemDTO{Code: code, Quantity: qty, Price: decimal.RequireFromString(preco)}
}

func newUseCase(db *store.DB) *checkout.UseCase {
	return checkout.NewUseCase(store.NewTxRunner(db), logger.Nop())
}

// Carrito de ejemplo: ABC1 x2 por 50,00 con stock 10 -> una venta, stock 8, vendidos +2.
func TestCheckout_CarritoSimple(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")

	res, err := newUseCase(db).Checkout(context.Background(), checkout.Owner{ID: owner.ID, Name: owner.Name}, dto.CartDTO{
		Client: "Ana Lima",
		Seller: checkout.NoSeller,
		Items:  []dto.CartItemDTO{line("ABC1", 2, "50")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Applied)
	assert.Len(t, res.SaleIDs, 1)
	assert.Empty(t, res.SkippedCodes)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(50)))

	after := storetest.Item(t, db, owner.ID, item.ID)
	assert.Equal(t, 8, after.Quantity)
	assert.Equal(t, 2, after.Sold)

	sales, err := store.NewSaleRepository(db.Conn()).ListRecent(context.Background(), owner.ID, "0000-01-01")
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.True(t, sales[0].Total.Equal(decimal.NewFromInt(50)), "el total es el preco enviado, no unitario x cantidad")
	assert.Equal(t, time.Now().Format("2006-01-02"), sales[0].SaleDate)
}

func TestCheckout_ClienteDesconocidoNoEscribeNada(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")

	_, err := newUseCase(db).Checkout(context.Background(), checkout.Owner{ID: owner.ID}, dto.CartDTO{
		Client: "Fulano",
		Items:  []dto.CartItemDTO{line("ABC1", 1, "25")},
	})
	require.ErrorIs(t, err, domain.ErrClientNotFound)

	assert.Equal(t, 10, storetest.Item(t, db, owner.ID, item.ID).Quantity)
	assert.Zero(t, storetest.CountSales(t, db, owner.ID))
}

func TestCheckout_CodigoDesconocidoSeIgnora(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")

	res, err := newUseCase(db).Checkout(context.Background(), checkout.Owner{ID: owner.ID}, dto.CartDTO{
		Client: "Ana Lima",
		Items:  []dto.CartItemDTO{line("NAOEXISTE", 1, "10"), line("ABC1", 3, "75")},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, res.Applied)
	assert.Equal(t, []string{"NAOEXISTE"}, res.SkippedCodes)
	assert.True(t, res.Total.Equal(decimal.NewFromInt(75)))
	assert.Equal(t, 7, storetest.Item(t, db, owner.ID, item.ID).Quantity)
	assert.Equal(t, 1, storetest.CountSales(t, db, owner.ID))
}

func TestCheckout_StockInsuficienteRevierteTodo(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	first := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	second := storetest.SeedItem(t, db, owner.ID, "XYZ9", "Calça", 3, "80.00")

	_, err := newUseCase(db).Checkout(context.Background(), checkout.Owner{ID: owner.ID}, dto.CartDTO{
		Client: "Ana Lima",
		Items:  []dto.CartItemDTO{line("ABC1", 2, "50"), line("XYZ9", 5, "400")},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)

	a := storetest.Item(t, db, owner.ID, first.ID)
	assert.Equal(t, 10, a.Quantity, "la primera línea también se revierte")
	assert.Zero(t, a.Sold)
	assert.Equal(t, 3, storetest.Item(t, db, owner.ID, second.ID).Quantity)
	assert.Zero(t, storetest.CountSales(t, db, owner.ID))
}

func TestCheckout_VendedorAtribuido(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	storetest.SeedEmployee(t, db, owner.ID, "Carlos Souza", nil)
	uc := newUseCase(db)
	o := checkout.Owner{ID: owner.ID, Name: owner.Name}

	_, err := uc.Checkout(context.Background(), o, dto.CartDTO{
		Client: "Ana Lima", Seller: "Carlos Souza", Items: []dto.CartItemDTO{line("ABC1", 1, "30")},
	})
	require.NoError(t, err)
	// El dueño como vendedor y un nombre desconocido quedan sin funcionario.
	_, err = uc.Checkout(context.Background(), o, dto.CartDTO{
		Client: "Ana Lima", Seller: owner.Name, Items: []dto.CartItemDTO{line("ABC1", 1, "20")},
	})
	require.NoError(t, err)
	_, err = uc.Checkout(context.Background(), o, dto.CartDTO{
		Client: "Ana Lima", Seller: "Fantasma", Items: []dto.CartItemDTO{line("ABC1", 1, "20")},
	})
	require.NoError(t, err)

	top, err := store.NewMetricsRepository(db.Conn()).TopEmployees(context.Background(), owner.ID, "0000-01-01", 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, "Carlos Souza", top[0].Label)
	assert.True(t, top[0].Value.Equal(decimal.NewFromInt(30)))
	assert.Equal(t, 3, storetest.CountSales(t, db, owner.ID))
}

// Tras renombrar al dueño, el token aún trae el nombre viejo: cuenta el nombre actual de users.
func TestCheckout_DuenoRenombradoComoVendedor(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	storetest.SeedEmployee(t, db, owner.ID, "Mariana", nil)

	tokenName := owner.Name
	owner.Name = "Mariana"
	require.NoError(t, store.NewUserRepository(db.Conn()).UpdateProfile(context.Background(), owner))

	_, err := newUseCase(db).Checkout(context.Background(), checkout.Owner{ID: owner.ID, Name: tokenName}, dto.CartDTO{
		Client: "Ana Lima", Seller: "Mariana", Items: []dto.CartItemDTO{line("ABC1", 1, "25")},
	})
	require.NoError(t, err)

	top, err := store.NewMetricsRepository(db.Conn()).TopEmployees(context.Background(), owner.ID, "0000-01-01", 10)
	require.NoError(t, err)
	assert.Empty(t, top)
	assert.Equal(t, 1, storetest.CountSales(t, db, owner.ID))
}

func TestCheckout_ValidacionSinEscrituras(t *testing.T) {
	db := storetest.Open(t)
	owner := storetest.SeedUser(t, db, "maria")
	uc := newUseCase(db)

	cases := map[string]dto.CartDTO{
		"sin cliente":     {Items: []dto.CartItemDTO{line("ABC1", 1, "10")}},
		"carrito vacío":   {Client: "Ana"},
		"cantidad cero":   {Client: "Ana", Items: []dto.CartItemDTO{line("ABC1", 0, "10")}},
		"precio negativo": {Client: "Ana", Items: []dto.CartItemDTO{line("ABC1", 1, "-1")}},
	}
	for name, cart := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := uc.Checkout(context.Background(), checkout.Owner{ID: owner.ID}, cart)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Rollback con sqlmock
// ──────────────────────────────────────────────────────────────────────────────

func expectClientAndItem(mock sqlmock.Sqlmock) {
	mock.ExpectBegin()
	mock.ExpectQuery("FROM clients c WHERE c.name").
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "phone", "registered_at"}).
			AddRow(3, 1, "Ana Lima", "", "2025-01-01 10:00:00"))
	mock.ExpectQuery("FROM inventory_items WHERE").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "code", "entry_date", "category", "fabric", "quantity",
			"color", "sizes", "details", "unit_price", "sold",
		}).AddRow(7, 1, "ABC1", "2025-01-10", "Camisa", "Algodão", 10, "Azul", "M", "", "25.00", 0))
}

func TestCheckout_ErrorAlInsertarHaceRollback(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	expectClientAndItem(mock)
	mock.ExpectQuery("INSERT INTO sales").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	uc := newUseCase(store.Wrap(sqlDB, store.DialectSQLite))
	_, err = uc.Checkout(context.Background(), checkout.Owner{ID: 1}, dto.CartDTO{
		Client: "Ana Lima", Items: []dto.CartItemDTO{line("ABC1", 2, "50")},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "insert sale")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckout_UpdateCondicionalSinFilasHaceRollback(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	expectClientAndItem(mock)
	mock.ExpectQuery("INSERT INTO sales").WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(99))
	mock.ExpectExec("UPDATE inventory_items").
		WithArgs(2, 2, 7, 1, 2).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	uc := newUseCase(store.Wrap(sqlDB, store.DialectSQLite))
	_, err = uc.Checkout(context.Background(), checkout.Owner{ID: 1}, dto.CartDTO{
		Client: "Ana Lima", Items: []dto.CartItemDTO{line("ABC1", 2, "50")},
	})
	require.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.NoError(t, mock.ExpectationsWereMet())
}
