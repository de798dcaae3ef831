package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// RecentSale fila del listado de selección para exportar.
type RecentSale struct {
	ID         int64
	SaleDate   string
	ClientName string
	Total      decimal.Decimal
}

// ExportRow datos de venta + cliente + producto que acompañan a los datos del emitente.
// Los campos vacíos de cliente se exportan como cadena vacía.
type ExportRow struct {
	SaleID      int64
	SaleDate    string
	ClientName  string
	ClientPhone *string
	ProductCode string
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal
}

// SaleRepository define el puerto de persistencia para Sale. No hay Update ni Delete: las ventas son append-only.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// ListRecent ventas con sale_date >= since, más recientes primero.
	ListRecent(ctx context.Context, userID int64, since string) ([]RecentSale, error)
	// ExportRows devuelve las ventas seleccionadas ordenadas por id.
	ExportRows(ctx context.Context, userID int64, saleIDs []int64) ([]ExportRow, error)
}
