package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ClientPanelRow fila del painel de clientes con su histórico de compras.
type ClientPanelRow struct {
	Client       entity.Client
	PurchaseDays int             // días distintos con compra
	Spent3Months decimal.Decimal // gasto en los últimos 90 días
}

// ClientRepository define el puerto de persistencia para Client.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, userID, id int64) (*entity.Client, error)
	// GetByName resuelve el cliente del checkout. nil, nil si no existe.
	GetByName(ctx context.Context, userID int64, name string) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// ListPanel lista clientes ordenados por nombre; since delimita la ventana de gasto (YYYY-MM-DD).
	ListPanel(ctx context.Context, userID int64, since string) ([]ClientPanelRow, error)
	Search(ctx context.Context, userID int64, term string, limit int) ([]*entity.Client, error)
}
