package repository

import (
	"context"

	"github.com/shopspring/decimal"
)

// MonthTotal suma de ventas de un mes "YYYY-MM".
type MonthTotal struct {
	Month string
	Total decimal.Decimal
}

// RankedValue par etiqueta/valor para rankings (categorías, funcionarios, clientes).
type RankedValue struct {
	Label string
	Value decimal.Decimal
}

// EmployeeMonthTotal ventas de un funcionario en un mes "YYYY-MM".
type EmployeeMonthTotal struct {
	Employee string
	Month    string
	Total    decimal.Decimal
}

// MetricsRepository define las consultas de lectura del dashboard.
// Las implementaciones son read-only y todas reciben fechas "YYYY-MM-DD" inclusivas.
type MetricsRepository interface {
	// MonthlyTotals suma ventas por mes desde since. Los meses sin ventas no aparecen.
	MonthlyTotals(ctx context.Context, userID int64, since string) ([]MonthTotal, error)

	// TopCategories devuelve las `limit` categorías con mayor ingreso desde since.
	TopCategories(ctx context.Context, userID int64, since string, limit int) ([]RankedValue, error)

	// ── Funcionarios ──────────────────────────────────────────────────────────

	TopEmployees(ctx context.Context, userID int64, since string, limit int) ([]RankedValue, error)
	EmployeeMonthlyTotals(ctx context.Context, userID int64, since string) ([]EmployeeMonthTotal, error)

	// ── Clientes ─────────────────────────────────────────────────────────────

	CountClients(ctx context.Context, userID int64) (int, error)
	// CountClientsSince cuenta clientes con registered_at >= since ("YYYY-MM-DD HH:MM:SS").
	CountClientsSince(ctx context.Context, userID int64, since string) (int, error)
	TopClients(ctx context.Context, userID int64, since string, limit int) ([]RankedValue, error)
}
