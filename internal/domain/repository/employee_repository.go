package repository

import (
	"context"

	"github.com/jhoicas/estoque-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// EmployeeMonthSummary funcionario con sus ventas del mes en curso.
type EmployeeMonthSummary struct {
	Employee   entity.Employee
	MonthTotal decimal.Decimal
	MonthCount int
}

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, userID, id int64) (*entity.Employee, error)
	// GetByFullName resuelve el vendedor del checkout. nil, nil si no existe.
	GetByFullName(ctx context.Context, userID int64, fullName string) (*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
	// ListWithMonthSales lista con totales del mes "YYYY-MM"; sortBy viene de EmployeeSortColumns.
	ListWithMonthSales(ctx context.Context, userID int64, month, sortBy string, desc bool) ([]EmployeeMonthSummary, error)
	// SearchActive busca funcionarios con contrato vigente por nombre.
	SearchActive(ctx context.Context, userID int64, term string, limit int) ([]*entity.Employee, error)
}

// EmployeeSortColumns columnas aceptadas en ordenar_por para el listado de funcionarios.
var EmployeeSortColumns = map[string]string{
	"nome_completo":        "e.full_name",
	"cargo":                "e.role",
	"data_inicio_contrato": "e.contract_start",
	"total_valor_mes":      "month_total",
	"numero_vendas_mes":    "month_count",
}
