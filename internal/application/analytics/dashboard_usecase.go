// Package analytics contiene los casos de uso de las métricas del dashboard:
// ventas mensuales con proyección, desempeño de funcionarios y clientes.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
	"github.com/jhoicas/estoque-api/pkg/brl"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"

	topCategories = 6  // categorías en el gráfico de pizza
	topSellers    = 10 // funcionarios en el ranking
	topClients    = 5  // clientes en el ranking de gasto

	noBestMonth = "N/A"
)

// DashboardUseCase genera los datos de las tres pantallas de métricas.
//
// Fuente de datos: MetricsRepository (consultas read-only).
// La agregación y el formateo pt-BR ocurren aquí; el repositorio solo suma.
type DashboardUseCase struct {
	repo repository.MetricsRepository
	now  func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.MetricsRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo, now: time.Now}
}

// SalesMetrics construye el SalesMetricsDTO de los últimos 12 meses calendario.
//
// Dos llamadas en paralelo:
//  1. MonthlyTotals(desde el primer mes) → 12 buckets, KPIs y proyección
//  2. TopCategories(mismo rango, top 6)  → gráfico de pizza
func (uc *DashboardUseCase) SalesMetrics(ctx context.Context, userID int64) (*dto.SalesMetricsDTO, error) {
	keys := MonthKeys(uc.now())
	since := keys[0] + "-01"

	type monthlyResult struct {
		rows []repository.MonthTotal
		err  error
	}
	type rankedResult struct {
		rows []repository.RankedValue
		err  error
	}

	monthlyCh := make(chan monthlyResult, 1)
	topCh := make(chan rankedResult, 1)

	go func() {
		rows, err := uc.repo.MonthlyTotals(ctx, userID, since)
		monthlyCh <- monthlyResult{rows, err}
	}()
	go func() {
		rows, err := uc.repo.TopCategories(ctx, userID, since, topCategories)
		topCh <- rankedResult{rows, err}
	}()

	monthly := <-monthlyCh
	top := <-topCh

	if monthly.err != nil {
		return nil, fmt.Errorf("dashboard: vendas mensais: %w", monthly.err)
	}
	if top.err != nil {
		return nil, fmt.Errorf("dashboard: top categorias: %w", top.err)
	}

	values := FillBuckets(keys, monthly.rows)
	labels := make([]string, len(keys))
	for i, k := range keys {
		labels[i] = brl.MonthKeyLabel(k)
	}

	total := decimal.Zero
	best, bestIdx := decimal.Zero, -1
	for i, v := range values {
		total = total.Add(v)
		if v.GreaterThan(best) {
			best, bestIdx = v, i
		}
	}
	bestLabel := noBestMonth
	if bestIdx >= 0 {
		bestLabel = labels[bestIdx]
	}
	average := total.Div(decimal.NewFromInt(int64(len(keys))))

	floats := toFloats(values)
	pct, color := Projection(floats, best.InexactFloat64())

	return &dto.SalesMetricsDTO{
		MonthlySales: dto.ChartSeriesDTO{Labels: labels, Values: floats},
		KPIs: dto.SalesKPIsDTO{
			Total:          brl.Currency(total),
			Average:        brl.Currency(average),
			BestMonthLabel: bestLabel,
			BestMonthValue: brl.Currency(best),
			Projection:     dto.ProjectionDTO{Value: brl.Percent(pct), Color: color},
		},
		TopProducts: toSeries(top.rows),
	}, nil
}

// EmployeeMetrics ranking de vendedores (365 días) y ventas por trimestre.
func (uc *DashboardUseCase) EmployeeMetrics(ctx context.Context, userID int64) (*dto.EmployeeMetricsDTO, error) {
	now := uc.now()
	since := now.AddDate(0, 0, -365).Format(dateLayout)

	top, err := uc.repo.TopEmployees(ctx, userID, since, topSellers)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top vendedores: %w", err)
	}
	monthly, err := uc.repo.EmployeeMonthlyTotals(ctx, userID, since)
	if err != nil {
		return nil, fmt.Errorf("dashboard: vendas trimestrais: %w", err)
	}

	quarters := LastQuarters(now)
	return &dto.EmployeeMetricsDTO{
		TopSellers:     toSeries(top),
		QuarterlySales: QuarterlySales(quarters, monthly),
	}, nil
}

// ClientMetrics KPIs de clientes y top 5 por gasto en 365 días.
func (uc *DashboardUseCase) ClientMetrics(ctx context.Context, userID int64) (*dto.ClientMetricsDTO, error) {
	now := uc.now()

	total, err := uc.repo.CountClients(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("dashboard: total clientes: %w", err)
	}
	newClients, err := uc.repo.CountClientsSince(ctx, userID, now.AddDate(0, 0, -30).Format(timestampLayout))
	if err != nil {
		return nil, fmt.Errorf("dashboard: novos clientes: %w", err)
	}
	spender, err := uc.repo.TopClients(ctx, userID, now.AddDate(0, 0, -90).Format(dateLayout), 1)
	if err != nil {
		return nil, fmt.Errorf("dashboard: maior gastador: %w", err)
	}
	top, err := uc.repo.TopClients(ctx, userID, now.AddDate(0, 0, -365).Format(dateLayout), topClients)
	if err != nil {
		return nil, fmt.Errorf("dashboard: top clientes: %w", err)
	}

	kpis := dto.ClientKPIsDTO{
		TotalClients:    total,
		NewClients30d:   newClients,
		TopSpenderName:  noBestMonth,
		TopSpenderValue: brl.Currency(decimal.Zero),
	}
	if len(spender) > 0 && spender[0].Value.GreaterThan(decimal.Zero) {
		kpis.TopSpenderName = spender[0].Label
		kpis.TopSpenderValue = brl.Currency(spender[0].Value)
	}
	return &dto.ClientMetricsDTO{KPIs: kpis, TopClientsSpending: toSeries(top)}, nil
}

func toFloats(values []decimal.Decimal) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v.InexactFloat64()
	}
	return out
}

func toSeries(rows []repository.RankedValue) dto.ChartSeriesDTO {
	s := dto.ChartSeriesDTO{Labels: make([]string, 0, len(rows)), Values: make([]float64, 0, len(rows))}
	for _, r := range rows {
		s.Labels = append(s.Labels, r.Label)
		s.Values = append(s.Values, r.Value.InexactFloat64())
	}
	return s
}
