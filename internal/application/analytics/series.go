package analytics

import (
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

// Colores de la proyección.
const (
	ColorBlue  = "blue"  // supera el mejor mes
	ColorGreen = "green" // crece
	ColorRed   = "red"   // cae
	ColorGrey  = "grey"  // estable o sin datos suficientes
)

// quarterColors paleta del gráfico trimestral (se recorre en ciclo).
var quarterColors = [...]string{
	"rgba(255, 99, 132, 0.7)",
	"rgba(54, 162, 235, 0.7)",
	"rgba(255, 206, 86, 0.7)",
	"rgba(75, 192, 192, 0.7)",
	"rgba(153, 102, 255, 0.7)",
}

// MonthKeys devuelve las 12 claves "YYYY-MM" que terminan en el mes de now, en orden cronológico.
func MonthKeys(now time.Time) []string {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	keys := make([]string, 12)
	for i := 0; i < 12; i++ {
		keys[i] = first.AddDate(0, i-11, 0).Format("2006-01")
	}
	return keys
}

// FillBuckets ubica cada total en su mes; los meses sin ventas quedan en cero
// y los meses fuera de keys se ignoran.
func FillBuckets(keys []string, rows []repository.MonthTotal) []decimal.Decimal {
	idx := make(map[string]int, len(keys))
	values := make([]decimal.Decimal, len(keys))
	for i, k := range keys {
		idx[k] = i
		values[i] = decimal.Zero
	}
	for _, r := range rows {
		if i, ok := idx[r.Month]; ok {
			values[i] = r.Total
		}
	}
	return values
}

// Projection proyecta el próximo mes con la variación media de los tres últimos:
//
//	proyectado = v2 + ((v1 - v0) + (v2 - v1)) / 2
//	pct        = (proyectado - v2) / v2 * 100   (0 si v2 = 0)
//
// Color: blue si proyectado > best > 0; si no green/red según el signo de pct; grey en otro caso
// o con menos de tres meses.
func Projection(values []float64, best float64) (pct float64, color string) {
	if len(values) < 3 {
		return 0, ColorGrey
	}
	n := len(values)
	v0, v1, v2 := values[n-3], values[n-2], values[n-1]
	avgDelta := ((v1 - v0) + (v2 - v1)) / 2
	projected := v2 + avgDelta
	if v2 > 0 {
		pct = (projected - v2) / v2 * 100
	}
	switch {
	case projected > best && best > 0:
		return pct, ColorBlue
	case pct > 0:
		return pct, ColorGreen
	case pct < 0:
		return pct, ColorRed
	default:
		return pct, ColorGrey
	}
}

// Quarter trimestre calendario: T{Number}/{Year}.
type Quarter struct {
	Number int
	Year   int
}

// Label devuelve "T3/2025".
func (q Quarter) Label() string {
	return fmt.Sprintf("T%d/%d", q.Number, q.Year)
}

// Contains indica si el mes "YYYY-MM" cae dentro del trimestre.
func (q Quarter) Contains(monthKey string) bool {
	t, err := time.Parse("2006-01", monthKey)
	if err != nil || t.Year() != q.Year {
		return false
	}
	start := (q.Number-1)*3 + 1
	m := int(t.Month())
	return m >= start && m <= start+2
}

// LastQuarters toma los trimestres de now - i*90 días (i = 0..3), sin repetir, en orden cronológico.
// Puede devolver menos de cuatro si dos fechas caen en el mismo trimestre.
func LastQuarters(now time.Time) []Quarter {
	seen := make(map[Quarter]bool, 4)
	var out []Quarter
	for i := 0; i < 4; i++ {
		d := now.AddDate(0, 0, -i*90)
		q := Quarter{Number: (int(d.Month())-1)/3 + 1, Year: d.Year()}
		if seen[q] {
			continue
		}
		seen[q] = true
		out = append(out, q)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// QuarterlySales arma un dataset por funcionario con ventas, ordenados por su primer mes con venta
// (desempate por nombre). Cada valor suma los meses del funcionario dentro del trimestre.
func QuarterlySales(quarters []Quarter, rows []repository.EmployeeMonthTotal) dto.QuarterlySalesDTO {
	labels := make([]string, len(quarters))
	for i, q := range quarters {
		labels[i] = q.Label()
	}

	firstMonth := map[string]string{}
	sums := map[string][]decimal.Decimal{}
	for _, r := range rows {
		if _, ok := sums[r.Employee]; !ok {
			sums[r.Employee] = make([]decimal.Decimal, len(quarters))
			firstMonth[r.Employee] = r.Month
		}
		if r.Month < firstMonth[r.Employee] {
			firstMonth[r.Employee] = r.Month
		}
		for i, q := range quarters {
			if q.Contains(r.Month) {
				sums[r.Employee][i] = sums[r.Employee][i].Add(r.Total)
				break
			}
		}
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if firstMonth[names[i]] != firstMonth[names[j]] {
			return firstMonth[names[i]] < firstMonth[names[j]]
		}
		return names[i] < names[j]
	})

	datasets := make([]dto.QuarterDatasetDTO, 0, len(names))
	for i, name := range names {
		datasets = append(datasets, dto.QuarterDatasetDTO{
			Label:           name,
			Data:            toFloats(sums[name]),
			BackgroundColor: quarterColors[i%len(quarterColors)],
		})
	}
	return dto.QuarterlySalesDTO{Labels: labels, Datasets: datasets}
}
