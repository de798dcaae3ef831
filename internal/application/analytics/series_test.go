package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/estoque-api/internal/domain/repository"
)

func TestMonthKeys(t *testing.T) {
	keys := MonthKeys(time.Date(2025, 10, 19, 12, 0, 0, 0, time.UTC))

	require.Len(t, keys, 12)
	assert.Equal(t, "2024-11", keys[0])
	assert.Equal(t, "2025-10", keys[11])
}

func TestMonthKeys_FinDeMes(t *testing.T) {
	// 31/03 no debe saltar febrero.
	keys := MonthKeys(time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2025-02", keys[10])
	assert.Equal(t, "2025-03", keys[11])
}

func TestFillBuckets(t *testing.T) {
	keys := []string{"2025-08", "2025-09", "2025-10"}
	values := FillBuckets(keys, []repository.MonthTotal{
		{Month: "2025-07", Total: decimal.NewFromInt(999)},
		{Month: "2025-09", Total: decimal.NewFromInt(150)},
	})

	require.Len(t, values, 3)
	assert.True(t, values[0].IsZero())
	assert.True(t, values[1].Equal(decimal.NewFromInt(150)))
	assert.True(t, values[2].IsZero())
}

func TestProjection(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		best   float64
		pct    float64
		color  string
	}{
		{"supera el mejor mes", []float64{100, 150, 200}, 200, 25, ColorBlue},
		{"crece sin superar", []float64{100, 150, 200}, 500, 25, ColorGreen},
		{"cae", []float64{200, 150, 100}, 200, -50, ColorRed},
		{"estable", []float64{100, 100, 100}, 100, 0, ColorGrey},
		{"ultimo mes en cero", []float64{100, 50, 0}, 100, 0, ColorGrey},
		{"menos de tres meses", []float64{100, 200}, 200, 0, ColorGrey},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pct, color := Projection(tt.values, tt.best)
			assert.InDelta(t, tt.pct, pct, 0.0001)
			assert.Equal(t, tt.color, color)
		})
	}
}

func TestLastQuarters(t *testing.T) {
	qs := LastQuarters(time.Date(2025, 10, 19, 0, 0, 0, 0, time.UTC))

	labels := make([]string, len(qs))
	for i, q := range qs {
		labels[i] = q.Label()
	}
	assert.Equal(t, []string{"T1/2025", "T2/2025", "T3/2025", "T4/2025"}, labels)
}

func TestLastQuarters_SinRepetidos(t *testing.T) {
	// 30/09 - 90 = 02/07: dos fechas en T3, el trimestre aparece una sola vez.
	qs := LastQuarters(time.Date(2025, 9, 30, 0, 0, 0, 0, time.UTC))

	labels := make([]string, len(qs))
	for i, q := range qs {
		labels[i] = q.Label()
	}
	assert.Equal(t, []string{"T1/2025", "T2/2025", "T3/2025"}, labels)
}

func TestQuarter_Contains(t *testing.T) {
	q := Quarter{Number: 3, Year: 2025}
	assert.True(t, q.Contains("2025-07"))
	assert.True(t, q.Contains("2025-09"))
	assert.False(t, q.Contains("2025-10"))
	assert.False(t, q.Contains("2024-08"))
	assert.False(t, q.Contains("invalido"))
}

func TestQuarterlySales(t *testing.T) {
	quarters := []Quarter{{2, 2025}, {3, 2025}}
	rows := []repository.EmployeeMonthTotal{
		{Employee: "Bruno", Month: "2025-07", Total: decimal.NewFromInt(30)},
		{Employee: "Carla", Month: "2025-04", Total: decimal.NewFromInt(10)},
		{Employee: "Carla", Month: "2025-08", Total: decimal.NewFromInt(20)},
		{Employee: "Carla", Month: "2025-09", Total: decimal.NewFromInt(5)},
	}

	got := QuarterlySales(quarters, rows)

	assert.Equal(t, []string{"T2/2025", "T3/2025"}, got.Labels)
	require.Len(t, got.Datasets, 2)
	// Carla vendió primero.
	assert.Equal(t, "Carla", got.Datasets[0].Label)
	assert.Equal(t, []float64{10, 25}, got.Datasets[0].Data)
	assert.Equal(t, quarterColors[0], got.Datasets[0].BackgroundColor)
	assert.Equal(t, "Bruno", got.Datasets[1].Label)
	assert.Equal(t, []float64{0, 30}, got.Datasets[1].Data)
	assert.Equal(t, quarterColors[1], got.Datasets[1].BackgroundColor)
}
