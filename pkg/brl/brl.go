// Package brl formatea valores para presentación en pt-BR
// (separador de miles "." y decimal ",", etiquetas de mes abreviadas).
package brl

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer = message.NewPrinter(language.BrazilianPortuguese)
	title   = cases.Title(language.BrazilianPortuguese)
)

// Abreviaturas de mes pt-BR (equivalentes a %b con locale pt_BR).
var monthAbbr = [...]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// Number formatea con dos decimales: 1234.5 -> "1.234,50".
func Number(d decimal.Decimal) string {
	return printer.Sprintf("%.2f", d.Round(2).InexactFloat64())
}

// Currency formatea como moneda: 1234.5 -> "R$ 1.234,50".
func Currency(d decimal.Decimal) string {
	return "R$ " + Number(d)
}

// Percent formatea una variación con un decimal: 25 -> "+25.0%", 0 -> "0.0%".
// Solo los valores positivos llevan el signo explícito.
func Percent(p float64) string {
	if p > 0 {
		return fmt.Sprintf("+%.1f%%", p)
	}
	return fmt.Sprintf("%.1f%%", p)
}

// MonthLabel devuelve "Out/25" para octubre de 2025.
func MonthLabel(t time.Time) string {
	return fmt.Sprintf("%s/%02d", title.String(monthAbbr[t.Month()-1]), t.Year()%100)
}

// MonthKeyLabel convierte una clave "YYYY-MM" en su etiqueta. Claves inválidas se devuelven tal cual.
func MonthKeyLabel(key string) string {
	t, err := time.Parse("2006-01", key)
	if err != nil {
		return key
	}
	return MonthLabel(t)
}
