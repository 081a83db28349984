// Package format renders values the way the CRM presents them to its pt-BR users.
package format

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencySymbol is followed by a no-break space, as in the browser's pt-BR BRL format.
const currencySymbol = "R$\u00a0"

// BRL formats v as Brazilian Real.
// Format: "R$ 1.234,56" (dot grouping, comma decimals, always two fraction digits).
func BRL(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	p := message.NewPrinter(language.BrazilianPortuguese)
	return sign + currencySymbol + p.Sprint(number.Decimal(v, number.Scale(2)))
}

// Date formats t as dd/mm/yyyy. Nil renders as "".
func Date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006")
}

// DateTime formats t as dd/mm/yyyy, hh:mm:ss.
func DateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("02/01/2006, 15:04:05")
}

// Percent renders a ratio already scaled to 0-100 with one decimal, e.g. "12.5%".
func Percent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return fmt.Sprintf("%.1f%%", v)
}

var monthNames = [12]string{
	"jan.", "fev.", "mar.", "abr.", "mai.", "jun.",
	"jul.", "ago.", "set.", "out.", "nov.", "dez.",
}

// ShortMonth returns the abbreviated pt-BR name of m.
func ShortMonth(m time.Month) string {
	if m < time.January || m > time.December {
		return ""
	}
	return monthNames[m-1]
}
