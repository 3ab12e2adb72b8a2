// Package format da formato local a las cifras del dashboard (agrupación de miles
// y decimales según la etiqueta de idioma configurada).
package format

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const maxAmountFractionDigits = 2

// NumberFormatter formatea montos y conteos para un locale fijo.
type NumberFormatter struct {
	printer  *message.Printer
	currency string
}

// New construye el formateador. Un locale inválido cae a inglés.
func New(locale, currency string) *NumberFormatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &NumberFormatter{printer: message.NewPrinter(tag), currency: currency}
}

// Amount devuelve el monto con símbolo de moneda, ej: "₹12,34,567.5".
func (f *NumberFormatter) Amount(d decimal.Decimal) string {
	return f.currency + f.Number(d)
}

// Number devuelve el monto sin símbolo.
func (f *NumberFormatter) Number(d decimal.Decimal) string {
	return f.printer.Sprintf("%v", number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(maxAmountFractionDigits)))
}

// Count devuelve un entero con separadores de miles.
func (f *NumberFormatter) Count(n int64) string {
	return f.printer.Sprintf("%v", number.Decimal(n))
}
