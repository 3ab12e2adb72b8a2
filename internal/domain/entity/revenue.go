package entity

import "github.com/shopspring/decimal"

// CategoryRevenue ingreso agregado de una categoría de producto.
type CategoryRevenue struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// MonthlyRevenue ingreso agregado de un mes (formato "YYYY-MM" o "unknown").
type MonthlyRevenue struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// RevenueReport desglose de ingresos por categoría y por mes.
// El orden de ambas secuencias es el que entrega el backend.
type RevenueReport struct {
	ByCategory []CategoryRevenue `json:"by_category"`
	Monthly    []MonthlyRevenue  `json:"monthly"`
}
