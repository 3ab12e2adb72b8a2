package entity

import "github.com/shopspring/decimal"

// OverviewStats totales globales calculados por el backend de analítica.
// Solo lectura; se reemplaza completo en cada carga exitosa.
type OverviewStats struct {
	TotalRevenue decimal.Decimal `json:"total_revenue"`
	TotalOrders  int64           `json:"total_orders"`
}

// HasRevenue indica si el total de ingresos es distinto de cero.
// La sección de resumen solo se muestra en ese caso.
func (o *OverviewStats) HasRevenue() bool {
	return o != nil && !o.TotalRevenue.IsZero()
}
