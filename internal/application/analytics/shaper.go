package analytics

import (
	"github.com/jhoicas/journey-dashboard/internal/application/dto"
	"github.com/jhoicas/journey-dashboard/internal/domain/entity"
	"github.com/jhoicas/journey-dashboard/internal/domain/journey"
)

// Paleta y títulos de las secciones.
const (
	CategoryChartTitle = "Revenue by Category"
	MonthlyChartTitle  = "Monthly Revenue Trend"
	JourneyChartTitle  = "Customer Journey Flow (Product Transitions)"

	categoryColor = "#4f46e5"
	monthlyColor  = "#16a34a"
)

// OverviewSection devuelve el resumen solo si el total de ingresos es distinto de cero.
func OverviewSection(o *entity.OverviewStats) *dto.OverviewDTO {
	if !o.HasRevenue() {
		return nil
	}
	return &dto.OverviewDTO{TotalRevenue: o.TotalRevenue, TotalOrders: o.TotalOrders}
}

// CategoryBars selecciona category→amount. Sin agregación: el backend ya agregó.
// nil si no hay reporte o la lista está vacía.
func CategoryBars(r *entity.RevenueReport) *dto.BarChartDTO {
	if r == nil || len(r.ByCategory) == 0 {
		return nil
	}
	bars := make([]dto.BarDTO, 0, len(r.ByCategory))
	for _, c := range r.ByCategory {
		bars = append(bars, dto.BarDTO{Label: c.Category, Amount: c.Amount})
	}
	return &dto.BarChartDTO{Title: CategoryChartTitle, XKey: "category", Color: categoryColor, Bars: bars}
}

// MonthlyBars selecciona month→amount, en el orden entregado.
func MonthlyBars(r *entity.RevenueReport) *dto.BarChartDTO {
	if r == nil || len(r.Monthly) == 0 {
		return nil
	}
	bars := make([]dto.BarDTO, 0, len(r.Monthly))
	for _, m := range r.Monthly {
		bars = append(bars, dto.BarDTO{Label: m.Month, Amount: m.Amount})
	}
	return &dto.BarChartDTO{Title: MonthlyChartTitle, XKey: "month", Color: monthlyColor, Bars: bars}
}

// JourneyGraph deriva el grafo Sankey; nil si no hay aristas.
func JourneyGraph(edges []entity.JourneyEdge) *entity.SankeyGraph {
	g := journey.BuildSankey(edges)
	if g.Empty() {
		return nil
	}
	return &g
}
