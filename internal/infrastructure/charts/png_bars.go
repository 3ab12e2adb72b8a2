package charts

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/jhoicas/journey-dashboard/internal/application/dto"
)

// ErrNoBars se devuelve cuando el gráfico no tiene barras que dibujar.
var ErrNoBars = errors.New("charts: gráfico sin barras")

const (
	pngMinWidth   = 800
	pngHeight     = 400
	pngBarWidth   = 40
	pngBarSpacing = 24
	pngSideMargin = 120
)

// PNGBarRenderer dibuja un BarChartDTO como imagen PNG para incrustar en el PDF.
type PNGBarRenderer struct{}

// NewPNGBarRenderer crea el renderer con los tamaños por defecto.
func NewPNGBarRenderer() *PNGBarRenderer {
	return &PNGBarRenderer{}
}

// Render devuelve los bytes PNG del gráfico. Las barras se dibujan en el orden recibido.
func (r *PNGBarRenderer) Render(c *dto.BarChartDTO) ([]byte, error) {
	if c == nil || len(c.Bars) == 0 {
		return nil, ErrNoBars
	}

	fill := drawing.ColorFromHex(strings.TrimPrefix(c.Color, "#"))
	bars := make([]chart.Value, 0, len(c.Bars))
	maxV, minV := 0.0, 0.0
	for _, b := range c.Bars {
		v := b.Amount.InexactFloat64()
		if v > maxV {
			maxV = v
		}
		if v < minV {
			minV = v
		}
		bars = append(bars, chart.Value{
			Label: b.Label,
			Value: v,
			Style: chart.Style{FillColor: fill, StrokeColor: fill, StrokeWidth: 1},
		})
	}
	// go-chart no admite un rango de altura cero.
	if maxV == minV {
		maxV = minV + 1
	}

	width := len(bars)*(pngBarWidth+pngBarSpacing) + pngSideMargin
	if width < pngMinWidth {
		width = pngMinWidth
	}

	bc := chart.BarChart{
		Title:      c.Title,
		Width:      width,
		Height:     pngHeight,
		BarWidth:   pngBarWidth,
		BarSpacing: pngBarSpacing,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: minV, Max: maxV}},
		Bars:       bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("charts: renderizar %q: %w", c.Title, err)
	}
	return buf.Bytes(), nil
}
