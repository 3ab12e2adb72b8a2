package entity

// JourneyEdge volumen observado de transiciones entre dos productos
// (un cliente compró Source y luego Target).
type JourneyEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// SankeyNode nodo del diagrama de flujo.
type SankeyNode struct {
	Name string `json:"name"`
}

// SankeyLink enlace del diagrama; referencia nodos por nombre.
type SankeyLink struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
}

// SankeyGraph estructura derivada (no persistida) lista para el diagrama Sankey.
type SankeyGraph struct {
	Nodes []SankeyNode `json:"nodes"`
	Links []SankeyLink `json:"links"`
}

// Empty indica que no hay enlaces que dibujar.
func (g SankeyGraph) Empty() bool {
	return len(g.Links) == 0
}
