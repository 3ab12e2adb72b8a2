// Package journey deriva el grafo Sankey a partir de las transiciones entre productos.
package journey

import "github.com/jhoicas/journey-dashboard/internal/domain/entity"

// BuildSankey construye el grafo Sankey (servicio de dominio, función pura).
//
// Nodos: nombres únicos de todos los orígenes y destinos, en orden de primera
// aparición (origen antes que destino, arista por arista).
// Enlaces: uno por arista, mismo orden y mismo valor.
// Con edges vacío devuelve un grafo vacío; nunca falla.
func BuildSankey(edges []entity.JourneyEdge) entity.SankeyGraph {
	g := entity.SankeyGraph{
		Nodes: make([]entity.SankeyNode, 0, len(edges)),
		Links: make([]entity.SankeyLink, 0, len(edges)),
	}
	seen := make(map[string]struct{}, len(edges)*2)
	addNode := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		g.Nodes = append(g.Nodes, entity.SankeyNode{Name: name})
	}

	for _, e := range edges {
		addNode(e.Source)
		addNode(e.Target)
		g.Links = append(g.Links, entity.SankeyLink{Source: e.Source, Target: e.Target, Value: e.Value})
	}
	return g
}

// AcyclicLinks devuelve los enlaces que forman un grafo dirigido sin ciclos.
// Recorre en orden y descarta cada enlace cuyo destino ya alcanza a su origen
// con los enlaces conservados (incluye los enlaces de un nodo a sí mismo).
// El grafo original no se modifica.
func AcyclicLinks(links []entity.SankeyLink) []entity.SankeyLink {
	kept := make([]entity.SankeyLink, 0, len(links))
	next := make(map[string][]string, len(links))

	for _, l := range links {
		if reaches(next, l.Target, l.Source) {
			continue
		}
		kept = append(kept, l)
		next[l.Source] = append(next[l.Source], l.Target)
	}
	return kept
}

// reaches indica si hay camino from→to (DFS iterativo).
func reaches(next map[string][]string, from, to string) bool {
	if from == to {
		return true
	}
	visited := map[string]struct{}{from: {}}
	stack := []string{from}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, m := range next[n] {
			if m == to {
				return true
			}
			if _, ok := visited[m]; !ok {
				visited[m] = struct{}{}
				stack = append(stack, m)
			}
		}
	}
	return false
}

// Valid verifica que cada enlace referencie nodos existentes y que no haya nodos repetidos.
func Valid(g entity.SankeyGraph) bool {
	names := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := names[n.Name]; dup {
			return false
		}
		names[n.Name] = struct{}{}
	}
	for _, l := range g.Links {
		if _, ok := names[l.Source]; !ok {
			return false
		}
		if _, ok := names[l.Target]; !ok {
			return false
		}
	}
	return true
}
