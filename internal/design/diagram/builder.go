// Package diagram builds the dependency graph for a service selection: one
// node per selected category at a fixed layout slot, edges from a static
// adjacency table.
package diagram

import (
	"github.com/archfind/arch-backend/internal/design/domain"
)

type slot struct{ x, y float64 }

// One slot per category. Slots never collide, so same-tier nodes cannot
// overlap regardless of which categories are selected.
var slots = map[domain.ServiceCategory]slot{
	domain.CategoryCDN:          {80, 40},
	domain.CategoryDNS:          {320, 40},
	domain.CategoryLoadBalancer: {200, 140},
	domain.CategoryCompute:      {200, 260},
	domain.CategoryDatabase:     {80, 380},
	domain.CategoryStorage:      {320, 380},
	domain.CategoryMonitoring:   {460, 260},
}

// Build constructs the graph. Edge rules:
//
//	load_balancer -> compute
//	cdn -> load_balancer, or cdn -> compute when no load balancer exists
//	compute -> database, storage, monitoring
//
// Every emitted edge references nodes that were created; the rule table is
// acyclic by construction.
func Build(services domain.ServiceSelection) domain.DiagramGraph {
	var g domain.DiagramGraph

	present := make(map[domain.ServiceCategory]bool, len(services))
	for _, cat := range domain.CategoryOrder {
		label, ok := services[cat]
		if !ok {
			continue
		}
		present[cat] = true
		s := slots[cat]
		g.Nodes = append(g.Nodes, domain.DiagramNode{
			ID:    string(cat),
			Label: label,
			X:     s.x,
			Y:     s.y,
		})
	}

	addEdge := func(from, to domain.ServiceCategory) {
		if present[from] && present[to] {
			g.Edges = append(g.Edges, domain.DiagramEdge{From: string(from), To: string(to)})
		}
	}

	addEdge(domain.CategoryLoadBalancer, domain.CategoryCompute)
	if present[domain.CategoryLoadBalancer] {
		addEdge(domain.CategoryCDN, domain.CategoryLoadBalancer)
	} else {
		addEdge(domain.CategoryCDN, domain.CategoryCompute)
	}
	addEdge(domain.CategoryCompute, domain.CategoryDatabase)
	addEdge(domain.CategoryCompute, domain.CategoryStorage)
	addEdge(domain.CategoryCompute, domain.CategoryMonitoring)

	return g
}
