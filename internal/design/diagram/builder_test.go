package diagram

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archfind/arch-backend/internal/design/domain"
)

func fullSelection() domain.ServiceSelection {
	return domain.ServiceSelection{
		domain.CategoryCompute:      "Amazon ECS (Fargate)",
		domain.CategoryDatabase:     "Amazon RDS (PostgreSQL)",
		domain.CategoryStorage:      "Amazon S3",
		domain.CategoryLoadBalancer: "Application Load Balancer",
		domain.CategoryCDN:          "Amazon CloudFront",
		domain.CategoryDNS:          "Amazon Route 53",
		domain.CategoryMonitoring:   "Amazon CloudWatch",
	}
}

func edgeSet(g domain.DiagramGraph) map[string]bool {
	out := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		out[e.From+">"+e.To] = true
	}
	return out
}

func TestBuild(t *testing.T) {
	t.Run("full selection", func(t *testing.T) {
		g := Build(fullSelection())

		require.Len(t, g.Nodes, 7)
		// nodes follow the canonical category order
		assert.Equal(t, "compute", g.Nodes[0].ID)
		assert.Equal(t, "monitoring", g.Nodes[6].ID)

		edges := edgeSet(g)
		require.Len(t, g.Edges, 5)
		assert.True(t, edges["load_balancer>compute"])
		assert.True(t, edges["cdn>load_balancer"])
		assert.True(t, edges["compute>database"])
		assert.True(t, edges["compute>storage"])
		assert.True(t, edges["compute>monitoring"])
	})

	t.Run("cdn falls back to compute without a load balancer", func(t *testing.T) {
		sel := fullSelection()
		delete(sel, domain.CategoryLoadBalancer)

		edges := edgeSet(Build(sel))
		assert.True(t, edges["cdn>compute"])
		assert.False(t, edges["cdn>load_balancer"])
		assert.False(t, edges["load_balancer>compute"])
	})

	t.Run("minimal selection", func(t *testing.T) {
		g := Build(domain.ServiceSelection{
			domain.CategoryCompute:    "AWS Lambda",
			domain.CategoryStorage:    "Amazon S3",
			domain.CategoryMonitoring: "Amazon CloudWatch",
		})

		require.Len(t, g.Nodes, 3)
		edges := edgeSet(g)
		require.Len(t, g.Edges, 2)
		assert.True(t, edges["compute>storage"])
		assert.True(t, edges["compute>monitoring"])
	})

	t.Run("every edge references an emitted node", func(t *testing.T) {
		g := Build(fullSelection())
		ids := map[string]bool{}
		for _, n := range g.Nodes {
			assert.False(t, ids[n.ID], "duplicate node id %s", n.ID)
			ids[n.ID] = true
		}
		for _, e := range g.Edges {
			assert.True(t, ids[e.From], "dangling edge from %s", e.From)
			assert.True(t, ids[e.To], "dangling edge to %s", e.To)
		}
	})

	t.Run("layout slots never collide", func(t *testing.T) {
		g := Build(fullSelection())
		seen := map[string]bool{}
		for _, n := range g.Nodes {
			key := fmt.Sprintf("%v,%v", n.X, n.Y)
			assert.False(t, seen[key], "nodes share slot %s", key)
			seen[key] = true
		}
	})
}

func TestToDOT(t *testing.T) {
	g := Build(fullSelection())
	dot := ToDOT(g, "Demo Shop")

	assert.Contains(t, dot, "digraph G {")
	assert.Contains(t, dot, `label="Demo Shop"`)
	assert.Contains(t, dot, `"load_balancer" -> "compute";`)
	// data stores render as cylinders
	assert.Contains(t, dot, `"database" [label="Amazon RDS (PostgreSQL)", shape=cylinder`)
	assert.Contains(t, dot, `"storage" [label="Amazon S3", shape=cylinder`)

	t.Run("title is optional", func(t *testing.T) {
		assert.NotContains(t, ToDOT(g, ""), "labelloc")
	})
}
