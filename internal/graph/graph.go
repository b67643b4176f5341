// Package graph builds the traversal structures the lead graph walker (C2)
// needs: in-degree counts, forward adjacency and conditional-edge lookup
// over the action-node-restricted subgraph. Adapted from the teacher's
// internal/application/executor/graph.go WorkflowGraph (forwardEdges /
// reverseEdges maps over a node/edge config list).
package graph

import (
	"sort"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

// ExecutionGraph is the restricted (action-nodes-only) view of a
// WorkflowDefinition used during a single lead's traversal (§4.2).
type ExecutionGraph struct {
	Nodes map[string]domain.Node
	// outgoing maps a node id to the edges leaving it.
	outgoing map[string][]domain.Edge
	// InDegree is mutated by the walker as edges are followed (§4.2 step 5).
	InDegree map[string]int
}

// Build restricts the workflow to action nodes and their interconnecting
// edges, then computes initial in-degree for each node (§4.2
// "Initialization").
func Build(def domain.WorkflowDefinition) *ExecutionGraph {
	nodes := def.ActionNodeSet()
	edges := def.RestrictedEdges()

	g := &ExecutionGraph{
		Nodes:    nodes,
		outgoing: make(map[string][]domain.Edge, len(nodes)),
		InDegree: make(map[string]int, len(nodes)),
	}
	for id := range nodes {
		g.InDegree[id] = 0
	}
	for _, e := range edges {
		g.outgoing[e.Source] = append(g.outgoing[e.Source], e)
		g.InDegree[e.Target]++
	}
	return g
}

// Roots returns the ids of all zero-indegree nodes, used to seed the FIFO
// queue (§4.2). Sorted by id: this runs inside a workflow, so iteration
// order must not depend on Go's randomized map order across replays.
func (g *ExecutionGraph) Roots() []string {
	var roots []string
	for id, deg := range g.InDegree {
		if deg == 0 {
			roots = append(roots, id)
		}
	}
	sort.Strings(roots)
	return roots
}

// OutgoingEdges returns the edges leaving nodeID, in definition order.
func (g *ExecutionGraph) OutgoingEdges(nodeID string) []domain.Edge {
	return g.outgoing[nodeID]
}

// DecrementAndCheck decrements the target's in-degree and reports whether it
// has reached zero and should now be enqueued (§4.2 step 5: "unvisited
// targets with decremented degree reaching 0 through other paths still
// enqueue").
func (g *ExecutionGraph) DecrementAndCheck(targetID string) bool {
	g.InDegree[targetID]--
	return g.InDegree[targetID] == 0
}

// ShouldFollow evaluates an edge's conditional routing rule given the
// source node's execution outcome (§4.2 step 5, §4.5 Glossary "Conditional
// edge"): unconditional edges are always followed; conditional edges are
// followed iff IsPositive == success.
func ShouldFollow(e domain.Edge, success bool) bool {
	if !e.Data.IsConditionalPath {
		return true
	}
	return e.Data.IsPositive == success
}

// RejectedEdge returns the outgoing conditional edge from nodeID marked
// IsPositive=false, if any — used by C3 to derive the connection-request
// polling horizon (§4.3 step 5: "the outgoing conditional edge marked
// isPositive=false").
func (g *ExecutionGraph) RejectedEdge(nodeID string) (domain.Edge, bool) {
	for _, e := range g.outgoing[nodeID] {
		if e.Data.IsConditionalPath && !e.Data.IsPositive {
			return e, true
		}
	}
	return domain.Edge{}, false
}
