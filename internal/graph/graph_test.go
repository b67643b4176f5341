package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smilemakc/linkedin-outreach-engine/internal/domain"
)

func node(id string, actionType domain.ActionType) domain.Node {
	return domain.Node{ID: id, Class: domain.NodeClassAction, ActionType: actionType}
}

func TestBuildRootsSortedDeterministic(t *testing.T) {
	def := domain.WorkflowDefinition{
		Nodes: []domain.Node{
			node("c", domain.ActionProfileVisit),
			node("a", domain.ActionProfileVisit),
			node("b", domain.ActionProfileVisit),
		},
	}
	g := Build(def)
	for i := 0; i < 20; i++ {
		assert.Equal(t, []string{"a", "b", "c"}, g.Roots())
	}
}

func TestEmptyGraphHasNoRoots(t *testing.T) {
	g := Build(domain.WorkflowDefinition{})
	assert.Empty(t, g.Roots())
}

func TestDecrementAndCheckEnqueuesAtZero(t *testing.T) {
	def := domain.WorkflowDefinition{
		Nodes: []domain.Node{
			node("a", domain.ActionProfileVisit),
			node("b", domain.ActionLikePost),
			node("c", domain.ActionCommentPost),
		},
		Edges: []domain.Edge{
			{ID: "e1", Source: "a", Target: "c"},
			{ID: "e2", Source: "b", Target: "c"},
		},
	}
	g := Build(def)
	require.Equal(t, []string{"a", "b"}, g.Roots())

	assert.False(t, g.DecrementAndCheck("c"))
	assert.True(t, g.DecrementAndCheck("c"))
}

func TestShouldFollowUnconditionalAlwaysFollows(t *testing.T) {
	e := domain.Edge{Data: domain.EdgeData{IsConditionalPath: false}}
	assert.True(t, ShouldFollow(e, true))
	assert.True(t, ShouldFollow(e, false))
}

func TestShouldFollowConditionalMatchesPolarity(t *testing.T) {
	positive := domain.Edge{Data: domain.EdgeData{IsConditionalPath: true, IsPositive: true}}
	negative := domain.Edge{Data: domain.EdgeData{IsConditionalPath: true, IsPositive: false}}

	assert.True(t, ShouldFollow(positive, true))
	assert.False(t, ShouldFollow(positive, false))
	assert.True(t, ShouldFollow(negative, false))
	assert.False(t, ShouldFollow(negative, true))
}

func TestRejectedEdgeFindsNegativePolarity(t *testing.T) {
	def := domain.WorkflowDefinition{
		Nodes: []domain.Node{
			node("a", domain.ActionSendConnectionRequest),
			node("b", domain.ActionProfileVisit),
			node("c", domain.ActionWithdrawRequest),
		},
		Edges: []domain.Edge{
			{ID: "accept", Source: "a", Target: "b", Data: domain.EdgeData{IsConditionalPath: true, IsPositive: true}},
			{ID: "reject", Source: "a", Target: "c", Data: domain.EdgeData{IsConditionalPath: true, IsPositive: false, DelayData: domain.DelayData{Delay: 3, Unit: domain.DelayDays}}},
		},
	}
	g := Build(def)
	e, ok := g.RejectedEdge("a")
	require.True(t, ok)
	assert.Equal(t, "c", e.Target)
	assert.Equal(t, DelayDuration(e.Data.DelayData), DelayDuration(domain.DelayData{Delay: 3, Unit: domain.DelayDays}))
}

func TestRejectedEdgeAbsentReturnsFalse(t *testing.T) {
	def := domain.WorkflowDefinition{
		Nodes: []domain.Node{node("a", domain.ActionProfileVisit)},
	}
	g := Build(def)
	_, ok := g.RejectedEdge("a")
	assert.False(t, ok)
}
