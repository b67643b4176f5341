package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEmptyDAGIsValid(t *testing.T) {
	assert.NoError(t, WorkflowDefinition{}.Validate())
}

func TestValidateRejectsActionToNonActionEdge(t *testing.T) {
	def := WorkflowDefinition{
		Nodes: []Node{
			{ID: "a", Class: NodeClassAction, ActionType: ActionProfileVisit},
			{ID: "layout", Class: NodeClassAddStep},
		},
		Edges: []Edge{{ID: "e1", Source: "a", Target: "layout"}},
	}
	assert.Error(t, def.Validate())
}

func TestValidateRejectsDualPositiveConditionalEdges(t *testing.T) {
	def := WorkflowDefinition{
		Nodes: []Node{
			{ID: "a", Class: NodeClassAction, ActionType: ActionSendConnectionRequest},
			{ID: "b", Class: NodeClassAction, ActionType: ActionProfileVisit},
			{ID: "c", Class: NodeClassAction, ActionType: ActionLikePost},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "b", Data: EdgeData{IsConditionalPath: true, IsPositive: true}},
			{ID: "e2", Source: "a", Target: "c", Data: EdgeData{IsConditionalPath: true, IsPositive: true}},
		},
	}
	assert.Error(t, def.Validate())
}

func TestActionNodeSetExcludesAddStepNodes(t *testing.T) {
	def := WorkflowDefinition{
		Nodes: []Node{
			{ID: "a", Class: NodeClassAction, ActionType: ActionProfileVisit},
			{ID: "layout", Class: NodeClassAddStep},
		},
	}
	set := def.ActionNodeSet()
	require.Len(t, set, 1)
	_, ok := set["layout"]
	assert.False(t, ok)
}

func TestNodeIsNoOpWhenActionTypeEmpty(t *testing.T) {
	n := Node{Class: NodeClassAction}
	assert.True(t, n.IsNoOp())
}
