package node

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vk/nmltree/internal/nodeid"
	"github.com/vk/nmltree/internal/quantity"
)

func sampleTree() *Node {
	root := NewTree("model")
	bio := NewComposite("BiophysicalProperties", "bio")
	membrane := NewComposite("MembraneProperties", "membraneProperties")
	density := NewComposite("ChannelDensity", "naChans")
	density.AddChild(NewParameter("condDensity", "condDensity_naChans", quantity.New(120, "mS_per_cm2")))
	density.AddChild(NewText("ion", "ion_naChans", "na"))
	density.AddChild(NewReference("IonChannel", "naChan"))
	membrane.AddChild(density)
	membrane.AddChild(NewParameter("spikeThresh", "dup", quantity.New(-20, "mV")))
	membrane.AddChild(NewParameter("spikeThresh", "dup", quantity.New(-10, "mV")))
	bio.AddChild(membrane)
	root.AddChild(bio)
	return root
}

func TestConstructors(t *testing.T) {
	p := NewParameter("erev", "erev_na", quantity.New(50, "mV"))
	assert.Equal(t, ParameterNode, p.Type)
	assert.Equal(t, quantity.New(50, "mV"), p.Quantity)
	assert.True(t, p.IsLeaf())

	txt := NewText("ion", "ion_na", "na")
	assert.Equal(t, TextNode, txt.Type)
	assert.Equal(t, "na", txt.Text)

	ref := NewReference("IonChannel", "naChan")
	assert.Equal(t, CompositeNode, ref.Type)
	assert.True(t, ref.IsPlaceholder)
	assert.Empty(t, ref.Children())

	root := NewTree("model")
	assert.Equal(t, TreeLabel, root.Label)
	assert.False(t, root.IsPlaceholder)
}

func TestAddChild_PreservesOrder(t *testing.T) {
	parent := NewComposite("MembraneProperties", "membraneProperties")
	for _, id := range []string{"A", "B", "C"} {
		parent.AddChild(NewComposite("ChannelDensity", id))
	}

	var got []string
	for _, c := range parent.Children() {
		got = append(got, c.ID)
	}
	assert.Equal(t, []string{"A", "B", "C"}, got)
}

func TestAddChild_LeafPanics(t *testing.T) {
	leaf := NewText("ion", "ion_na", "na")
	assert.Panics(t, func() { leaf.AddChild(NewTree("x")) })
	assert.Panics(t, func() { NewTree("x").AddChild(nil) })
}

func TestWalk(t *testing.T) {
	var visited []string
	var depths []int
	sampleTree().Walk(func(n *Node, depth int) bool {
		visited = append(visited, n.ID)
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []string{"model", "bio", "membraneProperties", "naChans", "condDensity_naChans", "ion_naChans", "naChan", "dup", "dup"}, visited)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 4, 4, 3, 3}, depths)
}

func TestWalk_SkipChildren(t *testing.T) {
	var visited []string
	sampleTree().Walk(func(n *Node, depth int) bool {
		visited = append(visited, n.ID)
		return n.ID != "membraneProperties"
	})
	assert.Equal(t, []string{"model", "bio", "membraneProperties"}, visited)
}

func TestFind(t *testing.T) {
	tree := sampleTree()

	testCases := []struct {
		path       string
		expectedOK bool
		expected   quantity.Quantity
	}{
		{path: "bio.membraneProperties.naChans.condDensity_naChans", expectedOK: true, expected: quantity.New(120, "mS_per_cm2")},
		{path: "bio.membraneProperties.dup", expectedOK: true, expected: quantity.New(-20, "mV")},
		{path: "bio.membraneProperties.dup[1]", expectedOK: true, expected: quantity.New(-10, "mV")},
		{path: "bio.membraneProperties.dup[2]", expectedOK: false},
		{path: "bio.intracellularProperties", expectedOK: false},
	}

	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			addr, err := nodeid.Parse(tc.path)
			require.NoError(t, err)

			n, ok := tree.Find(addr)
			require.Equal(t, tc.expectedOK, ok)
			if ok {
				assert.Equal(t, tc.expected, n.Quantity)
			}
		})
	}

	_, ok := tree.Find(nil)
	assert.False(t, ok)
}

func TestChildAndCount(t *testing.T) {
	tree := sampleTree()
	bio, ok := tree.Child("bio")
	require.True(t, ok)
	assert.Equal(t, "BiophysicalProperties", bio.Label)

	_, ok = tree.Child("missing")
	assert.False(t, ok)

	assert.Equal(t, 9, tree.Count())
}

func TestNodeType_String(t *testing.T) {
	assert.Equal(t, "composite", CompositeNode.String())
	assert.Equal(t, "parameter", ParameterNode.String())
	assert.Equal(t, "text", TextNode.String())
	assert.Equal(t, "NodeType(7)", NodeType(7).String())
}
