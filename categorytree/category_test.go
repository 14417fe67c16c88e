package categorytree_test

import (
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/categorytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFind(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "a", Name: "Regions"},
		{ID: "b", Name: "Ruins"},
	}

	found, ok := categorytree.Find(cats, "b")
	assert.True(t, ok)
	assert.Equal(t, "Ruins", found.Name)

	_, ok = categorytree.Find(cats, "z")
	assert.False(t, ok)
}

func TestChildrenSortsSiblingsByOrder(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "c", ParentID: "root", Order: 2},
		{ID: "a", ParentID: "root", Order: 0},
		{ID: "b", ParentID: "root", Order: 1},
		{ID: "other", ParentID: "elsewhere", Order: 0},
	}

	children := categorytree.Children(cats, "root")
	require.Len(t, children, 3)
	assert.Equal(t, "a", children[0].ID)
	assert.Equal(t, "b", children[1].ID)
	assert.Equal(t, "c", children[2].ID)
}

func TestChildrenBreaksTiesByCollectionOrder(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "first", ParentID: "", Order: 5},
		{ID: "second", ParentID: "", Order: 5},
		{ID: "third", ParentID: "", Order: 5},
	}

	children := categorytree.Children(cats, "")
	require.Len(t, children, 3)
	assert.Equal(t, "first", children[0].ID)
	assert.Equal(t, "second", children[1].ID)
	assert.Equal(t, "third", children[2].ID)
}

func TestChildrenIsStableAcrossCalls(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "b", ParentID: "", Order: 1},
		{ID: "a", ParentID: "", Order: 0},
		{ID: "c", ParentID: "", Order: 1},
	}

	first := categorytree.Children(cats, "")
	second := categorytree.Children(cats, "")
	assert.Equal(t, first, second)
}

func TestSubtreeBuildsNestedView(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "regions", Name: "Regions", Order: 0},
		{ID: "coast", Name: "Coast", ParentID: "regions", Order: 1},
		{ID: "highlands", Name: "Highlands", ParentID: "regions", Order: 0},
		{ID: "cove", Name: "Cove", ParentID: "coast", Order: 0},
	}

	forest, err := categorytree.Subtree(cats, "")
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "regions", forest[0].ID)

	require.Len(t, forest[0].Children, 2)
	assert.Equal(t, "highlands", forest[0].Children[0].ID)
	assert.Equal(t, "coast", forest[0].Children[1].ID)

	require.Len(t, forest[0].Children[1].Children, 1)
	assert.Equal(t, "cove", forest[0].Children[1].Children[0].ID)
}

func TestSubtreeDetectsParentCycle(t *testing.T) {
	// b and c point at each other; neither is reachable from the root,
	// but walking from inside the cycle must abort rather than recurse.
	cats := []categorytree.Category{
		{ID: "a", Name: "Top"},
		{ID: "b", Name: "Loop one", ParentID: "c"},
		{ID: "c", Name: "Loop two", ParentID: "b"},
	}

	_, err := categorytree.Subtree(cats, "b")
	var cycleErr *categorytree.CycleError
	require.ErrorAs(t, err, &cycleErr)

	// The root walk never enters the cycle, so it still succeeds.
	forest, err := categorytree.Subtree(cats, "")
	require.NoError(t, err)
	require.Len(t, forest, 1)
	assert.Equal(t, "a", forest[0].ID)
}

func TestSubtreeDetectsSelfParent(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "x", Name: "Self", ParentID: "x"},
	}

	_, err := categorytree.Subtree(cats, "x")
	var cycleErr *categorytree.CycleError
	require.ErrorAs(t, err, &cycleErr)
	assert.Equal(t, "x", cycleErr.ID)
}

func TestOrphanedReportsUnreachableEntries(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "alive", Name: "Alive"},
		{ID: "child", Name: "Child", ParentID: "gone"},
		{ID: "grandchild", Name: "Grandchild", ParentID: "child"},
		{ID: "loop1", ParentID: "loop2"},
		{ID: "loop2", ParentID: "loop1"},
	}

	orphans := categorytree.Orphaned(cats)
	require.Len(t, orphans, 4)
	assert.Equal(t, "child", orphans[0].ID)
	assert.Equal(t, "grandchild", orphans[1].ID)
	assert.Equal(t, "loop1", orphans[2].ID)
	assert.Equal(t, "loop2", orphans[3].ID)
}

func TestOrphanedEmptyForHealthyForest(t *testing.T) {
	cats := []categorytree.Category{
		{ID: "a"},
		{ID: "b", ParentID: "a"},
	}

	assert.Empty(t, categorytree.Orphaned(cats))
}
