package categorytree_test

import (
	"regexp"
	"strings"
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/categorytree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestEditor wires an editor to a plain slice the way the HTTP layer
// wires one to the database: load reads the current value, commit
// replaces it wholesale.
func newTestEditor(initial []categorytree.Category) (*categorytree.Editor, *[]categorytree.Category) {
	cats := initial
	ed := categorytree.NewEditor(
		func() []categorytree.Category { return cats },
		func(next []categorytree.Category) { cats = next },
	)
	return ed, &cats
}

func str(s string) *string { return &s }

func TestBeginCreatePopulatesDraftDefaults(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "existing", Name: "Existing"},
	})

	draft := ed.BeginCreate()
	assert.True(t, ed.Editing())
	assert.True(t, strings.HasPrefix(draft.ID, "cat-"))
	assert.Regexp(t, regexp.MustCompile(`^#[0-9a-f]{6}$`), draft.Color)
	assert.Empty(t, draft.Name)
	assert.Empty(t, draft.ParentID)
	assert.Equal(t, 1, draft.Order, "new drafts go last among top-level siblings")

	// Creating touches nothing until save.
	assert.Len(t, *cats, 1)

	second := ed.BeginCreate()
	assert.NotEqual(t, draft.ID, second.ID)
}

func TestBeginEditMissingIDReportsNotFound(t *testing.T) {
	initial := []categorytree.Category{{ID: "a", Name: "Kept"}}
	ed, cats := newTestEditor(initial)

	_, err := ed.BeginEdit("missing")
	assert.ErrorIs(t, err, categorytree.ErrNotFound)
	assert.False(t, ed.Editing())
	assert.Equal(t, initial, *cats)
}

func TestBeginEditCopiesByValue(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "a", Name: "Original"},
	})

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("Changed")}))

	// The committed entry stays untouched until save.
	assert.Equal(t, "Original", (*cats)[0].Name)

	draft, ok := ed.Draft()
	require.True(t, ok)
	assert.Equal(t, "Changed", draft.Name)
}

func TestSaveEmptyNameKeepsCollectionAndDraft(t *testing.T) {
	ed, cats := newTestEditor(nil)

	ed.BeginCreate()
	err := ed.Save()
	var vErr *categorytree.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "name", vErr.Field)

	// Recoverable: nothing committed, draft still open for correction.
	assert.Empty(t, *cats)
	assert.True(t, ed.Editing())

	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("Fixed")}))
	require.NoError(t, ed.Save())
	assert.Len(t, *cats, 1)
	assert.False(t, ed.Editing())
}

func TestSaveWhitespaceNameRejected(t *testing.T) {
	ed, cats := newTestEditor(nil)

	ed.BeginCreate()
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("   \t")}))

	err := ed.Save()
	var vErr *categorytree.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Empty(t, *cats)
}

func TestSaveWithoutDraftReportsNoDraft(t *testing.T) {
	ed, _ := newTestEditor(nil)
	assert.ErrorIs(t, ed.Save(), categorytree.ErrNoDraft)
	assert.ErrorIs(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("x")}), categorytree.ErrNoDraft)
}

func TestEditWithoutChangesPreservesCollection(t *testing.T) {
	initial := []categorytree.Category{
		{ID: "a", Name: "First", Order: 0},
		{ID: "b", Name: "Second", Order: 1},
		{ID: "c", Name: "Third", Order: 2},
	}
	ed, cats := newTestEditor(initial)

	_, err := ed.BeginEdit("b")
	require.NoError(t, err)
	require.NoError(t, ed.Save())

	// In-place replace, not move-to-end.
	assert.Equal(t, initial, *cats)
}

func TestSaveReplacesInPlace(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
	})

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("Renamed")}))
	require.NoError(t, ed.Save())

	require.Len(t, *cats, 2)
	assert.Equal(t, "Renamed", (*cats)[0].Name)
	assert.Equal(t, "Second", (*cats)[1].Name)
}

func TestSequentialCreatesAssignAscendingOrders(t *testing.T) {
	ed, cats := newTestEditor(nil)

	names := []string{"Eras", "Regions", "Dynasties", "Calamities"}
	for _, name := range names {
		ed.BeginCreate()
		require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str(name)}))
		require.NoError(t, ed.Save())
	}

	require.Len(t, *cats, 4)
	for i, c := range *cats {
		assert.Equal(t, i, c.Order)
		assert.Equal(t, names[i], c.Name)
	}
}

func TestOrdersNotRenumberedAfterDelete(t *testing.T) {
	ed, cats := newTestEditor(nil)
	for _, name := range []string{"A", "B", "C"} {
		ed.BeginCreate()
		require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str(name)}))
		require.NoError(t, ed.Save())
	}

	ed.Delete((*cats)[1].ID)

	require.Len(t, *cats, 2)
	assert.Equal(t, 0, (*cats)[0].Order)
	assert.Equal(t, 2, (*cats)[1].Order, "surviving orders keep their creation-time values")

	// The next create counts the shrunken collection, so orders may repeat
	// across sibling groups' history; only the relative sort matters.
	draft := ed.BeginCreate()
	assert.Equal(t, 2, draft.Order)
}

func TestDeleteDiscardsMatchingDraft(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "a", Name: "First"},
		{ID: "b", Name: "Second"},
	})

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)

	// Deleting an unrelated entry keeps the draft open.
	ed.Delete("b")
	assert.True(t, ed.Editing())
	assert.Len(t, *cats, 1)

	// Deleting the edited entry force-closes the editing session.
	ed.Delete("a")
	assert.False(t, ed.Editing())
	assert.Empty(t, *cats)
}

func TestDeleteUnknownIDCommitsUnchanged(t *testing.T) {
	initial := []categorytree.Category{{ID: "a", Name: "Kept"}}
	ed, cats := newTestEditor(initial)

	ed.Delete("missing")
	assert.Equal(t, initial, *cats)
}

func TestDeleteOrphansChildrenWithoutCascade(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "parent", Name: "Parent", Order: 0},
		{ID: "child", Name: "Child", ParentID: "parent", Order: 0},
	})

	ed.Delete("parent")

	// The child survives with its dangling parent reference intact...
	require.Len(t, *cats, 1)
	assert.Equal(t, "child", (*cats)[0].ID)
	assert.Equal(t, "parent", (*cats)[0].ParentID)

	// ...but drops out of the root walk instead of floating to top level.
	assert.Empty(t, categorytree.Children(*cats, ""))
	orphans := categorytree.Orphaned(*cats)
	require.Len(t, orphans, 1)
	assert.Equal(t, "child", orphans[0].ID)
}

func TestCancelDiscardsDraft(t *testing.T) {
	initial := []categorytree.Category{{ID: "a", Name: "Kept"}}
	ed, cats := newTestEditor(initial)

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("Thrown away")}))
	ed.Cancel()

	assert.False(t, ed.Editing())
	assert.Equal(t, initial, *cats)
}

func TestNewDraftReplacesOpenDraft(t *testing.T) {
	ed, _ := newTestEditor([]categorytree.Category{
		{ID: "a", Name: "First"},
	})

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)
	created := ed.BeginCreate()

	draft, ok := ed.Draft()
	require.True(t, ok)
	assert.Equal(t, created.ID, draft.ID, "last writer wins on the draft slot")
}

func TestSelfParentRejectedAtEditTime(t *testing.T) {
	ed, _ := newTestEditor([]categorytree.Category{
		{ID: "a", Name: "First"},
	})

	_, err := ed.BeginEdit("a")
	require.NoError(t, err)

	err = ed.UpdateDraft(categorytree.DraftUpdate{ParentID: str("a")})
	var vErr *categorytree.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "parent_id", vErr.Field)

	draft, _ := ed.Draft()
	assert.Empty(t, draft.ParentID)
}

func TestParentOptionsExcludeOnlyTheDraftItself(t *testing.T) {
	ed, _ := newTestEditor([]categorytree.Category{
		{ID: "b", Name: "Parent"},
		{ID: "c", Name: "Child", ParentID: "b"},
	})

	assert.Nil(t, ed.ParentOptions(), "idle editors have no parent picker")

	_, err := ed.BeginEdit("b")
	require.NoError(t, err)

	options := ed.ParentOptions()
	require.Len(t, options, 1)
	// Only direct self-parenting is blocked: b may still pick its own
	// child c, which is how deeper cycles can enter a collection. Tree
	// walks carry the guard for that.
	assert.Equal(t, "c", options[0].ID)
}

func TestDeepCycleCreatableButGuardedOnWalk(t *testing.T) {
	ed, cats := newTestEditor([]categorytree.Category{
		{ID: "b", Name: "Parent"},
		{ID: "c", Name: "Child", ParentID: "b"},
	})

	_, err := ed.BeginEdit("b")
	require.NoError(t, err)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{ParentID: str("c")}))
	require.NoError(t, ed.Save())

	_, err = categorytree.Subtree(*cats, "b")
	var cycleErr *categorytree.CycleError
	require.ErrorAs(t, err, &cycleErr)
}

func TestEndToEndCreateNestDelete(t *testing.T) {
	ed, cats := newTestEditor(nil)

	// Create the root category.
	first := ed.BeginCreate()
	assert.Equal(t, 0, first.Order)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{Name: str("Forest")}))
	require.NoError(t, ed.Save())

	require.Len(t, *cats, 1)
	rootID := (*cats)[0].ID
	assert.Equal(t, "Forest", (*cats)[0].Name)
	assert.Empty(t, (*cats)[0].ParentID)

	// Nest a second category under it.
	second := ed.BeginCreate()
	assert.Equal(t, 1, second.Order)
	require.NoError(t, ed.UpdateDraft(categorytree.DraftUpdate{
		Name:     str("Glade"),
		ParentID: str(rootID),
	}))
	require.NoError(t, ed.Save())

	top := categorytree.Children(*cats, "")
	require.Len(t, top, 1)
	assert.Equal(t, rootID, top[0].ID)

	nested := categorytree.Children(*cats, rootID)
	require.Len(t, nested, 1)
	assert.Equal(t, "Glade", nested[0].Name)

	// Deleting the root orphans the nested category.
	ed.Delete(rootID)
	require.Len(t, *cats, 1)
	assert.Equal(t, "Glade", (*cats)[0].Name)
	assert.Equal(t, rootID, (*cats)[0].ParentID)
	assert.Empty(t, categorytree.Children(*cats, ""))
}
