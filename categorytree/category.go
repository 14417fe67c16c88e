// Package categorytree holds the category collection logic used by the
// world category endpoints. The authoritative store is a flat slice of
// categories linked by parent ids; tree views are derived from it on
// demand and never kept around as a linked object graph.
package categorytree

import (
	"errors"
	"fmt"
	"sort"
)

// Category is a user-defined grouping node. Categories form a forest via
// ParentID references: an empty ParentID marks a top-level category, and a
// ParentID that no longer resolves leaves the category in the collection
// but outside every tree walk that starts at the root.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Color       string `json:"color"`
	ParentID    string `json:"parent_id"`
	Order       int    `json:"order"`
}

// ErrNotFound is returned when an operation names a category id that is
// not present in the committed collection.
var ErrNotFound = errors.New("category not found")

// ErrNoDraft is returned when a draft operation runs outside an editing
// session.
var ErrNoDraft = errors.New("no category draft in progress")

// ValidationError reports a draft field that failed a save-time or
// edit-time check. The draft is kept so the caller can correct it.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CycleError reports a parent chain that loops back on itself during a
// tree walk. The collection itself is left untouched; only the derived
// view is refused.
type CycleError struct {
	ID string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("category %q is part of a parent cycle", e.ID)
}

// Find returns the category with the given id and whether it exists.
func Find(cats []Category, id string) (Category, bool) {
	for _, c := range cats {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Children returns the categories whose ParentID equals parentID, sorted
// ascending by Order. Ties keep their relative collection order, so the
// result is stable across repeated calls on the same collection. Pass an
// empty parentID for the top-level categories.
func Children(cats []Category, parentID string) []Category {
	var children []Category
	for _, c := range cats {
		if c.ParentID == parentID {
			children = append(children, c)
		}
	}
	sort.SliceStable(children, func(i, j int) bool {
		return children[i].Order < children[j].Order
	})
	return children
}

// Node is one element of a derived tree view: a category together with
// the subtrees hanging off it.
type Node struct {
	Category
	Children []Node `json:"children"`
}

// Subtree builds the tree below parentID by recursively applying
// Children. The flat collection stays the source of truth; the returned
// nodes are copies. A parent chain that loops back on itself aborts the
// walk with a CycleError instead of recursing forever, which also covers
// collections that violate the id-uniqueness invariant. Pass an empty
// parentID for the full forest.
func Subtree(cats []Category, parentID string) ([]Node, error) {
	return subtree(cats, parentID, make(map[string]bool))
}

func subtree(cats []Category, parentID string, visited map[string]bool) ([]Node, error) {
	children := Children(cats, parentID)
	nodes := make([]Node, 0, len(children))
	for _, child := range children {
		if visited[child.ID] {
			return nil, &CycleError{ID: child.ID}
		}
		visited[child.ID] = true
		grandchildren, err := subtree(cats, child.ID, visited)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, Node{Category: child, Children: grandchildren})
	}
	return nodes, nil
}

// Orphaned returns the categories that a tree walk from the root can no
// longer reach, in collection order. A category ends up here when its
// parent (or a further ancestor) was deleted, or when its parent chain
// loops. Orphans deliberately do not fall back to the top level.
func Orphaned(cats []Category) []Category {
	reachable := make(map[string]bool)
	queue := []string{""}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range Children(cats, id) {
			if reachable[child.ID] {
				continue
			}
			reachable[child.ID] = true
			queue = append(queue, child.ID)
		}
	}

	var orphans []Category
	for _, c := range cats {
		if !reachable[c.ID] {
			orphans = append(orphans, c)
		}
	}
	return orphans
}
