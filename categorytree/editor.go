package categorytree

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// Editor mediates the single-draft editing workflow over an externally
// owned category collection. It never keeps its own copy of the committed
// data: load supplies the current collection on every operation that
// needs it, and commit receives the complete replacement on every
// committed mutation (save, delete). The owner decides what load and
// commit actually do; persistence is not this package's business.
//
// An Editor is either idle or holds exactly one draft. Starting a new
// create or edit while a draft is open silently replaces it. Editors are
// not safe for concurrent use; callers serialize access.
type Editor struct {
	load   func() []Category
	commit func([]Category)
	draft  *Category
}

// NewEditor wires an Editor to its owner's collection accessors.
func NewEditor(load func() []Category, commit func([]Category)) *Editor {
	return &Editor{load: load, commit: commit}
}

// BeginCreate opens a fresh draft with a generated unique id, a random
// color, and an Order that places it last among the current top-level
// siblings. The committed collection is not touched. The returned value
// is a copy of the draft.
func (e *Editor) BeginCreate() Category {
	e.draft = &Category{
		ID:    NewCategoryID(),
		Color: RandomColor(),
		Order: len(e.load()),
	}
	return *e.draft
}

// BeginEdit copies the committed entry with the given id into the draft
// slot. The copy is by value: edits never reach the committed collection
// until Save. Returns ErrNotFound, leaving the editor untouched, when no
// such entry exists.
func (e *Editor) BeginEdit(id string) (Category, error) {
	existing, ok := Find(e.load(), id)
	if !ok {
		return Category{}, ErrNotFound
	}
	e.draft = &existing
	return existing, nil
}

// Draft returns a copy of the open draft, or false when the editor is
// idle.
func (e *Editor) Draft() (Category, bool) {
	if e.draft == nil {
		return Category{}, false
	}
	return *e.draft, true
}

// Editing reports whether a draft is open.
func (e *Editor) Editing() bool {
	return e.draft != nil
}

// DraftUpdate carries partial field changes for the open draft. Nil
// fields are left as they are. The draft's id is not updatable: ids are
// assigned at creation and immutable afterwards.
type DraftUpdate struct {
	Name        *string
	Description *string
	Color       *string
	ParentID    *string
	Order       *int
}

// UpdateDraft applies the update to the open draft. Name, description,
// color and order are accepted unchecked; validation waits until Save.
// The one edit-time check mirrors the parent picker: the draft cannot
// choose itself as parent. Deeper cycles are not prevented here; tree
// walks guard against them instead.
func (e *Editor) UpdateDraft(u DraftUpdate) error {
	if e.draft == nil {
		return ErrNoDraft
	}
	if u.ParentID != nil && *u.ParentID != "" && *u.ParentID == e.draft.ID {
		return &ValidationError{Field: "parent_id", Reason: "a category cannot be its own parent"}
	}
	if u.Name != nil {
		e.draft.Name = *u.Name
	}
	if u.Description != nil {
		e.draft.Description = *u.Description
	}
	if u.Color != nil {
		e.draft.Color = *u.Color
	}
	if u.ParentID != nil {
		e.draft.ParentID = *u.ParentID
	}
	if u.Order != nil {
		e.draft.Order = *u.Order
	}
	return nil
}

// ParentOptions lists the committed categories the open draft may pick as
// parent: everything except the draft itself, in collection order. Nil
// when the editor is idle.
func (e *Editor) ParentOptions() []Category {
	if e.draft == nil {
		return nil
	}
	var options []Category
	for _, c := range e.load() {
		if c.ID == e.draft.ID {
			continue
		}
		options = append(options, c)
	}
	return options
}

// Save validates the draft and merges it into the committed collection:
// an entry with the same id is replaced in place, anything else is
// appended. On success the full updated collection goes to commit, the
// draft is cleared and the editor returns to idle. A ValidationError
// keeps the draft open so the caller can fix it; nothing is committed.
func (e *Editor) Save() error {
	if e.draft == nil {
		return ErrNoDraft
	}
	if strings.TrimSpace(e.draft.ID) == "" {
		return &ValidationError{Field: "id", Reason: "must not be empty"}
	}
	if strings.TrimSpace(e.draft.Name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}

	current := e.load()
	next := make([]Category, len(current))
	copy(next, current)

	replaced := false
	for i := range next {
		if next[i].ID == e.draft.ID {
			next[i] = *e.draft
			replaced = true
			break
		}
	}
	if !replaced {
		next = append(next, *e.draft)
	}

	e.commit(next)
	e.draft = nil
	return nil
}

// Cancel discards the open draft without touching the committed
// collection. Safe to call when idle.
func (e *Editor) Cancel() {
	e.draft = nil
}

// Delete removes the entry with the given id and commits the result.
// Confirmation is the caller's concern. Children keep their ParentID and
// become orphans; nothing cascades or reparents. Deleting the id that is
// open in the draft also discards the draft. Unknown ids commit the
// collection unchanged.
func (e *Editor) Delete(id string) {
	current := e.load()
	next := make([]Category, 0, len(current))
	for _, c := range current {
		if c.ID != id {
			next = append(next, c)
		}
	}
	if e.draft != nil && e.draft.ID == id {
		e.draft = nil
	}
	e.commit(next)
}

// NewCategoryID returns a fresh category id. Ids live in a single flat
// namespace shared by every category in a collection.
func NewCategoryID() string {
	return "cat-" + uuid.New().String()
}

// RandomColor returns a random #rrggbb color for newly created drafts.
func RandomColor() string {
	return fmt.Sprintf("#%06x", rand.Intn(0x1000000))
}
