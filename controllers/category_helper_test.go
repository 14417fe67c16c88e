package controllers

import (
	"errors"
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/models"
	"github.com/stretchr/testify/assert"
)

func TestToTreeCategory(t *testing.T) {
	row := models.Category{
		ID:          "cat-42",
		WorldID:     7,
		Name:        "Regions",
		Description: "Geographic groupings",
		Color:       "#a1b2c3",
		ParentID:    "cat-1",
		SortOrder:   3,
	}

	cat := toTreeCategory(row)
	assert.Equal(t, "cat-42", cat.ID)
	assert.Equal(t, "Regions", cat.Name)
	assert.Equal(t, "Geographic groupings", cat.Description)
	assert.Equal(t, "#a1b2c3", cat.Color)
	assert.Equal(t, "cat-1", cat.ParentID)
	assert.Equal(t, 3, cat.Order)
}

func TestTakeStoreErrorReturnsEachFailureOnce(t *testing.T) {
	e := &categoryEditor{}
	assert.NoError(t, e.takeStoreError())

	loadErr := errors.New("load failed")
	e.loadErr = loadErr
	assert.Equal(t, loadErr, e.takeStoreError())
	assert.NoError(t, e.takeStoreError(), "reported errors are cleared")

	commitErr := errors.New("commit failed")
	e.commitErr = commitErr
	assert.Equal(t, commitErr, e.takeStoreError())
	assert.NoError(t, e.takeStoreError())
}

func TestTakeStoreErrorPrefersLoadFailure(t *testing.T) {
	e := &categoryEditor{
		loadErr:   errors.New("load failed"),
		commitErr: errors.New("commit failed"),
	}

	assert.EqualError(t, e.takeStoreError(), "load failed")
	assert.EqualError(t, e.takeStoreError(), "commit failed")
	assert.NoError(t, e.takeStoreError())
}
