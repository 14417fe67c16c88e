package utils_test

import (
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/stretchr/testify/assert"
)

func TestTitle(t *testing.T) {
	assert.Equal(t, "Shattered Coast", utils.Title("shattered coast"))
	assert.Equal(t, "Iron Crown", utils.Title("IRON CROWN"))
	assert.Equal(t, "Era", utils.Title("eRa"))
	assert.Equal(t, "", utils.Title(""))
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "Founded Year", utils.FieldLabel("founded_year"))
	assert.Equal(t, "Population", utils.FieldLabel("population"))
	assert.Equal(t, "Birth Year", utils.FieldLabel("birth_year"))
}
