package utils_test

import (
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fieldMessages(errs utils.FieldValidationErrors) map[string]string {
	out := make(map[string]string, len(errs))
	for _, e := range errs {
		out[e.Field] = e.Message
	}
	return out
}

func TestValidateCharacterLifespanAcceptsDeadCharacter(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1010, 1080, false, 1200)
	assert.Empty(t, errs)
}

func TestValidateCharacterLifespanAcceptsLivingCharacter(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1150, 0, true, 1200)
	assert.Empty(t, errs)
}

func TestValidateCharacterLifespanAllowsBirthBeforeRecordedHistory(t *testing.T) {
	// People alive when the chronicle opens were born before it.
	errs := utils.ValidateCharacterLifespan(-40, 30, false, 1200)
	assert.Empty(t, errs)
}

func TestValidateCharacterLifespanRejectsFutureBirth(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1300, 0, true, 1200)
	require.Len(t, errs, 1)
	assert.Equal(t, "birth_year", errs[0].Field)
	assert.Equal(t, "Birth year cannot be beyond the world's current year", errs[0].Message)
}

func TestValidateCharacterLifespanRejectsDeathYearOnLiving(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1100, 1150, true, 1200)
	require.Len(t, errs, 1)
	assert.Equal(t, "death_year", errs[0].Field)
	assert.Equal(t, "A living character cannot have a death year", errs[0].Message)
}

func TestValidateCharacterLifespanRejectsDeathBeforeBirth(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1100, 1050, false, 1200)
	require.Len(t, errs, 1)
	assert.Equal(t, "death_year", errs[0].Field)
	assert.Equal(t, "Death year cannot precede birth year", errs[0].Message)
}

func TestValidateCharacterLifespanCollectsAllErrors(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1250, 1100, false, 1200)
	msgs := fieldMessages(errs)
	require.Len(t, msgs, 2)
	assert.Contains(t, msgs["birth_year"], "current year")
	assert.Contains(t, msgs["death_year"], "precede birth year")
}

func TestFieldValidationErrorsFormatsForLogs(t *testing.T) {
	errs := utils.ValidateCharacterLifespan(1300, 0, true, 1200)
	assert.Equal(t, "birth_year: Birth year cannot be beyond the world's current year", errs.Error())
}
