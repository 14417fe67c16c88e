package utils_test

import (
	"testing"

	"github.com/RobinsonDionte40hz/world-history-sim-engine-sub007/utils"
	"github.com/stretchr/testify/assert"
)

func TestValidateUsername(t *testing.T) {
	valid, msg := utils.ValidateUsername("world_builder_9")
	assert.True(t, valid)
	assert.Empty(t, msg)

	valid, msg = utils.ValidateUsername("ab")
	assert.False(t, valid)
	assert.Equal(t, "Username must be at least 3 characters long", msg)

	valid, msg = utils.ValidateUsername("this_username_is_far_too_long")
	assert.False(t, valid)
	assert.Equal(t, "Username must not exceed 20 characters", msg)

	valid, msg = utils.ValidateUsername("bad name!")
	assert.False(t, valid)
	assert.Equal(t, "Username can only contain letters, numbers, and underscores", msg)
}

func TestValidateUsernameRejectsInjection(t *testing.T) {
	valid, msg := utils.ValidateUsername("x' UNION SELECT password")
	assert.False(t, valid)
	assert.Contains(t, msg, "Username:")
	assert.Contains(t, msg, "SQL injection detected")
}

func TestValidateEmail(t *testing.T) {
	valid, msg := utils.ValidateEmail("keeper@worldhistorysim.io")
	assert.True(t, valid)
	assert.Empty(t, msg)

	valid, msg = utils.ValidateEmail("not-an-email")
	assert.False(t, valid)
	assert.Equal(t, "Invalid email format. Please enter a valid email address", msg)
}

func TestValidatePassword(t *testing.T) {
	valid, msg := utils.ValidatePassword("Chronicle7!")
	assert.True(t, valid)
	assert.Empty(t, msg)

	cases := []struct {
		password string
		message  string
	}{
		{"Sh0rt!", "Password must be at least 8 characters long"},
		{"ALLCAPS99!", "Password must contain at least one lowercase letter"},
		{"lowercase99!", "Password must contain at least one uppercase letter"},
		{"NoDigitsHere!", "Password must contain at least one number"},
		{"NoSpecials99", "Password must contain at least one special character (@$!%*?&)"},
		{"Has Spaces99!", "Password can only contain letters, numbers, and special characters (@$!%*?&)"},
	}
	for _, tc := range cases {
		valid, msg := utils.ValidatePassword(tc.password)
		assert.False(t, valid, tc.password)
		assert.Equal(t, tc.message, msg)
	}
}

func TestValidateConfirmPassword(t *testing.T) {
	valid, msg := utils.ValidateConfirmPassword("Chronicle7!", "Chronicle7!")
	assert.True(t, valid)
	assert.Empty(t, msg)

	valid, msg = utils.ValidateConfirmPassword("Chronicle7!", "Different7!")
	assert.False(t, valid)
	assert.Equal(t, "Passwords do not match", msg)
}

func TestValidateName(t *testing.T) {
	valid, msg := utils.ValidateName("")
	assert.True(t, valid, "name is optional")
	assert.Empty(t, msg)

	valid, _ = utils.ValidateName("Mara")
	assert.True(t, valid)

	valid, msg = utils.ValidateName("M")
	assert.False(t, valid)
	assert.Equal(t, "Name must be at least 2 characters long", msg)

	valid, msg = utils.ValidateName("Mara4")
	assert.False(t, valid)
	assert.Equal(t, "Name cannot contain numbers or special characters", msg)
}

func TestSanitizeStringEscapesMarkup(t *testing.T) {
	assert.Equal(t, "plain text", utils.SanitizeString("plain text"))
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt;", utils.SanitizeString("<b>bold</b>"))
}

func TestValidateSQLInjection(t *testing.T) {
	valid, msg := utils.ValidateSQLInjection("The Shattered Coast")
	assert.True(t, valid)
	assert.Empty(t, msg)

	for _, input := range []string{
		"1 UNION SELECT * FROM users",
		"x; DROP TABLE worlds",
		"name INSERT INTO users",
	} {
		valid, msg := utils.ValidateSQLInjection(input)
		assert.False(t, valid, input)
		assert.Contains(t, msg, "SQL injection detected")
	}
}

func TestValidateXSS(t *testing.T) {
	valid, msg := utils.ValidateXSS("An honest chronicle")
	assert.True(t, valid)
	assert.Empty(t, msg)

	for _, input := range []string{
		"<script>steal()</script>",
		"javascript:void(0)",
		"x onerror=boom",
	} {
		valid, msg := utils.ValidateXSS(input)
		assert.False(t, valid, input)
		assert.Contains(t, msg, "XSS detected")
	}
}

func TestValidateYearRange(t *testing.T) {
	assert.NoError(t, utils.ValidateYearRange(100, 500))
	assert.NoError(t, utils.ValidateYearRange(100, 100))
	assert.EqualError(t, utils.ValidateYearRange(500, 100), "current year cannot precede start year")
}

func TestValidateStringLength(t *testing.T) {
	assert.NoError(t, utils.ValidateStringLength("Eldoria", 2, 100))
	assert.EqualError(t, utils.ValidateStringLength("  x  ", 2, 100), "must be at least 2 characters long")
	assert.EqualError(t, utils.ValidateStringLength("abcdef", 2, 5), "must not exceed 5 characters")
}
