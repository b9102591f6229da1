package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHexColor(t *testing.T) {
	valid := []string{"abc", "#abc", "A1B2C3", "#A1B2C3", "000000", "#fff"}
	for _, s := range valid {
		assert.True(t, IsHexColor(s), s)
	}

	invalid := []string{"", "#", "ab", "abcd", "#abcd", "ggg", "12345", "#1234567", "rouge"}
	for _, s := range invalid {
		assert.False(t, IsHexColor(s), s)
	}
}

func TestNormalizeHexColor(t *testing.T) {
	assert.Equal(t, "#abc", NormalizeHexColor("abc"))
	assert.Equal(t, "#abc", NormalizeHexColor("#abc"))
	assert.Equal(t, "#A1B2C3", NormalizeHexColor("A1B2C3"))
}

func TestErrors(t *testing.T) {
	errs := Errors{}
	assert.False(t, errs.Any())

	errs.Add("title", RequiredMessage("title"))
	errs.Add("title", TakenMessage("title"))
	errs.Add("color", FormatMessage("color"))

	assert.True(t, errs.Any())
	assert.Len(t, errs["title"], 2)
	assert.Equal(t, "The color format is invalid.", errs["color"][0])
}
