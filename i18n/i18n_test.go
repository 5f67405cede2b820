package i18n

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestResolve(t *testing.T) {
	assert.Equal(t, language.Italian, Resolve("it"))
	assert.Equal(t, language.Italian, Resolve("it-IT"))
	assert.Equal(t, language.English, Resolve("en"))
	assert.Equal(t, language.English, Resolve(""))
}

func TestTranslate(t *testing.T) {
	assert.Equal(t, "Bonus activated", New("en").T(CompletedTitle))
	assert.Equal(t, "Bonus attivato", New("it").T(CompletedTitle))
	assert.Equal(t, "Error: offline", New("en").T(ErrorBody, "offline"))
}

func TestCatalogsCoverSameKeys(t *testing.T) {
	for key := range catalog[language.English] {
		_, ok := catalog[language.Italian][key]
		assert.True(t, ok, "missing italian string for %s", key)
	}
}

func TestAmount(t *testing.T) {
	assert.Equal(t, "€ 500.00", New("en").Amount(50000))
	assert.Contains(t, New("it").Amount(50000), "500")
}

func TestRegisterReportsFailedEntries(t *testing.T) {
	bad := errors.New("bad message")
	var seen int
	set := func(tag language.Tag, key, msg string) error {
		seen++
		if key == string(ErrorBody) {
			return bad
		}
		return nil
	}

	err := register(set, map[language.Tag]map[Key]string{
		language.English: {ErrorBody: "Error: %s", HomeTitle: "Holiday bonus"},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)
	assert.Contains(t, err.Error(), string(ErrorBody))
	assert.Equal(t, 2, seen)
}

func TestRegisterCatalog(t *testing.T) {
	assert.NoError(t, register(func(language.Tag, string, string) error { return nil }, catalog))
}
