package errs

import (
	"errors"
	"testing"

	"github.com/napalu/argmatch/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestKeys_AreTranslated(t *testing.T) {
	b := i18n.Default()
	for _, key := range Keys() {
		assert.True(t, b.HasKey(language.English, key), key)
		assert.True(t, b.HasKey(language.German, key), key)
	}
}

func TestSentinels_AreDistinct(t *testing.T) {
	assert.False(t, errors.Is(ErrTooFewValues, ErrTooManyValues))
	assert.True(t, errors.Is(ErrNotEnoughValues.WithArgs("--x", 2, 1), ErrNotEnoughValues))
}

func TestSentinels_English(t *testing.T) {
	err := ErrRequiredArgument.WithArgs("--config")
	assert.Equal(t, "the following required argument was not provided: '--config'", err.Error())
}

func TestUpdateMessageProvider(t *testing.T) {
	t.Cleanup(func() {
		UpdateMessageProvider(i18n.NewLanguageProvider(i18n.Default(), language.English))
	})

	UpdateMessageProvider(i18n.NewLanguageProvider(i18n.Default(), language.German))
	assert.Equal(t, "unbekanntes Argument", ErrUnknownArgument.Error())
}
