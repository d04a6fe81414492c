package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jaiidees/riser-gacha/internal/model"
)

func TestDigestAddress(t *testing.T) {
	d := model.DigestAddress("203.0.113.7")

	// sha256 hex is 64 lowercase hex chars
	assert.Len(t, string(d), 64)
	assert.Regexp(t, "^[0-9a-f]+$", string(d))

	// Deterministic, and distinct per address
	assert.Equal(t, d, model.DigestAddress("203.0.113.7"))
	assert.NotEqual(t, d, model.DigestAddress("203.0.113.8"))
}

func TestNormalizeLanguage(t *testing.T) {
	assert.Equal(t, model.LanguageEnglish, model.NormalizeLanguage("en"))
	assert.Equal(t, model.LanguageThai, model.NormalizeLanguage("th"))

	// Anything unrecognized falls back to Thai
	assert.Equal(t, model.LanguageThai, model.NormalizeLanguage(""))
	assert.Equal(t, model.LanguageThai, model.NormalizeLanguage("fr"))
	assert.Equal(t, model.LanguageThai, model.NormalizeLanguage("EN"))
}
