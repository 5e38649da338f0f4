package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranslationLookup(t *testing.T) {
	assert.Equal(t, "Find Exams", T(LangEN, "nav.findExams"))
	assert.Equal(t, "Encontrar Exames", T(LangPT, "nav.findExams"))
	assert.Equal(t, "Buscar Exámenes", T(LangES, "nav.findExams"))
}

func TestTranslationFallback(t *testing.T) {
	// Unknown language falls back to English, unknown key to itself.
	assert.Equal(t, "Find Exams", T(Language("fr"), "nav.findExams"))
	assert.Equal(t, "nav.doesNotExist", T(LangEN, "nav.doesNotExist"))
}

func TestTablesCoverSameKeys(t *testing.T) {
	for key := range en {
		assert.Contains(t, pt, key, "pt missing %s", key)
		assert.Contains(t, es, key, "es missing %s", key)
	}
	assert.Len(t, pt, len(en))
	assert.Len(t, es, len(en))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$50.00", FormatPrice(LangEN, 50))
	assert.Equal(t, "R$275.00", FormatPrice(LangPT, 50))
	assert.Equal(t, "€42.50", FormatPrice(LangES, 50))
	// Unknown language formats as USD.
	assert.Equal(t, "$50.00", FormatPrice(Language("fr"), 50))
}

func TestIsValidLanguage(t *testing.T) {
	assert.True(t, IsValidLanguage(LangEN))
	assert.True(t, IsValidLanguage(LangPT))
	assert.True(t, IsValidLanguage(LangES))
	assert.False(t, IsValidLanguage(Language("de")))
}
