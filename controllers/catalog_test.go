package controllers

import (
	"testing"

	"github.com/medibook/medibook-backend/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogFiltersEmpty(t *testing.T) {
	conds, args := catalogFilters("", "", "")
	assert.Empty(t, conds)
	assert.Empty(t, args)
}

func TestCatalogFiltersTermOnly(t *testing.T) {
	conds, args := catalogFilters("blood", "", "")
	require.Len(t, conds, 1)
	assert.Contains(t, conds[0], "ILIKE")
	assert.Equal(t, []interface{}{"%blood%", "%blood%"}, args)
}

func TestCatalogFiltersAllCombined(t *testing.T) {
	conds, args := catalogFilters("scan", "mri", "Chicago")
	require.Len(t, conds, 3)
	assert.Contains(t, conds[1], "exams.type")
	assert.Contains(t, conds[2], "laboratories.city")
	assert.Equal(t, []interface{}{"%scan%", "%scan%", "mri", "Chicago"}, args)

	// Placeholder counts line up with the args consumed per condition.
	total := 0
	for _, cond := range conds {
		total += countPlaceholders(cond)
	}
	assert.Equal(t, len(args), total)
}

func TestLocalizePrices(t *testing.T) {
	results := []ExamResult{{ExamPrice: 50}, {ExamPrice: 100}}
	localizePrices(results, i18n.LangPT)
	assert.Equal(t, "R$275.00", results[0].ExamPriceFormatted)
	assert.Equal(t, "R$550.00", results[1].ExamPriceFormatted)
}
