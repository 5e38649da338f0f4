// Package i18n holds the static translation tables and locale-aware price
// formatting used by the API's localized responses.
package i18n

import (
	"fmt"
)

type Language string

const (
	LangEN Language = "en"
	LangPT Language = "pt"
	LangES Language = "es"
)

// Languages lists the supported locales.
var Languages = []Language{LangEN, LangPT, LangES}

func IsValidLanguage(l Language) bool {
	for _, lang := range Languages {
		if lang == l {
			return true
		}
	}
	return false
}

var translations = map[Language]map[string]string{
	LangEN: en,
	LangPT: pt,
	LangES: es,
}

// Exchange rates from USD (approximate).
var exchangeRates = map[Language]float64{
	LangEN: 1,    // USD (base)
	LangPT: 5.5,  // BRL
	LangES: 0.85, // EUR
}

var currencySymbols = map[Language]string{
	LangEN: "$",
	LangPT: "R$",
	LangES: "€",
}

// T resolves a translation key for a language, falling back to English and
// finally to the key itself.
func T(lang Language, key string) string {
	if table, ok := translations[lang]; ok {
		if v, ok := table[key]; ok {
			return v
		}
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

// Table returns the full key→string table for a language; English when the
// language is unknown.
func Table(lang Language) map[string]string {
	if table, ok := translations[lang]; ok {
		return table
	}
	return en
}

// FormatPrice converts a USD base price into the locale's currency using the
// fixed exchange rate and prefixes the currency symbol.
func FormatPrice(lang Language, usd float64) string {
	rate, ok := exchangeRates[lang]
	if !ok {
		rate = exchangeRates[LangEN]
	}
	symbol, ok := currencySymbols[lang]
	if !ok {
		symbol = currencySymbols[LangEN]
	}
	return fmt.Sprintf("%s%.2f", symbol, usd*rate)
}
