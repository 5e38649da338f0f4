package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/i18n"
	"github.com/medibook/medibook-backend/utils"
)

// GetTranslations returns the key→string table for a supported language.
func GetTranslations(c *fiber.Ctx) error {
	lang := i18n.Language(c.Params("lang"))
	if !i18n.IsValidLanguage(lang) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unsupported language",
		})
	}
	return c.JSON(fiber.Map{
		"language":     lang,
		"translations": i18n.Table(lang),
	})
}
