package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/i18n"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/redis"
	"github.com/medibook/medibook-backend/utils"
)

// ExamResult is one row of the catalog search: an exam offered by a
// laboratory.
type ExamResult struct {
	LaboratoryExamID  uint            `json:"laboratory_exam_id"`
	ExamID            uint            `json:"exam_id"`
	ExamName          string          `json:"exam_name"`
	ExamType          models.ExamType `json:"exam_type"`
	ExamDescription   string          `json:"exam_description"`
	ExamPrice         float64         `json:"exam_price"`
	LaboratoryID      uint            `json:"laboratory_id"`
	LaboratoryName    string          `json:"laboratory_name"`
	LaboratoryAddress string          `json:"laboratory_address"`
	LaboratoryCity    string          `json:"laboratory_city"`
	LaboratoryState   string          `json:"laboratory_state"`

	// Filled from the lang query parameter, never cached.
	ExamPriceFormatted string `json:"exam_price_formatted,omitempty" gorm:"-"`
}

const catalogCacheTTL = 5 * time.Minute

// catalogFilters builds the WHERE fragments for the search. All supplied
// filters are ANDed; the free-text term matches exam name or description
// case-insensitively.
func catalogFilters(term, examType, city string) ([]string, []interface{}) {
	var conds []string
	var args []interface{}
	if term != "" {
		conds = append(conds, "(exams.name ILIKE ? OR exams.description ILIKE ?)")
		pattern := "%" + term + "%"
		args = append(args, pattern, pattern)
	}
	if examType != "" {
		conds = append(conds, "exams.type = ?")
		args = append(args, examType)
	}
	if city != "" {
		conds = append(conds, "laboratories.city = ?")
		args = append(args, city)
	}
	return conds, args
}

// SearchExams returns the (exam, laboratory) pairings matching the optional
// term, type and city filters. An empty result is a 200 with an empty list.
func SearchExams(c *fiber.Ctx) error {
	term := c.Query("term")
	examType := c.Query("type")
	city := c.Query("city")

	if examType != "" && !models.IsValidExamType(models.ExamType(examType)) {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown exam type",
		})
	}

	lang := i18n.Language(c.Query("lang", string(i18n.LangEN)))

	cacheKey := fmt.Sprintf("catalog:search:%s:%s:%s", term, examType, city)
	results := []ExamResult{}
	if redis.GetJSON(cacheKey, &results) {
		localizePrices(results, lang)
		return c.JSON(results)
	}

	conds, args := catalogFilters(term, examType, city)
	q := db.DB.Model(&models.LaboratoryExam{}).
		Select(`laboratory_exams.id AS laboratory_exam_id,
			exams.id AS exam_id, exams.name AS exam_name, exams.type AS exam_type,
			exams.description AS exam_description, exams.price AS exam_price,
			laboratories.id AS laboratory_id, laboratories.name AS laboratory_name,
			laboratories.address AS laboratory_address, laboratories.city AS laboratory_city,
			laboratories.state AS laboratory_state`).
		Joins("JOIN exams ON exams.id = laboratory_exams.exam_id").
		Joins("JOIN laboratories ON laboratories.id = laboratory_exams.laboratory_id").
		Order("exams.name, laboratories.name")
	argIdx := 0
	for _, cond := range conds {
		n := countPlaceholders(cond)
		q = q.Where(cond, args[argIdx:argIdx+n]...)
		argIdx += n
	}

	if err := q.Scan(&results).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to search exams",
			Error:   err.Error(),
		})
	}

	redis.SetJSON(cacheKey, results, catalogCacheTTL)
	localizePrices(results, lang)
	return c.JSON(results)
}

func localizePrices(results []ExamResult, lang i18n.Language) {
	for i := range results {
		results[i].ExamPriceFormatted = i18n.FormatPrice(lang, results[i].ExamPrice)
	}
}

func countPlaceholders(cond string) int {
	n := 0
	for _, r := range cond {
		if r == '?' {
			n++
		}
	}
	return n
}

// GetCities returns the distinct laboratory cities, sorted.
func GetCities(c *fiber.Ctx) error {
	cities := []string{}
	if redis.GetJSON("catalog:cities", &cities) {
		return c.JSON(cities)
	}

	if err := db.DB.Model(&models.Laboratory{}).
		Distinct("city").
		Order("city").
		Pluck("city", &cities).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch cities",
			Error:   err.Error(),
		})
	}

	redis.SetJSON("catalog:cities", cities, catalogCacheTTL)
	return c.JSON(cities)
}

// GetLaboratoryExam returns one pairing with its exam and laboratory, used by
// the scheduling page.
func GetLaboratoryExam(c *fiber.Ctx) error {
	id := c.Params("id")

	var pairing models.LaboratoryExam
	if err := db.DB.Preload("Exam").Preload("Laboratory").First(&pairing, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Exam offering not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(pairing)
}
