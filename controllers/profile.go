package controllers

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/medibook/medibook-backend/db"
	"github.com/medibook/medibook-backend/models"
	"github.com/medibook/medibook-backend/utils"
)

// GetProfile returns the profile of the logged-in user.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(profile)
}

// UpdateProfile mutates the editable profile fields.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	type ProfileInput struct {
		FullName string `json:"full_name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
	}
	input := new(ProfileInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if input.FullName == "" || input.Email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "full_name and email are required",
		})
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}

	updates := map[string]interface{}{
		"full_name": input.FullName,
		"email":     input.Email,
		"phone":     input.Phone,
		"address":   input.Address,
	}
	if err := db.DB.Model(&profile).Updates(updates).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update profile",
			Error:   err.Error(),
		})
	}

	return c.JSON(profile)
}

// UploadAvatar stores a new profile picture under profiles/{userId}/ and
// records its URL.
func UploadAvatar(c *fiber.Ctx) error {
	userID := c.Locals("userID").(uint)

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to get avatar file",
			Error:   err.Error(),
		})
	}

	f, err := file.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to open avatar file",
			Error:   err.Error(),
		})
	}
	defer f.Close()

	objectName := utils.NewObjectName(filepath.Ext(file.Filename))
	folder := fmt.Sprintf("%s/%d", utils.BucketProfiles, userID)
	avatarURL, err := utils.UploadToCloudinary(f, objectName, folder)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload avatar",
			Error:   err.Error(),
		})
	}

	var profile models.Profile
	if err := db.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Profile not found",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Model(&profile).Update("avatar_url", avatarURL).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update avatar",
			Error:   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"avatar_url": avatarURL,
	})
}
