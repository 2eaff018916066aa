package settingsController

import (
	"strings"

	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	validators "ivrtutor/validators/settings"

	"github.com/gofiber/fiber/v2"
)

func GetSettings(c *fiber.Ctx) error {
	var settings []models.SystemSetting
	if err := database.Database.Db.Order("key asc").Find(&settings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch settings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Settings fetched successfully!", settings)
}

func GetSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))

	var setting models.SystemSetting
	if err := database.Database.Db.Where("key = ?", key).First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting fetched successfully!", setting)
}

// UpsertSetting creates or overwrites the value for the key in the path
func UpsertSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))
	if key == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Setting key is required!", nil)
	}

	reqData, ok := c.Locals("validatedSetting").(*validators.UpsertSettingRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var setting models.SystemSetting
	if err := database.Database.Db.Where("key = ?", key).First(&setting).Error; err != nil {
		setting = models.SystemSetting{Key: key, Value: reqData.Value}
		if reqData.Description != nil {
			setting.Description = *reqData.Description
		}
		if err := database.Database.Db.Create(&setting).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save setting!", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusCreated, true, "Setting created successfully!", setting)
	}

	setting.Value = reqData.Value
	if reqData.Description != nil {
		setting.Description = *reqData.Description
	}
	if err := database.Database.Db.Save(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to save setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting updated successfully!", setting)
}

func DeleteSetting(c *fiber.Ctx) error {
	key := strings.TrimSpace(c.Params("key"))

	var setting models.SystemSetting
	if err := database.Database.Db.Where("key = ?", key).First(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Setting not found!", nil)
	}

	if err := database.Database.Db.Delete(&setting).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete setting!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Setting deleted successfully!", nil)
}
