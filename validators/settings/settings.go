package settingsValidator

import (
	"strings"

	"ivrtutor/middleware"

	"github.com/gofiber/fiber/v2"
)

// UpsertSettingRequest sets a configuration value for the key in the path
type UpsertSettingRequest struct {
	Value       string  `json:"value"`
	Description *string `json:"description"`
}

func UpsertSetting() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpsertSettingRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.Value) == "" {
			errors["value"] = "Value is required!"
		}
		if reqData.Description != nil && len(*reqData.Description) > 500 {
			errors["description"] = "Description must be at most 500 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSetting", reqData)
		return c.Next()
	}
}
