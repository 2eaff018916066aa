package settingsRoutes

import (
	controllers "ivrtutor/controllers/settings"
	validators "ivrtutor/validators/settings"

	"github.com/gofiber/fiber/v2"
)

// SetupSettingsRoutes sets up the system configuration routes
func SetupSettingsRoutes(app *fiber.App) {
	settingsGroup := app.Group("/api/settings")

	settingsGroup.Get("/", controllers.GetSettings)
	settingsGroup.Get("/:key", controllers.GetSetting)
	settingsGroup.Put("/:key", validators.UpsertSetting(), controllers.UpsertSetting)
	settingsGroup.Delete("/:key", controllers.DeleteSetting)
}
