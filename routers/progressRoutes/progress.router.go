package progressRoutes

import (
	controllers "ivrtutor/controllers/progress"
	validators "ivrtutor/validators/progress"

	"github.com/gofiber/fiber/v2"
)

// SetupProgressRoutes sets up the lesson progress routes. New records are
// created through student enrollment; these routes read and finalize them.
func SetupProgressRoutes(app *fiber.App) {
	progressGroup := app.Group("/api/progress")

	progressGroup.Get("/", validators.ProgressList(), controllers.GetProgressRecords)
	progressGroup.Get("/:id", controllers.GetProgressRecord)
	progressGroup.Put("/:id", validators.UpdateProgress(), controllers.UpdateProgressRecord)
	progressGroup.Delete("/:id", controllers.DeleteProgressRecord)
}
