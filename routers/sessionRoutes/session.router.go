package sessionRoutes

import (
	controllers "ivrtutor/controllers/session"
	validators "ivrtutor/validators/session"

	"github.com/gofiber/fiber/v2"
)

// SetupSessionRoutes sets up the call session lifecycle routes. Sessions are
// addressed by the provider-issued session identifier, not the row ID.
func SetupSessionRoutes(app *fiber.App) {
	sessionGroup := app.Group("/api/call-sessions")

	sessionGroup.Post("/", validators.StartSession(), controllers.StartSession)
	sessionGroup.Get("/", validators.SessionList(), controllers.GetSessions)
	sessionGroup.Get("/:sessionId", controllers.GetSession)
	sessionGroup.Put("/:sessionId", validators.UpdateSession(), controllers.UpdateSession)
	sessionGroup.Post("/:sessionId/end", validators.EndSession(), controllers.EndSession)
	sessionGroup.Delete("/:sessionId", controllers.DeleteSession)
}
