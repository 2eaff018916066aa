package lessonRoutes

import (
	controllers "ivrtutor/controllers/lesson"
	validators "ivrtutor/validators/lesson"

	"github.com/gofiber/fiber/v2"
)

// SetupLessonRoutes sets up all lesson CRUD routes
func SetupLessonRoutes(app *fiber.App) {
	lessonGroup := app.Group("/api/lessons")

	lessonGroup.Post("/", validators.CreateLesson(), controllers.CreateLesson)
	lessonGroup.Get("/", validators.LessonList(), controllers.GetLessons)
	lessonGroup.Get("/:id", controllers.GetLesson)
	lessonGroup.Put("/:id", validators.UpdateLesson(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", controllers.DeleteLesson)

	// Attempts recorded against a lesson
	lessonGroup.Get("/:id/progress", controllers.GetLessonProgress)
}
