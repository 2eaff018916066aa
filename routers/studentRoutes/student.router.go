package studentRoutes

import (
	controllers "ivrtutor/controllers/student"
	validators "ivrtutor/validators/student"

	"github.com/gofiber/fiber/v2"
)

// SetupStudentRoutes sets up all student CRUD and progress routes
func SetupStudentRoutes(app *fiber.App) {
	studentGroup := app.Group("/api/students")

	studentGroup.Post("/", validators.CreateStudent(), controllers.CreateStudent)
	studentGroup.Get("/", validators.StudentList(), controllers.GetStudents)
	studentGroup.Get("/:id", controllers.GetStudent)
	studentGroup.Put("/:id", validators.UpdateStudent(), controllers.UpdateStudent)
	studentGroup.Delete("/:id", controllers.DeleteStudent)

	// Progress summary and lesson enrollment
	studentGroup.Get("/:id/progress", controllers.GetStudentProgress)
	studentGroup.Post("/:id/enroll", validators.EnrollLesson(), controllers.EnrollLesson)
}
