package smsRoutes

import (
	controllers "ivrtutor/controllers/sms"
	validators "ivrtutor/validators/sms"

	"github.com/gofiber/fiber/v2"
)

// SetupSMSRoutes sets up the message log routes
func SetupSMSRoutes(app *fiber.App) {
	smsGroup := app.Group("/api/sms-logs")

	smsGroup.Post("/", validators.CreateSMSLog(), controllers.CreateSMSLog)
	smsGroup.Get("/", validators.SMSLogList(), controllers.GetSMSLogs)
	smsGroup.Get("/:id", controllers.GetSMSLog)
	smsGroup.Put("/:id/status", validators.UpdateDelivery(), controllers.UpdateDelivery)
	smsGroup.Delete("/:id", controllers.DeleteSMSLog)
}
