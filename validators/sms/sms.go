package smsValidator

import (
	"strings"

	"ivrtutor/middleware"
	"ivrtutor/models"
	"ivrtutor/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateSMSLogRequest records one message and its initial outcome
type CreateSMSLogRequest struct {
	PhoneNumber string `json:"phone_number"`
	Message     string `json:"message"`
	MessageType string `json:"message_type"`
	Cost        string `json:"cost"`
}

// UpdateDeliveryRequest records the delivery outcome reported by the provider
type UpdateDeliveryRequest struct {
	DeliveryStatus string  `json:"delivery_status"`
	Cost           *string `json:"cost"`
}

// ListSMSLogsQuery is the validated query string for listing message logs
type ListSMSLogsQuery struct {
	Skip           int
	Limit          int
	MessageType    string
	DeliveryStatus string
	PhoneNumber    string
}

func CreateSMSLog() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSMSLogRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.PhoneNumber = utils.NormalizePhoneNumber(reqData.PhoneNumber)
		if reqData.PhoneNumber == "" {
			errors["phone_number"] = "Phone number is required!"
		} else if !utils.ValidPhoneNumber(reqData.PhoneNumber) {
			errors["phone_number"] = "Phone number must be in international format, e.g. +254712345678!"
		}

		if strings.TrimSpace(reqData.Message) == "" {
			errors["message"] = "Message body is required!"
		}

		if !models.ValidSMSType(reqData.MessageType) {
			errors["message_type"] = "Message type must be progress, reminder, welcome or quiz_result!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSMSLog", reqData)
		return c.Next()
	}
}

func UpdateDelivery() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateDeliveryRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !models.ValidSMSStatus(reqData.DeliveryStatus) {
			errors["delivery_status"] = "Delivery status must be sent, delivered or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedDelivery", reqData)
		return c.Next()
	}
}

func SMSLogList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListSMSLogsQuery{
			Skip:           c.QueryInt("skip", 0),
			Limit:          c.QueryInt("limit", 50),
			MessageType:    strings.TrimSpace(c.Query("message_type")),
			DeliveryStatus: strings.TrimSpace(c.Query("delivery_status")),
			PhoneNumber:    utils.NormalizePhoneNumber(c.Query("phone")),
		}

		errors := make(map[string]string)

		if query.Skip < 0 {
			errors["skip"] = "Skip must be 0 or greater!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.MessageType != "" && !models.ValidSMSType(query.MessageType) {
			errors["message_type"] = "Message type must be progress, reminder, welcome or quiz_result!"
		}
		if query.DeliveryStatus != "" && !models.ValidSMSStatus(query.DeliveryStatus) {
			errors["delivery_status"] = "Delivery status must be sent, delivered or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSMSLogList", query)
		return c.Next()
	}
}
