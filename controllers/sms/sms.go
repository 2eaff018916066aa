package smsController

import (
	"time"

	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	validators "ivrtutor/validators/sms"

	"github.com/gofiber/fiber/v2"
)

// CreateSMSLog records a message outcome reported by the SMS provider.
// Delivery itself happens upstream; this is the bookkeeping write path.
func CreateSMSLog(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSMSLog").(*validators.CreateSMSLogRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	smsLog := models.SMSLog{
		PhoneNumber:    reqData.PhoneNumber,
		Message:        reqData.Message,
		MessageType:    reqData.MessageType,
		SentAt:         time.Now(),
		DeliveryStatus: models.SMSStatusSent,
		Cost:           reqData.Cost,
	}

	// Attach the log to a registered student when the number is known
	var student models.Student
	if err := database.Database.Db.Where("phone_number = ?", reqData.PhoneNumber).First(&student).Error; err == nil {
		smsLog.StudentID = &student.ID
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&smsLog).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to record SMS!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "SMS recorded successfully!", smsLog)
}

func GetSMSLogs(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedSMSLogList").(*validators.ListSMSLogsQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.SMSLog{})
	if query.MessageType != "" {
		db = db.Where("message_type = ?", query.MessageType)
	}
	if query.DeliveryStatus != "" {
		db = db.Where("delivery_status = ?", query.DeliveryStatus)
	}
	if query.PhoneNumber != "" {
		db = db.Where("phone_number = ?", query.PhoneNumber)
	}

	var total int64
	db.Count(&total)

	var logs []models.SMSLog
	if err := db.Offset(query.Skip).Limit(query.Limit).Order("sent_at desc").Find(&logs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch SMS logs!", nil)
	}

	response := map[string]interface{}{
		"sms_logs": logs,
		"pagination": map[string]interface{}{
			"total": total,
			"skip":  query.Skip,
			"limit": query.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SMS logs fetched successfully!", response)
}

func GetSMSLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid SMS log ID!", nil)
	}

	var smsLog models.SMSLog
	if err := database.Database.Db.First(&smsLog, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SMS log not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SMS log fetched successfully!", smsLog)
}

// UpdateDelivery applies the provider's delivery report to an existing log
func UpdateDelivery(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid SMS log ID!", nil)
	}

	reqData, ok := c.Locals("validatedDelivery").(*validators.UpdateDeliveryRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var smsLog models.SMSLog
	if err := database.Database.Db.First(&smsLog, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SMS log not found!", nil)
	}

	smsLog.DeliveryStatus = reqData.DeliveryStatus
	if reqData.Cost != nil {
		smsLog.Cost = *reqData.Cost
	}

	if err := database.Database.Db.Save(&smsLog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update SMS log!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SMS log updated successfully!", smsLog)
}

func DeleteSMSLog(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid SMS log ID!", nil)
	}

	var smsLog models.SMSLog
	if err := database.Database.Db.First(&smsLog, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "SMS log not found!", nil)
	}

	if err := database.Database.Db.Delete(&smsLog).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete SMS log!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "SMS log deleted successfully!", nil)
}
