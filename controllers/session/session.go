package sessionController

import (
	"fmt"
	"time"

	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	"ivrtutor/utils"
	validators "ivrtutor/validators/session"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// StartSession opens a call session when the telephony provider reports pickup
func StartSession(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSession").(*validators.StartSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	sessionID := reqData.SessionID
	if sessionID == "" {
		sessionID = utils.NewSessionID()
	}

	// Soft-deleted sessions still hold the unique index, so check unscoped
	var existing models.CallSession
	if err := database.Database.Db.Unscoped().Where("session_id = ?", sessionID).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Session ID already exists!", nil)
	}

	session := models.CallSession{
		SessionID:     sessionID,
		PhoneNumber:   reqData.PhoneNumber,
		StartTime:     time.Now(),
		SessionStatus: models.SessionActive,
		MenuPath:      datatypes.NewJSONSlice([]string{}),
		QuizResults:   datatypes.NewJSONType(map[string]models.QuizResult{}),
	}

	// Link the caller to a registered student when the number is known
	var student models.Student
	if err := database.Database.Db.Where("phone_number = ?", reqData.PhoneNumber).First(&student).Error; err == nil {
		session.StudentID = &student.ID
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&session).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
	}
	if session.StudentID != nil {
		if err := tx.Model(&student).Update("last_active", time.Now()).Error; err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to start session!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Session started successfully!", session)
}

func GetSessions(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedSessionList").(*validators.ListSessionsQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.CallSession{})
	if query.Status != "" {
		db = db.Where("session_status = ?", query.Status)
	}
	if query.PhoneNumber != "" {
		db = db.Where("phone_number = ?", query.PhoneNumber)
	}

	var total int64
	db.Count(&total)

	var sessions []models.CallSession
	if err := db.Offset(query.Skip).Limit(query.Limit).Order("start_time desc").Find(&sessions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch sessions!", nil)
	}

	response := map[string]interface{}{
		"sessions": sessions,
		"pagination": map[string]interface{}{
			"total": total,
			"skip":  query.Skip,
			"limit": query.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Sessions fetched successfully!", response)
}

func GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.CallSession
	if err := database.Database.Db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session fetched successfully!", session)
}

// UpdateSession records call activity: menu navigation, lesson playback
// and quiz outcomes. Finalized sessions are immutable.
func UpdateSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	reqData, ok := c.Locals("validatedSessionUpdate").(*validators.UpdateSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var session models.CallSession
	if err := database.Database.Db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if session.IsTerminal() {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session already finalized!", nil)
	}

	if reqData.MenuNode != "" {
		session.MenuPath = append(session.MenuPath, reqData.MenuNode)
	}

	if reqData.LessonID != nil {
		var lesson models.Lesson
		if err := database.Database.Db.First(&lesson, *reqData.LessonID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		session.LessonsAccessed = append(session.LessonsAccessed, lesson.ID)
	}

	if reqData.QuizResult != nil {
		var lesson models.Lesson
		if err := database.Database.Db.First(&lesson, reqData.QuizResult.LessonID).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
		}
		results := session.QuizResults.Data()
		if results == nil {
			results = make(map[string]models.QuizResult)
		}
		attempts := reqData.QuizResult.Attempts
		if attempts < 1 {
			attempts = 1
		}
		results[fmt.Sprintf("lesson_%d", lesson.ID)] = models.QuizResult{
			Score:    reqData.QuizResult.Score,
			Attempts: attempts,
		}
		session.QuizResults = datatypes.NewJSONType(results)
	}

	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session updated successfully!", session)
}

// EndSession finalizes the session at hangup and derives its duration
func EndSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	reqData, ok := c.Locals("validatedSessionEnd").(*validators.EndSessionRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var session models.CallSession
	if err := database.Database.Db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if !session.CanTransitionTo(reqData.Status) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Session already finalized!", nil)
	}

	now := time.Now()
	duration := int(now.Sub(session.StartTime).Seconds())
	session.EndTime = &now
	session.DurationSeconds = &duration
	session.SessionStatus = reqData.Status

	if err := database.Database.Db.Save(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to end session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session ended successfully!", session)
}

func DeleteSession(c *fiber.Ctx) error {
	sessionID := c.Params("sessionId")

	var session models.CallSession
	if err := database.Database.Db.Where("session_id = ?", sessionID).First(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Session not found!", nil)
	}

	if err := database.Database.Db.Delete(&session).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete session!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Session deleted successfully!", nil)
}
