package lessonController

import (
	"ivrtutor/config"
	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	validators "ivrtutor/validators/lesson"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

func CreateLesson(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLesson").(*validators.CreateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	language := reqData.Language
	if language == "" {
		language = config.AppConfig.DefaultLanguage
	}
	duration := reqData.DurationSeconds
	if duration == 0 {
		duration = 60
	}

	lesson := models.Lesson{
		Title:           reqData.Title,
		Subject:         reqData.Subject,
		Level:           reqData.Level,
		Language:        language,
		Description:     reqData.Description,
		Content:         datatypes.NewJSONType(reqData.Content),
		DurationSeconds: duration,
		QuizQuestions:   reqData.QuizQuestions,
		IsActive:        true,
		OrderIndex:      reqData.OrderIndex,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&lesson).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

func GetLessons(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedLessonList").(*validators.ListLessonsQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.Lesson{})
	if query.Subject != "" {
		db = db.Where("subject = ?", query.Subject)
	}
	if query.Level != "" {
		db = db.Where("level = ?", query.Level)
	}
	if query.Language != "" {
		db = db.Where("language = ?", query.Language)
	}
	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
	}

	var total int64
	db.Count(&total)

	// Lessons are sequenced by order_index within a subject
	var lessons []models.Lesson
	if err := db.Offset(query.Skip).Limit(query.Limit).Order("order_index asc, id asc").Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	response := map[string]interface{}{
		"lessons": lessons,
		"pagination": map[string]interface{}{
			"total": total,
			"skip":  query.Skip,
			"limit": query.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", response)
}

func GetLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", lesson)
}

func UpdateLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	reqData, ok := c.Locals("validatedLessonUpdate").(*validators.UpdateLessonRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if reqData.Title != nil {
		lesson.Title = *reqData.Title
	}
	if reqData.Subject != nil {
		lesson.Subject = *reqData.Subject
	}
	if reqData.Level != nil {
		lesson.Level = *reqData.Level
	}
	if reqData.Language != nil {
		lesson.Language = *reqData.Language
	}
	if reqData.Description != nil {
		lesson.Description = *reqData.Description
	}
	if reqData.Content != nil {
		lesson.Content = datatypes.NewJSONType(*reqData.Content)
	}
	if reqData.DurationSeconds != nil {
		lesson.DurationSeconds = *reqData.DurationSeconds
	}
	if reqData.QuizQuestions != nil {
		lesson.QuizQuestions = reqData.QuizQuestions
	}
	if reqData.IsActive != nil {
		lesson.IsActive = *reqData.IsActive
	}
	if reqData.OrderIndex != nil {
		lesson.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := database.Database.Db.Delete(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}

// GetLessonProgress lists every attempt recorded against a lesson
func GetLessonProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid lesson ID!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.First(&lesson, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var records []models.LessonProgress
	if err := database.Database.Db.Where("lesson_id = ?", lesson.ID).
		Order("started_at desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lesson progress!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson progress fetched successfully!", records)
}
