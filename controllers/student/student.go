package studentController

import (
	"database/sql"
	"time"

	"ivrtutor/config"
	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	validators "ivrtutor/validators/student"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateStudent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedStudent").(*validators.CreateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	// Re-registering a phone number is a conflict, never an overwrite.
	// Soft-deleted rows still hold the unique index, so check unscoped.
	var existing models.Student
	if err := database.Database.Db.Unscoped().Where("phone_number = ?", reqData.PhoneNumber).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Phone number already registered!", nil)
	}

	language := reqData.PreferredLanguage
	if language == "" {
		language = config.AppConfig.DefaultLanguage
	}

	student := models.Student{
		PhoneNumber:       reqData.PhoneNumber,
		Name:              reqData.Name,
		PreferredLanguage: language,
		LastActive:        time.Now(),
		IsActive:          true,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&student).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register student!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Student registered successfully!", student)
}

func GetStudents(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedStudentList").(*validators.ListStudentsQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.Student{})
	if query.IsActive != nil {
		db = db.Where("is_active = ?", *query.IsActive)
	}
	if query.Language != "" {
		db = db.Where("preferred_language = ?", query.Language)
	}
	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		db = db.Where("name LIKE ? OR phone_number LIKE ?", pattern, pattern)
	}

	var total int64
	db.Count(&total)

	var students []models.Student
	if err := db.Offset(query.Skip).Limit(query.Limit).Order("created_at desc").Find(&students).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch students!", nil)
	}

	response := map[string]interface{}{
		"students": students,
		"pagination": map[string]interface{}{
			"total": total,
			"skip":  query.Skip,
			"limit": query.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Students fetched successfully!", response)
}

func GetStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student fetched successfully!", student)
}

func UpdateStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	reqData, ok := c.Locals("validatedStudentUpdate").(*validators.UpdateStudentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if reqData.Name != nil {
		student.Name = *reqData.Name
	}
	if reqData.PreferredLanguage != nil {
		student.PreferredLanguage = *reqData.PreferredLanguage
	}
	if reqData.IsActive != nil {
		student.IsActive = *reqData.IsActive
	}

	if err := database.Database.Db.Save(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student updated successfully!", student)
}

func DeleteStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	if err := database.Database.Db.Delete(&student).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete student!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Student deleted successfully!", nil)
}

// GetStudentProgress summarizes a student's lesson attempts
func GetStudentProgress(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	db := database.Database.Db.Model(&models.LessonProgress{}).Where("student_id = ?", student.ID)

	var total, completed, inProgress int64
	db.Session(&gorm.Session{}).Count(&total)
	db.Session(&gorm.Session{}).Where("status = ?", models.ProgressCompleted).Count(&completed)
	db.Session(&gorm.Session{}).Where("status = ?", models.ProgressInProgress).Count(&inProgress)

	var avg sql.NullFloat64
	database.Database.Db.Model(&models.LessonProgress{}).
		Where("student_id = ? AND quiz_score IS NOT NULL", student.ID).
		Select("AVG(quiz_score)").Scan(&avg)
	var avgScore *float64
	if avg.Valid {
		avgScore = &avg.Float64
	}

	var lastLesson models.LessonProgress
	var lastLessonDate *time.Time
	if err := database.Database.Db.Where("student_id = ?", student.ID).
		Order("started_at desc").First(&lastLesson).Error; err == nil {
		lastLessonDate = &lastLesson.StartedAt
	}

	response := map[string]interface{}{
		"student_id":          student.ID,
		"total_lessons":       total,
		"completed_lessons":   completed,
		"in_progress_lessons": inProgress,
		"average_score":       avgScore,
		"last_lesson_date":    lastLessonDate,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress fetched successfully!", response)
}

// EnrollLesson starts a progress record for a student against a lesson
func EnrollLesson(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student ID!", nil)
	}

	reqData, ok := c.Locals("validatedEnroll").(*validators.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var student models.Student
	if err := database.Database.Db.First(&student, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Student not found!", nil)
	}

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_active = ?", reqData.LessonID, true).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found or not active!", nil)
	}

	// A student holds at most one open attempt per lesson
	var existing models.LessonProgress
	if err := database.Database.Db.Where("student_id = ? AND lesson_id = ? AND status = ?",
		student.ID, lesson.ID, models.ProgressInProgress).First(&existing).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Student already has an attempt in progress for this lesson!", nil)
	}

	progress := models.LessonProgress{
		StudentID: student.ID,
		LessonID:  lesson.ID,
		SessionID: reqData.SessionID,
		StartedAt: time.Now(),
		Attempts:  1,
		Status:    models.ProgressInProgress,
	}

	tx := database.Database.Db.Begin()
	if err := tx.Create(&progress).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in lesson!", nil)
	}
	if err := tx.Model(&student).Update("last_active", time.Now()).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in lesson!", nil)
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in lesson successfully!", progress)
}
