package progressController

import (
	"database/sql"
	"time"

	"ivrtutor/database"
	"ivrtutor/middleware"
	"ivrtutor/models"
	validators "ivrtutor/validators/progress"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetProgressRecords(c *fiber.Ctx) error {
	query, ok := c.Locals("validatedProgressList").(*validators.ListProgressQuery)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
	}

	db := database.Database.Db.Model(&models.LessonProgress{})
	if query.StudentID != 0 {
		db = db.Where("student_id = ?", query.StudentID)
	}
	if query.LessonID != 0 {
		db = db.Where("lesson_id = ?", query.LessonID)
	}
	if query.Status != "" {
		db = db.Where("status = ?", query.Status)
	}

	var total int64
	db.Count(&total)

	var records []models.LessonProgress
	if err := db.Offset(query.Skip).Limit(query.Limit).Order("started_at desc").Find(&records).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch progress records!", nil)
	}

	response := map[string]interface{}{
		"progress": records,
		"pagination": map[string]interface{}{
			"total": total,
			"skip":  query.Skip,
			"limit": query.Limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress records fetched successfully!", response)
}

func GetProgressRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid progress ID!", nil)
	}

	var progress models.LessonProgress
	if err := database.Database.Db.First(&progress, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress record not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress record fetched successfully!", progress)
}

// UpdateProgressRecord applies quiz results and completion to an attempt.
// Completing an attempt also refreshes the student's aggregate counters.
func UpdateProgressRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid progress ID!", nil)
	}

	reqData, ok := c.Locals("validatedProgressUpdate").(*validators.UpdateProgressRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var progress models.LessonProgress
	if err := database.Database.Db.First(&progress, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress record not found!", nil)
	}

	wasCompleted := progress.Status == models.ProgressCompleted

	if reqData.QuizScore != nil {
		progress.QuizScore = reqData.QuizScore
	}
	if reqData.QuizAnswers != nil {
		progress.QuizAnswers = reqData.QuizAnswers
	}
	if reqData.TimeSpentSeconds != nil {
		progress.TimeSpentSeconds = *reqData.TimeSpentSeconds
	}
	if reqData.IncrementAttempt {
		progress.Attempts++
	}
	if reqData.Status != nil {
		progress.Status = *reqData.Status
		if progress.IsTerminalStatus() && progress.CompletedAt == nil {
			now := time.Now()
			progress.CompletedAt = &now
		}
	}

	tx := database.Database.Db.Begin()
	if err := tx.Save(&progress).Error; err != nil {
		tx.Rollback()
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress record!", nil)
	}

	// First transition into completed bumps the student's counters
	if !wasCompleted && progress.Status == models.ProgressCompleted {
		if err := refreshStudentAggregates(tx, progress.StudentID); err != nil {
			tx.Rollback()
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress record!", nil)
		}
	}
	tx.Commit()

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress record updated successfully!", progress)
}

func DeleteProgressRecord(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid progress ID!", nil)
	}

	var progress models.LessonProgress
	if err := database.Database.Db.First(&progress, id).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Progress record not found!", nil)
	}

	if err := database.Database.Db.Delete(&progress).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete progress record!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Progress record deleted successfully!", nil)
}

func refreshStudentAggregates(tx *gorm.DB, studentID uint) error {
	var completed int64
	if err := tx.Model(&models.LessonProgress{}).
		Where("student_id = ? AND status = ?", studentID, models.ProgressCompleted).
		Count(&completed).Error; err != nil {
		return err
	}

	var avg sql.NullFloat64
	if err := tx.Model(&models.LessonProgress{}).
		Where("student_id = ? AND quiz_score IS NOT NULL", studentID).
		Select("AVG(quiz_score)").Scan(&avg).Error; err != nil {
		return err
	}

	updates := map[string]interface{}{
		"total_lessons_completed": completed,
		"last_active":             time.Now(),
	}
	if avg.Valid {
		updates["average_quiz_score"] = avg.Float64
	}

	return tx.Model(&models.Student{}).Where("id = ?", studentID).Updates(updates).Error
}
