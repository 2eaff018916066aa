package progressValidator

import (
	"strings"

	"ivrtutor/middleware"
	"ivrtutor/models"

	"github.com/gofiber/fiber/v2"
)

// UpdateProgressRequest records quiz results and completion for an attempt
type UpdateProgressRequest struct {
	Status           *string `json:"status"`
	QuizScore        *int    `json:"quiz_score"`
	QuizAnswers      []int   `json:"quiz_answers"`
	TimeSpentSeconds *int    `json:"time_spent_seconds"`
	IncrementAttempt bool    `json:"increment_attempt"`
}

// ListProgressQuery is the validated query string for listing progress records
type ListProgressQuery struct {
	Skip      int
	Limit     int
	StudentID uint
	LessonID  uint
	Status    string
}

func UpdateProgress() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProgressRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != nil {
			switch *reqData.Status {
			case models.ProgressInProgress, models.ProgressCompleted, models.ProgressFailed:
			default:
				errors["status"] = "Status must be in_progress, completed or failed!"
			}
		}

		if reqData.QuizScore != nil && !models.ValidQuizScore(*reqData.QuizScore) {
			errors["quiz_score"] = "Quiz score must be between 0 and 100!"
		}

		if reqData.TimeSpentSeconds != nil && *reqData.TimeSpentSeconds < 0 {
			errors["time_spent_seconds"] = "Time spent must be 0 or greater!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressUpdate", reqData)
		return c.Next()
	}
}

func ProgressList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListProgressQuery{
			Skip:      c.QueryInt("skip", 0),
			Limit:     c.QueryInt("limit", 50),
			StudentID: uint(c.QueryInt("student_id", 0)),
			LessonID:  uint(c.QueryInt("lesson_id", 0)),
			Status:    strings.TrimSpace(c.Query("status")),
		}

		errors := make(map[string]string)

		if query.Skip < 0 {
			errors["skip"] = "Skip must be 0 or greater!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Status != "" && query.Status != models.ProgressInProgress &&
			query.Status != models.ProgressCompleted && query.Status != models.ProgressFailed {
			errors["status"] = "Status must be in_progress, completed or failed!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedProgressList", query)
		return c.Next()
	}
}
