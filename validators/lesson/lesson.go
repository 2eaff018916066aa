package lessonValidator

import (
	"fmt"
	"strconv"
	"strings"

	"ivrtutor/middleware"
	"ivrtutor/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLessonRequest is the validated payload for authoring a lesson
type CreateLessonRequest struct {
	Title           string                `json:"title"`
	Subject         string                `json:"subject"`
	Level           string                `json:"level"`
	Language        string                `json:"language"`
	Description     string                `json:"description"`
	Content         models.LessonContent  `json:"content"`
	DurationSeconds int                   `json:"duration_seconds"`
	QuizQuestions   []models.QuizQuestion `json:"quiz_questions"`
	OrderIndex      int                   `json:"order_index"`
}

// UpdateLessonRequest carries the fields that may be changed on a lesson
type UpdateLessonRequest struct {
	Title           *string               `json:"title"`
	Subject         *string               `json:"subject"`
	Level           *string               `json:"level"`
	Language        *string               `json:"language"`
	Description     *string               `json:"description"`
	Content         *models.LessonContent `json:"content"`
	DurationSeconds *int                  `json:"duration_seconds"`
	QuizQuestions   []models.QuizQuestion `json:"quiz_questions"`
	IsActive        *bool                 `json:"is_active"`
	OrderIndex      *int                  `json:"order_index"`
}

// ListLessonsQuery is the validated query string for listing lessons
type ListLessonsQuery struct {
	Skip     int
	Limit    int
	Subject  string
	Level    string
	Language string
	IsActive *bool
}

func validateQuizQuestions(questions []models.QuizQuestion, errors map[string]string) {
	for i, q := range questions {
		if err := q.Validate(); err != nil {
			errors["quiz_questions"] = fmt.Sprintf("Question %d: %s", i+1, err.Error())
			return
		}
	}
}

func CreateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate Title
		reqData.Title = strings.TrimSpace(reqData.Title)
		if reqData.Title == "" {
			errors["title"] = "Title is required!"
		} else if len(reqData.Title) > 200 {
			errors["title"] = "Title must be at most 200 characters long!"
		}

		// Validate Subject
		reqData.Subject = strings.TrimSpace(reqData.Subject)
		if reqData.Subject == "" {
			errors["subject"] = "Subject is required!"
		}

		// Validate Content variant
		if err := reqData.Content.Validate(); err != nil {
			errors["content"] = err.Error()
		}

		// Validate Duration
		if reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration must be 0 or greater!"
		}

		// Validate quiz questions
		validateQuizQuestions(reqData.QuizQuestions, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLesson", reqData)
		return c.Next()
	}
}

func UpdateLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateLessonRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Title != nil {
			title := strings.TrimSpace(*reqData.Title)
			if title == "" {
				errors["title"] = "Title cannot be empty!"
			} else if len(title) > 200 {
				errors["title"] = "Title must be at most 200 characters long!"
			}
		}
		if reqData.Content != nil {
			if err := reqData.Content.Validate(); err != nil {
				errors["content"] = err.Error()
			}
		}
		if reqData.DurationSeconds != nil && *reqData.DurationSeconds < 0 {
			errors["duration_seconds"] = "Duration must be 0 or greater!"
		}
		validateQuizQuestions(reqData.QuizQuestions, errors)

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonUpdate", reqData)
		return c.Next()
	}
}

func LessonList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListLessonsQuery{
			Skip:     c.QueryInt("skip", 0),
			Limit:    c.QueryInt("limit", 50),
			Subject:  strings.TrimSpace(c.Query("subject")),
			Level:    strings.TrimSpace(c.Query("level")),
			Language: strings.TrimSpace(c.Query("language")),
		}

		errors := make(map[string]string)

		if raw := c.Query("is_active"); raw != "" {
			isActive, err := strconv.ParseBool(raw)
			if err != nil {
				errors["is_active"] = "is_active must be true or false!"
			} else {
				query.IsActive = &isActive
			}
		}

		if query.Skip < 0 {
			errors["skip"] = "Skip must be 0 or greater!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedLessonList", query)
		return c.Next()
	}
}
