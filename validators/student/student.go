package studentValidator

import (
	"strconv"
	"strings"

	"ivrtutor/middleware"
	"ivrtutor/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateStudentRequest is the validated payload for student registration
type CreateStudentRequest struct {
	PhoneNumber       string `json:"phone_number"`
	Name              string `json:"name"`
	PreferredLanguage string `json:"preferred_language"`
}

// UpdateStudentRequest carries the fields that may be changed after registration
type UpdateStudentRequest struct {
	Name              *string `json:"name"`
	PreferredLanguage *string `json:"preferred_language"`
	IsActive          *bool   `json:"is_active"`
}

// ListStudentsQuery is the validated query string for listing students
type ListStudentsQuery struct {
	Skip     int
	Limit    int
	IsActive *bool
	Language string
	Search   string
}

// EnrollRequest enrolls a student into a lesson, optionally linked to a call
type EnrollRequest struct {
	LessonID  uint   `json:"lesson_id"`
	SessionID string `json:"session_id"`
}

func CreateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		// Validate PhoneNumber
		reqData.PhoneNumber = utils.NormalizePhoneNumber(reqData.PhoneNumber)
		if reqData.PhoneNumber == "" {
			errors["phone_number"] = "Phone number is required!"
		} else if !utils.ValidPhoneNumber(reqData.PhoneNumber) {
			errors["phone_number"] = "Phone number must be in international format, e.g. +254712345678!"
		}

		// Validate Name (optional, callers may register anonymously)
		reqData.Name = strings.TrimSpace(reqData.Name)
		if len(reqData.Name) > 100 {
			errors["name"] = "Name must be at most 100 characters long!"
		}

		// Validate PreferredLanguage
		reqData.PreferredLanguage = strings.TrimSpace(reqData.PreferredLanguage)
		if len(reqData.PreferredLanguage) > 10 {
			errors["preferred_language"] = "Language code must be at most 10 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudent", reqData)
		return c.Next()
	}
}

func UpdateStudent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStudentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Name != nil && len(strings.TrimSpace(*reqData.Name)) > 100 {
			errors["name"] = "Name must be at most 100 characters long!"
		}
		if reqData.PreferredLanguage != nil && len(strings.TrimSpace(*reqData.PreferredLanguage)) > 10 {
			errors["preferred_language"] = "Language code must be at most 10 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedStudentUpdate", reqData)
		return c.Next()
	}
}

func StudentList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListStudentsQuery{
			Skip:     c.QueryInt("skip", 0),
			Limit:    c.QueryInt("limit", 50),
			Language: strings.TrimSpace(c.Query("language")),
			Search:   strings.TrimSpace(c.Query("search")),
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

		c.Locals("validatedStudentList", query)
		return c.Next()
	}
}

func EnrollLesson() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.LessonID == 0 {
			errors["lesson_id"] = "Lesson ID is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
