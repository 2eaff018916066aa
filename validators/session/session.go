package sessionValidator

import (
	"strings"

	"ivrtutor/middleware"
	"ivrtutor/models"
	"ivrtutor/utils"

	"github.com/gofiber/fiber/v2"
)

// StartSessionRequest opens a call session. SessionID is normally assigned by
// the telephony provider; one is generated when the field is empty.
type StartSessionRequest struct {
	SessionID   string `json:"session_id"`
	PhoneNumber string `json:"phone_number"`
}

// QuizResultUpdate records one lesson's quiz outcome during the call
type QuizResultUpdate struct {
	LessonID uint `json:"lesson_id"`
	Score    int  `json:"score"`
	Attempts int  `json:"attempts"`
}

// UpdateSessionRequest mutates an active session as the caller navigates
type UpdateSessionRequest struct {
	MenuNode   string            `json:"menu_node"`
	LessonID   *uint             `json:"lesson_id"`
	QuizResult *QuizResultUpdate `json:"quiz_result"`
}

// EndSessionRequest finalizes the session at hangup
type EndSessionRequest struct {
	Status string `json:"status"`
}

// ListSessionsQuery is the validated query string for listing call sessions
type ListSessionsQuery struct {
	Skip        int
	Limit       int
	Status      string
	PhoneNumber string
}

func StartSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(StartSessionRequest)

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

		reqData.SessionID = strings.TrimSpace(reqData.SessionID)
		if len(reqData.SessionID) > 100 {
			errors["session_id"] = "Session ID must be at most 100 characters long!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSession", reqData)
		return c.Next()
	}
}

func UpdateSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.MenuNode = strings.TrimSpace(reqData.MenuNode)
		if reqData.MenuNode == "" && reqData.LessonID == nil && reqData.QuizResult == nil {
			errors["body"] = "Nothing to update: provide menu_node, lesson_id or quiz_result!"
		}

		if reqData.QuizResult != nil {
			if reqData.QuizResult.LessonID == 0 {
				errors["quiz_result"] = "Quiz result lesson_id is required!"
			} else if !models.ValidQuizScore(reqData.QuizResult.Score) {
				errors["quiz_result"] = "Quiz score must be between 0 and 100!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSessionUpdate", reqData)
		return c.Next()
	}
}

func EndSession() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EndSessionRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.Status != models.SessionCompleted && reqData.Status != models.SessionAbandoned {
			errors["status"] = "Status must be completed or abandoned!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSessionEnd", reqData)
		return c.Next()
	}
}

func SessionList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		query := &ListSessionsQuery{
			Skip:        c.QueryInt("skip", 0),
			Limit:       c.QueryInt("limit", 50),
			Status:      strings.TrimSpace(c.Query("status")),
			PhoneNumber: utils.NormalizePhoneNumber(c.Query("phone")),
		}

		errors := make(map[string]string)

		if query.Skip < 0 {
			errors["skip"] = "Skip must be 0 or greater!"
		}
		if query.Limit < 1 || query.Limit > 100 {
			errors["limit"] = "Limit must be between 1 and 100!"
		}
		if query.Status != "" && query.Status != models.SessionActive &&
			query.Status != models.SessionCompleted && query.Status != models.SessionAbandoned {
			errors["status"] = "Status must be active, completed or abandoned!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSessionList", query)
		return c.Next()
	}
}
