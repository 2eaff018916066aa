package sessionController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ivrtutor/config"
	"ivrtutor/database"
	"ivrtutor/models"
	sessionRoutes "ivrtutor/routers/sessionRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupTest(t *testing.T) *fiber.App {
	t.Helper()
	config.LoadConfig()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err, "open test db")

	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	app := fiber.New()
	sessionRoutes.SetupSessionRoutes(app)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return resp, env
}

func startSession(t *testing.T, app *fiber.App, phone string) models.CallSession {
	t.Helper()
	resp, env := doRequest(t, app, "POST", "/api/call-sessions", map[string]string{
		"phone_number": phone,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var session models.CallSession
	require.NoError(t, json.Unmarshal(env.Data, &session))
	return session
}

func TestStartSessionGeneratesID(t *testing.T) {
	app := setupTest(t)

	session := startSession(t, app, "+254712345678")
	assert.True(t, strings.HasPrefix(session.SessionID, "call_"))
	assert.Equal(t, models.SessionActive, session.SessionStatus)
	assert.Nil(t, session.StudentID) // caller is not registered
	assert.Nil(t, session.EndTime)
}

func TestStartSessionLinksRegisteredStudent(t *testing.T) {
	app := setupTest(t)

	student := models.Student{PhoneNumber: "+254712345678", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&student).Error)

	session := startSession(t, app, "+254712345678")
	require.NotNil(t, session.StudentID)
	assert.Equal(t, student.ID, *session.StudentID)
}

func TestStartSessionDuplicateID(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/api/call-sessions", map[string]string{
		"session_id":   "call_provider_123",
		"phone_number": "+254712345678",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "POST", "/api/call-sessions", map[string]string{
		"session_id":   "call_provider_123",
		"phone_number": "+254799999999",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestStartSessionDeletedIDStillConflicts(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/api/call-sessions", map[string]string{
		"session_id":   "call_provider_123",
		"phone_number": "+254712345678",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "DELETE", "/api/call-sessions/call_provider_123", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Soft-deleted row still owns the session identifier
	resp, _ = doRequest(t, app, "POST", "/api/call-sessions", map[string]string{
		"session_id":   "call_provider_123",
		"phone_number": "+254799999999",
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestUpdateSessionRecordsActivity(t *testing.T) {
	app := setupTest(t)

	lesson := models.Lesson{Title: "Addition", Subject: "math", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)

	session := startSession(t, app, "+254712345678")

	for _, node := range []string{"main", "math"} {
		resp, _ := doRequest(t, app, "PUT", "/api/call-sessions/"+session.SessionID, map[string]string{
			"menu_node": node,
		})
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, _ := doRequest(t, app, "PUT", "/api/call-sessions/"+session.SessionID, map[string]interface{}{
		"lesson_id": lesson.ID,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := doRequest(t, app, "PUT", "/api/call-sessions/"+session.SessionID, map[string]interface{}{
		"quiz_result": map[string]interface{}{"lesson_id": lesson.ID, "score": 80, "attempts": 2},
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.CallSession
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, []string{"main", "math"}, []string(updated.MenuPath))
	assert.Equal(t, []uint{lesson.ID}, []uint(updated.LessonsAccessed))

	results := updated.QuizResults.Data()
	require.Contains(t, results, fmt.Sprintf("lesson_%d", lesson.ID))
	assert.Equal(t, 80, results[fmt.Sprintf("lesson_%d", lesson.ID)].Score)
	assert.Equal(t, 2, results[fmt.Sprintf("lesson_%d", lesson.ID)].Attempts)
}

func TestUpdateSessionRejectsBadQuizScore(t *testing.T) {
	app := setupTest(t)

	lesson := models.Lesson{Title: "Addition", Subject: "math", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&lesson).Error)

	session := startSession(t, app, "+254712345678")

	resp, _ := doRequest(t, app, "PUT", "/api/call-sessions/"+session.SessionID, map[string]interface{}{
		"quiz_result": map[string]interface{}{"lesson_id": lesson.ID, "score": 120},
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestEndSessionDerivesDuration(t *testing.T) {
	app := setupTest(t)

	session := startSession(t, app, "+254712345678")

	resp, env := doRequest(t, app, "POST", "/api/call-sessions/"+session.SessionID+"/end", map[string]string{
		"status": "completed",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var ended models.CallSession
	require.NoError(t, json.Unmarshal(env.Data, &ended))
	assert.Equal(t, models.SessionCompleted, ended.SessionStatus)
	require.NotNil(t, ended.EndTime)
	require.NotNil(t, ended.DurationSeconds)
	assert.GreaterOrEqual(t, *ended.DurationSeconds, 0)
}

func TestEndSessionIsFinal(t *testing.T) {
	app := setupTest(t)

	session := startSession(t, app, "+254712345678")

	resp, _ := doRequest(t, app, "POST", "/api/call-sessions/"+session.SessionID+"/end", map[string]string{
		"status": "abandoned",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// A finalized session cannot be ended again or mutated
	resp, _ = doRequest(t, app, "POST", "/api/call-sessions/"+session.SessionID+"/end", map[string]string{
		"status": "completed",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, _ = doRequest(t, app, "PUT", "/api/call-sessions/"+session.SessionID, map[string]string{
		"menu_node": "main",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var stored models.CallSession
	require.NoError(t, database.Database.Db.Where("session_id = ?", session.SessionID).First(&stored).Error)
	assert.Equal(t, models.SessionAbandoned, stored.SessionStatus)
}

func TestEndSessionRejectsUnknownStatus(t *testing.T) {
	app := setupTest(t)

	session := startSession(t, app, "+254712345678")

	resp, _ := doRequest(t, app, "POST", "/api/call-sessions/"+session.SessionID+"/end", map[string]string{
		"status": "active",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListSessionsFilterByStatus(t *testing.T) {
	app := setupTest(t)

	first := startSession(t, app, "+254712345678")
	startSession(t, app, "+254799999999")

	resp, _ := doRequest(t, app, "POST", "/api/call-sessions/"+first.SessionID+"/end", map[string]string{
		"status": "completed",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, env := doRequest(t, app, "GET", "/api/call-sessions?status=completed", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		Sessions   []models.CallSession `json:"sessions"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Sessions, 1)
	assert.Equal(t, first.SessionID, data.Sessions[0].SessionID)
	assert.Equal(t, int64(1), data.Pagination.Total)
}

func TestGetSessionNotFound(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "GET", "/api/call-sessions/call_missing", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
