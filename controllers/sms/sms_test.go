package smsController_test

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
	smsRoutes "ivrtutor/routers/smsRoutes"

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
	smsRoutes.SetupSMSRoutes(app)
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

func TestCreateSMSLog(t *testing.T) {
	app := setupTest(t)

	student := models.Student{PhoneNumber: "+254712345678", IsActive: true}
	require.NoError(t, database.Database.Db.Create(&student).Error)

	resp, env := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
		"phone_number": "+254712345678",
		"message":      "Welcome to IVR Tutor, Amina!",
		"message_type": "welcome",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var smsLog models.SMSLog
	require.NoError(t, json.Unmarshal(env.Data, &smsLog))
	assert.Equal(t, models.SMSStatusSent, smsLog.DeliveryStatus)
	require.NotNil(t, smsLog.StudentID)
	assert.Equal(t, student.ID, *smsLog.StudentID)
	assert.False(t, smsLog.SentAt.IsZero())
}

func TestCreateSMSLogUnregisteredNumber(t *testing.T) {
	app := setupTest(t)

	resp, env := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
		"phone_number": "+254700000000",
		"message":      "Your quiz score: 80%",
		"message_type": "quiz_result",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var smsLog models.SMSLog
	require.NoError(t, json.Unmarshal(env.Data, &smsLog))
	assert.Nil(t, smsLog.StudentID)
}

func TestCreateSMSLogInvalidType(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
		"phone_number": "+254712345678",
		"message":      "hello",
		"message_type": "marketing",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestUpdateDeliveryStatus(t *testing.T) {
	app := setupTest(t)

	_, env := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
		"phone_number": "+254712345678",
		"message":      "Reminder: lesson at 9am",
		"message_type": "reminder",
	})
	var created models.SMSLog
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, env := doRequest(t, app, "PUT", fmt.Sprintf("/api/sms-logs/%d/status", created.ID), map[string]string{
		"delivery_status": "delivered",
		"cost":            "KES 0.80",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated models.SMSLog
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.SMSStatusDelivered, updated.DeliveryStatus)
	assert.Equal(t, "KES 0.80", updated.Cost)
}

func TestUpdateDeliveryInvalidStatus(t *testing.T) {
	app := setupTest(t)

	_, env := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
		"phone_number": "+254712345678",
		"message":      "Reminder",
		"message_type": "reminder",
	})
	var created models.SMSLog
	require.NoError(t, json.Unmarshal(env.Data, &created))

	resp, _ := doRequest(t, app, "PUT", fmt.Sprintf("/api/sms-logs/%d/status", created.ID), map[string]string{
		"delivery_status": "lost",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestListSMSLogsFilters(t *testing.T) {
	app := setupTest(t)

	for _, msgType := range []string{"welcome", "reminder", "reminder"} {
		resp, _ := doRequest(t, app, "POST", "/api/sms-logs", map[string]string{
			"phone_number": "+254712345678",
			"message":      "msg",
			"message_type": msgType,
		})
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp, env := doRequest(t, app, "GET", "/api/sms-logs?message_type=reminder", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var data struct {
		SMSLogs    []models.SMSLog `json:"sms_logs"`
		Pagination struct {
			Total int64 `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data.SMSLogs, 2)
	assert.Equal(t, int64(2), data.Pagination.Total)

	resp, _ = doRequest(t, app, "GET", "/api/sms-logs?message_type=bogus", nil)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestGetSMSLogNotFound(t *testing.T) {
	app := setupTest(t)

	resp, _ := doRequest(t, app, "GET", "/api/sms-logs/9999", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
