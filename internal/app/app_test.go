package app

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/config"
	"castlink_backend/internal/database"
	"castlink_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// testServer поднимает приложение целиком на in-memory базе
type testServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Tokens *auth.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.JWT.Secret = "e2e-test-secret"
	cfg.Admin.Email = "admin@test.com"
	cfg.Admin.Password = "admin_password"
	cfg.Storage.Type = "local"
	cfg.Storage.BasePath = t.TempDir()
	cfg.Storage.BaseURL = "/uploads"

	router, err := SetupRouter(cfg, db)
	require.NoError(t, err)

	tokens, err := auth.NewTokenManager(cfg.JWT.Secret)
	require.NoError(t, err)

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &testServer{Server: server, DB: db, Tokens: tokens}
}

func (ts *testServer) send(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return res.StatusCode, parsed
}

func registerAndLogin(t *testing.T, ts *testServer, email, mobile string) string {
	t.Helper()

	status, _ := ts.send(t, "POST", "/api/user/register", "", map[string]interface{}{
		"name": "Test Model", "email": email, "password": "super_password123", "mobile": mobile,
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := ts.send(t, "POST", "/api/user/login", "", map[string]interface{}{
		"email": email, "password": "super_password123",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestUserRegistrationFlow(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "POST", "/api/user/register", "", map[string]interface{}{
		"name": "Test Model", "email": "model@test.com",
		"password": "super_password123", "mobile": "+77010000001",
	})
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.NotNil(t, body["userId"])

	// Повторная регистрация с тем же email — конфликт
	status, _ = ts.send(t, "POST", "/api/user/register", "", map[string]interface{}{
		"name": "Other", "email": "model@test.com",
		"password": "super_password123", "mobile": "+77010000002",
	})
	assert.Equal(t, http.StatusConflict, status)

	// Пропущенные обязательные поля — 400
	status, _ = ts.send(t, "POST", "/api/user/register", "", map[string]interface{}{
		"email": "incomplete@test.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestProfileLifecycle(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "model@test.com", "+77010000001")

	// Профиль без токена закрыт
	status, _ := ts.send(t, "GET", "/api/user/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := ts.send(t, "GET", "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, status)
	user, _ := body["user"].(map[string]interface{})
	require.NotNil(t, user)
	assert.Equal(t, "model@test.com", user["email"])
	// Дайджест пароля не утекает
	_, hasPassword := user["password"]
	assert.False(t, hasPassword)

	// Полная замена анкеты: city задан, затем пропадает
	status, _ = ts.send(t, "PUT", "/api/user/profile", token, map[string]interface{}{
		"city": "Almaty", "gender": "female",
	})
	require.Equal(t, http.StatusOK, status)

	status, _ = ts.send(t, "PUT", "/api/user/profile", token, map[string]interface{}{
		"hair_color": "black",
	})
	require.Equal(t, http.StatusOK, status)

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, "email = ?", "model@test.com").Error)
	assert.Nil(t, stored.City)
	assert.Nil(t, stored.Gender)
	require.NotNil(t, stored.HairColor)
	assert.Equal(t, "black", *stored.HairColor)
}

func TestBlockInvalidatesLiveToken(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "model@test.com", "+77010000001")

	// Токен работает
	status, _ := ts.send(t, "GET", "/api/user/profile", token, nil)
	require.Equal(t, http.StatusOK, status)

	// Админ блокирует аккаунт
	status, body := ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "admin_password",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken, _ := body["token"].(string)
	require.NotEmpty(t, adminToken)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "model@test.com").Error)

	status, _ = ts.send(t, "PATCH", fmt.Sprintf("/api/admin/users/%d/block", user.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	// Тот же токен теперь отвергается статусной проверкой
	status, _ = ts.send(t, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusForbidden, status)

	// И логин с верным паролем тоже закрыт
	status, _ = ts.send(t, "POST", "/api/user/login", "", map[string]interface{}{
		"email": "model@test.com", "password": "super_password123",
	})
	assert.Equal(t, http.StatusForbidden, status)

	// Разблокировка возвращает доступ
	status, _ = ts.send(t, "PATCH", fmt.Sprintf("/api/admin/users/%d/unblock", user.ID), adminToken, nil)
	require.Equal(t, http.StatusOK, status)

	status, _ = ts.send(t, "GET", "/api/user/profile", token, nil)
	assert.Equal(t, http.StatusOK, status)
}

func TestExpiredTokenRejected(t *testing.T) {
	ts := newTestServer(t)
	registerAndLogin(t, ts, "model@test.com", "+77010000001")

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "model@test.com").Error)

	expired, err := ts.Tokens.Issue(user.ID, user.Email, models.RoleUser, -time.Minute)
	require.NoError(t, err)

	status, body := ts.send(t, "GET", "/api/user/profile", expired, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "expired")
}

func TestRoleSeparation(t *testing.T) {
	ts := newTestServer(t)
	userToken := registerAndLogin(t, ts, "model@test.com", "+77010000001")

	// Пользовательский токен не открывает продакшн- и админ-маршруты
	status, _ := ts.send(t, "POST", "/api/production/addJobPost", userToken, map[string]interface{}{
		"project_type": "Film", "shooting_location": "Almaty",
		"role_title": "Lead", "gender": "female", "application_deadline": "2026-12-01",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = ts.send(t, "GET", "/api/admin/allUsers", userToken, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestProductionFlow(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "POST", "/api/production/register", "", map[string]interface{}{
		"full_name": "Director Name", "company_name": "Test Films", "city": "Almaty",
		"type_of_work": "Film", "email": "studio@test.com",
		"phone_number": "+77020000001", "password": "studio_password",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotNil(t, body["productionId"])

	status, body = ts.send(t, "POST", "/api/production/login", "", map[string]interface{}{
		"email": "studio@test.com", "password": "studio_password",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, body = ts.send(t, "POST", "/api/production/addJobPost", token, map[string]interface{}{
		"project_type": "Feature Film", "shooting_location": "Almaty",
		"role_title": "Lead", "gender": "female", "application_deadline": "2026-12-01",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotNil(t, body["jobPostId"])

	// Пять обязательных полей проверяются на входе
	status, _ = ts.send(t, "POST", "/api/production/addJobPost", token, map[string]interface{}{
		"project_type": "Feature Film",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, body = ts.send(t, "GET", "/api/production/jobPosts", token, nil)
	require.Equal(t, http.StatusOK, status)
	posts, _ := body["jobPosts"].([]interface{})
	assert.Len(t, posts, 1)
}

func TestTicketFlow(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "POST", "/api/user/createTicket", "", map[string]interface{}{
		"email": "model@test.com", "mobile_no": "+77010000001",
		"title": "Cannot log in", "description": "Password rejected",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotNil(t, body["ticketId"])

	// Список тикетов видит только админ
	status, body = ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "admin_password",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken, _ := body["token"].(string)

	status, body = ts.send(t, "GET", "/api/admin/fetchTickets", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	tickets, _ := body["tickets"].([]interface{})
	assert.Len(t, tickets, 1)
}

func TestHomeContent(t *testing.T) {
	ts := newTestServer(t)

	// Пустые сидовые документы отдают 404
	status, _ := ts.send(t, "GET", "/api/home/terms", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = ts.send(t, "GET", "/api/home/home-video", "", nil)
	assert.Equal(t, http.StatusNotFound, status)

	status, body := ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "admin_password",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken, _ := body["token"].(string)

	status, _ = ts.send(t, "PUT", "/api/admin/terms", adminToken, map[string]interface{}{
		"html_content": "<h1>Terms</h1>",
	})
	require.Equal(t, http.StatusOK, status)

	status, body = ts.send(t, "GET", "/api/home/terms", "", nil)
	require.Equal(t, http.StatusOK, status)
	doc, _ := body["document"].(map[string]interface{})
	require.NotNil(t, doc)
	assert.Equal(t, "<h1>Terms</h1>", doc["html_content"])

	// Баннеры публичны и изначально пусты
	status, body = ts.send(t, "GET", "/api/home/banners", "", nil)
	require.Equal(t, http.StatusOK, status)
	banners, _ := body["banners"].([]interface{})
	assert.Empty(t, banners)
}

func TestSuspensionLifecycleOverHTTP(t *testing.T) {
	ts := newTestServer(t)
	registerAndLogin(t, ts, "model@test.com", "+77010000001")

	status, body := ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "admin_password",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken, _ := body["token"].(string)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "model@test.com").Error)

	// Окно в будущем: логин закрыт с датой окончания
	from := time.Now().Format("2006-01-02")
	to := time.Now().Add(72 * time.Hour).Format("2006-01-02")
	status, _ = ts.send(t, "PATCH", fmt.Sprintf("/api/admin/users/%d/suspend", user.ID), adminToken, map[string]interface{}{
		"from": from, "to": to,
	})
	require.Equal(t, http.StatusOK, status)

	status, body = ts.send(t, "POST", "/api/user/login", "", map[string]interface{}{
		"email": "model@test.com", "password": "super_password123",
	})
	assert.Equal(t, http.StatusForbidden, status)
	msg, _ := body["message"].(string)
	assert.Contains(t, msg, "Suspension ends on")

	// Просроченное окно снимается само при следующем логине
	past := time.Now().Add(-time.Hour)
	pastStart := time.Now().Add(-48 * time.Hour)
	require.NoError(t, ts.DB.Model(&models.User{}).Where("id = ?", user.ID).Updates(map[string]interface{}{
		"suspended_from": pastStart, "suspended_to": past,
	}).Error)

	status, _ = ts.send(t, "POST", "/api/user/login", "", map[string]interface{}{
		"email": "model@test.com", "password": "super_password123",
	})
	assert.Equal(t, http.StatusOK, status)

	var stored models.User
	require.NoError(t, ts.DB.First(&stored, user.ID).Error)
	assert.False(t, stored.AccountStatus.Suspended)
}

func TestAdminAuthBoundary(t *testing.T) {
	ts := newTestServer(t)

	// Неверная пара — единый ответ 401
	status, _ := ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	// Без токена админ-маршруты закрыты
	status, _ = ts.send(t, "GET", "/api/admin/allUsers", "", nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func (ts *testServer) sendFile(t *testing.T, path, token, filename string, payload []byte, fields map[string]string) (int, map[string]interface{}) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest("POST", ts.Server.URL+path, &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	parsed := map[string]interface{}{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &parsed), "body: %s", raw)
	}
	return res.StatusCode, parsed
}

func pngPayload(t *testing.T) []byte {
	t.Helper()

	var buf bytes.Buffer
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUploadedAssetsAreServed(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "POST", "/api/admin/login", "", map[string]interface{}{
		"email": "admin@test.com", "password": "admin_password",
	})
	require.Equal(t, http.StatusOK, status)
	adminToken, _ := body["token"].(string)

	status, body = ts.sendFile(t, "/api/admin/banners", adminToken, "promo.png", pngPayload(t), nil)
	require.Equal(t, http.StatusCreated, status)
	banner, _ := body["banner"].(map[string]interface{})
	require.NotNil(t, banner)
	imagePath, _ := banner["image_path"].(string)
	require.True(t, strings.HasPrefix(imagePath, "/uploads/"), "image_path: %s", imagePath)

	// Сохранённый URL должен открываться тем же сервером
	res, err := http.Get(ts.Server.URL + imagePath)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)

	payload, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.NotEmpty(t, payload)
}

func TestUserMediaURLIsServed(t *testing.T) {
	ts := newTestServer(t)
	token := registerAndLogin(t, ts, "model@test.com", "+77010000001")

	status, body := ts.sendFile(t, "/api/user/media", token, "me.png", pngPayload(t), map[string]string{
		"type": "profile_photo",
	})
	require.Equal(t, http.StatusCreated, status)
	url, _ := body["url"].(string)
	require.NotEmpty(t, url)

	res, err := http.Get(ts.Server.URL + url)
	require.NoError(t, err)
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "GET", "/api/unknown", "", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, false, body["success"])
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	status, body := ts.send(t, "GET", "/health", "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
}
