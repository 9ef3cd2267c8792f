package helpers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"workforce_backend/internal/app"
	"workforce_backend/internal/models"
)

type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
}

// NewTestServer поднимает приложение поверх чистой in-memory БД
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := NewTestDB(t)
	router := app.SetupRouter(TestConfig(), db)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{Server: server, DB: db}
}

// SendRequest шлет JSON-запрос с опциональным bearer-токеном
// и возвращает ответ вместе с прочитанным телом
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, ts.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}
	return res, string(resBody)
}

// CreateUser создает пользователя напрямую в БД с ролью по имени.
// Пароль хешируется здесь, в тестах он передается сырым.
func CreateUser(t *testing.T, db *gorm.DB, email, password, roleName string) *models.User {
	t.Helper()

	var role models.Role
	if err := db.Where("name = ?", roleName).First(&role).Error; err != nil {
		t.Fatalf("Роль %q не засеяна: %v", roleName, err)
	}
	var status models.StatusType
	if err := db.Where("name = ?", models.StatusTypeActive).First(&status).Error; err != nil {
		t.Fatalf("Статус %q не засеян: %v", models.StatusTypeActive, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("Не удалось хешировать пароль: %v", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        "+380501112233",
		RoleID:       role.ID,
		StatusTypeID: status.ID,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Не удалось создать пользователя %s: %v", email, err)
	}
	return user
}

// Login логинит по API и возвращает access_token
func Login(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Логин должен быть успешным. Ответ: "+bodyStr)

	var loginResponse struct {
		Token string `json:"access_token"`
	}
	err := json.Unmarshal([]byte(bodyStr), &loginResponse)
	assert.NoError(t, err, "Не удалось распарсить JSON логина")
	assert.NotEmpty(t, loginResponse.Token, "Токен не должен быть пустым")

	return loginResponse.Token
}

// CreateAndLoginSuperuser создает суперпользователя и логинит его
func CreateAndLoginSuperuser(t *testing.T, ts *TestServer) string {
	t.Helper()
	email := fmt.Sprintf("root_%d@test.com", time.Now().UnixNano())
	CreateUser(t, ts.DB, email, "root-password-123", models.RoleSuperuser)
	return Login(t, ts, email, "root-password-123")
}

// CreateEmployerType заводит тип работодателя напрямую в БД
func CreateEmployerType(t *testing.T, db *gorm.DB, name string) *models.EmployerType {
	t.Helper()
	obj := &models.EmployerType{Name: name}
	if err := db.Create(obj).Error; err != nil {
		t.Fatalf("Не удалось создать тип работодателя %q: %v", name, err)
	}
	return obj
}

// RegisterEmployer регистрирует работодателя через публичный API
// и возвращает id профиля
func RegisterEmployer(t *testing.T, ts *TestServer, email, password string) string {
	t.Helper()

	et := CreateEmployerType(t, ts.DB, fmt.Sprintf("type_%d", time.Now().UnixNano()))

	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/employer", "", map[string]interface{}{
		"name":             "Test Company LLC",
		"address":          "Kyiv, Khreshchatyk 1",
		"edrpou":           "12345678",
		"employer_type_id": et.ID,
		"user": map[string]interface{}{
			"email":    email,
			"phone":    "+380671234567",
			"password": password,
		},
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Регистрация работодателя должна быть успешной. Ответ: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	err := json.Unmarshal([]byte(bodyStr), &created)
	assert.NoError(t, err, "Не удалось распарсить JSON регистрации")
	assert.NotEmpty(t, created.ID, "ID профиля не должен быть пустым")

	return created.ID
}

// CreateAndLoginEmployer регистрирует работодателя и логинит его
func CreateAndLoginEmployer(t *testing.T, ts *TestServer) (string, string) {
	t.Helper()
	email := fmt.Sprintf("employer_%d@test.com", time.Now().UnixNano())
	employerID := RegisterEmployer(t, ts, email, "password123")
	return Login(t, ts, email, "password123"), employerID
}
