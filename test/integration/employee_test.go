package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"workforce_backend/internal/models"
	"workforce_backend/test/helpers"
)

// createEmployee заводит сотрудника от имени работодателя и возвращает его id
func createEmployee(t *testing.T, ts *helpers.TestServer, token, employerID string) string {
	t.Helper()

	email := fmt.Sprintf("employee_%d@test.com", time.Now().UnixNano())
	res, bodyStr := ts.SendRequest(t, http.MethodPost, "/api/v1/employee", token, map[string]interface{}{
		"fullname":    "Ivan Petrenko",
		"passport":    "AB123456",
		"tax_id":      "1234567890",
		"birth_date":  "1990-05-20",
		"employer_id": employerID,
		"user": map[string]interface{}{
			"email":    email,
			"phone":    "+380991234567",
			"password": "password123",
		},
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, "Создание сотрудника должно быть успешным. Ответ: "+bodyStr)

	var created struct {
		ID string `json:"id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &created))
	assert.NotEmpty(t, created.ID)
	return created.ID
}

// TestEmployeeCreate - работодатель заводит сотрудника вместе с аккаунтом
func TestEmployeeCreate(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, employerID := helpers.CreateAndLoginEmployer(t, ts)

	employeeID := createEmployee(t, ts, token, employerID)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/employee/"+employeeID, token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Ivan Petrenko")
	assert.Contains(t, bodyStr, "1990-05-20")
	assert.Contains(t, bodyStr, "employee_")
	assert.NotContains(t, bodyStr, "password")
}

// TestEmployeeCreate_UnknownEmployer - ссылка на несуществующего работодателя
func TestEmployeeCreate_UnknownEmployer(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, _ := helpers.CreateAndLoginEmployer(t, ts)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/employee", token, map[string]interface{}{
		"fullname":    "Nobody",
		"employer_id": "7b9e4a3e-9d6b-4c4e-8f25-1a2b3c4d5e6f",
		"user": map[string]interface{}{
			"email":    "nobody-employee@test.com",
			"phone":    "+380991112233",
			"password": "password123",
		},
	})
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

// TestEmployeeCreate_ForbiddenForEmployee - сотрудник не может заводить сотрудников
func TestEmployeeCreate_ForbiddenForEmployee(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	employerToken, employerID := helpers.CreateAndLoginEmployer(t, ts)
	createEmployee(t, ts, employerToken, employerID)

	// Нужен залогиненный сотрудник: заведем ему известный пароль напрямую
	employeeUser := helpers.CreateUser(t, ts.DB, fmt.Sprintf("staff_%d@test.com", time.Now().UnixNano()), "password123", models.RoleEmployee)
	employeeToken := helpers.Login(t, ts, employeeUser.Email, "password123")

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/employee", employeeToken, map[string]interface{}{
		"fullname":    "Should Fail",
		"employer_id": employerID,
		"user": map[string]interface{}{
			"email":    "fail@test.com",
			"phone":    "+380991112244",
			"password": "password123",
		},
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

// TestEmployeePartialUpdate - обновляются только переданные поля
func TestEmployeePartialUpdate(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, employerID := helpers.CreateAndLoginEmployer(t, ts)
	employeeID := createEmployee(t, ts, token, employerID)

	res, bodyStr := ts.SendRequest(t, http.MethodPut, "/api/v1/employee", token, map[string]interface{}{
		"id":       employeeID,
		"fullname": "Ivan Kovalenko",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, "Ответ: "+bodyStr)

	var updated struct {
		Fullname string `json:"fullname"`
		Passport string `json:"passport"`
		TaxID    string `json:"tax_id"`
	}
	assert.NoError(t, json.Unmarshal([]byte(bodyStr), &updated))
	assert.Equal(t, "Ivan Kovalenko", updated.Fullname)
	assert.Equal(t, "AB123456", updated.Passport)
	assert.Equal(t, "1234567890", updated.TaxID)
}

// TestEmployeeSearch - поиск по ФИО и по налоговому номеру
func TestEmployeeSearch(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, employerID := helpers.CreateAndLoginEmployer(t, ts)
	createEmployee(t, ts, token, employerID)

	res, bodyStr := ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search?parameter=fullname&keyword=Petrenko", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Ivan Petrenko")

	res, bodyStr = ts.SendRequest(t, http.MethodGet, "/api/v1/employee/search?parameter=tax_id&keyword=12345", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, bodyStr, "Ivan Petrenko")
}

// TestEmployeeDelete - удаление каскадом сносит аккаунт и платежные данные
func TestEmployeeDelete(t *testing.T) {
	t.Parallel()

	ts := helpers.NewTestServer(t)
	token, employerID := helpers.CreateAndLoginEmployer(t, ts)
	employeeID := createEmployee(t, ts, token, employerID)

	res, _ := ts.SendRequest(t, http.MethodDelete, "/api/v1/employee/"+employeeID, token, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/employee/"+employeeID, token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
