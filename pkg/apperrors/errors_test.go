package apperrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_MarshalJSON_HidesInternals(t *testing.T) {
	wrapped := Wrap(errors.New("pq: connection refused"), CodeDatabaseError, "storage", "Storage operation failed", http.StatusInternalServerError)

	data, err := json.Marshal(wrapped)
	assert.NoError(t, err)

	// Внутренняя ошибка и HTTP-код не сериализуются наружу
	assert.NotContains(t, string(data), "connection refused")
	assert.NotContains(t, string(data), "500")
	assert.Contains(t, string(data), "DATABASE_ERROR")
	assert.Contains(t, string(data), "Storage operation failed")
}

func TestAppError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	wrapped := StorageError(cause)

	assert.True(t, errors.Is(wrapped, cause))
	assert.Contains(t, wrapped.Error(), "root cause")
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(ErrNotFound("Role"))
	assert.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = AsAppError(nil)
	assert.False(t, ok)
}

func TestDomainErrors_Contract(t *testing.T) {
	// Тексты и коды - внешний контракт API
	assert.Equal(t, http.StatusBadRequest, ErrEmailAlreadyExists.HTTPCode)
	assert.Equal(t, "Account with this email already exists", ErrEmailAlreadyExists.Message)

	assert.Equal(t, http.StatusUnauthorized, ErrInvalidCredentials.HTTPCode)
	assert.Equal(t, http.StatusUnauthorized, ErrSessionRevoked.HTTPCode)
	assert.Equal(t, http.StatusForbidden, ErrInsufficientPermissions.HTTPCode)

	assert.Equal(t, "Role not found", ErrNotFound("Role").Message)
	assert.Equal(t, http.StatusConflict, ErrAlreadyExists("Role").HTTPCode)
	assert.Equal(t, http.StatusBadRequest, ErrInvalidSearchParameter("nope").HTTPCode)
}

func TestWithDetails(t *testing.T) {
	details := map[string]string{"email": "This field is required"}
	err := ValidationError(details)

	data, merr := json.Marshal(err)
	assert.NoError(t, merr)
	assert.Contains(t, string(data), "This field is required")
}
