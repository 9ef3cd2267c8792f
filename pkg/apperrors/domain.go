package apperrors

import (
	"fmt"
	"net/http"
)

// Фабрики и предопределенные переменные для доменных ошибок.

// ErrNotFound - фабрика для ошибки "не найдено" (404).
// Используется репозиторием при преобразовании gorm.ErrRecordNotFound.
func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, "resource", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

// ErrAlreadyExists - фабрика для ошибки "уже существует" (409)
func ErrAlreadyExists(entity string) *AppError {
	return New(CodeAlreadyExists, "resource", fmt.Sprintf("%s already exists", entity), http.StatusConflict)
}

// ErrInvalidSearchParameter - неизвестная колонка в search_by_parameter (400)
func ErrInvalidSearchParameter(parameter string) *AppError {
	return New(CodeValidationFailed, "request", "Invalid search parameter: "+parameter, http.StatusBadRequest)
}

// ErrEmailAlreadyExists - email уже используется другим аккаунтом.
// Текст сообщения - часть внешнего контракта, не менять.
var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"account",
	"Account with this email already exists",
	http.StatusBadRequest,
)

// ErrInvalidCredentials - неверный email или пароль
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

// ErrInvalidToken - токен не прошел криптографическую проверку или истек
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

// ErrSessionRevoked - подпись токена валидна, но сессия завершена
// или токен был вытеснен более новым логином
var ErrSessionRevoked = New(
	CodeSessionRevoked,
	"auth",
	"Session is no longer active",
	http.StatusUnauthorized,
)

// ErrInsufficientPermissions - роль не входит в разрешенный набор
var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)
