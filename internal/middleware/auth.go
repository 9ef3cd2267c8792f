package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"workforce_backend/internal/logger"
	"workforce_backend/internal/models"
	"workforce_backend/internal/services"
	"workforce_backend/pkg/apperrors"
)

// AuthMiddleware - проверка bearer-токена.
// Подпись и срок проверяет JWT-библиотека, актуальность - строка сессии:
// отозванный или вытесненный токен не проходит, даже если подпись валидна.
func AuthMiddleware(authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abortWithError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		user, err := authService.Authenticate(tokenStr)
		if err != nil {
			abortWithError(c, err)
			return
		}

		// Сохраняем идентичность в контекст
		c.Set("userID", user.ID)
		if user.Role != nil {
			c.Set("role", user.Role.Name)
		}
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), user.ID))

		c.Next()
	}
}

// RequireRoles - ограничение по ролям. Суперпользователь проходит всегда.
func RequireRoles(roles ...string) gin.HandlerFunc {
	roleSet := make(map[string]bool)
	for _, r := range roles {
		roleSet[r] = true
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		role, ok := roleVal.(string)
		if !ok {
			abortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		if role != models.RoleSuperuser && !roleSet[role] {
			abortWithError(c, apperrors.ErrInsufficientPermissions)
			return
		}

		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	userID, exists := c.Get("userID")
	if !exists {
		return ""
	}

	id, ok := userID.(string)
	if !ok {
		return ""
	}
	return id
}

func abortWithError(c *gin.Context, err error) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		appErr = apperrors.InternalError(err)
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, apperrors.ErrorResponse{Error: appErr})
}
