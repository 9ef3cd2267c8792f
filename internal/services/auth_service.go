package services

import (
	"workforce_backend/internal/auth"
	"workforce_backend/internal/models"
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

type AuthService interface {
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	// Authenticate проверяет предъявленный токен по трем условиям:
	// валидная подпись и срок, совпадение с последней сессией пользователя,
	// сессия не завершена. Возвращает пользователя с предзагруженной ролью.
	Authenticate(tokenStr string) (*models.User, error)
	Logout(userID string) error
}

type AuthServiceImpl struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	issuer      *auth.TokenIssuer
}

func NewAuthService(
	userRepo repositories.UserRepository,
	sessionRepo repositories.SessionRepository,
	issuer *auth.TokenIssuer,
) AuthService {
	return &AuthServiceImpl{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		issuer:      issuer,
	}
}

// Login - аутентификация по email и паролю.
// Успешный логин выпускает JWT и фиксирует сессию; предыдущая сессия
// автоматически вытесняется, так как валидация сверяет только последнюю.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		// Не раскрываем, существует ли аккаунт
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	accessToken, err := s.issuer.Sign(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		Token:  accessToken,
		Status: models.SessionLoggedIn,
		UserID: user.ID,
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
	}, nil
}

func (s *AuthServiceImpl) Authenticate(tokenStr string) (*models.User, error) {
	claims, err := s.issuer.Parse(tokenStr)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	session, err := s.sessionRepo.LatestByUser(claims.UserID)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			return nil, apperrors.ErrSessionRevoked
		}
		return nil, err
	}

	// Защита от повтора: вытесненный или отозванный токен не проходит,
	// даже пока его подпись и exp еще валидны
	if session.Token != tokenStr || session.Status != models.SessionLoggedIn {
		return nil, apperrors.ErrSessionRevoked
	}

	user, err := s.userRepo.FindByID(claims.UserID)
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			return nil, apperrors.ErrSessionRevoked
		}
		return nil, err
	}
	return user, nil
}

// Logout переводит текущую сессию в logged-out. Обратного перехода нет.
func (s *AuthServiceImpl) Logout(userID string) error {
	session, err := s.sessionRepo.LatestByUser(userID)
	if err != nil {
		return err
	}
	if session.Status == models.SessionLoggedOut {
		return nil
	}
	return s.sessionRepo.Revoke(session)
}
