package repositories

import (
	"errors"

	"gorm.io/gorm"

	"workforce_backend/internal/models"
	"workforce_backend/pkg/apperrors"
)

type SessionRepository interface {
	Create(session *models.Session) error
	// LatestByUser возвращает самую свежую сессию пользователя.
	// Именно с ней сверяется предъявленный токен: более старый, хоть и
	// криптографически валидный токен, валидацию не проходит.
	LatestByUser(userID string) (*models.Session, error)
	Revoke(session *models.Session) error
}

type SessionRepositoryImpl struct {
	base *Repository[models.Session]
	db   *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &SessionRepositoryImpl{
		base: NewRepository[models.Session](db),
		db:   db,
	}
}

func (r *SessionRepositoryImpl) Create(session *models.Session) error {
	return r.base.Create(session)
}

func (r *SessionRepositoryImpl) LatestByUser(userID string) (*models.Session, error) {
	var session models.Session
	err := r.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound("Session")
		}
		return nil, apperrors.StorageError(err)
	}
	return &session, nil
}

// Revoke переводит сессию в logged-out. Переход односторонний.
func (r *SessionRepositoryImpl) Revoke(session *models.Session) error {
	return r.base.Update(session, map[string]any{"status": models.SessionLoggedOut})
}
