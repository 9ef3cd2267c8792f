package services

import (
	"workforce_backend/internal/repositories"
	"workforce_backend/internal/services/dto"
	"workforce_backend/pkg/apperrors"
)

// LookupService - один менеджер на все справочники с уникальным именем
// (Role, StatusType, EmployerType, AccountType, PaymentStatus).
// build строит пустую сущность по имени, name достает имя обратно:
// Go не дает обращаться к полю через тип-параметр напрямую.
type LookupService[T any] struct {
	repo  *repositories.Repository[T]
	build func(name string) *T
	name  func(obj *T) string
}

func NewLookupService[T any](
	repo *repositories.Repository[T],
	makeFn func(name string) *T,
	nameFn func(obj *T) string,
) *LookupService[T] {
	return &LookupService[T]{repo: repo, build: makeFn, name: nameFn}
}

func (s *LookupService[T]) FetchOne(id string) (*T, error) {
	return s.repo.Get(id)
}

func (s *LookupService[T]) FetchAll(skip, limit int) ([]T, error) {
	return s.repo.GetMulti(skip, limit)
}

func (s *LookupService[T]) Search(parameter, keyword string, skip, limit int) ([]T, error) {
	return s.repo.SearchByParameter(parameter, keyword, skip, limit)
}

// Create отклоняет дубликат имени до вставки; уникальный индекс
// остается последней линией защиты от гонок.
func (s *LookupService[T]) Create(req *dto.LookupCreateRequest) (*T, error) {
	if err := s.checkNameFree(req.Name, ""); err != nil {
		return nil, err
	}
	obj := s.build(req.Name)
	if err := s.repo.Create(obj); err != nil {
		return nil, err
	}
	return obj, nil
}

func (s *LookupService[T]) Update(req *dto.LookupUpdateRequest) (*T, error) {
	obj, err := s.repo.Get(req.ID)
	if err != nil {
		return nil, err
	}
	if s.name(obj) == req.Name {
		return obj, nil
	}
	if err := s.checkNameFree(req.Name, req.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(obj, map[string]any{"name": req.Name}); err != nil {
		return nil, err
	}
	return s.repo.Get(req.ID)
}

func (s *LookupService[T]) Delete(id string) error {
	return s.repo.Delete(id)
}

func (s *LookupService[T]) checkNameFree(name, selfID string) error {
	existing, err := s.repo.GetByAttribute(map[string]any{"name": name})
	if err != nil {
		if appErr, ok := apperrors.AsAppError(err); ok && appErr.Code == apperrors.CodeNotFound {
			return nil
		}
		return err
	}
	if selfID == "" || s.idOf(existing) != selfID {
		return apperrors.ErrAlreadyExists(s.repo.Entity())
	}
	return nil
}

// idOf достает ID через BaseModel.GetID: все справочники его встраивают
func (s *LookupService[T]) idOf(obj *T) string {
	if v, ok := any(obj).(interface{ GetID() string }); ok {
		return v.GetID()
	}
	return ""
}
