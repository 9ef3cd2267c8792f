package repositories

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"

	"workforce_backend/pkg/apperrors"
)

// schemaCache разделяется всеми инстансами, парсинг модели происходит один раз
var schemaCache = &sync.Map{}

// Repository - обобщенный CRUD-репозиторий над одной gorm-моделью.
// Все ошибки персистентного слоя возвращаются наверх как *apperrors.AppError,
// ничего не глотается: откат транзакции всегда виден вызывающему коду.
type Repository[T any] struct {
	db     *gorm.DB
	entity string
}

func NewRepository[T any](db *gorm.DB) *Repository[T] {
	return &Repository[T]{
		db:     db,
		entity: reflect.TypeOf((*T)(nil)).Elem().Name(),
	}
}

// WithTx возвращает репозиторий, привязанный к внешней транзакции.
// Используется менеджерами для операций из нескольких записей,
// которые должны закоммититься как одно целое.
func (r *Repository[T]) WithTx(tx *gorm.DB) *Repository[T] {
	return &Repository[T]{db: tx, entity: r.entity}
}

// Entity возвращает имя модели (для сообщений об ошибках)
func (r *Repository[T]) Entity() string {
	return r.entity
}

// column проверяет, что parameter - существующая колонка модели,
// и возвращает её имя в БД. Неизвестная колонка - ошибка запроса, не 500.
func (r *Repository[T]) column(parameter string) (string, error) {
	s, err := schema.Parse(new(T), schemaCache, r.db.NamingStrategy)
	if err != nil {
		return "", apperrors.StorageError(err)
	}
	if f, ok := s.FieldsByDBName[parameter]; ok {
		return f.DBName, nil
	}
	return "", apperrors.ErrInvalidSearchParameter(parameter)
}

// Get возвращает запись по id
func (r *Repository[T]) Get(id string) (*T, error) {
	var obj T
	err := r.db.First(&obj, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(r.entity)
		}
		return nil, apperrors.StorageError(err)
	}
	return &obj, nil
}

// GetMulti возвращает страницу записей в стабильном порядке.
// Пустая страница - не ошибка.
func (r *Repository[T]) GetMulti(skip, limit int) ([]T, error) {
	if limit <= 0 {
		limit = 100
	}
	objs := make([]T, 0)
	err := r.db.Order("created_at, id").Offset(skip).Limit(limit).Find(&objs).Error
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return objs, nil
}

// GetByAttribute возвращает первую запись, точно совпадающую по AND всех фильтров
func (r *Repository[T]) GetByAttribute(filters map[string]any) (*T, error) {
	where := make(map[string]any, len(filters))
	for key, value := range filters {
		col, err := r.column(key)
		if err != nil {
			return nil, err
		}
		where[col] = value
	}

	var obj T
	err := r.db.Where(where).Order("created_at, id").First(&obj).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound(r.entity)
		}
		return nil, apperrors.StorageError(err)
	}
	return &obj, nil
}

// SearchByParameter ищет подстроку в одной именованной колонке
func (r *Repository[T]) SearchByParameter(parameter, keyword string, skip, limit int) ([]T, error) {
	col, err := r.column(parameter)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 100
	}

	objs := make([]T, 0)
	err = r.db.
		Where(fmt.Sprintf("%s LIKE ?", col), "%"+keyword+"%").
		Order("created_at, id").
		Offset(skip).Limit(limit).
		Find(&objs).Error
	if err != nil {
		return nil, apperrors.StorageError(err)
	}
	return objs, nil
}

// Create вставляет новую запись
func (r *Repository[T]) Create(obj *T) error {
	if err := r.db.Create(obj).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists(r.entity)
		}
		return apperrors.StorageError(err)
	}
	return nil
}

// Update применяет только переданные поля, остальные не трогает
func (r *Repository[T]) Update(existing *T, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	updates := make(map[string]any, len(fields))
	for key, value := range fields {
		col, err := r.column(key)
		if err != nil {
			return err
		}
		updates[col] = value
	}

	if err := r.db.Model(existing).Updates(updates).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadyExists(r.entity)
		}
		return apperrors.StorageError(err)
	}
	return nil
}

// Delete удаляет запись по id. Отсутствующий id - NotFound, не тихий успех.
func (r *Repository[T]) Delete(id string) error {
	result := r.db.Delete(new(T), "id = ?", id)
	if result.Error != nil {
		return apperrors.StorageError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrNotFound(r.entity)
	}
	return nil
}
