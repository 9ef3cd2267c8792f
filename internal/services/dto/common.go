package dto

import (
	"time"

	"workforce_backend/pkg/apperrors"
)

// DateLayout - формат дат профилей и платежей (yyyy-mm-dd)
const DateLayout = "2006-01-02"

// ParseDate разбирает опциональную дату из запроса
func ParseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date format, expected " + DateLayout)
	}
	return &t, nil
}

// FormatDate форматирует опциональную дату для ответа
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}
