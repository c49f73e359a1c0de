package service

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError описывает прикладную ошибку сервиса:
// код для логов и метрик, человекочитаемое сообщение, HTTP-статус и вложенная ошибка.
type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// Коды ошибок, которые видят логи и метрики.
const (
	CodeBadRequest      = "BAD_REQUEST"
	CodeValidation      = "VALIDATION"
	CodeNotFound        = "NOT_FOUND"
	CodeAlreadySignedUp = "ALREADY_SIGNED_UP"
	CodeNotRegistered   = "NOT_REGISTERED"
	CodeInternal        = "INTERNAL"
)

// ErrBadRequest конструирует AppError для некорректных запросов клиента.
func ErrBadRequest(msg string) *AppError {
	return &AppError{
		Code:    CodeBadRequest,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrValidation конструирует AppError для отсутствующих обязательных параметров запроса.
func ErrValidation(msg string) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Status:  http.StatusUnprocessableEntity,
	}
}

// ErrNotFound конструирует AppError для ситуации, когда ресурс не найден.
func ErrNotFound(msg string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: msg,
		Status:  http.StatusNotFound,
	}
}

// ErrDomain конструирует AppError для доменных конфликтов записи на занятие.
// Конфликты участников отдаются клиенту как 400.
func ErrDomain(code, msg string) *AppError {
	return &AppError{
		Code:    code,
		Message: msg,
		Status:  http.StatusBadRequest,
	}
}

// ErrInternal оборачивает непредвиденную ошибку.
func ErrInternal(msg string, err error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: msg,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

// AsAppError достаёт AppError из цепочки ошибок; неизвестные ошибки превращаются в INTERNAL.
func AsAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return ErrInternal("internal error", err)
}
