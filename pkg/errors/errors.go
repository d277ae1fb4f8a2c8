package errors

import (
	"errors"
	"fmt"
)

const (
	InternalError       = "internal error"
	InvalidInput        = "invalid input"
	TemplateUnavailable = "template unavailable"

	InternalErrorCode       = 1
	InvalidInputCode        = 2
	TemplateUnavailableCode = 3
)

// AppError представляет собой стандартизированную структуру ошибки приложения.
// Code используется как код завершения CLI.
type AppError struct {
	Code         int    `json:"code"`    // Код завершения
	Message      string `json:"message"` // Сообщение для пользователя
	Err          error  `json:"-"`       // Внутренняя ошибка
	IsUserFacing bool   `json:"-"`       // Флаг, указывающий, можно ли показывать `Err`
}

func (a *AppError) Error() string {
	if a == nil {
		return ""
	}
	if a.Err != nil {
		return fmt.Sprintf("%s (code: %d): %v", a.Message, a.Code, a.Err)
	}
	return fmt.Sprintf("%s (code: %d)", a.Message, a.Code)
}

func (a *AppError) Unwrap() error {
	if a == nil {
		return nil
	}
	return a.Err
}

// NewAppError создает новый экземпляр AppError.
func NewAppError(code int, message string, err error, isUserFacing bool) *AppError {
	return &AppError{
		Code:         code,
		Message:      message,
		Err:          err,
		IsUserFacing: isUserFacing,
	}
}

// ExitCode возвращает код завершения для ошибки: Code для AppError, иначе InternalErrorCode.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return InternalErrorCode
}

var (
	ErrInvalidInput   = errors.New("invalid input")
	ErrUnknownPrinter = errors.New("unknown printer model")
)
