package school

import (
	"errors"
	"fmt"
)

// Базовые доменные ошибки, пригодные для проверки через errors.Is().
var (
	// ErrInvalidInput - вызывающая сторона передала значение неверной
	// формы (например, нечисловой возраст). Операция не выполняется.
	ErrInvalidInput = errors.New("invalid input")

	// ErrSnapshotCorrupt - сохранённый снимок существует, но не может
	// быть декодирован. Загрузка завершается ошибкой, частичные данные
	// не возвращаются.
	ErrSnapshotCorrupt = errors.New("snapshot corrupt")
)

// DomainError представляет доменную ошибку с контекстом операции.
type DomainError struct {
	Domain  string // например, "school", "snapshot"
	Op      string // операция, которая завершилась ошибкой
	Kind    error  // базовая ошибка для проверки через errors.Is()
	Message string // человекочитаемое сообщение
	Err     error  // исходная ошибка (опционально)
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s.%s: %s: %v", e.Domain, e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s.%s: %s", e.Domain, e.Op, e.Message)
}

// Unwrap returns the underlying error for errors.Unwrap().
func (e *DomainError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return e.Kind
}

// Is implements errors.Is() matching.
func (e *DomainError) Is(target error) bool {
	if e.Kind != nil && errors.Is(e.Kind, target) {
		return true
	}
	if e.Err != nil && errors.Is(e.Err, target) {
		return true
	}
	return false
}

// WrapError wraps an existing error with domain context.
func WrapError(domain, op string, kind error, message string, err error) *DomainError {
	return &DomainError{
		Domain:  domain,
		Op:      op,
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsInvalidInput checks if the error is an input-shape error.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsSnapshotCorrupt checks if the error is a corrupt-snapshot error.
func IsSnapshotCorrupt(err error) bool {
	return errors.Is(err, ErrSnapshotCorrupt)
}
