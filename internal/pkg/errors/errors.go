package errors

import "errors"

// Общие ошибки приложения
var (
	// ErrNotFound используется, когда запись или ресурс не найдены.
	ErrNotFound = errors.New("record not found")

	// ErrBadRequest используется для некорректных или неполных запросов
	// (отсутствующие поля при создании вопроса, неполный quiz-запрос).
	ErrBadRequest = errors.New("bad request")

	// ErrValidation используется, когда запрос синтаксически корректен,
	// но семантически неполон для операции (например, поиск без searchTerm).
	// Хендлеры отображают её в 422.
	ErrValidation = errors.New("validation failed")
)
