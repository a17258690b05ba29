package repository

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionRepository определяет методы для работы с вопросами.
// Это и есть шлюз хранилища: гарантии упорядочивания и атомарности
// отдельных операций лежат на реализации.
type QuestionRepository interface {
	// GetAllOrdered возвращает все вопросы, упорядоченные по ID
	GetAllOrdered() ([]entity.Question, error)
	GetByID(id uint) (*entity.Question, error)
	Create(question *entity.Question) error
	Delete(id uint) error

	// SearchByText возвращает вопросы, текст которых содержит term
	// (регистронезависимо), упорядоченные по ID
	SearchByText(term string) ([]entity.Question, error)

	// GetByCategory возвращает вопросы категории (строковая форма ID),
	// упорядоченные по ID
	GetByCategory(categoryRef string) ([]entity.Question, error)

	// GetByCategoryExcluding возвращает вопросы категории,
	// исключая перечисленные ID (кандидаты для quiz-выбора)
	GetByCategoryExcluding(categoryRef string, excludeIDs []uint) ([]entity.Question, error)
}
