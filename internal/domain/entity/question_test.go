package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_HasValidFields(t *testing.T) {
	// Arrange
	question := &Question{
		ID:         1,
		Text:       "Какая планета ближе всего к Солнцу?",
		Answer:     "Меркурий",
		Category:   "1",
		Difficulty: 2,
	}

	// Act & Assert
	assert.True(t, question.HasValidFields(), "Полностью заполненный вопрос должен проходить проверку")
}

// Пустые строки текста и ответа допустимы: проверяются только
// ссылка на категорию и сложность
func TestQuestion_HasValidFields_EmptyStringsAllowed(t *testing.T) {
	tests := []struct {
		name     string
		question Question
		want     bool
	}{
		{"пустой текст допустим", Question{Text: "", Answer: "A", Category: "1", Difficulty: 1}, true},
		{"пустой ответ допустим", Question{Text: "Q", Answer: "", Category: "1", Difficulty: 1}, true},
		{"пустая категория", Question{Text: "Q", Answer: "A", Difficulty: 1}, false},
		{"нулевая сложность", Question{Text: "Q", Answer: "A", Category: "1"}, false},
		{"отрицательная сложность", Question{Text: "Q", Answer: "A", Category: "1", Difficulty: -2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.question.HasValidFields())
		})
	}
}

func TestCategory_RefKey(t *testing.T) {
	// Arrange
	category := &Category{ID: 4, Type: "History"}

	// Act & Assert: строковая форма ID совпадает с форматом хранения Question.Category
	assert.Equal(t, "4", category.RefKey())
	assert.Equal(t, "4", CategoryRef(4))
}
