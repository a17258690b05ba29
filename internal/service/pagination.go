package service

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// normalizePage приводит номер страницы к допустимому значению.
// Страницы меньше 1 явно нормализуются к 1 (в исходной системе
// поведение для page <= 0 было неопределенным).
func normalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// paginate возвращает окно [(page-1)*size, page*size) среза questions,
// обрезанное по его границам. Страница за пределами данных дает пустой
// результат — интерпретация пустого окна лежит на вызывающем коде.
// Без побочных эффектов: возвращается под-срез исходного среза.
func paginate(questions []entity.Question, page, size int) []entity.Question {
	page = normalizePage(page)

	start := (page - 1) * size
	if start >= len(questions) {
		return nil
	}

	end := start + size
	if end > len(questions) {
		end = len(questions)
	}

	return questions[start:end]
}
