package service

import (
	"errors"
	"fmt"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionService предоставляет операции чтения и изменения банка вопросов:
// постраничный список, поиск по подстроке, фильтр по категории,
// создание и удаление.
type QuestionService struct {
	questionRepo repository.QuestionRepository
	categoryRepo repository.CategoryRepository
	pageSize     int
}

// NewQuestionService создает новый сервис вопросов
func NewQuestionService(
	questionRepo repository.QuestionRepository,
	categoryRepo repository.CategoryRepository,
	pagination config.PaginationConfig,
) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		categoryRepo: categoryRepo,
		pageSize:     pagination.PageSize,
	}
}

// ListQuestions возвращает страницу из всех вопросов (по ID) и общее
// количество вопросов. Пустая страница — ErrNotFound: клиент запросил
// страницу за пределами списка.
func (s *QuestionService) ListQuestions(page int) ([]entity.Question, int64, error) {
	all, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, 0, err
	}

	window := paginate(all, page, s.pageSize)
	if len(window) == 0 {
		return nil, 0, apperrors.ErrNotFound
	}

	return window, int64(len(all)), nil
}

// SearchQuestions возвращает страницу вопросов, текст которых содержит
// term (регистронезависимо), и общее количество совпадений.
// Пустое окно (ноль совпадений либо страница за пределами) — это
// УСПЕШНЫЙ пустой результат, а не 404: возвращается (nil, 0, nil).
// Асимметрия с ListQuestions намеренная и сохранена для совместимости.
func (s *QuestionService) SearchQuestions(term string, page int) ([]entity.Question, int64, error) {
	matches, err := s.questionRepo.SearchByText(term)
	if err != nil {
		return nil, 0, err
	}

	window := paginate(matches, page, s.pageSize)
	if len(window) == 0 {
		return nil, 0, nil
	}

	return window, int64(len(matches)), nil
}

// ListByCategory возвращает страницу вопросов категории, общее количество
// совпадений и саму категорию для отображения. Осиротевшие ссылки терпимы:
// если вопросы есть, а записи категории нет, current будет nil.
// Пустая страница (в том числе неизвестная категория без вопросов) — ErrNotFound.
func (s *QuestionService) ListByCategory(categoryID uint, page int) ([]entity.Question, int64, *entity.Category, error) {
	current, err := s.categoryRepo.GetByID(categoryID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, 0, nil, err
		}
		current = nil
	}

	questions, err := s.questionRepo.GetByCategory(entity.CategoryRef(categoryID))
	if err != nil {
		return nil, 0, nil, err
	}

	window := paginate(questions, page, s.pageSize)
	if len(window) == 0 {
		return nil, 0, nil, apperrors.ErrNotFound
	}

	return window, int64(len(questions)), current, nil
}

// CreateQuestion создает вопрос и возвращает его вместе со страницей
// обновленного списка и новым общим количеством. Ссылка на категорию
// проверяется при записи: несуществующая категория — ErrBadRequest.
func (s *QuestionService) CreateQuestion(text, answer string, categoryID uint, difficulty, page int) (*entity.Question, []entity.Question, int64, error) {
	if _, err := s.categoryRepo.GetByID(categoryID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, 0, fmt.Errorf("category %d does not exist: %w", categoryID, apperrors.ErrBadRequest)
		}
		return nil, nil, 0, err
	}

	question := &entity.Question{
		Text:       text,
		Answer:     answer,
		Category:   entity.CategoryRef(categoryID),
		Difficulty: difficulty,
	}
	if !question.HasValidFields() {
		return nil, nil, 0, fmt.Errorf("category reference and positive difficulty are required: %w", apperrors.ErrBadRequest)
	}

	if err := s.questionRepo.Create(question); err != nil {
		return nil, nil, 0, fmt.Errorf("failed to create question: %w", err)
	}

	all, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, nil, 0, err
	}

	return question, paginate(all, page, s.pageSize), int64(len(all)), nil
}

// DeleteQuestion удаляет вопрос по ID и возвращает страницу оставшегося
// списка с новым общим количеством. Отсутствующий вопрос — ErrNotFound.
func (s *QuestionService) DeleteQuestion(id uint, page int) ([]entity.Question, int64, error) {
	if _, err := s.questionRepo.GetByID(id); err != nil {
		return nil, 0, err
	}

	if err := s.questionRepo.Delete(id); err != nil {
		return nil, 0, fmt.Errorf("failed to delete question %d: %w", id, err)
	}

	remaining, err := s.questionRepo.GetAllOrdered()
	if err != nil {
		return nil, 0, err
	}

	return paginate(remaining, page, s.pageSize), int64(len(remaining)), nil
}

// AllQuestions возвращает весь банк вопросов (используется экспортом)
func (s *QuestionService) AllQuestions() ([]entity.Question, error) {
	return s.questionRepo.GetAllOrdered()
}
