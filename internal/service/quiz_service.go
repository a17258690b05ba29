package service

import (
	"math/rand"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
)

// QuizService выбирает следующий вопрос раунда. Сервис без состояния:
// набор уже сыгранных вопросов клиент передает с каждым запросом,
// серверной сессии нет.
type QuizService struct {
	questionRepo repository.QuestionRepository

	// intn подменяется в тестах; по умолчанию math/rand.
	// Криптостойкость не нужна — нужна равномерность по кандидатам.
	intn func(n int) int
}

// NewQuizService создает новый сервис выбора вопросов
func NewQuizService(questionRepo repository.QuestionRepository) *QuizService {
	return &QuizService{
		questionRepo: questionRepo,
		intn:         rand.Intn,
	}
}

// NextQuestion возвращает случайный вопрос категории, не входящий в
// previousIDs. categoryID не интерпретируется: категория без вопросов
// (включая id 0) дает пустой пул. Каждый вызов независим. Исчерпание
// пула — не ошибка: возвращается (nil, nil), что означает
// «вопросов больше нет».
func (s *QuizService) NextQuestion(categoryID uint, previousIDs []uint) (*entity.Question, error) {
	candidates, err := s.questionRepo.GetByCategoryExcluding(entity.CategoryRef(categoryID), previousIDs)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, nil
	}

	picked := candidates[s.intn(len(candidates))]
	return &picked, nil
}
