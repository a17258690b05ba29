package dto

import (
	"github.com/yourusername/trivia-bank/internal/domain/entity"
)

// QuestionResponse представляет вопрос в формате для ответа клиенту.
// Category отдается в строковой форме хранения.
type QuestionResponse struct {
	ID         uint   `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   string `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// CategoryResponse представляет категорию в формате для ответа клиенту
type CategoryResponse struct {
	ID   uint   `json:"id"`
	Type string `json:"type"`
}

// CategoryListResponse — конверт для GET /categories
type CategoryListResponse struct {
	Success    bool               `json:"success"`
	Categories []CategoryResponse `json:"categories"`
}

// QuestionListResponse — конверт для списочных эндпоинтов вопросов.
// TotalQuestions — количество ВСЕХ вопросов выборки, не текущей страницы.
// CurrentCategory равен nil (→ JSON null) для нефильтрованного списка
// и для осиротевшей ссылки на категорию.
type QuestionListResponse struct {
	Success         bool               `json:"success"`
	Questions       []QuestionResponse `json:"questions"`
	TotalQuestions  int64              `json:"total_questions"`
	Categories      []CategoryResponse `json:"categories"`
	CurrentCategory *CategoryResponse  `json:"current_category"`
}

// SearchResponse — конверт для POST /questions/search.
// Questions равен nil (→ JSON null) при пустом результате;
// конверт не содержит categories/current_category.
type SearchResponse struct {
	Success        bool               `json:"success"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// CreateResponse — конверт для POST /questions
type CreateResponse struct {
	Success        bool               `json:"success"`
	Created        uint               `json:"created"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// DeleteResponse — конверт для DELETE /questions/{id}
type DeleteResponse struct {
	Success        bool               `json:"success"`
	Deleted        uint               `json:"deleted"`
	Questions      []QuestionResponse `json:"questions"`
	TotalQuestions int64              `json:"total_questions"`
}

// QuizResponse — конверт для POST /quizzes. Question равен nil (→ JSON
// null) при исчерпании пула — это успешный ответ, а не ошибка.
type QuizResponse struct {
	Success  bool              `json:"success"`
	Question *QuestionResponse `json:"question"`
}

// ErrorResponse — конверт всех ошибочных ответов
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Message string `json:"message"`
}

// NewQuestionResponse создает DTO для вопроса
func NewQuestionResponse(q *entity.Question) *QuestionResponse {
	if q == nil {
		return nil
	}
	return &QuestionResponse{
		ID:         q.ID,
		Question:   q.Text,
		Answer:     q.Answer,
		Category:   q.Category,
		Difficulty: q.Difficulty,
	}
}

// NewQuestionList создает слайс DTO для списка вопросов.
// nil на входе остается nil — сериализуется как JSON null.
func NewQuestionList(questions []entity.Question) []QuestionResponse {
	if questions == nil {
		return nil
	}
	list := make([]QuestionResponse, len(questions))
	for i := range questions {
		list[i] = *NewQuestionResponse(&questions[i])
	}
	return list
}

// NewCategoryResponse создает DTO для категории
func NewCategoryResponse(c *entity.Category) *CategoryResponse {
	if c == nil {
		return nil
	}
	return &CategoryResponse{ID: c.ID, Type: c.Type}
}

// NewCategoryList создает слайс DTO для списка категорий
func NewCategoryList(categories []entity.Category) []CategoryResponse {
	list := make([]CategoryResponse, len(categories))
	for i := range categories {
		list[i] = *NewCategoryResponse(&categories[i])
	}
	return list
}

// NewQuestionListResponse собирает конверт списочного ответа
func NewQuestionListResponse(
	questions []entity.Question,
	total int64,
	categories []entity.Category,
	current *entity.Category,
) *QuestionListResponse {
	return &QuestionListResponse{
		Success:         true,
		Questions:       NewQuestionList(questions),
		TotalQuestions:  total,
		Categories:      NewCategoryList(categories),
		CurrentCategory: NewCategoryResponse(current),
	}
}
