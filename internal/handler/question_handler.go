package handler

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuestionHandler обрабатывает запросы к банку вопросов
type QuestionHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewQuestionHandler создает новый обработчик вопросов
func NewQuestionHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *QuestionHandler {
	return &QuestionHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// ListQuestions возвращает страницу вопросов со всеми категориями
// GET /questions?page=N
func (h *QuestionHandler) ListQuestions(c *gin.Context) {
	page := pageQuery(c)

	questions, total, err := h.questionService.ListQuestions(page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuestionListResponse(questions, total, categories, nil))
}

// CategoryField — id категории в теле запроса. Часть клиентов
// исторически присылает его строкой ("category": "1"), принимаем
// обе формы.
type CategoryField uint

// UnmarshalJSON принимает число или числовую строку
func (f *CategoryField) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	v, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return err
	}
	*f = CategoryField(v)
	return nil
}

// CreateQuestionRequest представляет запрос на создание вопроса.
// Поля-указатели: различаем отсутствующее поле и нулевое значение.
type CreateQuestionRequest struct {
	Question   *string        `json:"question"`
	Answer     *string        `json:"answer"`
	Category   *CategoryField `json:"category"`
	Difficulty *int           `json:"difficulty"`
}

// CreateQuestion обрабатывает запрос на создание вопроса
// POST /questions
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	var req CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}
	if req.Question == nil || req.Answer == nil || req.Category == nil || req.Difficulty == nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	page := pageQuery(c)
	created, questions, total, err := h.questionService.CreateQuestion(
		*req.Question, *req.Answer, uint(*req.Category), *req.Difficulty, page)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CreateResponse{
		Success:        true,
		Created:        created.ID,
		Questions:      dto.NewQuestionList(questions),
		TotalQuestions: total,
	})
}

// DeleteQuestion обрабатывает запрос на удаление вопроса
// DELETE /questions/:id
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID := c.MustGet("questionID").(uint) // Получаем из контекста

	questions, total, err := h.questionService.DeleteQuestion(questionID, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success:        true,
		Deleted:        questionID,
		Questions:      dto.NewQuestionList(questions),
		TotalQuestions: total,
	})
}

// SearchQuestionsRequest представляет запрос поиска.
// SearchTerm — указатель: отсутствие поля и пустая строка различаются,
// отсутствие — это 422.
type SearchQuestionsRequest struct {
	SearchTerm *string `json:"searchTerm"`
}

// SearchQuestions обрабатывает поиск по подстроке текста вопроса
// POST /questions/search
func (h *QuestionHandler) SearchQuestions(c *gin.Context) {
	var req SearchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// Битый JSON — синтаксическая ошибка запроса (400);
		// полное отсутствие тела приравнивается к отсутствию searchTerm (422)
		if errors.Is(err, io.EOF) {
			respondError(c, http.StatusUnprocessableEntity)
			return
		}
		respondError(c, http.StatusBadRequest)
		return
	}
	if req.SearchTerm == nil {
		respondError(c, http.StatusUnprocessableEntity)
		return
	}

	questions, total, err := h.questionService.SearchQuestions(*req.SearchTerm, pageQuery(c))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SearchResponse{
		Success:        true,
		Questions:      dto.NewQuestionList(questions),
		TotalQuestions: total,
	})
}
