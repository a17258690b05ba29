package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	"github.com/yourusername/trivia-bank/internal/service"
)

// QuizHandler обрабатывает запросы игрового раунда
type QuizHandler struct {
	quizService *service.QuizService
}

// NewQuizHandler создает новый обработчик раунда
func NewQuizHandler(quizService *service.QuizService) *QuizHandler {
	return &QuizHandler{quizService: quizService}
}

// QuizCategoryRequest — категория раунда
type QuizCategoryRequest struct {
	ID   *uint  `json:"id"`
	Type string `json:"type"`
}

// NextQuestionRequest — запрос следующего вопроса раунда.
// Указатели отличают отсутствующее поле от нулевого значения:
// оба поля обязательны, их отсутствие — bad request.
type NextQuestionRequest struct {
	PreviousQuestions *[]uint              `json:"previous_questions"`
	QuizCategory      *QuizCategoryRequest `json:"quiz_category"`
}

// NextQuestion возвращает случайный еще не сыгранный вопрос категории
// POST /quizzes
func (h *QuizHandler) NextQuestion(c *gin.Context) {
	var req NextQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	if req.PreviousQuestions == nil || req.QuizCategory == nil || req.QuizCategory.ID == nil {
		respondError(c, http.StatusBadRequest)
		return
	}

	question, err := h.quizService.NextQuestion(*req.QuizCategory.ID, *req.PreviousQuestions)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Исчерпание пула — успешный ответ с question: null
	c.JSON(http.StatusOK, dto.QuizResponse{
		Success:  true,
		Question: dto.NewQuestionResponse(question),
	})
}
