package handler

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-bank/internal/handler/dto"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// Тексты сообщений ошибок — часть внешнего контракта, не менять.
const (
	msgBadRequest    = "bad request"
	msgNotFound      = "Resource not found"
	msgUnprocessable = "unprocessable"
	msgInternal      = "internal server error"
)

// respondError отправляет ошибочный конверт {success, error, message}
func respondError(c *gin.Context, status int) {
	var message string
	switch status {
	case http.StatusBadRequest:
		message = msgBadRequest
	case http.StatusNotFound:
		message = msgNotFound
	case http.StatusUnprocessableEntity:
		message = msgUnprocessable
	default:
		message = msgInternal
	}

	c.JSON(status, dto.ErrorResponse{
		Success: false,
		Error:   status,
		Message: message,
	})
}

// handleServiceError отображает типизированные ошибки сервисов в HTTP статусы.
// Неопознанные ошибки (сбои хранилища и пр.) — это 500, а не 400:
// ошибки клиента и ошибки инфраструктуры разводятся по разным статусам.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		respondError(c, http.StatusNotFound)
	case errors.Is(err, apperrors.ErrBadRequest):
		respondError(c, http.StatusBadRequest)
	case errors.Is(err, apperrors.ErrValidation):
		respondError(c, http.StatusUnprocessableEntity)
	default:
		log.Printf("ERROR: Internal server error in handler %s: %v", c.FullPath(), err)
		respondError(c, http.StatusInternalServerError)
	}
}

// pageQuery извлекает номер страницы из query (?page=N, по умолчанию 1).
// Нечисловые значения и страницы < 1 нормализуются к 1.
func pageQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	return page
}
