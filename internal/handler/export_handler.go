package handler

import (
	"encoding/csv"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/service"
)

// ExportHandler экспортирует банк вопросов в CSV или Excel
type ExportHandler struct {
	questionService *service.QuestionService
	categoryService *service.CategoryService
}

// NewExportHandler создает новый обработчик экспорта
func NewExportHandler(
	questionService *service.QuestionService,
	categoryService *service.CategoryService,
) *ExportHandler {
	return &ExportHandler{
		questionService: questionService,
		categoryService: categoryService,
	}
}

// ExportQuestions экспортирует весь банк вопросов в CSV или Excel формате
// GET /questions/export?format=csv|xlsx
func (h *ExportHandler) ExportQuestions(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	// Получаем ВСЕ вопросы без пагинации для экспорта
	questions, err := h.questionService.AllQuestions()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	categories, err := h.categoryService.ListCategories()
	if err != nil {
		handleServiceError(c, err)
		return
	}

	// Осиротевшие ссылки остаются в строковой форме хранения
	categoryNames := make(map[string]string, len(categories))
	for _, cat := range categories {
		categoryNames[cat.RefKey()] = cat.Type
	}

	filename := fmt.Sprintf("questions_%s", time.Now().Format("2006-01-02"))

	switch format {
	case "xlsx":
		h.exportXLSX(c, questions, categoryNames, filename)
	default:
		h.exportCSV(c, questions, categoryNames, filename)
	}
}

// exportCSV экспортирует вопросы в CSV с правильным экранированием спецсимволов
func (h *ExportHandler) exportCSV(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.csv\"", filename))

	// BOM для корректного отображения UTF-8 в Excel
	c.Writer.Write([]byte{0xEF, 0xBB, 0xBF})

	// Используем encoding/csv для правильного экранирования запятых/кавычек
	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	// Заголовки
	writer.Write([]string{"ID", "Вопрос", "Ответ", "Категория", "Сложность"})

	// Данные
	for _, q := range questions {
		category := q.Category
		if name, ok := categoryNames[q.Category]; ok {
			category = name
		}

		writer.Write([]string{
			strconv.FormatUint(uint64(q.ID), 10),
			sanitizeForExcel(q.Text),
			sanitizeForExcel(q.Answer),
			sanitizeForExcel(category),
			strconv.Itoa(q.Difficulty),
		})
	}
}

// exportXLSX экспортирует вопросы в Excel с использованием StreamWriter
func (h *ExportHandler) exportXLSX(c *gin.Context, questions []entity.Question, categoryNames map[string]string, filename string) {
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s.xlsx\"", filename))

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Вопросы"
	f.SetSheetName("Sheet1", sheetName)

	sw, err := f.NewStreamWriter(sheetName)
	if err != nil {
		log.Printf("[ExportHandler] Ошибка создания StreamWriter: %v", err)
		respondError(c, http.StatusInternalServerError)
		return
	}

	// Заголовки
	headers := []interface{}{"ID", "Вопрос", "Ответ", "Категория", "Сложность"}
	if err := sw.SetRow("A1", headers); err != nil {
		log.Printf("[ExportHandler] Ошибка записи заголовков: %v", err)
	}

	// Данные
	for i, q := range questions {
		rowNum := i + 2 // Начинаем с 2 строки (1 - заголовки)
		cell := fmt.Sprintf("A%d", rowNum)

		category := q.Category
		if name, ok := categoryNames[q.Category]; ok {
			category = name
		}

		row := []interface{}{q.ID, sanitizeForExcel(q.Text), sanitizeForExcel(q.Answer), sanitizeForExcel(category), q.Difficulty}
		if err := sw.SetRow(cell, row); err != nil {
			log.Printf("[ExportHandler] Ошибка записи строки %d: %v", rowNum, err)
		}
	}

	if err := sw.Flush(); err != nil {
		log.Printf("[ExportHandler] Ошибка при Flush: %v", err)
	}

	// Записываем в response
	if err := f.Write(c.Writer); err != nil {
		log.Printf("[ExportHandler] Ошибка записи Excel в response: %v", err)
	}
}

// sanitizeForExcel экранирует данные для защиты от formula injection в Excel/CSV
func sanitizeForExcel(s string) string {
	if len(s) == 0 {
		return s
	}
	// Символы, начинающие формулу в Excel/LibreOffice: = + - @ \t \r
	if s[0] == '=' || s[0] == '+' || s[0] == '-' || s[0] == '@' || s[0] == '\t' || s[0] == '\r' {
		return "'" + s
	}
	return s
}
