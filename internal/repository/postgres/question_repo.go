package postgres

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// QuestionRepo реализует repository.QuestionRepository
type QuestionRepo struct {
	db *gorm.DB
}

// NewQuestionRepo создает новый репозиторий вопросов
func NewQuestionRepo(db *gorm.DB) *QuestionRepo {
	return &QuestionRepo{db: db}
}

// GetAllOrdered возвращает все вопросы, упорядоченные по ID
func (r *QuestionRepo) GetAllOrdered() ([]entity.Question, error) {
	var questions []entity.Question
	if err := r.db.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list questions: %w", err)
	}
	return questions, nil
}

// GetByID возвращает вопрос по ID
func (r *QuestionRepo) GetByID(id uint) (*entity.Question, error) {
	var question entity.Question
	err := r.db.First(&question, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &question, nil
}

// Create создает новый вопрос
func (r *QuestionRepo) Create(question *entity.Question) error {
	return r.db.Create(question).Error
}

// Delete удаляет вопрос
func (r *QuestionRepo) Delete(id uint) error {
	return r.db.Delete(&entity.Question{}, id).Error
}

// SearchByText возвращает вопросы, текст которых содержит term
// (ILIKE, регистронезависимо), упорядоченные по ID
func (r *QuestionRepo) SearchByText(term string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Where("question ILIKE ?", "%"+term+"%").
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to search questions: %w", err)
	}
	return questions, nil
}

// GetByCategory возвращает вопросы категории, упорядоченные по ID.
// categoryRef — строковая форма ID категории (формат хранения).
func (r *QuestionRepo) GetByCategory(categoryRef string) ([]entity.Question, error) {
	var questions []entity.Question
	err := r.db.
		Where("category = ?", categoryRef).
		Order("id").
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list questions by category: %w", err)
	}
	return questions, nil
}

// GetByCategoryExcluding возвращает вопросы категории, исключая excludeIDs
func (r *QuestionRepo) GetByCategoryExcluding(categoryRef string, excludeIDs []uint) ([]entity.Question, error) {
	query := r.db.Where("category = ?", categoryRef)
	if len(excludeIDs) > 0 {
		query = query.Where("id NOT IN ?", excludeIDs)
	}

	var questions []entity.Question
	if err := query.Order("id").Find(&questions).Error; err != nil {
		return nil, fmt.Errorf("failed to list quiz candidates: %w", err)
	}
	return questions, nil
}
