package service

import (
	"errors"
	"log"
	"time"

	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/internal/domain/repository"
	apperrors "github.com/yourusername/trivia-bank/internal/pkg/errors"
)

// categoriesCacheKey — ключ кеша полного списка категорий
const categoriesCacheKey = "categories:all"

// CategoryService предоставляет чтение категорий. Список категорий
// меняется только миграциями, поэтому кешируется в Redis с TTL.
type CategoryService struct {
	categoryRepo repository.CategoryRepository
	cacheRepo    repository.CacheRepository
	cacheTTL     time.Duration
}

// NewCategoryService создает новый сервис категорий.
// cacheRepo может быть nil — тогда каждый вызов читает из БД.
func NewCategoryService(
	categoryRepo repository.CategoryRepository,
	cacheRepo repository.CacheRepository,
	cacheTTL time.Duration,
) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		cacheTTL:     cacheTTL,
	}
}

// ListCategories возвращает все категории, упорядоченные по ID.
// Ошибки кеша не прерывают запрос: деградируем до чтения из БД.
func (s *CategoryService) ListCategories() ([]entity.Category, error) {
	if s.cacheRepo != nil {
		var cached []entity.Category
		err := s.cacheRepo.GetJSON(categoriesCacheKey, &cached)
		if err == nil {
			return cached, nil
		}
		if !errors.Is(err, apperrors.ErrNotFound) {
			log.Printf("[CategoryService] Ошибка чтения кеша категорий: %v", err)
		}
	}

	categories, err := s.categoryRepo.GetAll()
	if err != nil {
		return nil, err
	}

	if s.cacheRepo != nil {
		if err := s.cacheRepo.SetJSON(categoriesCacheKey, categories, s.cacheTTL); err != nil {
			log.Printf("[CategoryService] Ошибка записи кеша категорий: %v", err)
		}
	}

	return categories, nil
}
