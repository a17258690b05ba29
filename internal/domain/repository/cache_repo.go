package repository

import "time"

// CacheRepository определяет методы для работы с кешем.
// Используется для кеширования редко меняющихся данных
// (список категорий). Ошибки кеша не фатальны: читатели
// деградируют до запроса в БД.
type CacheRepository interface {
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
	Delete(key string) error
}
