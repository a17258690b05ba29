package entity

import "strconv"

// Category представляет категорию вопросов.
// С точки зрения API категории только читаются:
// эндпоинтов создания/удаления нет.
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"size:100;not null" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// RefKey возвращает строковую форму ID — в таком виде
// категория хранится в поле Question.Category.
func (c *Category) RefKey() string {
	return strconv.FormatUint(uint64(c.ID), 10)
}

// CategoryRef приводит целочисленный ID категории к строковой
// форме хранения.
func CategoryRef(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
