package entity

// Question представляет вопрос в банке вопросов.
// Category хранится строкой (исторический формат хранения),
// хотя семантически это целочисленный ID категории.
// Ссылка на категорию не подкреплена FK-констрейнтом в БД:
// целостность проверяется на уровне сервиса при создании.
type Question struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	Text       string `gorm:"column:question;size:1000;not null" json:"question"`
	Answer     string `gorm:"size:500;not null" json:"answer"`
	Category   string `gorm:"size:20;not null;index" json:"category"`
	Difficulty int    `gorm:"not null" json:"difficulty"`
}

// TableName определяет имя таблицы для GORM
func (Question) TableName() string {
	return "questions"
}

// HasValidFields проверяет ссылку на категорию и сложность.
// Текст и ответ могут быть пустыми строками: контракт требует
// присутствия полей в запросе, а не их содержимого.
func (q *Question) HasValidFields() bool {
	return q.Category != "" && q.Difficulty > 0
}
