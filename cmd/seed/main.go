package main

import (
	"log"
	"os"

	"github.com/yourusername/trivia-bank/internal/config"
	"github.com/yourusername/trivia-bank/internal/domain/entity"
	"github.com/yourusername/trivia-bank/pkg/database"
)

// starterQuestions — стартовый банк вопросов для нового окружения.
// Категории: 1 Science, 2 Art, 3 Geography, 4 History, 5 Entertainment, 6 Sports.
var starterQuestions = []entity.Question{
	{Text: "What boxer's original name is Cassius Clay?", Answer: "Muhammad Ali", Category: "4", Difficulty: 1},
	{Text: "What movie earned Tom Hanks his third straight Oscar nomination, in 1996?", Answer: "Apollo 13", Category: "5", Difficulty: 4},
	{Text: "What actor did author Anne Rice first denounce, then praise in the role of her beloved Lestat?", Answer: "Tom Cruise", Category: "5", Difficulty: 4},
	{Text: "Whose autobiography is entitled 'Maya Angelou: The Heart of a Woman'?", Answer: "Maya Angelou", Category: "4", Difficulty: 2},
	{Text: "What was the title of the 1990 fantasy directed by Tim Burton about a young man with multi-bladed appendages?", Answer: "Edward Scissorhands", Category: "5", Difficulty: 3},
	{Text: "Which is the only team to play in every soccer World Cup tournament?", Answer: "Brazil", Category: "6", Difficulty: 3},
	{Text: "Which country won the first ever soccer World Cup in 1930?", Answer: "Uruguay", Category: "6", Difficulty: 4},
	{Text: "Who invented Peanut Butter?", Answer: "George Washington Carver", Category: "4", Difficulty: 2},
	{Text: "What is the largest lake in Africa?", Answer: "Lake Victoria", Category: "3", Difficulty: 2},
	{Text: "In which royal palace would you find the Hall of Mirrors?", Answer: "The Palace of Versailles", Category: "3", Difficulty: 3},
	{Text: "The Taj Mahal is located in which Indian city?", Answer: "Agra", Category: "3", Difficulty: 2},
	{Text: "Which Dutch graphic artist-initials M C was a creator of optical illusions?", Answer: "Escher", Category: "2", Difficulty: 1},
	{Text: "La Giaconda is better known as what?", Answer: "Mona Lisa", Category: "2", Difficulty: 3},
	{Text: "How many paintings did Van Gogh sell in his lifetime?", Answer: "One", Category: "2", Difficulty: 4},
	{Text: "Which American artist was a pioneer of Abstract Expressionism, and a leading exponent of action painting?", Answer: "Jackson Pollock", Category: "2", Difficulty: 2},
	{Text: "What is the heaviest organ in the human body?", Answer: "The Liver", Category: "1", Difficulty: 4},
	{Text: "Who discovered penicillin?", Answer: "Alexander Fleming", Category: "1", Difficulty: 3},
	{Text: "Hematology is a branch of medicine involving the study of what?", Answer: "Blood", Category: "1", Difficulty: 4},
	{Text: "Which dung beetle was worshipped by the ancient Egyptians?", Answer: "Scarab", Category: "4", Difficulty: 4},
}

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Printf("Failed to load config: %v", err)
		os.Exit(1)
	}

	db, err := database.NewPostgresDB(cfg.Database.PostgresConnectionString())
	if err != nil {
		log.Printf("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	if err := database.MigrateDB(db); err != nil {
		log.Printf("Failed to migrate database: %v", err)
		os.Exit(1)
	}

	// Идемпотентность: непустой банк вопросов не трогаем
	var count int64
	if err := db.Model(&entity.Question{}).Count(&count).Error; err != nil {
		log.Printf("Failed to count questions: %v", err)
		os.Exit(1)
	}
	if count > 0 {
		log.Printf("Question bank already has %d questions, nothing to seed", count)
		return
	}

	if err := db.Create(&starterQuestions).Error; err != nil {
		log.Printf("Failed to seed questions: %v", err)
		os.Exit(1)
	}

	log.Printf("Seeded %d questions", len(starterQuestions))
}
