package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

type seedAnswer struct {
	text    string
	correct bool
}

type seedQuestion struct {
	text    string
	answers []seedAnswer
}

type seedQuiz struct {
	name        string
	description string
	imageURI    string
	complete    bool
	questions   []seedQuestion
}

// SeedIfEmpty loads the sample catalog when the store holds no quizzes.
// Returns true when seeding ran.
func SeedIfEmpty(ctx context.Context, db *bun.DB) (bool, error) {
	quizzes := NewQuizStore(db)
	count, err := quizzes.CountQuizzes(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	return true, Seed(ctx, db)
}

// Seed inserts the sample catalog.
func Seed(ctx context.Context, db *bun.DB) error {
	quizzes := NewQuizStore(db)
	for _, sq := range sampleCatalog {
		quiz := &domain.Quiz{
			Name:        sq.name,
			Description: sq.description,
			ImageURI:    sq.imageURI,
			Complete:    sq.complete,
		}
		if err := quizzes.UpsertQuiz(ctx, quiz); err != nil {
			return fmt.Errorf("seed quiz %q: %w", sq.name, err)
		}
		for _, q := range sq.questions {
			question := &domain.Question{QuizID: quiz.ID, Text: q.text}
			if err := quizzes.InsertQuestion(ctx, question); err != nil {
				return fmt.Errorf("seed question %q: %w", q.text, err)
			}
			for _, a := range q.answers {
				answer := &domain.Answer{
					QuestionID: question.ID,
					Text:       a.text,
					Correct:    a.correct,
				}
				if err := quizzes.InsertAnswer(ctx, answer); err != nil {
					return fmt.Errorf("seed answer %q: %w", a.text, err)
				}
			}
		}
	}
	return nil
}

var sampleCatalog = []seedQuiz{
	{
		name:        "Basic Math",
		description: "Quiz for beginners",
		imageURI:    "images/math_quiz.png",
		complete:    true,
		questions: []seedQuestion{
			{"How much is 2+2?", []seedAnswer{{"3", false}, {"4", true}, {"5", false}}},
			{"How much is 3×5?", []seedAnswer{{"10", false}, {"15", true}, {"20", false}}},
			{"How much is 12 ÷ 4?", []seedAnswer{{"2", false}, {"3", true}, {"4", false}}},
			{"What is the square root of 64?", []seedAnswer{{"6", false}, {"8", true}, {"10", false}}},
			{"How much is 7²?", []seedAnswer{{"14", false}, {"49", true}, {"21", false}}},
			{"What is 50% of 100?", []seedAnswer{{"25", false}, {"50", true}, {"75", false}}},
			{"How much is 9 - 5 + 3?", []seedAnswer{{"7", true}, {"6", false}, {"8", false}}},
			{"How much is 4 × (3 + 2)?", []seedAnswer{{"14", false}, {"20", true}, {"24", false}}},
			{"How much is 18 ÷ 3 × 2?", []seedAnswer{{"6", false}, {"12", true}, {"9", false}}},
			{"Which is the prime number among these?", []seedAnswer{{"15", false}, {"21", false}, {"17", true}}},
		},
	},
	{
		name:        "Ancient History",
		description: "Quiz about ancient Rome",
		imageURI:    "images/history_quiz.png",
		questions: []seedQuestion{
			{"Who was the first Roman emperor?", []seedAnswer{{"Giulio Cesare", false}, {"Augusto", true}, {"Nerone", false}}},
			{"When the Roman Empire Collapsed?", []seedAnswer{{"476", true}, {"465", false}, {"456", false}}},
		},
	},
	{
		name:        "Geography",
		description: "Capitals and countries of the world",
		imageURI:    "images/geography_quiz.png",
		questions: []seedQuestion{
			{"What is the capital of France?", []seedAnswer{{"Paris", true}, {"Lyon", false}, {"Marseille", false}}},
			{"Which river flows through Egypt?", []seedAnswer{{"Nile", true}, {"Amazon River", false}, {"Danube", false}}},
			{"How many states make up the USA?", []seedAnswer{{"48", false}, {"50", true}, {"52", false}}},
		},
	},
	{
		name:        "Science",
		description: "Natural Science Quiz",
		imageURI:    "images/science_quiz.png",
		questions: []seedQuestion{
			{"What is the closest planet to the Sun?", []seedAnswer{{"Mercury", true}, {"Venus", false}, {"Mars", false}}},
			{"What is the chemical formula of water?", []seedAnswer{{"CO2", false}, {"H2O", true}, {"O2", false}}},
			{"Who proposed the theory of evolution?", []seedAnswer{{"Einstein", false}, {"Darwin", true}, {"Newton", false}}},
		},
	},
	{
		name:        "Informatics",
		description: "Quiz on the world of computers",
		imageURI:    "images/cs_quiz.png",
		questions: []seedQuestion{
			{"Who invented the World Wide Web?", []seedAnswer{{"Tim Berners-Lee", true}, {"Bill Gates", false}, {"Steve Jobs", false}}},
			{"Who is considered the father of the computer?", []seedAnswer{{"Charles Babbage", true}, {"Alan Turing", false}, {"Bill Gates", false}}},
			{"What does HTML mean?", []seedAnswer{{"HyperText Markup Language", true}, {"High Tech Modern Language", false}, {"Home Tool Machine Language", false}}},
			{"Which company created Android?", []seedAnswer{{"Apple", false}, {"Google", true}, {"Microsoft", false}}},
		},
	},
	{
		name:        "Sport",
		description: "Sports quiz",
		imageURI:    "images/sport_quiz.png",
		questions: []seedQuestion{
			{"How many players does a soccer team have on the field?", []seedAnswer{{"9", false}, {"10", false}, {"11", true}}},
			{"In which sport is the oval ball used?", []seedAnswer{{"Rugby", true}, {"Soccer", false}, {"Basket", false}}},
		},
	},
}
