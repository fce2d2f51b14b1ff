package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// QuizStore implements the catalog and quiz-content repositories.
type QuizStore struct {
	db *bun.DB
}

func NewQuizStore(db *bun.DB) *QuizStore {
	return &QuizStore{db: db}
}

// ListQuizzes returns every quiz ordered by name.
func (s *QuizStore) ListQuizzes(ctx context.Context) ([]domain.Quiz, error) {
	var quizzes []domain.Quiz
	if err := s.db.NewSelect().Model(&quizzes).OrderExpr("q.name ASC").Scan(ctx); err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	return quizzes, nil
}

// ListWithFavorites returns the catalog with each quiz's favorite flag for
// one person, via a LEFT JOIN on the favorite markers.
func (s *QuizStore) ListWithFavorites(ctx context.Context, personID int64) ([]domain.QuizWithFavorite, error) {
	var rows []domain.QuizWithFavorite
	err := s.db.NewSelect().Model(&rows).
		ColumnExpr("q.*").
		ColumnExpr("(f.id IS NOT NULL) AS favorite").
		Join("LEFT JOIN favorite_quizzes AS f ON f.quiz_id = q.id AND f.person_id = ?", personID).
		OrderExpr("q.name ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list quizzes with favorites: %w", err)
	}
	return rows, nil
}

// GetQuiz loads one quiz row without its question tree. Returns (nil, nil)
// when the quiz does not exist.
func (s *QuizStore) GetQuiz(ctx context.Context, id int64) (*domain.Quiz, error) {
	quiz := new(domain.Quiz)
	err := s.db.NewSelect().Model(quiz).Where("q.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get quiz %d: %w", id, err)
	}
	return quiz, nil
}

// GetQuizWithQuestions loads the full question/answer tree for one quiz.
func (s *QuizStore) GetQuizWithQuestions(ctx context.Context, quizID int64) (domain.Quiz, error) {
	quiz := new(domain.Quiz)
	err := s.db.NewSelect().Model(quiz).
		Relation("Questions", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("qu.id ASC")
		}).
		Relation("Questions.Answers", func(q *bun.SelectQuery) *bun.SelectQuery {
			return q.OrderExpr("a.id ASC")
		}).
		Where("q.id = ?", quizID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Quiz{}, domain.ErrQuizNotFound
	}
	if err != nil {
		return domain.Quiz{}, fmt.Errorf("get quiz %d with questions: %w", quizID, err)
	}
	return *quiz, nil
}

// UpsertQuiz inserts when the id is zero, updates otherwise.
func (s *QuizStore) UpsertQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if quiz.ID == 0 {
		if _, err := s.db.NewInsert().Model(quiz).Exec(ctx); err != nil {
			return fmt.Errorf("insert quiz: %w", err)
		}
		return nil
	}
	if _, err := s.db.NewUpdate().Model(quiz).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("update quiz %d: %w", quiz.ID, err)
	}
	return nil
}

// DeleteQuiz removes the quiz with its questions, answers and favorite
// markers. Scores stay; they are append-only facts.
func (s *QuizStore) DeleteQuiz(ctx context.Context, id int64) error {
	if _, err := s.db.NewDelete().Model((*domain.Answer)(nil)).
		Where("question_id IN (SELECT id FROM questions WHERE quiz_id = ?)", id).
		Exec(ctx); err != nil {
		return fmt.Errorf("delete answers for quiz %d: %w", id, err)
	}
	if _, err := s.db.NewDelete().Model((*domain.Question)(nil)).
		Where("quiz_id = ?", id).Exec(ctx); err != nil {
		return fmt.Errorf("delete questions for quiz %d: %w", id, err)
	}
	if _, err := s.db.NewDelete().Model((*domain.FavoriteQuiz)(nil)).
		Where("quiz_id = ?", id).Exec(ctx); err != nil {
		return fmt.Errorf("delete favorites for quiz %d: %w", id, err)
	}
	if _, err := s.db.NewDelete().Model((*domain.Quiz)(nil)).
		Where("id = ?", id).Exec(ctx); err != nil {
		return fmt.Errorf("delete quiz %d: %w", id, err)
	}
	return nil
}

// CountQuizzes reports how many quizzes the store holds.
func (s *QuizStore) CountQuizzes(ctx context.Context) (int, error) {
	count, err := s.db.NewSelect().Model((*domain.Quiz)(nil)).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count quizzes: %w", err)
	}
	return count, nil
}

// InsertQuestion and InsertAnswer extend a quiz's pool.
func (s *QuizStore) InsertQuestion(ctx context.Context, question *domain.Question) error {
	if _, err := s.db.NewInsert().Model(question).Exec(ctx); err != nil {
		return fmt.Errorf("insert question: %w", err)
	}
	return nil
}

func (s *QuizStore) InsertAnswer(ctx context.Context, answer *domain.Answer) error {
	if _, err := s.db.NewInsert().Model(answer).Exec(ctx); err != nil {
		return fmt.Errorf("insert answer: %w", err)
	}
	return nil
}
