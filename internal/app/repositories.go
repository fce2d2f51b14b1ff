package app

import (
	"context"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// QuizContentRepository loads a quiz with its full question/answer tree
// (usually fronted by a cache).
type QuizContentRepository interface {
	GetQuizWithQuestions(ctx context.Context, quizID int64) (domain.Quiz, error)
}

// QuizContentInvalidator drops a quiz's cached tree after an edit or
// delete, so catalog writes become visible before the TTL runs out.
type QuizContentInvalidator interface {
	Invalidate(ctx context.Context, quizID int64)
}

// SessionRepository abstracts how play sessions are stored (in-memory, Redis, etc).
type SessionRepository interface {
	Save(ctx context.Context, session *domain.PlaySession) error
	Get(ctx context.Context, sessionID string) (*domain.PlaySession, error)
	Delete(ctx context.Context, sessionID string) error
}

// ScoreRepository persists and reads the append-only score facts.
type ScoreRepository interface {
	Insert(ctx context.Context, score *domain.Score) error
	ListForPerson(ctx context.Context, personID int64) ([]domain.Score, error)
	BestForPerson(ctx context.Context, personID int64, limit int) ([]domain.Score, error)
}

// BadgeRepository manages badge definitions and grants.
type BadgeRepository interface {
	// CreateIfAbsent inserts the badge unless one with the same name exists;
	// either way the model's ID is filled from the surviving row.
	CreateIfAbsent(ctx context.Context, badge *domain.Badge) error
	ListForPerson(ctx context.Context, personID int64) ([]domain.Badge, error)
	// Grant is a no-op if the person already holds the badge.
	Grant(ctx context.Context, personID, badgeID int64) error
}

// PersonRepository reads and writes user accounts. Lookups return (nil, nil)
// when no row matches.
type PersonRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Person, error)
	GetByName(ctx context.Context, name string) (*domain.Person, error)
	Insert(ctx context.Context, person *domain.Person) error
	Update(ctx context.Context, person *domain.Person) error
}

// CatalogRepository covers the quiz list/edit surface.
type CatalogRepository interface {
	ListQuizzes(ctx context.Context) ([]domain.Quiz, error)
	ListWithFavorites(ctx context.Context, personID int64) ([]domain.QuizWithFavorite, error)
	GetQuiz(ctx context.Context, id int64) (*domain.Quiz, error)
	UpsertQuiz(ctx context.Context, quiz *domain.Quiz) error
	DeleteQuiz(ctx context.Context, id int64) error
}

// FavoriteRepository holds the per-person favorite markers.
type FavoriteRepository interface {
	Exists(ctx context.Context, personID, quizID int64) (bool, error)
	Insert(ctx context.Context, personID, quizID int64) error
	Delete(ctx context.Context, personID, quizID int64) error
}
