package app

import (
	"context"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// CatalogService is the quiz browse/edit surface: listing with favorite
// flags, the full question tree for one quiz, upserts, deletes and the
// favorite toggle.
type CatalogService struct {
	catalog   CatalogRepository
	content   QuizContentRepository
	favorites FavoriteRepository
	cache     QuizContentInvalidator
}

// NewCatalogService wires the catalog surface. cache may be nil when the
// content repository reads the store directly.
func NewCatalogService(catalog CatalogRepository, content QuizContentRepository, favorites FavoriteRepository, cache QuizContentInvalidator) *CatalogService {
	return &CatalogService{catalog: catalog, content: content, favorites: favorites, cache: cache}
}

// List returns all quizzes ordered by name.
func (c *CatalogService) List(ctx context.Context) ([]domain.Quiz, error) {
	return c.catalog.ListQuizzes(ctx)
}

// ListForPerson returns the catalog with each quiz's favorite flag for the
// given person.
func (c *CatalogService) ListForPerson(ctx context.Context, personID int64) ([]domain.QuizWithFavorite, error) {
	return c.catalog.ListWithFavorites(ctx, personID)
}

// Get loads one quiz with its full question/answer tree.
func (c *CatalogService) Get(ctx context.Context, quizID int64) (domain.Quiz, error) {
	return c.content.GetQuizWithQuestions(ctx, quizID)
}

// Upsert creates the quiz when its id is zero and updates it otherwise.
// The cached tree is dropped so the edit is visible immediately.
func (c *CatalogService) Upsert(ctx context.Context, quiz *domain.Quiz) error {
	if err := c.catalog.UpsertQuiz(ctx, quiz); err != nil {
		return err
	}
	c.invalidate(ctx, quiz.ID)
	return nil
}

// Delete removes a quiz and its questions, answers and favorite markers.
// Recorded scores stay: they are immutable facts.
func (c *CatalogService) Delete(ctx context.Context, quizID int64) error {
	if err := c.catalog.DeleteQuiz(ctx, quizID); err != nil {
		return err
	}
	c.invalidate(ctx, quizID)
	return nil
}

// ToggleComplete flips the quiz's completion flag.
func (c *CatalogService) ToggleComplete(ctx context.Context, quizID int64) (*domain.Quiz, error) {
	quiz, err := c.catalog.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if quiz == nil {
		return nil, domain.ErrQuizNotFound
	}
	quiz.Complete = !quiz.Complete
	if err := c.catalog.UpsertQuiz(ctx, quiz); err != nil {
		return nil, err
	}
	c.invalidate(ctx, quizID)
	return quiz, nil
}

// ToggleFavorite flips the (person, quiz) favorite marker and reports the
// new state. Toggling twice returns to the original state and leaves at
// most one row.
func (c *CatalogService) ToggleFavorite(ctx context.Context, personID, quizID int64) (bool, error) {
	marked, err := c.favorites.Exists(ctx, personID, quizID)
	if err != nil {
		return false, err
	}
	if marked {
		if err := c.favorites.Delete(ctx, personID, quizID); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := c.favorites.Insert(ctx, personID, quizID); err != nil {
		return false, err
	}
	return true, nil
}

func (c *CatalogService) invalidate(ctx context.Context, quizID int64) {
	if c.cache != nil {
		c.cache.Invalidate(ctx, quizID)
	}
}
