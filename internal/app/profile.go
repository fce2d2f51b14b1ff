package app

import (
	"context"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// ProfileService reads and edits a person's account and history.
type ProfileService struct {
	people  PersonRepository
	scores  ScoreRepository
	badges  BadgeRepository
	catalog CatalogRepository
}

func NewProfileService(people PersonRepository, scores ScoreRepository, badges BadgeRepository, catalog CatalogRepository) *ProfileService {
	return &ProfileService{people: people, scores: scores, badges: badges, catalog: catalog}
}

// Get returns the person or ErrPersonNotFound.
func (p *ProfileService) Get(ctx context.Context, personID int64) (*domain.Person, error) {
	person, err := p.people.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}
	return person, nil
}

// Update edits display name, biography and photo.
func (p *ProfileService) Update(ctx context.Context, personID int64, name, biography, photo string) (*domain.Person, error) {
	person, err := p.Get(ctx, personID)
	if err != nil {
		return nil, err
	}
	person.Name = name
	person.Biography = biography
	person.Photo = photo
	if err := p.people.Update(ctx, person); err != nil {
		return nil, err
	}
	return person, nil
}

// History lists the person's scores joined with their quiz details, in
// recorded order. An unknown person yields an empty history.
func (p *ProfileService) History(ctx context.Context, personID int64) ([]domain.ScoredQuiz, error) {
	scores, err := p.scores.ListForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	return p.joinQuizzes(ctx, scores)
}

// Best returns the person's top scores, highest first.
func (p *ProfileService) Best(ctx context.Context, personID int64, limit int) ([]domain.ScoredQuiz, error) {
	if limit <= 0 {
		limit = 3
	}
	scores, err := p.scores.BestForPerson(ctx, personID, limit)
	if err != nil {
		return nil, err
	}
	return p.joinQuizzes(ctx, scores)
}

// Badges lists the achievements the person holds.
func (p *ProfileService) Badges(ctx context.Context, personID int64) ([]domain.Badge, error) {
	return p.badges.ListForPerson(ctx, personID)
}

func (p *ProfileService) joinQuizzes(ctx context.Context, scores []domain.Score) ([]domain.ScoredQuiz, error) {
	quizzes := make(map[int64]*domain.Quiz)
	result := make([]domain.ScoredQuiz, 0, len(scores))
	for _, score := range scores {
		quiz, ok := quizzes[score.QuizID]
		if !ok {
			var err error
			quiz, err = p.catalog.GetQuiz(ctx, score.QuizID)
			if err != nil {
				return nil, err
			}
			quizzes[score.QuizID] = quiz
		}
		entry := domain.ScoredQuiz{Score: score}
		if quiz != nil {
			entry.Quiz = *quiz
		}
		result = append(result, entry)
	}
	return result, nil
}
