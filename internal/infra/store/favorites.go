package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// FavoriteStore holds the per-person favorite markers.
type FavoriteStore struct {
	db *bun.DB
}

func NewFavoriteStore(db *bun.DB) *FavoriteStore {
	return &FavoriteStore{db: db}
}

func (s *FavoriteStore) Exists(ctx context.Context, personID, quizID int64) (bool, error) {
	exists, err := s.db.NewSelect().Model((*domain.FavoriteQuiz)(nil)).
		Where("person_id = ? AND quiz_id = ?", personID, quizID).
		Exists(ctx)
	if err != nil {
		return false, fmt.Errorf("favorite exists: %w", err)
	}
	return exists, nil
}

func (s *FavoriteStore) Insert(ctx context.Context, personID, quizID int64) error {
	fav := &domain.FavoriteQuiz{PersonID: personID, QuizID: quizID}
	_, err := s.db.NewInsert().Model(fav).
		On("CONFLICT (person_id, quiz_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert favorite: %w", err)
	}
	return nil
}

func (s *FavoriteStore) Delete(ctx context.Context, personID, quizID int64) error {
	_, err := s.db.NewDelete().Model((*domain.FavoriteQuiz)(nil)).
		Where("person_id = ? AND quiz_id = ?", personID, quizID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}
	return nil
}
