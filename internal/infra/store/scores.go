package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// ScoreStore appends and reads the immutable score facts.
type ScoreStore struct {
	db *bun.DB
}

func NewScoreStore(db *bun.DB) *ScoreStore {
	return &ScoreStore{db: db}
}

func (s *ScoreStore) Insert(ctx context.Context, score *domain.Score) error {
	if _, err := s.db.NewInsert().Model(score).Exec(ctx); err != nil {
		return fmt.Errorf("insert score: %w", err)
	}
	return nil
}

// ListForPerson returns the person's full history in recorded order.
func (s *ScoreStore) ListForPerson(ctx context.Context, personID int64) ([]domain.Score, error) {
	var scores []domain.Score
	err := s.db.NewSelect().Model(&scores).
		Where("s.person_id = ?", personID).
		OrderExpr("s.created_at ASC, s.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list scores for person %d: %w", personID, err)
	}
	return scores, nil
}

// BestForPerson returns the highest scores first.
func (s *ScoreStore) BestForPerson(ctx context.Context, personID int64, limit int) ([]domain.Score, error) {
	var scores []domain.Score
	err := s.db.NewSelect().Model(&scores).
		Where("s.person_id = ?", personID).
		OrderExpr("s.score DESC, s.id ASC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("best scores for person %d: %w", personID, err)
	}
	return scores, nil
}
