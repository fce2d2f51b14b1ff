package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// BadgeStore manages badge definitions and grants.
type BadgeStore struct {
	db *bun.DB
}

func NewBadgeStore(db *bun.DB) *BadgeStore {
	return &BadgeStore{db: db}
}

func (s *BadgeStore) GetByName(ctx context.Context, name string) (*domain.Badge, error) {
	badge := new(domain.Badge)
	err := s.db.NewSelect().Model(badge).Where("b.name = ?", name).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get badge %q: %w", name, err)
	}
	return badge, nil
}

// CreateIfAbsent inserts the badge definition; on a name conflict the first
// writer wins and the surviving row's id is loaded into the model.
func (s *BadgeStore) CreateIfAbsent(ctx context.Context, badge *domain.Badge) error {
	_, err := s.db.NewInsert().Model(badge).
		On("CONFLICT (name) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert badge %q: %w", badge.Name, err)
	}
	existing, err := s.GetByName(ctx, badge.Name)
	if err != nil {
		return err
	}
	if existing == nil {
		return fmt.Errorf("badge %q missing after insert", badge.Name)
	}
	*badge = *existing
	return nil
}

// Grant records that the person holds the badge; duplicates are ignored.
func (s *BadgeStore) Grant(ctx context.Context, personID, badgeID int64) error {
	grant := &domain.PersonBadge{PersonID: personID, BadgeID: badgeID}
	_, err := s.db.NewInsert().Model(grant).
		On("CONFLICT (person_id, badge_id) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("grant badge %d to person %d: %w", badgeID, personID, err)
	}
	return nil
}

// ListForPerson returns the badges the person holds.
func (s *BadgeStore) ListForPerson(ctx context.Context, personID int64) ([]domain.Badge, error) {
	var badges []domain.Badge
	err := s.db.NewSelect().Model(&badges).
		Join("INNER JOIN person_badges AS pb ON pb.badge_id = b.id").
		Where("pb.person_id = ?", personID).
		OrderExpr("b.id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges for person %d: %w", personID, err)
	}
	return badges, nil
}
