package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// PersonStore implements the person repository over SQL.
type PersonStore struct {
	db *bun.DB
}

func NewPersonStore(db *bun.DB) *PersonStore {
	return &PersonStore{db: db}
}

func (s *PersonStore) GetByID(ctx context.Context, id int64) (*domain.Person, error) {
	person := new(domain.Person)
	err := s.db.NewSelect().Model(person).Where("p.id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person %d: %w", id, err)
	}
	return person, nil
}

func (s *PersonStore) GetByName(ctx context.Context, name string) (*domain.Person, error) {
	person := new(domain.Person)
	err := s.db.NewSelect().Model(person).Where("p.name = ?", name).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get person %q: %w", name, err)
	}
	return person, nil
}

func (s *PersonStore) Insert(ctx context.Context, person *domain.Person) error {
	if _, err := s.db.NewInsert().Model(person).Exec(ctx); err != nil {
		return fmt.Errorf("insert person: %w", err)
	}
	return nil
}

func (s *PersonStore) Update(ctx context.Context, person *domain.Person) error {
	if _, err := s.db.NewUpdate().Model(person).WherePK().Exec(ctx); err != nil {
		return fmt.Errorf("update person %d: %w", person.ID, err)
	}
	return nil
}
