package migrations

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

var Migrations = migrate.NewMigrations()

// Table creation goes through bun's model builders so the same migration
// set serves both the sqlite and postgres dialects.
var schemaModels = []interface{}{
	(*domain.Quiz)(nil),
	(*domain.Question)(nil),
	(*domain.Answer)(nil),
	(*domain.Person)(nil),
	(*domain.Score)(nil),
	(*domain.Badge)(nil),
	(*domain.PersonBadge)(nil),
	(*domain.FavoriteQuiz)(nil),
}

func init() {
	Migrations.MustRegister(
		func(ctx context.Context, db *bun.DB) error {
			for _, model := range schemaModels {
				if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		},
		func(ctx context.Context, db *bun.DB) error {
			for i := len(schemaModels) - 1; i >= 0; i-- {
				if _, err := db.NewDropTable().Model(schemaModels[i]).IfExists().Exec(ctx); err != nil {
					return err
				}
			}
			return nil
		},
	)
}
