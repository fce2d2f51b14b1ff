package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ChristianRemschi/QuizApp/internal/config"
	"github.com/ChristianRemschi/QuizApp/internal/infra/store"
)

// NewSeedCmd loads the sample catalog into an empty store.
func NewSeedCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the sample quiz catalog if the store is empty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(*configPath)
			if err != nil {
				return err
			}

			db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := store.Migrate(cmd.Context(), db); err != nil {
				return err
			}

			seeded, err := store.SeedIfEmpty(cmd.Context(), db)
			if err != nil {
				return err
			}
			if seeded {
				log.Printf("sample catalog loaded")
			} else {
				log.Printf("store already has quizzes, nothing to do")
			}
			return nil
		},
	}
}
