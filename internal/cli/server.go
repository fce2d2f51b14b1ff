package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/ChristianRemschi/QuizApp/internal/app"
	"github.com/ChristianRemschi/QuizApp/internal/config"
	"github.com/ChristianRemschi/QuizApp/internal/infra/memory"
	redisinfra "github.com/ChristianRemschi/QuizApp/internal/infra/redis"
	"github.com/ChristianRemschi/QuizApp/internal/infra/store"
	transport "github.com/ChristianRemschi/QuizApp/internal/transport/http"
)

// NewServeCmd builds the CLI subcommand to start the server.
func NewServeCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the quiz backend",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := store.Open(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := store.Migrate(ctx, db); err != nil {
		return err
	}
	if !cfg.Seed.Disabled {
		seeded, err := store.SeedIfEmpty(ctx, db)
		if err != nil {
			return err
		}
		if seeded {
			log.Printf("seeded sample quiz catalog")
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}
	sessionTTL := config.TTLDuration(cfg.Play.SessionTTL, 30*time.Minute)
	quizTTL := config.TTLDuration(cfg.Quiz.TTL, 10*time.Minute)

	quizzes := store.NewQuizStore(db)
	people := store.NewPersonStore(db)
	scores := store.NewScoreStore(db)
	badges := store.NewBadgeStore(db)
	favorites := store.NewFavoriteStore(db)

	var content app.QuizContentRepository
	var invalidator app.QuizContentInvalidator
	if redisClient != nil {
		cache := redisinfra.NewQuizCache(redisClient, quizzes, quizTTL)
		content, invalidator = cache, cache
	} else {
		cache := memory.NewQuizCache(quizzes, quizTTL)
		content, invalidator = cache, cache
	}

	var sessions app.SessionRepository
	if redisClient != nil {
		sessions = redisinfra.NewSessionStore(redisClient, sessionTTL)
	} else {
		sessions = memory.NewSessionStore(sessionTTL)
	}

	badgeService := app.NewBadgeService(people, badges)
	playService := app.NewPlayService(sessions, content, scores, badgeService, cfg.Play.SampleSize)
	authService := app.NewAuthService(people)
	catalogService := app.NewCatalogService(quizzes, content, favorites, invalidator)
	profileService := app.NewProfileService(people, scores, badges, quizzes)
	statsService := app.NewStatsService(scores, quizzes)

	api := transport.NewAPI(authService, catalogService, profileService, statsService)
	wsHandler := transport.NewWSHandler(playService)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	api.Register(mux)
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting quiz backend on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
