package entrypoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/bookclub/backend/internal/config"
	"github.com/bookclub/backend/internal/database"
	"github.com/bookclub/backend/internal/database/answers"
	"github.com/bookclub/backend/internal/database/books"
	"github.com/bookclub/backend/internal/database/chapters"
	"github.com/bookclub/backend/internal/database/comments"
	"github.com/bookclub/backend/internal/database/questions"
	"github.com/bookclub/backend/internal/database/users"
	"github.com/bookclub/backend/internal/database/weeks"
	http_controllers "github.com/bookclub/backend/internal/http"
	"github.com/bookclub/backend/internal/logging"
	"github.com/bookclub/backend/internal/services"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second
	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("listen")
		}
	}()

	// kill (no param) sends SIGTERM, kill -2 is SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Dur("timeout", timeout).Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Info().Msg("server exiting")
}

// NewRouterConfig wires repositories and services on top of db.
func NewRouterConfig(db *database.Database, cfg *config.Config, version string) http_controllers.RouterConfig {
	bookRepo := books.NewRepository(db.DB)
	weekRepo := weeks.NewRepository(db.DB)
	chapterRepo := chapters.NewRepository(db.DB)
	commentRepo := comments.NewRepository(db.DB)
	userRepo := users.NewRepository(db.DB)
	questionRepo := questions.NewRepository(db.DB)
	answerRepo := answers.NewRepository(db.DB)

	return http_controllers.RouterConfig{
		Books:     services.NewBookService(bookRepo, weekRepo),
		Weeks:     services.NewWeekService(weekRepo, bookRepo, chapterRepo),
		Chapters:  services.NewChapterService(chapterRepo, weekRepo),
		Comments:  services.NewCommentService(commentRepo, chapterRepo, userRepo),
		Users:     services.NewUserService(userRepo, cfg.Auth),
		Questions: services.NewQuestionService(questionRepo, weekRepo, answerRepo),
		Answers:   services.NewAnswerService(answerRepo, questionRepo, userRepo),
		Database:  db,
		Logger:    log.Logger,
		CORS:      cfg.CORS,
		Version:   version,
	}
}

func Run(cfg *config.Config, version string) {
	logging.New(cfg.Log)
	log.Info().Str("version", version).Msg("starting book club backend")

	gin.SetMode(cfg.HTTP.GinMode)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize database")
	}

	router := http_controllers.NewRouter(NewRouterConfig(db, cfg, version))

	Serve(router, cfg, func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("error closing database")
		}
	})
}

// Migrate opens the database, applies the schema and exits.
func Migrate(cfg *config.Config) error {
	logging.New(cfg.Log)

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	defer db.Close()

	log.Info().Str("driver", string(cfg.Database.Driver)).Msg("database schema is up to date")
	return nil
}
