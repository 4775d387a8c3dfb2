package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	_ "github.com/lib/pq"

	"github.com/footyrecords/club-history/external/popcensus"
	"github.com/footyrecords/club-history/external/recalcqueue"
	"github.com/footyrecords/club-history/internal/config"
	"github.com/footyrecords/club-history/internal/domain/club"
	"github.com/footyrecords/club-history/internal/domain/league"
	"github.com/footyrecords/club-history/internal/domain/nation"
	"github.com/footyrecords/club-history/internal/domain/season"
	"github.com/footyrecords/club-history/internal/infrastructure/repository/memory"
	"github.com/footyrecords/club-history/internal/infrastructure/repository/postgres"
	"github.com/footyrecords/club-history/internal/interfaces/httpapi"
	idgen "github.com/footyrecords/club-history/internal/platform/id"
	"github.com/footyrecords/club-history/internal/platform/logging"
	"github.com/footyrecords/club-history/internal/platform/resilience"
	"github.com/footyrecords/club-history/internal/usecase"
)

// repositories groups the persistence ports the usecase layer needs,
// whichever backend provides them.
type repositories struct {
	nations   nation.Repository
	leagues   league.Repository
	clubs     club.Repository
	seasons   season.Repository
	entries   season.EntryRepository
	stability interface {
		UpdateStability(ctx context.Context, clubID string, index float64) error
	}
	store interface {
		SaveDivision(ctx context.Context, s season.Season, entries []season.TableEntry, clubs []club.Club) error
	}
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, db, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, err
	}

	stabilitySvc := usecase.NewStabilityService(repos.entries, repos.stability, cfg.StabilityMaxWorkers, logger)

	var recalc usecase.StabilityRecalculator = stabilitySvc
	if cfg.RecalcQueueEnabled {
		recalc = recalcqueue.NewPublisher(recalcqueue.PublisherConfig{
			BaseURL: cfg.RecalcQueueBaseURL,
			Token:   cfg.RecalcQueueToken,
		}, logger)
	}

	var estimator usecase.PopulationEstimator
	if cfg.EstimatorEnabled {
		estimator = popcensus.NewClient(popcensus.ClientConfig{
			BaseURL:    cfg.EstimatorBaseURL,
			APIKey:     cfg.EstimatorToken,
			Timeout:    cfg.EstimatorTimeout,
			MaxRetries: cfg.EstimatorMaxRetries,
			Logger:     logger,
			CircuitBreaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.EstimatorCircuitEnabled,
				FailureThreshold: cfg.EstimatorCircuitFailureCount,
				OpenTimeout:      cfg.EstimatorCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.EstimatorCircuitHalfOpenMaxReq,
			},
		})
	}

	archiveSvc := usecase.NewArchiveService(repos.nations, repos.leagues, repos.seasons, repos.entries)
	ingestionSvc := usecase.NewIngestionService(
		repos.leagues,
		repos.clubs,
		repos.seasons,
		repos.store,
		recalc,
		idgen.NewRandomGenerator(),
		logger,
	)
	careerSvc := usecase.NewCareerService(repos.clubs, repos.entries)
	rankingSvc := usecase.NewRankingService(
		repos.clubs,
		repos.leagues,
		repos.nations,
		repos.seasons,
		repos.entries,
		estimator,
		logger,
	)

	handler := httpapi.NewHandler(archiveSvc, ingestionSvc, careerSvc, rankingSvc, stabilitySvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	if db != nil {
		server.RegisterOnShutdown(func() {
			if closeErr := db.Close(); closeErr != nil {
				logger.Error("close database", "error", closeErr)
			}
		})
	}

	return server, nil
}

// buildRepositories selects the backend: an empty DB_URL runs the
// service on the seeded in-memory archive, anything else is a Postgres
// DSN. The returned *sqlx.DB is nil for the in-memory backend.
func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, *sqlx.DB, error) {
	if cfg.DBURL == "" {
		archive := memory.NewArchive()
		clubs := archive.Clubs()

		logger.Info("storage backend selected", "backend", "memory")

		return repositories{
			nations:   memory.NewNationRepository(memory.SeedNations()),
			leagues:   memory.NewLeagueRepository(memory.SeedLeagues()),
			clubs:     clubs,
			seasons:   archive.Seasons(),
			entries:   archive.Entries(),
			stability: clubs,
			store:     archive,
		}, nil, nil
	}

	dbURL := normalizeDBURL(cfg.DBURL, true)
	db, err := otelsqlx.Connect("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return repositories{}, nil, fmt.Errorf("connect postgres: %w", err)
	}

	logger.Info("storage backend selected",
		"backend", "postgres",
		"db_name", dbNameFromURL(cfg.DBURL),
	)

	clubs := postgres.NewClubRepository(db)

	return repositories{
		nations:   postgres.NewNationRepository(db),
		leagues:   postgres.NewLeagueRepository(db),
		clubs:     clubs,
		seasons:   postgres.NewSeasonRepository(db),
		entries:   postgres.NewEntryRepository(db),
		stability: clubs,
		store:     postgres.NewArchiveStore(db),
	}, db, nil
}
