package app

import (
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/gridironpool/gridiron-pool/internal/config"
	"github.com/gridironpool/gridiron-pool/internal/infrastructure/account/introspect"
	"github.com/gridironpool/gridiron-pool/internal/infrastructure/email"
	cacherepo "github.com/gridironpool/gridiron-pool/internal/infrastructure/repository/cache"
	"github.com/gridironpool/gridiron-pool/internal/infrastructure/repository/postgres"
	"github.com/gridironpool/gridiron-pool/internal/interfaces/httpapi"
	basecache "github.com/gridironpool/gridiron-pool/internal/platform/cache"
	idgen "github.com/gridironpool/gridiron-pool/internal/platform/id"
	"github.com/gridironpool/gridiron-pool/internal/platform/logging"
	"github.com/gridironpool/gridiron-pool/internal/platform/resilience"
	"github.com/gridironpool/gridiron-pool/internal/usecase"

	alertdomain "github.com/gridironpool/gridiron-pool/internal/domain/alert"
	pickdomain "github.com/gridironpool/gridiron-pool/internal/domain/pick"
	playerdomain "github.com/gridironpool/gridiron-pool/internal/domain/player"
	prizedomain "github.com/gridironpool/gridiron-pool/internal/domain/prize"
	scheduledomain "github.com/gridironpool/gridiron-pool/internal/domain/schedule"
	seasondomain "github.com/gridironpool/gridiron-pool/internal/domain/season"
	statsdomain "github.com/gridironpool/gridiron-pool/internal/domain/stats"
	teamdomain "github.com/gridironpool/gridiron-pool/internal/domain/team"
	tiebreakerdomain "github.com/gridironpool/gridiron-pool/internal/domain/tiebreaker"
	userdomain "github.com/gridironpool/gridiron-pool/internal/domain/user"
)

type repositories struct {
	teams       teamdomain.Repository
	players     playerdomain.Repository
	stats       statsdomain.Repository
	schedules   scheduledomain.Repository
	picks       pickdomain.Repository
	users       userdomain.Repository
	tiebreakers tiebreakerdomain.Repository
	prizes      prizedomain.Repository
	seasons     seasondomain.Repository
	alerts      alertdomain.Repository
}

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	db, err := openDB(cfg)
	if err != nil {
		return nil, nil, err
	}

	repos := buildRepositories(cfg, db)

	lockSvc := usecase.NewLockService(repos.schedules, repos.teams)
	scoreboardSvc := usecase.NewScoreboardService(
		repos.users,
		repos.picks,
		repos.players,
		repos.stats,
		repos.schedules,
		repos.tiebreakers,
		lockSvc,
	)
	rankingSvc := usecase.NewRankingService(repos.users, repos.picks, repos.stats)
	rosterSvc := usecase.NewRosterService(repos.players, repos.stats, repos.teams, lockSvc)
	pickSvc := usecase.NewPickService(repos.picks, repos.players, lockSvc, logger)
	myTeamSvc := usecase.NewMyTeamService(
		repos.users,
		repos.picks,
		repos.players,
		repos.stats,
		repos.schedules,
		repos.tiebreakers,
		repos.teams,
		repos.seasons,
		repos.alerts,
		lockSvc,
	)
	adminSvc := usecase.NewAdminService(
		repos.seasons,
		repos.schedules,
		repos.prizes,
		repos.users,
		repos.alerts,
	)
	resultsSvc := usecase.NewResultsService(repos.prizes, repos.users)
	userSvc := usecase.NewUserService(repos.users)

	sender := email.NewSMTPSender(email.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
		Logger:   logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SMTPCircuitEnabled,
			FailureThreshold: cfg.SMTPCircuitFailureCount,
			OpenTimeout:      cfg.SMTPCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SMTPCircuitHalfOpenMaxReq,
		},
	})
	broadcastSvc := usecase.NewBroadcastService(
		repos.users,
		sender,
		idgen.NewRandomGenerator(),
		cfg.BroadcastWorkers,
		logger,
	)

	verifier := introspect.NewClient(introspect.ClientConfig{
		HTTPClient:     &http.Client{Timeout: cfg.AuthTimeout},
		BaseURL:        cfg.AuthBaseURL,
		IntrospectPath: cfg.AuthIntrospectPath,
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.AuthCircuitEnabled,
			FailureThreshold: cfg.AuthCircuitFailureCount,
			OpenTimeout:      cfg.AuthCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.AuthCircuitHalfOpenMaxReq,
		},
	})

	handler := httpapi.NewHandler(
		lockSvc,
		scoreboardSvc,
		rankingSvc,
		rosterSvc,
		pickSvc,
		myTeamSvc,
		adminSvc,
		resultsSvc,
		userSvc,
		broadcastSvc,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, db.Close, nil
}

func buildRepositories(cfg config.Config, db *sqlx.DB) repositories {
	repos := repositories{
		teams:       postgres.NewTeamRepository(db),
		players:     postgres.NewPlayerRepository(db),
		stats:       postgres.NewStatsRepository(db),
		schedules:   postgres.NewScheduleRepository(db),
		picks:       postgres.NewPickRepository(db),
		users:       postgres.NewUserRepository(db),
		tiebreakers: postgres.NewTiebreakerRepository(db),
		prizes:      postgres.NewPrizeRepository(db),
		seasons:     postgres.NewSeasonRepository(db),
		alerts:      postgres.NewAlertRepository(db),
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.schedules = cacherepo.NewScheduleRepository(repos.schedules, store)
		repos.prizes = cacherepo.NewPrizeRepository(repos.prizes, store)
	}

	return repos
}
