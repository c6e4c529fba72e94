package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/mkovacic/fitbeat/internal/auth"
	"github.com/mkovacic/fitbeat/internal/config"
	"github.com/mkovacic/fitbeat/internal/db"
	"github.com/mkovacic/fitbeat/internal/fitbit"
	"github.com/mkovacic/fitbeat/internal/middleware"
	"github.com/mkovacic/fitbeat/internal/misc"
	"github.com/mkovacic/fitbeat/internal/reminders"
	"github.com/mkovacic/fitbeat/internal/telemetry/metrics"
	"github.com/mkovacic/fitbeat/internal/telemetry/tracing"
	"github.com/mkovacic/fitbeat/internal/workouts"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config           *config.Config
	dbPool           *pgxpool.Pool
	tracedHttpClient *http.Client

	fitbitClientID     string
	fitbitClientSecret string
	openAIAPIKey       string
	cronSecret         string

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	FitbitClientID          string
	FitbitClientSecret      string
	OpenAIAPIKey            string
	CronSecret              string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "fitbeat_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fitbeat-backend")
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	s := &Server{
		config:           params.Config,
		dbPool:           dbPool,
		tracedHttpClient: tracedHttpClient,
		versionInfo:      params.VersionInfo,

		fitbitClientID:     params.FitbitClientID,
		fitbitClientSecret: params.FitbitClientSecret,
		openAIAPIKey:       params.OpenAIAPIKey,
		cronSecret:         params.CronSecret,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) gapPolicy() reminders.GapPolicy {
	if s.config.GapPolicy == config.GapPolicyPerCategory {
		return &reminders.PerCategoryPolicy{
			Thresholds: map[workouts.Category]time.Duration{
				workouts.CategoryStrength: time.Duration(s.config.GapStrengthThresholdDays) * 24 * time.Hour,
				workouts.CategoryCardio:   time.Duration(s.config.GapCardioThresholdDays) * 24 * time.Hour,
			},
		}
	}
	return &reminders.UnifiedWindowPolicy{
		Window: time.Duration(s.config.GapWindowHours) * time.Hour,
	}
}

func (s *Server) messageProvider() reminders.MessageProvider {
	if s.openAIAPIKey == "" {
		log.Warnln("openai api key not set, using template reminder messages")
		return reminders.NewTemplateProvider(s.config.MessageMaxCharacters)
	}
	return reminders.NewOpenAIProvider(
		s.openAIAPIKey,
		s.config.OpenAIModel,
		time.Duration(s.config.MessageTimeoutSecs)*time.Second,
		s.config.MessageMaxCharacters,
		s.tracedHttpClient,
	)
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	workoutsRepo := workouts.NewRepo(s.dbPool)
	workoutsHandler := workouts.NewHandler(workoutsRepo)
	r.HandleFunc("/workouts/list/page/{page}/size/{size}", workoutsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/workouts/stats", workoutsHandler.HandleStats).Methods("GET", "OPTIONS").Name("workouts-stats")

	fitbitClient := fitbit.NewClient(
		s.fitbitClientID,
		s.fitbitClientSecret,
		s.config.FitbitRedirectURI,
		strings.Fields(s.config.FitbitScopes),
		s.tracedHttpClient,
	)
	fitbitAuthRepo := fitbit.NewRepo(s.dbPool)
	fitbitSyncer := fitbit.NewSyncer(
		fitbitClient,
		fitbitAuthRepo,
		workoutsRepo,
		s.config.SyncWindowDays,
		s.metricsManager,
	)
	fitbitHandler := fitbit.NewHandler(
		fitbitClient,
		fitbitSyncer,
		fitbitAuthRepo,
		workoutsRepo,
		s.config.DailySyncLimit,
		fitbit.GenerateStateString,
	)
	r.HandleFunc("/fitbit/connect", fitbitHandler.HandleConnect).Methods("GET").Name("fitbit-connect")
	r.HandleFunc("/fitbit/callback", fitbitHandler.HandleCallback).Methods("GET").Name("fitbit-callback")
	r.HandleFunc("/fitbit/status", fitbitHandler.HandleStatus).Methods("GET", "OPTIONS").Name("fitbit-status")
	r.HandleFunc("/fitbit/disconnect", fitbitHandler.HandleDisconnect).Methods("POST", "OPTIONS").Name("fitbit-disconnect")
	r.HandleFunc("/fitbit/backfill", fitbitHandler.HandleBackfill).Methods("POST", "OPTIONS").Name("fitbit-backfill")

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	// per-minute guard in front of the daily sync_run cap
	syncSubrouter := r.PathPrefix("/fitbit/sync").Subrouter()
	syncSubrouter.HandleFunc("", fitbitHandler.HandleSync).Methods("POST", "OPTIONS").Name("fitbit-sync")
	syncSubrouter.Use(middleware.RateLimit(reqRateLimiter, "fitbit-sync", 10, s.metricsManager))

	remindersRepo := reminders.NewRepo(s.dbPool)
	remindersManager := reminders.NewManager(
		remindersRepo,
		workoutsRepo,
		s.gapPolicy(),
		s.messageProvider(),
		s.metricsManager,
	)
	remindersHandler := reminders.NewHandler(remindersManager, remindersRepo)
	r.HandleFunc("/cron/training-check", remindersHandler.HandleTrainingCheck).Methods("GET").Name("training-check")
	r.HandleFunc("/reminders/list/page/{page}/size/{size}", remindersHandler.HandleList).Methods("GET", "OPTIONS").Name("list-reminders")
	r.HandleFunc("/reminders/dismiss", remindersHandler.HandleDismiss).Methods("POST", "OPTIONS").Name("dismiss-reminder")

	miscHandler := misc.NewHandler(s.versionInfo, s.authService, s.admin)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.metricsManager, s.config.LoginRateLimitAllowedPerMin)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(
		s.cronSecret,
		s.loginChecker,
	)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(ctx context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
