package integration_testing

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/mkovacic/fitbeat/internal"
	"github.com/mkovacic/fitbeat/internal/config"

	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
)

const (
	serverPort = 9000
	serverHost = "localhost"
)

var serverEndpoint = fmt.Sprintf("http://%s:%d", serverHost, serverPort)

type Suite struct {
	DB         *sql.DB
	dockerPool *dockertest.Pool
	server     *internal.Server
	teardown   []func()
}

func newSuite(ctx context.Context) (_ *Suite) {
	var err error
	suite := &Suite{
		teardown: make([]func(), 0),
	}

	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	suite.dockerPool, err = dockertest.NewPool("")
	if err != nil {
		log.Fatalf("could not create new dockertest pool: %s", err)
	}

	// uses pool to try to connect to Docker
	if err = suite.dockerPool.Client.Ping(); err != nil {
		log.Fatalf("could not ping dockertest pool: %s", err)
	}

	redisPort, err := suite.redisSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup redis: %s", err.Error())
	}

	pgPort, err := suite.postgresSetup()
	if err != nil {
		suite.cleanup()
		log.Fatalf("failed to setup postgres: %s", err)
	}

	cfg := getTestConfig(redisPort, pgPort)
	suite.server, err = internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			FitbitClientID:          "test-client-id",
			FitbitClientSecret:      "test-client-secret",
			OpenAIAPIKey:            "",
			CronSecret:              "test-cron-secret",
			VersionInfo:             "test-version-info",
			AdminUsername:           "adminUsername",
			AdminPasswordHash:       "adminPasswordHash",
			RedisPassword:           "",
			HoneycombTracingEnabled: false,
		},
	)
	if err != nil {
		suite.cleanup()
		log.Fatalf("new server: %s", err)
	}

	suite.server.Serve(ctx, cfg.Host, cfg.Port)

	return suite
}

func (s *Suite) cleanup() {
	if s.DB != nil {
		s.DB.Close()
	}
	for _, teardown := range s.teardown {
		teardown()
	}
	if s.server != nil {
		s.server.GracefulShutdown()
	}
}

func getTestConfig(redisPort, postgresPort string) *config.Config {
	return &config.Config{
		Environment:           "development",
		Host:                  serverHost,
		Port:                  serverPort,
		RedisHost:             "localhost",
		RedisPort:             redisPort,
		PostgresHost:          "localhost",
		PostgresPort:          postgresPort,
		PostgresDBName:        "fitbeat",
		PrometheusMetricsHost: "localhost",
		PrometheusMetricsPort: "9001",
		FitbitRedirectURI:     fmt.Sprintf("%s/fitbit/callback", serverEndpoint),
		FitbitScopes:          "activity profile",
		SyncWindowDays:        30,
		DailySyncLimit:        5,
		GapPolicy:             config.GapPolicyUnifiedWindow,
		GapWindowHours:        48,
		MessageMaxCharacters:  240,
	}
}

func (s *Suite) redisSetup() (string, error) {
	redisResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "redis",
		Name:       "redis",
		Tag:        "6.2",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
	})
	if err != nil {
		return "", fmt.Errorf("run redis: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		redisResource.Close()
	})

	redisPort := redisResource.GetPort("6379/tcp")
	return redisPort, nil
}

func (s *Suite) postgresSetup() (string, error) {
	pgResource, err := s.dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=postgres",
			"POSTGRES_HOST_AUTH_METHOD=trust",
			"POSTGRES_DB=fitbeat",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return "", fmt.Errorf("dockerpool run postgres: %s", err)
	}

	s.teardown = append(s.teardown, func() {
		pgResource.Close()
	})

	pgPort := pgResource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://postgres@localhost:%s/fitbeat?sslmode=disable", pgPort)

	var db *sql.DB
	if err := s.dockerPool.Retry(func() error {
		var openErr error
		db, openErr = sql.Open("postgres", dsn)
		if openErr != nil {
			return openErr
		}
		return db.Ping()
	}); err != nil {
		return "", fmt.Errorf("open db conn: %s", err)
	}
	s.DB = db

	if _, err := db.Exec(initSQL); err != nil {
		return "", fmt.Errorf("run init script: %s", err)
	}

	return pgPort, nil
}

const initSQL = `
CREATE TABLE public.fitbit_auth
(
    user_id        VARCHAR PRIMARY KEY,
    fitbit_user_id VARCHAR NOT NULL,
    scope          VARCHAR NOT NULL,
    access_token   VARCHAR NOT NULL,
    refresh_token  VARCHAR NOT NULL,
    expires_at     TIMESTAMPTZ NOT NULL,
    created_at     TIMESTAMPTZ NOT NULL,
    updated_at     TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.fitbit_auth OWNER TO postgres;

CREATE TABLE public.fitbit_workout
(
    id            SERIAL PRIMARY KEY,
    user_id       VARCHAR NOT NULL,
    fitbit_log_id VARCHAR NOT NULL UNIQUE,
    start_time    TIMESTAMPTZ NOT NULL,
    duration_ms   BIGINT  NOT NULL,
    activity_name VARCHAR NOT NULL,
    category      VARCHAR,
    is_training   BOOLEAN,
    calories      INTEGER,
    steps         INTEGER,
    distance      DOUBLE PRECISION,
    raw_json      JSONB,
    created_at    TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.fitbit_workout OWNER TO postgres;
CREATE INDEX ix_fitbit_workout_start_time ON public.fitbit_workout USING btree (start_time);
CREATE INDEX ix_fitbit_workout_category ON public.fitbit_workout (category);

CREATE TABLE public.reminder
(
    id          VARCHAR PRIMARY KEY,
    subject_key VARCHAR NOT NULL,
    kind        VARCHAR NOT NULL,
    day_key     VARCHAR NOT NULL,
    status      VARCHAR NOT NULL,
    reason      VARCHAR NOT NULL,
    message     VARCHAR,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ NOT NULL,
    UNIQUE (subject_key, kind, day_key)
);

ALTER TABLE public.reminder OWNER TO postgres;
CREATE INDEX ix_reminder_created_at ON public.reminder (created_at);

CREATE TABLE public.sync_run
(
    id      SERIAL PRIMARY KEY,
    user_id VARCHAR NOT NULL,
    ran_at  TIMESTAMPTZ NOT NULL
);

ALTER TABLE public.sync_run OWNER TO postgres;
CREATE INDEX ix_sync_run_ran_at ON public.sync_run USING btree (ran_at);
`
