package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/mkovacic/fitbeat/internal"
	"github.com/mkovacic/fitbeat/internal/config"
	"github.com/mkovacic/fitbeat/internal/logging"
	"github.com/mkovacic/fitbeat/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	if cfg.LogsPath != "" {
		logsDir := filepath.Dir(cfg.LogsPath)
		logsDirOk, err := pkg.PathExists(logsDir, true)
		if err != nil {
			log.Fatalf("check logs dir: %s", err)
		}
		if !logsDirOk {
			log.Fatalf("logs dir %s does not exist", logsDir)
		}
	}

	sentryDSN := os.Getenv("SENTRY_DSN")
	logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    false,
		Environment:      cfg.Environment,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        sentryDSN,
		SentryServerName: "main-service",
	})

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	fitbitClientID := os.Getenv("FITBEAT_FITBIT_CLIENT_ID")
	if fitbitClientID == "" {
		log.Errorf("fitbit client id not set. use FITBEAT_FITBIT_CLIENT_ID")
	}
	fitbitClientSecret := os.Getenv("FITBEAT_FITBIT_CLIENT_SECRET")
	if fitbitClientSecret == "" {
		log.Errorf("fitbit client secret not set. use FITBEAT_FITBIT_CLIENT_SECRET")
	}

	openAIAPIKey := os.Getenv("FITBEAT_OPENAI_API_KEY")
	if openAIAPIKey == "" {
		log.Warnf("openai api key not set, reminder messages will use templates. use FITBEAT_OPENAI_API_KEY")
	}

	cronSecret := os.Getenv("FITBEAT_CRON_SECRET")
	if cronSecret == "" {
		log.Errorf("cron secret not set. use FITBEAT_CRON_SECRET")
	}

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("FITBEAT_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("FITBEAT_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Errorf("admin username and password not set. use FITBEAT_ADMIN_USERNAME and FITBEAT_ADMIN_PASSWORD_HASH")
	}

	redisPassword := os.Getenv("FITBEAT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITBEAT_REDIS_PASS")
	}

	if otelServiceName := os.Getenv("OTEL_SERVICE_NAME"); otelServiceName == "" {
		log.Warnln("OTEL_SERVICE_NAME env var not set")
	}

	honeycombEnabled := os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			FitbitClientID:          fitbitClientID,
			FitbitClientSecret:      fitbitClientSecret,
			OpenAIAPIKey:            openAIAPIKey,
			CronSecret:              cronSecret,
			VersionInfo:             versionInfo,
			AdminUsername:           adminUsername,
			AdminPasswordHash:       adminPasswordHash,
			RedisPassword:           redisPassword,
			HoneycombTracingEnabled: honeycombEnabled,
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx, cfg.Host, cfg.Port)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	// go to sleep 🥱
	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
