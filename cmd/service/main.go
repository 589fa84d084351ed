package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/azylka/pulsefit/internal"
	"github.com/azylka/pulsefit/internal/config"
	"github.com/azylka/pulsefit/internal/logging"
	"github.com/azylka/pulsefit/pkg"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	// secrets can come from a local .env file too
	if err := godotenv.Load(); err != nil {
		log.Tracef("no .env file loaded: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
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

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	redisPassword := os.Getenv("PULSEFIT_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use PULSEFIT_REDIS_PASS")
	}

	geminiAPIKey := os.Getenv("GEMINI_API_KEY")
	openAIAPIKey := os.Getenv("OPENAI_API_KEY")
	switch cfg.AssistantProvider {
	case "openai":
		if openAIAPIKey == "" {
			log.Errorf("openai api key not set, use OPENAI_API_KEY env var to set it")
		}
	default:
		if geminiAPIKey == "" {
			log.Errorf("gemini api key not set, use GEMINI_API_KEY env var to set it")
		}
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

	// check if cfg.PhotosRootPath exists and is a directory, and create if not
	if err := os.MkdirAll(cfg.PhotosRootPath, 0o755); err != nil {
		log.Fatalf("create photos root dir: %s", err)
	}
	dirCreated, err := pkg.PathExists(cfg.PhotosRootPath, true)
	if err != nil {
		log.Fatalf("check photos root dir: %s", err)
	}
	if !dirCreated {
		log.Fatalf("photos root dir not created: %s", cfg.PhotosRootPath)
	} else {
		log.Printf("photos root dir: %s", cfg.PhotosRootPath)
	}

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                  cfg,
			VersionInfo:             versionInfo,
			RedisPassword:           redisPassword,
			GeminiAPIKey:            geminiAPIKey,
			OpenAIAPIKey:            openAIAPIKey,
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
