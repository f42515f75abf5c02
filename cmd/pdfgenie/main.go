package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/dtroode/pdfgenie-client/internal/api/rest"
	"github.com/dtroode/pdfgenie-client/internal/api/rest/middleware"
	"github.com/dtroode/pdfgenie-client/internal/cli"
	"github.com/dtroode/pdfgenie-client/internal/config"
	"github.com/dtroode/pdfgenie-client/internal/download"
	"github.com/dtroode/pdfgenie-client/internal/guard"
	"github.com/dtroode/pdfgenie-client/internal/logger"
	"github.com/dtroode/pdfgenie-client/internal/model"
	"github.com/dtroode/pdfgenie-client/internal/service"
	"github.com/dtroode/pdfgenie-client/internal/storage/file"
	storage "github.com/dtroode/pdfgenie-client/internal/storage/minio"
	"github.com/dtroode/pdfgenie-client/internal/token"
	"github.com/dtroode/pdfgenie-client/internal/transport"
	"github.com/dtroode/pdfgenie-client/internal/workflow"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel, cfg.LogFile)
	defer logger.Close()

	sl := transport.NewLayer(cfg.API.CAFile, cfg.API.CertFile, cfg.API.KeyFile)
	tr, err := sl.Transport()
	if err != nil {
		logger.Fatal("failed to configure transport", "error", err)
	}
	httpClient := &http.Client{
		Transport: middleware.NewLogging(tr, logger),
		Timeout:   cfg.API.Timeout,
	}

	client, err := rest.NewClient(cfg.API.URL, httpClient, logger)
	if err != nil {
		logger.Fatal("failed to create api client", "error", err)
	}

	navigator := cli.NewNavigator(os.Stderr)
	inspector := token.NewJWT()
	sessions := service.NewSessionStore(client, file.NewTokenFile(cfg.Session.TokenFile), navigator, inspector, logger)

	// the guard shows its placeholder until this settles
	go sessions.Restore(ctx)

	var sink model.ResultSink
	if cfg.Storage.Enabled {
		sink = newSink(ctx, cfg.Storage, logger)
	}
	saver := download.NewSaver(cfg.Output.Dir, sink, func() string {
		if u := sessions.Current().User; u != nil {
			return u.Username
		}
		return ""
	}, logger)

	app := cli.New(cli.Deps{
		Sessions:  sessions,
		Guard:     guard.New(sessions, navigator, logger),
		Runner:    workflow.NewRunner(client, saver, cfg.Output.CacheTTL, logger),
		Saver:     saver,
		Backend:   client,
		Inspector: inspector,
		Logger:    logger,
		Build: cli.BuildInfo{
			Version: buildVersion,
			Date:    buildDate,
			Commit:  buildCommit,
		},
	})

	if err := app.Execute(ctx, os.Args[1:]); err != nil {
		logger.Debug("command failed", "error", err)
		_ = logger.Close()
		os.Exit(1)
	}
}

func newSink(ctx context.Context, cfg config.Storage, logger *logger.Logger) model.ResultSink {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		logger.Fatal("failed to create minio client", "error", err)
	}

	sink, err := storage.NewSink(ctx, minioClient, cfg.Bucket)
	if err != nil {
		logger.Fatal("failed to initialize result storage", "error", err)
	}
	return sink
}
