package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	guardian "github.com/openplatform/guardian-go"
	"github.com/openplatform/guardian-go/internal/config"
	"github.com/openplatform/guardian-go/internal/metrics"
	"github.com/openplatform/guardian-go/internal/repository/postgres"
	"github.com/openplatform/guardian-go/internal/service"
	"github.com/openplatform/guardian-go/internal/telegram"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("create logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("newsvault stopped", zap.Error(err))
	}

	logger.Info("newsvault shut down")
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	db, err := postgres.New(ctx, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer db.Close()

	repo := postgres.NewArticleRepo(db)
	m := metrics.New()

	client := guardian.New(guardian.Config{
		APIKey:  cfg.Guardian.APIKey,
		BaseURL: cfg.Guardian.BaseURL,
		Timeout: cfg.Guardian.Timeout,
	}, logger.Named("guardian"))

	archiver := service.NewArchiver(service.ArchiverConfig{
		Queries:  cfg.Archive.Queries,
		Section:  cfg.Archive.Section,
		PageSize: cfg.Archive.PageSize,
		Pages:    cfg.Archive.Pages,
	}, client, repo, logger.Named("archiver"), m)

	var notifier *telegram.Notifier
	if cfg.Telegram.Token != "" {
		notifier, err = telegram.NewNotifier(telegram.NotifierConfig{
			Token:  cfg.Telegram.Token,
			ChatID: cfg.Telegram.ChatID,
		}, logger.Named("telegram"), m)
		if err != nil {
			return err
		}
	}

	metricsServer := &http.Server{
		Addr:    cfg.Metrics.Addr,
		Handler: metrics.Handler(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("metrics server listening", zap.String("addr", cfg.Metrics.Addr))
		if err := metricsServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return metricsServer.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		return archiveLoop(ctx, cfg.Archive.Interval, archiver, repo, notifier, logger)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

func archiveLoop(ctx context.Context, interval time.Duration, archiver *service.Archiver, repo *postgres.ArticleRepo, notifier *telegram.Notifier, logger *zap.Logger) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		runOnce(ctx, archiver, repo, notifier, logger)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func runOnce(ctx context.Context, archiver *service.Archiver, repo *postgres.ArticleRepo, notifier *telegram.Notifier, logger *zap.Logger) {
	start := time.Now()

	report, err := archiver.Run(ctx)
	if err != nil {
		logger.Error("archive run failed", zap.Error(err))
		return
	}

	if notifier == nil || report.Stored == 0 {
		return
	}

	articles, err := repo.ListArchivedSince(ctx, start)
	if err != nil {
		logger.Error("load digest articles", zap.Error(err))
		return
	}
	if err := notifier.SendDigest(articles); err != nil {
		logger.Error("send digest", zap.Error(err))
	}
}
