package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	guardian "github.com/openplatform/guardian-go"
	"github.com/openplatform/guardian-go/internal/domain"
	"github.com/openplatform/guardian-go/internal/metrics"
	"github.com/openplatform/guardian-go/internal/repository"
)

type ArchiverConfig struct {
	Queries  []string
	Section  string
	PageSize int
	Pages    int
}

// Archiver runs the configured searches against the content API and
// stores every result that is not already in the archive.
type Archiver struct {
	config  ArchiverConfig
	client  *guardian.Client
	repo    repository.ArticleRepository
	logger  *zap.Logger
	metrics *metrics.Metrics
}

func NewArchiver(cfg ArchiverConfig, client *guardian.Client, repo repository.ArticleRepository, logger *zap.Logger, m *metrics.Metrics) *Archiver {
	if cfg.PageSize <= 0 {
		cfg.PageSize = 50
	}
	if cfg.Pages <= 0 {
		cfg.Pages = 1
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Archiver{
		config:  cfg,
		client:  client,
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

type RunReport struct {
	Queries       int
	FailedQueries int
	Fetched       int
	Stored        int
	Duplicates    int
}

type queryReport struct {
	fetched    int
	stored     int
	duplicates int
}

// Run archives all configured queries concurrently. A failing query is
// logged and counted, it does not abort the others.
func (a *Archiver) Run(ctx context.Context) (*RunReport, error) {
	start := time.Now()

	reportsChan := make(chan queryReport, len(a.config.Queries))
	failedChan := make(chan string, len(a.config.Queries))
	g, ctx := errgroup.WithContext(ctx)

	for _, query := range a.config.Queries {
		query := query // capture for goroutine
		g.Go(func() error {
			report, err := a.archiveQuery(ctx, query)
			if err != nil {
				a.logger.Warn("archive query failed",
					zap.Error(err),
					zap.String("query", query),
				)
				failedChan <- query
				return nil
			}
			reportsChan <- report
			return nil
		})
	}

	g.Wait()
	close(reportsChan)
	close(failedChan)

	report := &RunReport{Queries: len(a.config.Queries)}
	for r := range reportsChan {
		report.Fetched += r.fetched
		report.Stored += r.stored
		report.Duplicates += r.duplicates
	}
	for range failedChan {
		report.FailedQueries++
	}

	status := "ok"
	if report.FailedQueries > 0 {
		status = "partial"
	}
	if a.metrics != nil {
		a.metrics.RecordArchiveRun(status, time.Since(start))
	}

	a.logger.Info("archive run finished",
		zap.Int("queries", report.Queries),
		zap.Int("failed_queries", report.FailedQueries),
		zap.Int("fetched", report.Fetched),
		zap.Int("stored", report.Stored),
		zap.Int("duplicates", report.Duplicates),
		zap.Duration("duration", time.Since(start)),
	)

	return report, nil
}

func (a *Archiver) archiveQuery(ctx context.Context, query string) (queryReport, error) {
	var report queryReport

	for page := 1; page <= a.config.Pages; page++ {
		resp, err := a.searchPage(ctx, query, page)
		if err != nil {
			return report, err
		}

		report.fetched += len(resp.Results)
		for i := range resp.Results {
			article := domain.NewArticleFromResult(resp.Results[i])
			if err := article.Validate(); err != nil {
				a.logger.Warn("skipping invalid result",
					zap.Error(err),
					zap.String("query", query),
				)
				continue
			}

			err := a.repo.Create(ctx, article)
			switch {
			case errors.Is(err, domain.ErrDuplicateArticle):
				report.duplicates++
				if a.metrics != nil {
					a.metrics.RecordArticleDuplicate()
				}
			case err != nil:
				return report, err
			default:
				report.stored++
				if a.metrics != nil {
					a.metrics.RecordArticleStored()
				}
			}
		}

		// Stop early when the API has no further pages.
		if resp.Pages != nil && page >= *resp.Pages {
			break
		}
	}

	return report, nil
}

func (a *Archiver) searchPage(ctx context.Context, query string, page int) (*guardian.SearchResponse, error) {
	q := a.client.Query().
		Search(query).
		Page(page).
		PageSize(a.config.PageSize).
		OrderBy(guardian.OrderByNewest).
		ShowFields(guardian.FieldHeadline, guardian.FieldByline, guardian.FieldTrailText, guardian.FieldWordcount)

	if a.config.Section != "" {
		q.Section(a.config.Section)
	}

	start := time.Now()
	resp, err := q.Do(ctx)
	status := "ok"
	if err != nil {
		status = "error"
	}
	if a.metrics != nil {
		a.metrics.RecordSearchRequest(status, time.Since(start))
	}

	return resp, err
}
