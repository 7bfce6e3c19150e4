package integration

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/openplatform/guardian-go/internal/domain"
	pgRepo "github.com/openplatform/guardian-go/internal/repository/postgres"
)

var testDB *pgRepo.DB

func TestMain(m *testing.M) {
	if os.Getenv("SHORT_TESTS") == "1" {
		os.Exit(0)
	}

	ctx := context.Background()

	pgContainer, err := postgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		panic(err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		panic(err)
	}

	testDB, err = pgRepo.New(ctx, connStr)
	if err != nil {
		panic(err)
	}

	_, err = testDB.Pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS articles (
            id BIGSERIAL PRIMARY KEY,
            guardian_id TEXT NOT NULL UNIQUE,
            type TEXT NOT NULL DEFAULT '',
            section TEXT NOT NULL DEFAULT '',
            section_name TEXT NOT NULL DEFAULT '',
            title TEXT NOT NULL,
            web_url TEXT NOT NULL DEFAULT '',
            api_url TEXT NOT NULL DEFAULT '',
            byline TEXT NOT NULL DEFAULT '',
            trail_text TEXT NOT NULL DEFAULT '',
            wordcount INT NOT NULL DEFAULT 0,
            published_at TIMESTAMPTZ,
            archived_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        );
    `)
	if err != nil {
		panic(err)
	}

	code := m.Run()

	testDB.Close()
	pgContainer.Terminate(ctx)

	os.Exit(code)
}

func newArticle(guardianID, title string) *domain.Article {
	published := time.Date(2022, 3, 1, 10, 0, 0, 0, time.UTC)
	return &domain.Article{
		GuardianID:  guardianID,
		Type:        "article",
		Section:     "world",
		SectionName: "World news",
		Title:       title,
		WebURL:      "https://www.theguardian.com/" + guardianID,
		APIURL:      "https://content.guardianapis.com/" + guardianID,
		Byline:      "A Reporter",
		TrailText:   "Trail",
		Wordcount:   250,
		PublishedAt: &published,
	}
}

func TestArticleRepository_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	repo := pgRepo.NewArticleRepo(testDB)

	article := newArticle("world/2022/mar/01/first", "First story")
	if err := repo.Create(ctx, article); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if article.ID == 0 {
		t.Error("Create() did not assign an id")
	}
	if article.ArchivedAt.IsZero() {
		t.Error("Create() did not populate archived_at")
	}

	err := repo.Create(ctx, newArticle("world/2022/mar/01/first", "First story again"))
	if !errors.Is(err, domain.ErrDuplicateArticle) {
		t.Errorf("Create() duplicate error = %v, want ErrDuplicateArticle", err)
	}

	found, err := repo.GetByGuardianID(ctx, "world/2022/mar/01/first")
	if err != nil {
		t.Fatalf("GetByGuardianID() error = %v", err)
	}
	if found.Title != "First story" {
		t.Errorf("Title = %q, want %q", found.Title, "First story")
	}
	if found.PublishedAt == nil || !found.PublishedAt.Equal(*article.PublishedAt) {
		t.Errorf("PublishedAt = %v, want %v", found.PublishedAt, article.PublishedAt)
	}

	_, err = repo.GetByGuardianID(ctx, "world/2022/mar/01/missing")
	if !errors.Is(err, domain.ErrArticleNotFound) {
		t.Errorf("GetByGuardianID() error = %v, want ErrArticleNotFound", err)
	}
}

func TestArticleRepository_Integration_Listing(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	ctx := context.Background()
	repo := pgRepo.NewArticleRepo(testDB)

	cutoff := time.Now()
	for _, id := range []string{"politics/2022/mar/02/a", "politics/2022/mar/02/b", "politics/2022/mar/02/c"} {
		if err := repo.Create(ctx, newArticle(id, "Story "+id)); err != nil {
			t.Fatalf("Create(%s) error = %v", id, err)
		}
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("ListRecent(2) returned %d articles", len(recent))
	}

	since, err := repo.ListArchivedSince(ctx, cutoff)
	if err != nil {
		t.Fatalf("ListArchivedSince() error = %v", err)
	}
	if len(since) != 3 {
		t.Errorf("ListArchivedSince() returned %d articles, want 3", len(since))
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if count < 3 {
		t.Errorf("Count() = %d, want at least 3", count)
	}
}
