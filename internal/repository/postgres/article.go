package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openplatform/guardian-go/internal/domain"
)

type ArticleRepo struct {
	db *DB
}

func NewArticleRepo(db *DB) *ArticleRepo {
	return &ArticleRepo{db: db}
}

func (r *ArticleRepo) Create(ctx context.Context, article *domain.Article) error {
	query := `
        INSERT INTO articles (guardian_id, type, section, section_name, title,
                              web_url, api_url, byline, trail_text, wordcount, published_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
        RETURNING id, archived_at
    `

	err := r.db.Pool.QueryRow(ctx, query,
		article.GuardianID,
		article.Type,
		article.Section,
		article.SectionName,
		article.Title,
		article.WebURL,
		article.APIURL,
		article.Byline,
		article.TrailText,
		article.Wordcount,
		article.PublishedAt,
	).Scan(&article.ID, &article.ArchivedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrDuplicateArticle
		}
		return fmt.Errorf("create article: %w", err)
	}

	return nil
}

func (r *ArticleRepo) GetByGuardianID(ctx context.Context, guardianID string) (*domain.Article, error) {
	query := selectArticles + ` WHERE guardian_id = $1`

	var article domain.Article
	err := r.db.Pool.QueryRow(ctx, query, guardianID).Scan(articleFields(&article)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("get article: %w", err)
	}

	return &article, nil
}

func (r *ArticleRepo) ListRecent(ctx context.Context, limit int) ([]domain.Article, error) {
	query := selectArticles + ` ORDER BY archived_at DESC LIMIT $1`

	rows, err := r.db.Pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list recent articles: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepo) ListArchivedSince(ctx context.Context, since time.Time) ([]domain.Article, error) {
	query := selectArticles + ` WHERE archived_at >= $1 ORDER BY archived_at DESC`

	rows, err := r.db.Pool.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("list articles since: %w", err)
	}
	defer rows.Close()

	return scanArticles(rows)
}

func (r *ArticleRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count articles: %w", err)
	}

	return count, nil
}

const selectArticles = `
        SELECT id, guardian_id, type, section, section_name, title,
               web_url, api_url, byline, trail_text, wordcount, published_at, archived_at
        FROM articles`

func articleFields(a *domain.Article) []any {
	return []any{
		&a.ID,
		&a.GuardianID,
		&a.Type,
		&a.Section,
		&a.SectionName,
		&a.Title,
		&a.WebURL,
		&a.APIURL,
		&a.Byline,
		&a.TrailText,
		&a.Wordcount,
		&a.PublishedAt,
		&a.ArchivedAt,
	}
}

func scanArticles(rows pgx.Rows) ([]domain.Article, error) {
	var articles []domain.Article
	for rows.Next() {
		var article domain.Article
		if err := rows.Scan(articleFields(&article)...); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return articles, nil
}
