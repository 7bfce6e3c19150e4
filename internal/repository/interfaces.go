package repository

import (
	"context"
	"time"

	"github.com/openplatform/guardian-go/internal/domain"
)

type ArticleRepository interface {
	// Create stores a new article. domain.ErrDuplicateArticle is
	// returned when the guardian id is already archived.
	Create(ctx context.Context, article *domain.Article) error
	GetByGuardianID(ctx context.Context, guardianID string) (*domain.Article, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Article, error)
	ListArchivedSince(ctx context.Context, since time.Time) ([]domain.Article, error)
	Count(ctx context.Context) (int, error)
}
