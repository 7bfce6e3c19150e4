package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/openplatform/guardian-go/internal/domain"
)

type MockArticleRepository struct {
	mu       sync.RWMutex
	articles map[string]*domain.Article // key: GuardianID
	nextID   int64
}

func NewMockArticleRepository() *MockArticleRepository {
	return &MockArticleRepository{
		articles: make(map[string]*domain.Article),
		nextID:   1,
	}
}

func (m *MockArticleRepository) Create(ctx context.Context, article *domain.Article) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.articles[article.GuardianID]; exists {
		return domain.ErrDuplicateArticle
	}

	stored := *article
	stored.ID = m.nextID
	if stored.ArchivedAt.IsZero() {
		stored.ArchivedAt = time.Now()
	}
	m.nextID++
	m.articles[article.GuardianID] = &stored

	article.ID = stored.ID
	article.ArchivedAt = stored.ArchivedAt
	return nil
}

func (m *MockArticleRepository) GetByGuardianID(ctx context.Context, guardianID string) (*domain.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	article, exists := m.articles[guardianID]
	if !exists {
		return nil, domain.ErrArticleNotFound
	}
	found := *article
	return &found, nil
}

func (m *MockArticleRepository) ListRecent(ctx context.Context, limit int) ([]domain.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	articles := m.sortedByArchiveTime()
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}
	return articles, nil
}

func (m *MockArticleRepository) ListArchivedSince(ctx context.Context, since time.Time) ([]domain.Article, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var articles []domain.Article
	for _, article := range m.sortedByArchiveTime() {
		if !article.ArchivedAt.Before(since) {
			articles = append(articles, article)
		}
	}
	return articles, nil
}

func (m *MockArticleRepository) Count(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.articles), nil
}

func (m *MockArticleRepository) sortedByArchiveTime() []domain.Article {
	articles := make([]domain.Article, 0, len(m.articles))
	for _, article := range m.articles {
		articles = append(articles, *article)
	}
	sort.Slice(articles, func(i, j int) bool {
		return articles[i].ArchivedAt.After(articles[j].ArchivedAt)
	})
	return articles
}
