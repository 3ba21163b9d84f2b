package wiki

import (
	"context"

	"github.com/wikireflect/wiki-reflection/internal/model"
)

// Fetcher defines the interface for the wiki client.
type Fetcher interface {
	FetchRandomTitle(ctx context.Context, languageCode string) (string, error)
	FetchArticle(ctx context.Context, languageCode, title string) (*model.ArticleQueryResult, error)
}
