package mock

import (
	"context"

	"github.com/fwojciec/context7"
)

var _ context7.LibraryService = (*LibraryService)(nil)

// LibraryService is a mock implementation of context7.LibraryService.
type LibraryService struct {
	SearchFn  func(ctx context.Context, query string) ([]context7.SearchResult, error)
	GetDocsFn func(ctx context.Context, id string) (string, error)
}

func (s *LibraryService) Search(ctx context.Context, query string) ([]context7.SearchResult, error) {
	return s.SearchFn(ctx, query)
}

func (s *LibraryService) GetDocs(ctx context.Context, id string) (string, error) {
	return s.GetDocsFn(ctx, id)
}
