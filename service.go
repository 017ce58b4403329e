package context7

import "context"

// LibraryService represents the Context7 API.
type LibraryService interface {
	// Search returns libraries matching the query in API order.
	Search(ctx context.Context, query string) ([]SearchResult, error)

	// GetDocs returns the documentation body for a library ID verbatim.
	// A single leading "/" in the ID is ignored.
	GetDocs(ctx context.Context, id string) (string, error)
}
