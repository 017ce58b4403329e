package mock

import (
	"context"
	"fmt"

	"github.com/fwojciec/context7"
)

// NewFixtureLibraryService returns a LibraryService that answers every
// search with the same four frontend libraries, in an order that is not
// sorted by any field, and renders placeholder documentation for any ID.
func NewFixtureLibraryService() *LibraryService {
	return &LibraryService{
		SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
			return FixtureResults(), nil
		},
		GetDocsFn: func(_ context.Context, id string) (string, error) {
			return FixtureDocs(id), nil
		},
	}
}

// FixtureResults returns a fresh copy of the fixture search results.
func FixtureResults() []context7.SearchResult {
	return []context7.SearchResult{
		fixture("/facebook/react", "React", "A JavaScript library for building user interfaces", "main", 220000, "2025-01-15", 150, 850, 450000, 9.5),
		fixture("/vercel/next.js", "Next.js", "The React Framework for the Web", "canary", 120000, "2025-01-14", 200, 1200, 600000, 9.2),
		fixture("/vuejs/core", "Vue.js", "Progressive JavaScript Framework", "main", 45000, "2025-01-10", 80, 400, 200000, 8.8),
		fixture("/sveltejs/svelte", "Svelte", "Cybernetically enhanced web apps", "master", 75000, "2025-01-12", 60, 300, 150000, 8.5),
	}
}

// FixtureDocs returns the placeholder documentation for id.
func FixtureDocs(id string) string {
	return fmt.Sprintf(`# Documentation for %[1]s

## Overview
This is sample documentation for testing purposes.

## Installation
`+"```bash\nnpm install %[1]s\n```"+`

## Usage
`+"```javascript\nimport { something } from '%[1]s';\n```"+`

## API Reference
- `+"`function1()`"+` - Does something useful
- `+"`function2()`"+` - Does something else useful
`, id)
}

func fixture(id, title, description, branch string, stars int64, updated string, pages, snippets, tokens int64, trust float64) context7.SearchResult {
	state := "active"
	return context7.SearchResult{
		ID:             id,
		Title:          &title,
		Description:    &description,
		Branch:         &branch,
		State:          &state,
		Stars:          &stars,
		LastUpdateDate: &updated,
		TotalPages:     &pages,
		TotalSnippets:  &snippets,
		TotalTokens:    &tokens,
		TrustScore:     &trust,
		Versions:       []any{},
	}
}
