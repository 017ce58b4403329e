package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/context7"
	main "github.com/fwojciec/context7/cmd/context7"
	"github.com/fwojciec/context7/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("passes the query and sorts results", func(t *testing.T) {
		t.Parallel()

		var gotQuery string
		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, query string) ([]context7.SearchResult, error) {
				gotQuery = query
				low, high := int64(10), int64(50)
				return []context7.SearchResult{
					{ID: "a", Stars: &low},
					{ID: "b"},
					{ID: "c", Stars: &high},
				}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.SearchCmd{Query: "left pad", SortBy: context7.SortByStars, IDOnly: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "left pad", gotQuery)
		assert.Equal(t, "c\na\nb\n", stdout.String())
	})

	t.Run("prints nothing for empty id list", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				return []context7.SearchResult{}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.SearchCmd{Query: "nothing", SortBy: context7.SortByStars, IDOnly: true}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})

	t.Run("rejects invalid sort field without searching", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				t.Fatal("search must not be called")
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.SearchCmd{Query: "rust", SortBy: context7.SortField("popularity")}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, context7.EINVALID, context7.ErrorCode(err))
		assert.Contains(t, err.Error(), "Invalid sort field 'popularity'")
	})

	t.Run("rejects negative limit without searching", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				t.Fatal("search must not be called")
				return nil, nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		limit := -1
		cmd := &main.SearchCmd{Query: "rust", SortBy: context7.SortByStars, Limit: &limit}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Equal(t, context7.EINVALID, context7.ErrorCode(err))
	})
}
