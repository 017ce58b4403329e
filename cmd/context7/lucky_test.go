package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/context7"
	main "github.com/fwojciec/context7/cmd/context7"
	"github.com/fwojciec/context7/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLuckyCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("fetches docs for the most starred result", func(t *testing.T) {
		t.Parallel()

		var gotID string
		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				few, many := int64(3), int64(300)
				return []context7.SearchResult{
					{ID: "/unstarred/lib"},
					{ID: "/small/lib", Stars: &few},
					{ID: "/popular/lib", Stars: &many},
				}, nil
			},
			GetDocsFn: func(_ context.Context, id string) (string, error) {
				gotID = id
				return "# Popular docs", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		cmd := &main.LuckyCmd{Query: "popular"}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/popular/lib", gotID)
		assert.Equal(t, "# Popular docs\n", stdout.String())
	})

	t.Run("picks the first result when no stars are present", func(t *testing.T) {
		t.Parallel()

		var gotID string
		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				return []context7.SearchResult{{ID: "/first/lib"}, {ID: "/second/lib"}}, nil
			},
			GetDocsFn: func(_ context.Context, id string) (string, error) {
				gotID = id
				return "docs", nil
			},
		}

		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		err := (&main.LuckyCmd{Query: "lib"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "/first/lib", gotID)
	})

	t.Run("fails naming the query when nothing matches", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				return nil, nil
			},
			GetDocsFn: func(_ context.Context, _ string) (string, error) {
				t.Fatal("get docs must not be called")
				return "", nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		err := (&main.LuckyCmd{Query: "left-pad"}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, "No results found for query: 'left-pad'", err.Error())
		assert.Empty(t, stdout.String())
	})

	t.Run("returns docs error without output", func(t *testing.T) {
		t.Parallel()

		libraries := &mock.LibraryService{
			SearchFn: func(_ context.Context, _ string) ([]context7.SearchResult, error) {
				return []context7.SearchResult{{ID: "/a/lib"}}, nil
			},
			GetDocsFn: func(_ context.Context, _ string) (string, error) {
				return "", errors.New("HTTP 404 for https://context7.com/api/v1/a/lib")
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Libraries: libraries,
		}

		err := (&main.LuckyCmd{Query: "a"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "HTTP 404")
		assert.Empty(t, stdout.String())
	})
}
