package context7_test

import (
	"testing"

	"github.com/fwojciec/context7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateNonEmpty(t *testing.T) {
	t.Parallel()

	t.Run("accepts non-empty results", func(t *testing.T) {
		t.Parallel()

		results := []context7.SearchResult{{ID: "/test/lib1"}, {ID: "/test/lib2"}}

		assert.NoError(t, context7.ValidateNonEmpty(results, "test"))
	})

	t.Run("rejects empty results naming the query", func(t *testing.T) {
		t.Parallel()

		err := context7.ValidateNonEmpty([]context7.SearchResult{}, "left-pad")

		require.Error(t, err)
		assert.Equal(t, context7.ENOTFOUND, context7.ErrorCode(err))
		assert.Contains(t, err.Error(), "No results found")
		assert.Contains(t, err.Error(), "left-pad")
	})

	t.Run("rejects nil results", func(t *testing.T) {
		t.Parallel()

		err := context7.ValidateNonEmpty(nil, "my special search")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "my special search")
	})
}
