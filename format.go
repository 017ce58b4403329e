package context7

import (
	"strings"

	"github.com/bytedance/sonic"
)

// FormatResults renders results for output.
// With idOnly, it returns one ID per line without a trailing newline.
// Otherwise it returns an indented JSON array with absent fields as null.
// An empty input formats as "" or "[]" respectively.
func FormatResults(results []SearchResult, idOnly bool) (string, error) {
	if idOnly {
		return FormatIDs(results), nil
	}
	return FormatJSON(results)
}

// FormatIDs returns the result IDs joined by newlines.
func FormatIDs(results []SearchResult) string {
	ids := make([]string, 0, len(results))
	for _, r := range results {
		ids = append(ids, r.ID)
	}
	return strings.Join(ids, "\n")
}

// FormatJSON returns results as a JSON array indented by two spaces.
func FormatJSON(results []SearchResult) (string, error) {
	if len(results) == 0 {
		return "[]", nil
	}
	b, err := sonic.ConfigStd.MarshalIndent(results, "", "  ")
	if err != nil {
		return "", Errorf(EINTERNAL, "format results: %s", err)
	}
	return string(b), nil
}
