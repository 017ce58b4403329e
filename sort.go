package context7

import (
	"cmp"
	"slices"
	"strings"
)

// SortField identifies the result attribute used for ordering.
// Results are always ordered by it in descending order.
type SortField string

// SortField constants. The values match the API's field names.
const (
	SortByStars         SortField = "stars"
	SortByTotalPages    SortField = "totalPages"
	SortByTotalSnippets SortField = "totalSnippets"
	SortByTotalTokens   SortField = "totalTokens"
	SortByTrustScore    SortField = "trustScore"
)

// SortFields returns all recognized sort fields in display order.
func SortFields() []SortField {
	return []SortField{
		SortByStars,
		SortByTotalPages,
		SortByTotalSnippets,
		SortByTotalTokens,
		SortByTrustScore,
	}
}

// ParseSortField returns the SortField for s.
// Returns EINVALID listing the valid options if s is not recognized.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if err := f.Validate(); err != nil {
		return "", err
	}
	return f, nil
}

// Validate returns an error if f is not a recognized sort field.
func (f SortField) Validate() error {
	if slices.Contains(SortFields(), f) {
		return nil
	}
	names := make([]string, 0, len(SortFields()))
	for _, v := range SortFields() {
		names = append(names, string(v))
	}
	return Errorf(EINVALID, "Invalid sort field '%s'. Valid options are: %s", string(f), strings.Join(names, ", "))
}

// String returns the field's API name.
func (f SortField) String() string {
	return string(f)
}

// UnmarshalText implements encoding.TextUnmarshaler so flag parsers reject
// unknown fields before any request is made.
func (f *SortField) UnmarshalText(text []byte) error {
	v, err := ParseSortField(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

// SortResults returns a copy of results ordered by field, highest first.
// Absent values count as zero. The sort is stable, so results with equal
// values (including absent ones) keep their input order. Trust scores that
// cannot be compared (NaN) are treated as equal.
func SortResults(results []SearchResult, field SortField) []SearchResult {
	sorted := slices.Clone(results)
	if sorted == nil {
		sorted = []SearchResult{}
	}

	slices.SortStableFunc(sorted, func(a, b SearchResult) int {
		if field == SortByTrustScore {
			return compareFloatDesc(derefFloat(a.TrustScore), derefFloat(b.TrustScore))
		}
		return cmp.Compare(intValue(b, field), intValue(a, field))
	})
	return sorted
}

// LimitResults returns a copy of the first n results.
// A non-positive n yields an empty slice.
func LimitResults(results []SearchResult, n int) []SearchResult {
	if n <= 0 {
		return []SearchResult{}
	}
	if n > len(results) {
		n = len(results)
	}
	return slices.Clone(results[:n])
}

func intValue(r SearchResult, field SortField) int64 {
	switch field {
	case SortByStars:
		return derefInt(r.Stars)
	case SortByTotalPages:
		return derefInt(r.TotalPages)
	case SortByTotalSnippets:
		return derefInt(r.TotalSnippets)
	case SortByTotalTokens:
		return derefInt(r.TotalTokens)
	}
	return 0
}

// compareFloatDesc orders a before b when a is larger.
// Unordered pairs compare as equal.
func compareFloatDesc(a, b float64) int {
	switch {
	case a > b:
		return -1
	case a < b:
		return 1
	}
	return 0
}

func derefInt(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

func derefFloat(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
