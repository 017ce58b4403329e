package context7

// ValidateNonEmpty returns ENOTFOUND naming query if results is empty.
func ValidateNonEmpty(results []SearchResult, query string) error {
	if len(results) == 0 {
		return Errorf(ENOTFOUND, "No results found for query: '%s'", query)
	}
	return nil
}
