package context7

// SearchResult represents one library returned by the search endpoint.
// All fields except ID are optional because the API may omit them; a nil
// pointer means the field was absent. Absent fields encode as JSON null.
type SearchResult struct {
	ID             string   `json:"id" jsonschema:"required,description=Library identifier such as /org/project"`
	Title          *string  `json:"title"`
	Description    *string  `json:"description"`
	Branch         *string  `json:"branch"`
	State          *string  `json:"state"`
	Stars          *int64   `json:"stars"`
	LastUpdateDate *string  `json:"lastUpdateDate"`
	TotalPages     *int64   `json:"totalPages"`
	TotalSnippets  *int64   `json:"totalSnippets"`
	TotalTokens    *int64   `json:"totalTokens"`
	TrustScore     *float64 `json:"trustScore"`
	Versions       []any    `json:"versions"`
}

// SearchResponse is the body returned by the search endpoint.
// Results are in API order.
type SearchResponse struct {
	Results []SearchResult `json:"results"`
}
