// Package jsonschema describes context7 output formats as JSON Schema.
package jsonschema

import (
	"github.com/bytedance/sonic"
	"github.com/fwojciec/context7"
	"github.com/invopop/jsonschema"
)

// SearchResultsSchema returns the schema of `search` JSON output: an array
// of search results.
func SearchResultsSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		ExpandedStruct:             true,
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}

	item := r.Reflect(&context7.SearchResult{})
	item.Version = ""

	// Search output prints absent fields as null, so every optional
	// property also admits null.
	required := make(map[string]bool, len(item.Required))
	for _, name := range item.Required {
		required[name] = true
	}
	for pair := item.Properties.Oldest(); pair != nil; pair = pair.Next() {
		if required[pair.Key] {
			continue
		}
		item.Properties.Set(pair.Key, nullable(pair.Value))
	}

	return &jsonschema.Schema{
		Version:     jsonschema.Version,
		Title:       "Context7 search results",
		Description: "Libraries ordered by the chosen sort field, highest first. Absent fields are null.",
		Type:        "array",
		Items:       item,
	}
}

func nullable(s *jsonschema.Schema) *jsonschema.Schema {
	return &jsonschema.Schema{
		AnyOf: []*jsonschema.Schema{s, {Type: "null"}},
	}
}

// MarshalSearchResultsSchema returns the schema as indented JSON.
func MarshalSearchResultsSchema() (string, error) {
	b, err := sonic.ConfigStd.MarshalIndent(SearchResultsSchema(), "", "  ")
	if err != nil {
		return "", err
	}
	return string(b), nil
}
