package main

import (
	"fmt"

	"github.com/fwojciec/context7/jsonschema"
)

// Run executes the schema command.
func (c *SchemaCmd) Run(deps *Dependencies) error {
	out, err := jsonschema.MarshalSearchResultsSchema()
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, out)
	return nil
}
