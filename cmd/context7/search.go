package main

import (
	"fmt"

	"github.com/fwojciec/context7"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	if err := c.SortBy.Validate(); err != nil {
		return err
	}
	if c.Limit != nil && *c.Limit < 0 {
		return context7.Errorf(context7.EINVALID, "limit must not be negative, got %d", *c.Limit)
	}

	results, err := deps.Libraries.Search(deps.Ctx, c.Query)
	if err != nil {
		return err
	}

	results = context7.SortResults(results, c.SortBy)
	if c.Limit != nil {
		results = context7.LimitResults(results, *c.Limit)
	}

	out, err := context7.FormatResults(results, c.IDOnly)
	if err != nil {
		return err
	}

	// An empty ID list prints nothing rather than a blank line.
	if out != "" {
		fmt.Fprintln(deps.Stdout, out)
	}
	return nil
}
