package main

import (
	"fmt"

	"github.com/fwojciec/context7"
)

// Run executes the lucky command: the docs of the most starred match.
func (c *LuckyCmd) Run(deps *Dependencies) error {
	results, err := deps.Libraries.Search(deps.Ctx, c.Query)
	if err != nil {
		return err
	}

	if err := context7.ValidateNonEmpty(results, c.Query); err != nil {
		return err
	}

	best := context7.SortResults(results, context7.SortByStars)[0]
	deps.logger().Debug("lucky pick", "query", c.Query, "id", best.ID, "candidates", len(results))

	docs, err := deps.Libraries.GetDocs(deps.Ctx, best.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, docs)
	return nil
}
