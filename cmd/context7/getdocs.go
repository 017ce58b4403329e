package main

import "fmt"

// Run executes the get-docs command.
func (c *GetDocsCmd) Run(deps *Dependencies) error {
	docs, err := deps.Libraries.GetDocs(deps.Ctx, c.ID)
	if err != nil {
		return err
	}

	fmt.Fprintln(deps.Stdout, docs)
	return nil
}
