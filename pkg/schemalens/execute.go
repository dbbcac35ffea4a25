package schemalens

import "github.com/schemalens/schemalens/internal/cli"

// Execute runs the SchemaLens CLI entrypoint.
func Execute() int {
	return cli.Execute()
}
