package main

import (
	"context"
	"fmt"
	"os"

	"github.com/schemalens/schemalens/pkg/schemalenssdk"
)

const schemaDoc = `{
	"type": "object",
	"title": "Task",
	"properties": {
		"title": {"type": "string", "minLength": 3},
		"priority": {"type": "integer", "minimum": 1, "default": 3}
	},
	"required": ["title", "priority"]
}`

func main() {
	cfg := schemalenssdk.DefaultConfig()
	if registry := os.Getenv("SCHEMALENS_REGISTRY"); registry != "" {
		cfg.RegistryPath = registry
	}

	client, err := schemalenssdk.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	ctx := context.Background()
	schema, err := client.CompileSchema(ctx, []byte(schemaDoc))
	if err != nil {
		fmt.Fprintf(os.Stderr, "compile: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("compiled schema id=%s draft=%s\n", schema.ID(), schema.Draft())

	diagnostics, err := client.ValidateVerbose(ctx, schema, []byte(`{"title": "ab"}`))
	if err != nil {
		fmt.Fprintf(os.Stderr, "validate: %v\n", err)
		os.Exit(1)
	}

	for _, diagnostic := range diagnostics {
		fmt.Printf("failure keyword=%s at=%s\n", diagnostic.Keyword, diagnostic.InstancePath)
		fmt.Printf("  expected=%v actual=%v\n", diagnostic.Context["expected"], diagnostic.Context["actual"])
		for _, suggestion := range diagnostic.Suggestions {
			fmt.Printf("  hint: %s\n", suggestion)
		}
		if diagnostic.Fix != nil {
			fmt.Printf("  fix: %d patch operation(s)\n", len(diagnostic.Fix.Patch))
		}
	}
}
