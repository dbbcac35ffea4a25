package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	enrichapp "github.com/schemalens/schemalens/internal/app/enrich"
	registryapp "github.com/schemalens/schemalens/internal/app/registry"
	validateapp "github.com/schemalens/schemalens/internal/app/validate"
	"github.com/schemalens/schemalens/internal/domain"
	"github.com/schemalens/schemalens/internal/infra/filesystem"
	"github.com/schemalens/schemalens/internal/infra/ident"
	"github.com/schemalens/schemalens/internal/infra/jsoncodec"
	"github.com/schemalens/schemalens/internal/infra/jsonengine"
	"github.com/schemalens/schemalens/internal/infra/jsonpatch"
	"github.com/schemalens/schemalens/internal/infra/sqlitestore"
	"github.com/schemalens/schemalens/internal/infra/yamlcodec"
	"github.com/schemalens/schemalens/internal/platform"
	"github.com/spf13/cobra"
)

func newCheckCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <schema-file>",
		Short: "Compile a schema document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := domain.ParseDraft(opts.Draft)
			if err != nil {
				return err
			}
			document, err := readDocument(cmd.Context(), args[0], opts.YAML)
			if err != nil {
				return err
			}
			compiled, err := newCompileService().Compile(cmd.Context(), document, draft)
			if err != nil {
				return err
			}
			return writeCheckResult(cmd, compiled, opts.JSONOutput)
		},
	}
}

func newDraftCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "draft <schema-file>",
		Short: "Detect the draft a schema declares",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			document, err := readDocument(cmd.Context(), args[0], opts.YAML)
			if err != nil {
				return err
			}
			value, err := jsoncodec.Codec{}.Decode(document)
			if err != nil {
				return err
			}
			return writeDraftResult(cmd, domain.DetectDraft(value), opts.JSONOutput)
		},
	}
}

func newValidateCmd(opts *RootOptions) *cobra.Command {
	var schemaPath string
	var schemaRef string
	var detailed bool
	var verbose bool
	var fixPreview bool
	cmd := &cobra.Command{
		Use:   "validate <instance-file>",
		Short: "Validate an instance against a schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if fixPreview {
				verbose = true
			}
			compiled, err := loadCompiledSchema(cmd.Context(), opts, schemaPath, schemaRef)
			if err != nil {
				return err
			}
			instance, err := readDocument(cmd.Context(), args[0], opts.YAML)
			if err != nil {
				return err
			}

			service := newValidateService(fixPreview)
			switch {
			case verbose:
				failures, err := service.ValidateVerbose(cmd.Context(), compiled, instance)
				if err != nil {
					return err
				}
				if len(failures) == 0 {
					return writeValidResult(cmd, opts.JSONOutput)
				}
				if err := writeEnrichedReport(cmd, failures, opts.JSONOutput); err != nil {
					return err
				}
				return failureExit(len(failures))
			case detailed:
				failures, err := service.ValidateDetailed(cmd.Context(), compiled, instance)
				if err != nil {
					return err
				}
				if len(failures) == 0 {
					return writeValidResult(cmd, opts.JSONOutput)
				}
				if err := writeFailureReport(cmd, failures, opts.JSONOutput); err != nil {
					return err
				}
				return failureExit(len(failures))
			default:
				if err := service.Validate(cmd.Context(), compiled, instance); err != nil {
					return err
				}
				return writeValidResult(cmd, opts.JSONOutput)
			}
		},
	}
	cmd.Flags().StringVar(&schemaPath, "schema", "", "Path to the schema document")
	cmd.Flags().StringVar(&schemaRef, "schema-ref", "", "Name of a registered schema")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "Report raw validation failures")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Report enriched validation failures")
	cmd.Flags().BoolVar(&fixPreview, "fix-preview", false, "Attach fix previews to enriched failures (implies --verbose)")
	return cmd
}

func newSchemaCmd(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the schema registry",
		RunE:  runHelp,
	}
	cmd.AddCommand(
		newSchemaAddCmd(opts),
		newSchemaListCmd(opts),
		newSchemaRemoveCmd(opts),
	)
	return cmd
}

func newSchemaAddCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <name> <schema-file>",
		Short: "Register a schema under a name",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			draft, err := domain.ParseDraft(opts.Draft)
			if err != nil {
				return err
			}
			document, err := readDocument(cmd.Context(), args[1], opts.YAML)
			if err != nil {
				return err
			}
			service, closeStore, err := openRegistry(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			record, err := service.Add(cmd.Context(), args[0], document, draft)
			if err != nil {
				return err
			}
			return writeSchemaRecord(cmd, record, opts.JSONOutput)
		},
	}
}

func newSchemaListCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List registered schemas",
		RunE: func(cmd *cobra.Command, _ []string) error {
			service, closeStore, err := openRegistry(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			records, err := service.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeSchemaList(cmd, records, opts.JSONOutput)
		},
	}
}

func newSchemaRemoveCmd(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <name>",
		Short: "Remove a registered schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, closeStore, err := openRegistry(opts)
			if err != nil {
				return err
			}
			defer closeStore()

			if err := service.Remove(cmd.Context(), args[0]); err != nil {
				return err
			}
			return writeRemovedResult(cmd, args[0], opts.JSONOutput)
		},
	}
}

func loadCompiledSchema(ctx context.Context, opts *RootOptions, schemaPath, schemaRef string) (*validateapp.CompiledSchema, error) {
	schemaPath = strings.TrimSpace(schemaPath)
	schemaRef = strings.TrimSpace(schemaRef)
	if schemaPath != "" && schemaRef != "" {
		return nil, ExitError{Code: ExitInvalid, Kind: KindValidation, Message: "use either --schema or --schema-ref, not both"}
	}

	draft, err := domain.ParseDraft(opts.Draft)
	if err != nil {
		return nil, err
	}

	var document []byte
	switch {
	case schemaPath != "":
		document, err = readDocument(ctx, schemaPath, opts.YAML)
		if err != nil {
			return nil, err
		}
	case schemaRef != "":
		service, closeStore, err := openRegistry(opts)
		if err != nil {
			return nil, err
		}
		record, err := service.Get(ctx, schemaRef)
		closeStore()
		if err != nil {
			return nil, err
		}
		document = record.Document
		if draft == domain.DraftAuto {
			draft = record.Draft
		}
	default:
		return nil, ExitError{Code: ExitInvalid, Kind: KindValidation, Message: "schema is required (use --schema or --schema-ref)"}
	}

	return newCompileService().Compile(ctx, document, draft)
}

func newCompileService() *validateapp.CompileService {
	return validateapp.NewCompileService(jsonengine.Engine{}, jsoncodec.Codec{}, ident.NewULIDGenerator())
}

func newValidateService(withFix bool) *validateapp.Service {
	var fixer validateapp.Fixer
	if withFix {
		fixer = enrichapp.NewFixService(jsoncodec.Codec{}, jsonpatch.Patcher{})
	}
	return validateapp.NewService(jsoncodec.Codec{}, enrichapp.NewEnricher(), fixer)
}

func openRegistry(opts *RootOptions) (*registryapp.Service, func(), error) {
	store, err := sqlitestore.Open(opts.RegistryPath)
	if err != nil {
		return nil, nil, err
	}
	service := registryapp.NewService(store, newCompileService(), ident.NewULIDGenerator(), platform.RealClock{})
	return service, func() { _ = store.Close() }, nil
}

// readDocument loads a document and converts YAML input to JSON bytes so
// the services only ever see JSON.
func readDocument(ctx context.Context, path string, yamlMode bool) ([]byte, error) {
	data, err := filesystem.DocumentSource{}.ReadDocument(ctx, path)
	if err != nil {
		return nil, err
	}
	if !yamlMode && !isYAMLPath(path) {
		return data, nil
	}

	value, err := yamlcodec.Codec{}.Decode(data)
	if err != nil {
		return nil, err
	}
	encoded, err := jsoncodec.Codec{}.Encode(value)
	if err != nil {
		return nil, fmt.Errorf("convert yaml document: %w", err)
	}
	return encoded, nil
}

func isYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func failureExit(count int) error {
	return ExitError{
		Code:    ExitValidationFailed,
		Kind:    KindValidationFailed,
		Message: fmt.Sprintf("instance has %d validation failure(s)", count),
	}
}

func runHelp(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}
