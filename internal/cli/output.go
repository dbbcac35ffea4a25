package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	registryapp "github.com/schemalens/schemalens/internal/app/registry"
	validateapp "github.com/schemalens/schemalens/internal/app/validate"
	"github.com/schemalens/schemalens/internal/domain"
	"github.com/spf13/cobra"
)

type checkOutput struct {
	ID    string `json:"id"`
	Draft string `json:"draft"`
}

type draftOutput struct {
	Draft string `json:"draft"`
}

type validOutput struct {
	Valid bool `json:"valid"`
}

type failureReportOutput struct {
	Valid    bool                `json:"valid"`
	Failures []domain.RawFailure `json:"failures"`
}

type enrichedReportOutput struct {
	Valid    bool                     `json:"valid"`
	Failures []domain.EnrichedFailure `json:"failures"`
}

type schemaRecordOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Draft     string `json:"draft"`
	CreatedAt string `json:"created_at"`
}

type schemaListOutput struct {
	Schemas []schemaRecordOutput `json:"schemas"`
}

type removedOutput struct {
	Removed string `json:"removed"`
}

func writeCheckResult(cmd *cobra.Command, compiled *validateapp.CompiledSchema, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, checkOutput{ID: compiled.ID, Draft: string(compiled.Draft)})
	}

	ui := newRenderer(out, asJSON)
	if err := writeKV(out, ui, "Schema", compiled.ID); err != nil {
		return err
	}
	return writeKV(out, ui, "Draft", string(compiled.Draft))
}

func writeDraftResult(cmd *cobra.Command, draft domain.Draft, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, draftOutput{Draft: string(draft)})
	}
	_, err := fmt.Fprintln(out, string(draft))
	return err
}

func writeValidResult(cmd *cobra.Command, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, validOutput{Valid: true})
	}
	ui := newRenderer(out, asJSON)
	_, err := fmt.Fprintf(out, "%s: instance conforms to schema\n", ui.ok("OK"))
	return err
}

func writeFailureReport(cmd *cobra.Command, failures []domain.RawFailure, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, failureReportOutput{Valid: false, Failures: failures})
	}

	ui := newRenderer(out, asJSON)
	for _, failure := range failures {
		path := failure.InstancePath
		if path == "" {
			path = "/"
		}
		if _, err := fmt.Fprintf(out, "%s %s %s\n", ui.err("FAIL"), ui.accent(path), failure.Message); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, "  %s %s\n", ui.dim("schema:"), failure.SchemaPath); err != nil {
			return err
		}
	}
	return nil
}

func writeEnrichedReport(cmd *cobra.Command, failures []domain.EnrichedFailure, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, enrichedReportOutput{Valid: false, Failures: failures})
	}

	ui := newRenderer(out, asJSON)
	for i, failure := range failures {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		if err := writeEnrichedFailure(out, ui, failure); err != nil {
			return err
		}
	}
	return nil
}

func writeEnrichedFailure(out io.Writer, ui renderer, failure domain.EnrichedFailure) error {
	path := failure.InstancePath
	if path == "" {
		path = "/"
	}
	if _, err := fmt.Fprintf(out, "%s %s %s\n", ui.err("FAIL"), ui.warn(failure.Keyword), ui.accent(path)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(out, "  %s\n", failure.Message); err != nil {
		return err
	}
	if expected, ok := failure.Context["expected"]; ok {
		if err := writeKV(out, ui, "  Expected", fmt.Sprintf("%v", expected)); err != nil {
			return err
		}
	}
	if actual, ok := failure.Context["actual"]; ok {
		if err := writeKV(out, ui, "  Actual", fmt.Sprintf("%v", actual)); err != nil {
			return err
		}
	}
	for _, suggestion := range failure.Suggestions {
		if _, err := fmt.Fprintf(out, "  %s %s\n", ui.dim("hint:"), suggestion); err != nil {
			return err
		}
	}
	if failure.Fix != nil {
		if _, err := fmt.Fprintf(out, "  %s %d patch operation(s) available\n", ui.dim("fix:"), len(failure.Fix.Patch)); err != nil {
			return err
		}
	}
	return nil
}

func writeSchemaRecord(cmd *cobra.Command, record registryapp.Record, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, schemaRecordView(record))
	}

	ui := newRenderer(out, asJSON)
	if err := writeKV(out, ui, "Name", record.Name); err != nil {
		return err
	}
	if err := writeKV(out, ui, "ID", record.ID); err != nil {
		return err
	}
	return writeKV(out, ui, "Draft", string(record.Draft))
}

func writeSchemaList(cmd *cobra.Command, records []registryapp.Record, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		payload := schemaListOutput{Schemas: make([]schemaRecordOutput, 0, len(records))}
		for _, record := range records {
			payload.Schemas = append(payload.Schemas, schemaRecordView(record))
		}
		return writeJSON(out, payload)
	}

	ui := newRenderer(out, asJSON)
	for _, record := range records {
		if _, err := fmt.Fprintf(out, "%s %s %s\n", ui.key(record.Name), record.Draft, ui.dim(record.ID)); err != nil {
			return err
		}
	}
	return nil
}

func writeRemovedResult(cmd *cobra.Command, name string, asJSON bool) error {
	out := cmd.OutOrStdout()
	if asJSON {
		return writeJSON(out, removedOutput{Removed: name})
	}
	ui := newRenderer(out, asJSON)
	_, err := fmt.Fprintf(out, "%s: removed %s\n", ui.ok("OK"), name)
	return err
}

func schemaRecordView(record registryapp.Record) schemaRecordOutput {
	return schemaRecordOutput{
		ID:        record.ID,
		Name:      record.Name,
		Draft:     string(record.Draft),
		CreatedAt: time.Unix(0, record.CreatedAt).UTC().Format(time.RFC3339),
	}
}

func writeJSON(out io.Writer, payload any) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func writeKV(out io.Writer, ui renderer, key, value string) error {
	_, err := fmt.Fprintf(out, "%s: %s\n", ui.key(key), value)
	return err
}
