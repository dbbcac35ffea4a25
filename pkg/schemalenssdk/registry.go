package schemalenssdk

import (
	"context"
	"errors"
	"time"

	registryapp "github.com/schemalens/schemalens/internal/app/registry"
)

// SchemaRecord is a named schema held by the registry.
type SchemaRecord struct {
	ID        string
	Name      string
	Draft     Draft
	Document  []byte
	CreatedAt time.Time
}

// AddSchema compiles a schema document and stores it under a name. Adding an
// existing name replaces the stored document.
func (c *Client) AddSchema(ctx context.Context, name string, document []byte) (SchemaRecord, error) {
	registry, err := c.requireRegistry()
	if err != nil {
		return SchemaRecord{}, err
	}
	draft, err := toDomainDraft(c.cfg.Draft)
	if err != nil {
		return SchemaRecord{}, err
	}
	record, err := registry.Add(ctx, name, document, draft)
	if err != nil {
		return SchemaRecord{}, mapCoreErr(mapRegistryErr(err))
	}
	return toSchemaRecord(record), nil
}

// GetSchema loads a named schema from the registry.
func (c *Client) GetSchema(ctx context.Context, name string) (SchemaRecord, error) {
	registry, err := c.requireRegistry()
	if err != nil {
		return SchemaRecord{}, err
	}
	record, err := registry.Get(ctx, name)
	if err != nil {
		return SchemaRecord{}, mapRegistryErr(err)
	}
	return toSchemaRecord(record), nil
}

// ListSchemas returns all registered schemas ordered by name.
func (c *Client) ListSchemas(ctx context.Context) ([]SchemaRecord, error) {
	registry, err := c.requireRegistry()
	if err != nil {
		return nil, err
	}
	records, err := registry.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]SchemaRecord, 0, len(records))
	for _, record := range records {
		out = append(out, toSchemaRecord(record))
	}
	return out, nil
}

// RemoveSchema deletes a named schema from the registry.
func (c *Client) RemoveSchema(ctx context.Context, name string) error {
	registry, err := c.requireRegistry()
	if err != nil {
		return err
	}
	return mapRegistryErr(registry.Remove(ctx, name))
}

// CompileNamed loads a registered schema and compiles it under the draft it
// was stored with.
func (c *Client) CompileNamed(ctx context.Context, name string) (*Schema, error) {
	registry, err := c.requireRegistry()
	if err != nil {
		return nil, err
	}
	record, err := registry.Get(ctx, name)
	if err != nil {
		return nil, mapRegistryErr(err)
	}
	compiled, err := c.compile.Compile(ctx, record.Document, record.Draft)
	if err != nil {
		return nil, mapCoreErr(err)
	}
	return &Schema{compiled: compiled}, nil
}

func toSchemaRecord(record registryapp.Record) SchemaRecord {
	return SchemaRecord{
		ID:        record.ID,
		Name:      record.Name,
		Draft:     Draft(record.Draft),
		Document:  record.Document,
		CreatedAt: time.Unix(0, record.CreatedAt).UTC(),
	}
}

func mapRegistryErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, registryapp.ErrSchemaNotFound) {
		return ErrSchemaNotFound
	}
	return err
}
