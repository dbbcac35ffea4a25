package schemalenssdk

import (
	"sync"

	enrichapp "github.com/schemalens/schemalens/internal/app/enrich"
	registryapp "github.com/schemalens/schemalens/internal/app/registry"
	validateapp "github.com/schemalens/schemalens/internal/app/validate"
	"github.com/schemalens/schemalens/internal/infra/ident"
	"github.com/schemalens/schemalens/internal/infra/jsoncodec"
	"github.com/schemalens/schemalens/internal/infra/jsonengine"
	"github.com/schemalens/schemalens/internal/infra/jsonpatch"
	"github.com/schemalens/schemalens/internal/infra/sqlitestore"
	"github.com/schemalens/schemalens/internal/platform"
)

// Client provides direct access to SchemaLens core services.
type Client struct {
	cfg     Config
	compile *validateapp.CompileService
	service *validateapp.Service

	mu       sync.Mutex
	store    *sqlitestore.Store
	registry *registryapp.Service
}

// Schema is an opaque handle to a compiled schema. Handles are safe for
// concurrent validation.
type Schema struct {
	compiled *validateapp.CompiledSchema
}

// ID returns the unique identifier minted at compile time.
func (s *Schema) ID() string {
	return s.compiled.ID
}

// Draft returns the revision the schema was compiled under.
func (s *Schema) Draft() Draft {
	return Draft(s.compiled.Draft)
}

// New creates a client without opening the registry.
func New(cfg Config) (*Client, error) {
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	var fixer validateapp.Fixer
	if normalized.FixPreviews {
		fixer = enrichapp.NewFixService(jsoncodec.Codec{}, jsonpatch.Patcher{})
	}

	return &Client{
		cfg:     normalized,
		compile: validateapp.NewCompileService(jsonengine.Engine{}, jsoncodec.Codec{}, ident.NewULIDGenerator()),
		service: validateapp.NewService(jsoncodec.Codec{}, enrichapp.NewEnricher(), fixer),
	}, nil
}

// Open creates a client and opens the registry when one is configured.
func Open(cfg Config) (*Client, error) {
	client, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if client.cfg.RegistryPath != "" {
		if err := client.OpenRegistry(); err != nil {
			return nil, err
		}
	}
	return client, nil
}

// OpenRegistry opens the SQLite registry at the configured path.
func (c *Client) OpenRegistry() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registry != nil {
		return nil
	}
	if c.cfg.RegistryPath == "" {
		return ErrRegistryNotOpen
	}

	store, err := sqlitestore.Open(c.cfg.RegistryPath)
	if err != nil {
		return err
	}
	c.store = store
	c.registry = registryapp.NewService(store, c.compile, ident.NewULIDGenerator(), platform.RealClock{})
	return nil
}

// Close releases the registry database, if open.
func (c *Client) Close() error {
	c.mu.Lock()
	store := c.store
	c.store = nil
	c.registry = nil
	c.mu.Unlock()

	if store != nil {
		return store.Close()
	}
	return nil
}

func (c *Client) requireRegistry() (*registryapp.Service, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.registry == nil {
		return nil, ErrRegistryNotOpen
	}
	return c.registry, nil
}
