package schemalenssdk

import (
	"strings"

	"github.com/schemalens/schemalens/internal/domain"
)

type Draft string

const (
	DraftAuto Draft = "auto"
	Draft4    Draft = "draft4"
	Draft6    Draft = "draft6"
	Draft7    Draft = "draft7"
	Draft2019 Draft = "draft2019-09"
	Draft2020 Draft = "draft2020-12"
)

// Config defines the SDK behavior for direct core access.
type Config struct {
	// RegistryPath locates the SQLite schema registry. Empty disables the
	// registry; registry accessors then return ErrRegistryNotOpen.
	RegistryPath string
	// Draft pins the schema revision for every compile. DraftAuto detects
	// from the $schema property.
	Draft Draft
	// FixPreviews enables best-effort fix generation on ValidateVerbose.
	FixPreviews bool
}

// DefaultConfig returns a config with draft auto-detection and fix previews
// enabled, without a registry.
func DefaultConfig() Config {
	return Config{Draft: DraftAuto, FixPreviews: true}
}

func normalizeConfig(cfg Config) (Config, error) {
	if cfg.Draft == "" {
		cfg.Draft = DraftAuto
	}
	if _, err := toDomainDraft(cfg.Draft); err != nil {
		return cfg, err
	}
	cfg.RegistryPath = strings.TrimSpace(cfg.RegistryPath)
	return cfg, nil
}

func toDomainDraft(draft Draft) (domain.Draft, error) {
	parsed, err := domain.ParseDraft(string(draft))
	if err != nil {
		return domain.DraftAuto, ErrInvalidDraft
	}
	return parsed, nil
}
