package registry

import (
	"context"
	"strings"

	"github.com/schemalens/schemalens/internal/domain"
)

// Service manages named schemas. A document must compile before it is
// stored, so anything loaded from the registry is known-good.
type Service struct {
	store    Store
	compiler Compiler
	idGen    IDGenerator
	clock    Clock
}

func NewService(store Store, compiler Compiler, idGen IDGenerator, clock Clock) *Service {
	return &Service{store: store, compiler: compiler, idGen: idGen, clock: clock}
}

func (s *Service) Add(ctx context.Context, name string, document []byte, draft domain.Draft) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrNameRequired
	}
	if !domain.IsValidSchemaName(name) {
		return Record{}, ErrInvalidName
	}
	if len(document) == 0 {
		return Record{}, ErrDocumentRequired
	}

	resolved, err := s.compiler.Check(ctx, document, draft)
	if err != nil {
		return Record{}, err
	}

	id, err := s.idGen.NewID()
	if err != nil {
		return Record{}, err
	}

	record := Record{
		ID:        id,
		Name:      name,
		Draft:     resolved,
		Document:  document,
		CreatedAt: s.clock.Now().UnixNano(),
	}
	if err := s.store.SaveSchema(ctx, record); err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *Service) Get(ctx context.Context, name string) (Record, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Record{}, ErrNameRequired
	}
	return s.store.LoadSchema(ctx, name)
}

func (s *Service) List(ctx context.Context) ([]Record, error) {
	return s.store.ListSchemas(ctx)
}

func (s *Service) Remove(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	return s.store.DeleteSchema(ctx, name)
}
