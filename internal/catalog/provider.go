// Package catalog supplies PlanCatalog values to the resolver. Providers own
// type-level validation of the raw catalog; enum coercion stays in the
// billing normalizer so that unknown strings degrade instead of failing.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"

	"paystate/internal/types"
)

// Provider supplies the plan catalog consumed by the resolver. A nil catalog
// with a nil error is a valid response meaning "no catalog configured".
type Provider interface {
	Catalog(ctx context.Context) (*types.PlanCatalog, error)
}

// validate is shared by all providers; validator instances cache struct
// metadata and are safe for concurrent use.
var validate = validator.New(validator.WithRequiredStructEnabled())

// checkCatalog enforces the structural contract a raw catalog must meet
// before it reaches the resolver: every entry needs a plan id.
func checkCatalog(catalog *types.PlanCatalog) error {
	if catalog == nil {
		return nil
	}
	if err := validate.Struct(catalog); err != nil {
		return types.NewAppError(types.ErrCodeValidationCatalog, "catalog failed structural validation", err)
	}
	return nil
}

// StaticProvider serves a fixed in-memory catalog. It is the standard
// provider for embedded callers and tests.
type StaticProvider struct {
	catalog *types.PlanCatalog
}

// NewStaticProvider validates and wraps the given catalog.
func NewStaticProvider(catalog *types.PlanCatalog) (*StaticProvider, error) {
	if err := checkCatalog(catalog); err != nil {
		return nil, err
	}
	return &StaticProvider{catalog: catalog}, nil
}

// Catalog returns the wrapped catalog.
func (p *StaticProvider) Catalog(_ context.Context) (*types.PlanCatalog, error) {
	return p.catalog, nil
}

// FileProvider serves a catalog parsed from a JSON file. The file is read
// and validated once at construction (fail fast, matching how configuration
// is loaded); Catalog then returns the cached value.
type FileProvider struct {
	catalog *types.PlanCatalog
}

// NewFileProvider reads, parses, and validates the catalog file at path.
func NewFileProvider(path string) (*FileProvider, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.NewAppError(
			types.ErrCodeNotFoundCatalog,
			fmt.Sprintf("reading catalog file %s", path),
			err,
		)
	}

	var catalog types.PlanCatalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, types.NewAppError(types.ErrCodeValidationCatalog, "parsing catalog file", err)
	}
	if err := checkCatalog(&catalog); err != nil {
		return nil, err
	}

	return &FileProvider{catalog: &catalog}, nil
}

// Catalog returns the cached catalog.
func (p *FileProvider) Catalog(_ context.Context) (*types.PlanCatalog, error) {
	return p.catalog, nil
}

// Compile-time interface assertions.
var (
	_ Provider = (*StaticProvider)(nil)
	_ Provider = (*FileProvider)(nil)
)
