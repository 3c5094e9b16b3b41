package codegen

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
)

var ErrGeneratorNotFound = goerr.New("generator not found")

// Input is the compiled state of one connected child block: the block
// itself (for its declared output types) and its generated code.
type Input struct {
	Block *model.Block
	Code  string
}

// Generator produces the textual expression for one block type
type Generator interface {
	// Type returns the block type name the generator is registered under
	Type() string

	// Generate emits the expression for b. Inputs maps the block's input
	// slot names to the already-generated state of the connected children.
	// Failures degrade to an empty result with a logged warning; they never
	// abort the compile pass.
	Generate(ctx context.Context, b *model.Block, inputs map[string]Input) string
}

// Registry holds code generators keyed by block type name
type Registry struct {
	generators map[string]Generator
}

// NewRegistry creates a registry with the given generators
func NewRegistry(gens ...Generator) *Registry {
	r := &Registry{
		generators: make(map[string]Generator, len(gens)),
	}
	for _, g := range gens {
		r.generators[g.Type()] = g
	}
	return r
}

// DefaultRegistry returns a registry with every built-in generator: the
// value accessor plus the literal value blocks it reads descriptors from.
func DefaultRegistry() *Registry {
	return NewRegistry(append(ValueGenerators(), NewAccessor())...)
}

// Generate dispatches to the generator registered for b's type
func (r *Registry) Generate(ctx context.Context, b *model.Block, inputs map[string]Input) (string, error) {
	gen, ok := r.generators[b.Type]
	if !ok {
		return "", goerr.Wrap(ErrGeneratorNotFound, "no generator for block type",
			goerr.V("type", b.Type), goerr.V("block", b.ID))
	}
	return gen.Generate(ctx, b, inputs), nil
}
