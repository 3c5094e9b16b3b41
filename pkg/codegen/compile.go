package codegen

import (
	"context"
	"errors"

	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/model"
	"github.com/voxlab/blockforge/pkg/utils/logging"
)

// Result is the generated expression of one root block
type Result struct {
	Block *model.Block
	Code  string
}

// Compiler turns a visual program into filter expressions, one per root
// block, generating child code bottom-up.
type Compiler struct {
	registry *Registry
}

// NewCompiler creates a compiler over the given generator registry
func NewCompiler(registry *Registry) *Compiler {
	return &Compiler{registry: registry}
}

// Compile generates the expression of every root block. Per-block failures
// degrade to empty code with a warning; the pass always runs to completion.
func (c *Compiler) Compile(ctx context.Context, g *blocks.Graph) []Result {
	roots := g.Roots()
	results := make([]Result, 0, len(roots))
	for _, b := range roots {
		results = append(results, Result{
			Block: b,
			Code:  c.compileBlock(ctx, g, b, make(map[string]bool)),
		})
	}
	return results
}

func (c *Compiler) compileBlock(ctx context.Context, g *blocks.Graph, b *model.Block, visiting map[string]bool) string {
	logger := logging.From(ctx)

	if visiting[b.ID] {
		logger.Warn("cycle detected in block graph", "block", b.ID)
		return ""
	}
	visiting[b.ID] = true
	defer delete(visiting, b.ID)

	inputs := make(map[string]Input, len(b.Inputs))
	for name, childID := range b.Inputs {
		child, ok := g.Block(childID)
		if !ok {
			logger.Warn("input references unknown block", "block", b.ID, "input", name)
			continue
		}
		inputs[name] = Input{
			Block: child,
			Code:  c.compileBlock(ctx, g, child, visiting),
		}
	}

	code, err := c.registry.Generate(ctx, b, inputs)
	if err != nil {
		if errors.Is(err, ErrGeneratorNotFound) {
			logger.Warn("no generator for block type", "block", b.ID, "type", b.Type)
		} else {
			logger.Warn("failed to generate code", "block", b.ID, "error", err)
		}
		return ""
	}
	return code
}
