package codegen

import (
	"context"

	"github.com/voxlab/blockforge/pkg/blocks"
	"github.com/voxlab/blockforge/pkg/model"
	"github.com/voxlab/blockforge/pkg/utils/logging"
)

// valueGenerator emits the descriptor text a literal value block carries in
// its VALUE field. Location, time, mob and block object blocks all compile
// this way; the accessor consumes their output as the object descriptor.
type valueGenerator struct {
	blockType string
}

func (g *valueGenerator) Type() string {
	return g.blockType
}

func (g *valueGenerator) Generate(ctx context.Context, b *model.Block, _ map[string]Input) string {
	code := b.Field(blocks.FieldValue)
	if code == "" {
		logging.From(ctx).Warn("value block has no descriptor", "block", b.ID, "type", b.Type)
	}
	return code
}

// ValueGenerators returns the generators of every literal value block type
func ValueGenerators() []Generator {
	types := []string{
		blocks.TypeLocation,
		blocks.TypeTime,
		blocks.TypeMob,
		blocks.TypeBlockObject,
	}

	gens := make([]Generator, 0, len(types))
	for _, t := range types {
		gens = append(gens, &valueGenerator{blockType: t})
	}
	return gens
}
