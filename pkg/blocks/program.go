package blocks

import (
	"encoding/json"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
)

// Graph indexes a program's blocks and answers the queries the compiler
// needs: block by ID, block connected to an input slot, and the root blocks
// of the program. It only reads the program, never mutates it.
type Graph struct {
	program *model.Program
	index   map[string]*model.Block
	wired   map[string]bool
}

// NewGraph builds a graph over the program. Duplicate block IDs and inputs
// referencing unknown blocks are load errors, not codegen degradations.
func NewGraph(p *model.Program) (*Graph, error) {
	g := &Graph{
		program: p,
		index:   make(map[string]*model.Block, len(p.Blocks)),
		wired:   make(map[string]bool),
	}

	for _, b := range p.Blocks {
		if _, ok := g.index[b.ID]; ok {
			return nil, goerr.New("duplicate block ID", goerr.V("id", b.ID))
		}
		g.index[b.ID] = b
	}

	for _, b := range p.Blocks {
		for input, childID := range b.Inputs {
			if _, ok := g.index[childID]; !ok {
				return nil, goerr.New("input references unknown block",
					goerr.V("block", b.ID), goerr.V("input", input), goerr.V("child", childID))
			}
			g.wired[childID] = true
		}
	}

	return g, nil
}

// Program returns the underlying program
func (g *Graph) Program() *model.Program {
	return g.program
}

// Block returns the block with the given ID
func (g *Graph) Block(id string) (*model.Block, bool) {
	b, ok := g.index[id]
	return b, ok
}

// Connected returns the block plugged into the named input slot of b
func (g *Graph) Connected(b *model.Block, input string) (*model.Block, bool) {
	if b.Inputs == nil {
		return nil, false
	}
	childID, ok := b.Inputs[input]
	if !ok {
		return nil, false
	}
	return g.Block(childID)
}

// Roots returns the blocks not connected to any input, in program order
func (g *Graph) Roots() []*model.Block {
	var roots []*model.Block
	for _, b := range g.program.Blocks {
		if !g.wired[b.ID] {
			roots = append(roots, b)
		}
	}
	return roots
}

// LoadProgram reads a saved program file, validates it against the program
// schema and decodes it.
func LoadProgram(path string) (*model.Program, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read program file", goerr.V("path", path))
	}

	if err := ValidateProgram(data); err != nil {
		return nil, err
	}

	var p model.Program
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode program file", goerr.V("path", path))
	}

	return &p, nil
}
