package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
)

// Memory is an in-memory Repository for tests and local workflows
type Memory struct {
	mu       sync.RWMutex
	programs map[model.ProgramID]*model.Program
}

// NewMemory creates an empty in-memory repository
func NewMemory() *Memory {
	return &Memory{
		programs: make(map[model.ProgramID]*model.Program),
	}
}

func (r *Memory) PutProgram(_ context.Context, p *model.Program) error {
	if p.ID == "" {
		return goerr.New("program ID is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.programs[p.ID] = p
	return nil
}

func (r *Memory) GetProgram(_ context.Context, id model.ProgramID) (*model.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.programs[id]
	if !ok {
		return nil, goerr.Wrap(ErrProgramNotFound, "no such program", goerr.V("id", id))
	}
	cp := *p
	return &cp, nil
}

func (r *Memory) ListPrograms(_ context.Context, offset, limit int) ([]*model.Program, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Negative paging arguments are clamped rather than rejected so that a
	// bad page request degrades to an empty or unbounded listing.
	if offset < 0 {
		offset = 0
	}
	if limit < 0 {
		limit = 0
	}

	all := make([]*model.Program, 0, len(r.programs))
	for _, p := range r.programs {
		cp := *p
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	if offset >= len(all) {
		return nil, nil
	}
	end := offset + limit
	if limit == 0 || end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}
