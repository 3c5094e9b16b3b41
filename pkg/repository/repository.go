package repository

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
)

var ErrProgramNotFound = goerr.New("program not found")

// Repository defines the interface for program persistence
type Repository interface {
	// PutProgram saves a program, overwriting any previous version
	PutProgram(ctx context.Context, p *model.Program) error

	// GetProgram retrieves a program by ID
	GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error)

	// ListPrograms retrieves programs ordered by creation time, newest
	// first. A limit of zero or less means no limit.
	ListPrograms(ctx context.Context, offset, limit int) ([]*model.Program, error)
}
