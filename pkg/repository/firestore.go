package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/voxlab/blockforge/pkg/model"
	"google.golang.org/api/iterator"
)

const collectionPrograms = "programs"

// Firestore implements Repository using Firestore
type Firestore struct {
	client *firestore.Client
}

// New creates a Firestore repository for the given project and database
func New(ctx context.Context, projectID, databaseID string) (*Firestore, error) {
	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("project", projectID), goerr.V("database", databaseID))
	}

	return &Firestore{client: client}, nil
}

// Close releases the underlying client
func (r *Firestore) Close() error {
	return r.client.Close()
}

func (r *Firestore) PutProgram(ctx context.Context, p *model.Program) error {
	if p.ID == "" {
		return goerr.New("program ID is empty")
	}

	if _, err := r.client.Collection(collectionPrograms).Doc(string(p.ID)).Set(ctx, p); err != nil {
		return goerr.Wrap(err, "failed to put program", goerr.V("id", p.ID))
	}

	return nil
}

func (r *Firestore) GetProgram(ctx context.Context, id model.ProgramID) (*model.Program, error) {
	snap, err := r.client.Collection(collectionPrograms).Doc(string(id)).Get(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get program", goerr.V("id", id))
	}

	var p model.Program
	if err := snap.DataTo(&p); err != nil {
		return nil, goerr.Wrap(err, "failed to decode program", goerr.V("id", id))
	}

	return &p, nil
}

func (r *Firestore) ListPrograms(ctx context.Context, offset, limit int) ([]*model.Program, error) {
	if offset < 0 {
		offset = 0
	}
	query := r.client.Collection(collectionPrograms).
		OrderBy("created_at", firestore.Desc).
		Offset(offset)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var programs []*model.Program
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate programs")
		}

		var p model.Program
		if err := snap.DataTo(&p); err != nil {
			return nil, goerr.Wrap(err, "failed to decode program", goerr.V("doc", snap.Ref.ID))
		}
		programs = append(programs, &p)
	}

	return programs, nil
}
