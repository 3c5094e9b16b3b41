package repository_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/voxlab/blockforge/pkg/repository"
)

func setupFirestore(t *testing.T) *repository.Firestore {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	if projectID == "" || databaseID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID and TEST_FIRESTORE_DATABASE_ID must be set to run Firestore tests")
	}

	repo, err := repository.New(context.Background(), projectID, databaseID)
	gt.NoError(t, err)

	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})

	return repo
}

func TestFirestorePutGetProgram(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	p := newProgram("firestore roundtrip", time.Now())
	gt.NoError(t, repo.PutProgram(ctx, p))

	got, err := repo.GetProgram(ctx, p.ID)
	gt.NoError(t, err)
	gt.Equal(t, got.ID, p.ID)
	gt.Equal(t, got.Name, "firestore roundtrip")
}

func TestFirestoreListPrograms(t *testing.T) {
	repo := setupFirestore(t)
	ctx := context.Background()

	gt.NoError(t, repo.PutProgram(ctx, newProgram("list target", time.Now())))

	programs, err := repo.ListPrograms(ctx, 0, 5)
	gt.NoError(t, err)
	gt.V(t, programs).NotNil()
}
