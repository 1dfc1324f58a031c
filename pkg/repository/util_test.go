package repository_test

import (
	"context"
	"fmt"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/gt"
	"github.com/prato-lab/prato/pkg/domain/interfaces"
	"github.com/prato-lab/prato/pkg/repository/firestore"
	"github.com/prato-lab/prato/pkg/repository/memory"
)

// newFirestoreTestRepository connects to the Firestore instance named by the
// TEST_FIRESTORE_* environment variables, isolating the run with a unique
// collection prefix. Skips when the variables are not set.
func newFirestoreTestRepository(t *testing.T) interfaces.Repository {
	t.Helper()

	projectID := os.Getenv("TEST_FIRESTORE_PROJECT_ID")
	if projectID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT_ID not set")
	}
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE_ID")

	ctx := context.Background()
	repo, err := firestore.New(ctx, projectID, databaseID,
		firestore.WithCollectionPrefix(fmt.Sprintf("test_%s_", uuid.New().String()[:8])),
	)
	gt.NoError(t, err).Required()
	t.Cleanup(func() {
		gt.NoError(t, repo.Close())
	})
	return repo
}

func newMemoryTestRepository(t *testing.T) interfaces.Repository {
	t.Helper()
	return memory.New()
}

var phoneSeq atomic.Int64

// uniquePhone returns a phone number not used by any other test in the run
func uniquePhone() string {
	return fmt.Sprintf("5511%d%03d", time.Now().UnixNano(), phoneSeq.Add(1)%1000)
}
