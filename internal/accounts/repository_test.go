package accounts

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/MrEthical07/goAuthLocal/kvstore"
)

const testKey = "@auth_users"

func newTestRepo(t *testing.T) (*Repository, *kvstore.Memory) {
	t.Helper()

	store := kvstore.NewMemory()
	return New(store, testKey), store
}

func TestListEmptyWhenAbsent(t *testing.T) {
	repo, _ := newTestRepo(t)

	records, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty collection, got %d", len(records))
	}
}

func TestListCorruptCollectionReadsEmpty(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	if err := store.Set(ctx, testKey, []byte("{not-an-array")); err != nil {
		t.Fatalf("Set error: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List must not surface a parse fault, got %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected corrupt collection to read empty, got %d", len(records))
	}
}

func TestInsertAndFindByEmailCaseInsensitive(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	rec := Record{ID: "u1", Name: "John Doe", Email: "john@example.com", Password: "password123"}
	if err := repo.Insert(ctx, rec); err != nil {
		t.Fatalf("Insert error: %v", err)
	}

	found, err := repo.FindByEmail(ctx, "JOHN@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if found == nil || found.ID != "u1" {
		t.Fatalf("expected case-insensitive match, got %+v", found)
	}

	missing, err := repo.FindByEmail(ctx, "jane@example.com")
	if err != nil {
		t.Fatalf("FindByEmail error: %v", err)
	}
	if missing != nil {
		t.Fatalf("expected no match, got %+v", missing)
	}
}

func TestInsertRejectsDuplicateEmail(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	if err := repo.Insert(ctx, Record{ID: "u1", Email: "a@b.com"}); err != nil {
		t.Fatalf("first Insert error: %v", err)
	}

	err := repo.Insert(ctx, Record{ID: "u2", Email: "A@B.com"})
	if !errors.Is(err, ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected one stored account, got %d", count)
	}
}

func TestInsertPreservesExistingRecords(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		rec := Record{
			ID:    fmt.Sprintf("u%d", i),
			Email: fmt.Sprintf("user%d@example.com", i),
		}
		if err := repo.Insert(ctx, rec); err != nil {
			t.Fatalf("Insert %d error: %v", i, err)
		}
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("expected 3 records, got %d", len(records))
	}
}

func TestConcurrentDuplicateInsertsExactlyOneWins(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = repo.Insert(ctx, Record{
				ID:    fmt.Sprintf("u%d", i),
				Email: "race@example.com",
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrDuplicateEmail):
		default:
			t.Fatalf("unexpected insert error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("expected exactly one winning insert, got %d", wins)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count error: %v", err)
	}
	if count != 1 {
		t.Fatalf("uniqueness invariant violated: %d stored accounts", count)
	}
}
