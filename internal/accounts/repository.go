package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MrEthical07/goAuthLocal/kvstore"
)

// ErrDuplicateEmail reports an insert whose email already belongs to a
// stored account, compared case-insensitively.
var ErrDuplicateEmail = errors.New("duplicate email")

// Record is the persisted account shape. Password holds the stored
// credential form, cleartext or PHC depending on the configured scheme.
type Record struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Repository reads and writes the full account collection as one JSON
// array under a single key. The read-check-write sequence in Insert is
// guarded by a mutex, which closes the duplicate-signup race for all
// callers sharing this Repository; writers in other processes remain
// best-effort.
type Repository struct {
	store kvstore.Store
	key   string

	mu sync.Mutex
}

// New creates a Repository over the given store and collection key.
func New(store kvstore.Store, key string) *Repository {
	return &Repository{store: store, key: key}
}

// List returns every stored account. An absent key or a deserialization
// fault reads as an empty collection; only I/O faults propagate.
func (r *Repository) List(ctx context.Context) ([]Record, error) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kvstore.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("list accounts: %w", err)
	}

	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		// A corrupt collection reads as empty rather than wedging
		// every lookup behind a parse error.
		return nil, nil
	}
	return records, nil
}

// FindByEmail returns the account whose email matches case-insensitively,
// or nil when none does.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*Record, error) {
	records, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for i := range records {
		if strings.EqualFold(records[i].Email, email) {
			rec := records[i]
			return &rec, nil
		}
	}
	return nil, nil
}

// Insert appends rec and persists the full updated collection. It fails
// with [ErrDuplicateEmail] if the email is already taken.
func (r *Repository) Insert(ctx context.Context, rec Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.List(ctx)
	if err != nil {
		return err
	}

	for i := range records {
		if strings.EqualFold(records[i].Email, rec.Email) {
			return ErrDuplicateEmail
		}
	}

	records = append(records, rec)

	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := r.store.Set(ctx, r.key, data); err != nil {
		return fmt.Errorf("persist accounts: %w", err)
	}
	return nil
}

// Count reports the number of stored accounts.
func (r *Repository) Count(ctx context.Context) (int, error) {
	records, err := r.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(records), nil
}
