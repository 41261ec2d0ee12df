// Package memory provides in-process implementations of the repositories.
// It backs the server when STORE=memory and serves as the store in tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"bloglist/internal/domain"
	"bloglist/internal/domain/models"
	"bloglist/internal/domain/repositories"

	"github.com/google/uuid"
)

// Store holds users and blogs in memory. Safe for concurrent use.
type Store struct {
	mu    sync.RWMutex
	users map[string]*userRecord
	blogs map[string]*blogRecord
	// insertion counter, orders List results oldest first
	seq uint64

	txMu sync.Mutex
	now  func() time.Time
}

type userRecord struct {
	seq  uint64
	user *models.User
}

type blogRecord struct {
	seq  uint64
	blog *models.Blog
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		users: make(map[string]*userRecord),
		blogs: make(map[string]*blogRecord),
		now:   time.Now,
	}
}

// Users returns the user repository view of the store
func (s *Store) Users() repositories.UserRepository {
	return &UserRepository{store: s}
}

// Blogs returns the blog repository view of the store
func (s *Store) Blogs() repositories.BlogRepository {
	return &BlogRepository{store: s}
}

// TransactionManager returns a transaction manager over the store
func (s *Store) TransactionManager() repositories.TransactionManager {
	return &TransactionManager{store: s}
}

// nextSeq must be called with mu held
func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// journal records the state of every key a transaction touched, as it was
// before the first write. A nil entry means the key did not exist.
type journal struct {
	users map[string]*userRecord
	blogs map[string]*blogRecord
}

type journalKey struct{}

func journalFrom(ctx context.Context) *journal {
	j, _ := ctx.Value(journalKey{}).(*journal)
	return j
}

// touchUser journals the user's current state. Must be called with mu held,
// before the write.
func (s *Store) touchUser(ctx context.Context, id string) {
	j := journalFrom(ctx)
	if j == nil {
		return
	}
	if _, seen := j.users[id]; seen {
		return
	}
	var prev *userRecord
	if rec, ok := s.users[id]; ok {
		prev = &userRecord{seq: rec.seq, user: cloneUser(rec.user)}
	}
	j.users[id] = prev
}

// touchBlog journals the blog's current state. Must be called with mu held,
// before the write.
func (s *Store) touchBlog(ctx context.Context, id string) {
	j := journalFrom(ctx)
	if j == nil {
		return
	}
	if _, seen := j.blogs[id]; seen {
		return
	}
	var prev *blogRecord
	if rec, ok := s.blogs[id]; ok {
		b := *rec.blog
		prev = &blogRecord{seq: rec.seq, blog: &b}
	}
	j.blogs[id] = prev
}

// rollback puts back the journaled keys. Keys the transaction never touched
// keep whatever other callers wrote meanwhile.
func (s *Store) rollback(j *journal) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, prev := range j.users {
		if prev == nil {
			delete(s.users, id)
		} else {
			s.users[id] = prev
		}
	}
	for id, prev := range j.blogs {
		if prev == nil {
			delete(s.blogs, id)
		} else {
			s.blogs[id] = prev
		}
	}
}

// TransactionManager implements repositories.TransactionManager.
// Transactions are serialized; a failed transaction undoes its own writes.
type TransactionManager struct {
	store *Store
}

// ExecTx executes fn, rolling back every store write it made if it fails
func (tm *TransactionManager) ExecTx(ctx context.Context, fn repositories.TxFn) error {
	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	j := &journal{
		users: make(map[string]*userRecord),
		blogs: make(map[string]*blogRecord),
	}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		tm.store.rollback(j)
		return err
	}
	return nil
}

// parseID rejects IDs that are not UUIDs, the same way the postgres store does
func parseID(kind, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%s id %q: %w", kind, id, domain.ErrMalformedID)
	}
	return nil
}

func cloneUser(u *models.User) *models.User {
	c := *u
	c.Blogs = slices.Clone(u.Blogs)
	if c.Blogs == nil {
		c.Blogs = []string{}
	}
	return &c
}
