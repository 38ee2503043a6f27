// Package store owns the authoritative, ordered project collection for the
// service. The collection lives in memory behind a mutex and is mirrored as
// a single JSON document in Redis so it survives restarts.
package store

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/access"
	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

const (
	catalogKey    = "catalog:projects" // single namespace for the persisted list
	schemaVersion = 1
)

// envelope is the persisted shape. The schema version travels with the data
// so a future migration has something to dispatch on.
type envelope struct {
	SchemaVersion int              `json:"schema_version"`
	Projects      []domain.Project `json:"projects"`
}

// Options carries the injectable defaults used when a caller omits an IPFS
// hash or an author identity on create. Production uses randomized
// placeholders; tests inject deterministic ones.
type Options struct {
	HashFn   func() string
	AuthorFn func() string
	Now      func() time.Time
}

// Store is the single shared mutable catalog. All methods are safe for
// concurrent use.
type Store struct {
	mu       sync.Mutex
	projects []domain.Project // most-recent-first
	rdb      *redis.Client    // nil disables persistence
	opts     Options
}

// CreateInput carries the caller-supplied fields for a new project.
// IPFSHash and Author may be empty; the store fills them from Options.
type CreateInput struct {
	Title        string
	Description  string
	DepartmentID int64
	Year         int
	AccessLevel  domain.AccessLevel
	IPFSHash     string
	Author       string
}

// New builds a store backed by rdb. When the catalog key is absent the store
// is seeded with the demo records; when rdb is nil the store is memory-only.
func New(ctx context.Context, rdb *redis.Client, opts Options) (*Store, error) {
	if opts.HashFn == nil {
		opts.HashFn = MockIPFSHash
	}
	if opts.AuthorFn == nil {
		opts.AuthorFn = MockWalletAddress
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	s := &Store{rdb: rdb, opts: opts}

	if rdb == nil {
		s.projects = seedProjects(opts.Now())
		return s, nil
	}

	data, err := rdb.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		s.projects = seedProjects(opts.Now())
		if err := s.persist(ctx); err != nil {
			return nil, err
		}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	s.projects = env.Projects
	return s, nil
}

// Create builds a fully formed record without inserting it. The id is one
// greater than the current maximum so ids are never reused.
func (s *Store) Create(in CreateInput) domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.buildLocked(in)
}

// Add mints a record from in and prepends it in one critical section, so
// interleaved callers can never mint the same id. Request handlers use this;
// Create/Insert stay available for callers that need the record before it is
// committed.
func (s *Store) Add(ctx context.Context, in CreateInput) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := s.buildLocked(in)
	s.projects = append([]domain.Project{p}, s.projects...)
	return p, s.persist(ctx)
}

// buildLocked assigns the next id and fills defaults. Callers hold s.mu.
func (s *Store) buildLocked(in CreateInput) domain.Project {
	var maxID int64
	for _, p := range s.projects {
		if p.ID > maxID {
			maxID = p.ID
		}
	}

	hash := in.IPFSHash
	if hash == "" {
		hash = s.opts.HashFn()
	}
	author := in.Author
	if author == "" {
		author = s.opts.AuthorFn()
	}

	return domain.Project{
		ID:           maxID + 1,
		Title:        in.Title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
		Year:         in.Year,
		AccessLevel:  in.AccessLevel,
		IPFSHash:     hash,
		Authors:      []string{author},
		UploadDate:   s.opts.Now().UnixMilli(),
	}
}

// Insert prepends the record. Most-recent-first ordering is a store
// invariant; callers rely on front-N truncation for "recent" views. A record
// whose id is already live is rejected so a stale Create result cannot
// shadow a concurrent insert.
func (s *Store) Insert(ctx context.Context, p domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cur := range s.projects {
		if cur.ID == p.ID {
			return fmt.Errorf("insert project: id %d already in collection", p.ID)
		}
	}

	s.projects = append([]domain.Project{p}, s.projects...)
	return s.persist(ctx)
}

// ListAll returns the full unfiltered collection. Privileged callers only;
// ordinary reads go through ListVisible.
func (s *Store) ListAll() []domain.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// ListVisible returns the records viewer may see, in store order.
func (s *Store) ListVisible(viewer string) []domain.Project {
	return access.FilterVisible(s.ListAll(), viewer)
}

// GetByID is the unfiltered lookup. Privileged callers only.
func (s *Store) GetByID(id int64) (domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.projects {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrProjectNotFound
}

// GetVisibleByID returns the record if viewer may see it. A missing id and a
// denied view are indistinguishable.
func (s *Store) GetVisibleByID(id int64, viewer string) (domain.Project, error) {
	return access.FindVisible(s.ListAll(), id, viewer)
}

// Update replaces the stored record sharing p.ID. actingIdentity must be
// listed as an author of the stored record, otherwise ErrUnauthorized.
func (s *Store) Update(ctx context.Context, p domain.Project, actingIdentity string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, cur := range s.projects {
		if cur.ID != p.ID {
			continue
		}
		if !isAuthor(cur, actingIdentity) {
			return domain.ErrUnauthorized
		}
		s.projects[i] = p
		return s.persist(ctx)
	}
	return domain.ErrProjectNotFound
}

func isAuthor(p domain.Project, identity string) bool {
	if identity == "" {
		return false
	}
	for _, a := range p.Authors {
		if strings.EqualFold(a, identity) {
			return true
		}
	}
	return false
}

// persist writes the collection under the catalog key. Callers hold s.mu.
func (s *Store) persist(ctx context.Context) error {
	if s.rdb == nil {
		return nil
	}
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Projects: s.projects})
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	if err := s.rdb.Set(ctx, catalogKey, data, 0).Err(); err != nil {
		return fmt.Errorf("save catalog: %w", err)
	}
	return nil
}

// MockIPFSHash generates a placeholder content address in the usual
// Qm-prefixed 46-character shape. Used for demo flows without a real pin.
func MockIPFSHash() string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
	b := make([]byte, 44)
	if _, err := rand.Read(b); err != nil {
		return "Qm" + strings.Repeat("0", 44)
	}
	for i := range b {
		b[i] = charset[int(b[i])%len(charset)]
	}
	return "Qm" + string(b)
}

// MockWalletAddress generates a placeholder 0x identity for demo uploads
// without a connected wallet.
func MockWalletAddress() string {
	b := make([]byte, 20)
	if _, err := rand.Read(b); err != nil {
		return "0x0000000000000000000000000000000000000000"
	}
	return "0x" + hex.EncodeToString(b)
}
