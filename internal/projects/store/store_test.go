package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

func testOptions() Options {
	return Options{
		HashFn:   func() string { return "QmTestHash" },
		AuthorFn: func() string { return "0xdefault-author" },
		Now:      func() time.Time { return time.UnixMilli(1700000000000) },
	}
}

func setupStore(t *testing.T) (*Store, *redis.Client, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s, err := New(context.Background(), client, testOptions())
	require.NoError(t, err)
	return s, client, mr
}

func TestNew_SeedsEmptyCatalog(t *testing.T) {
	s, _, _ := setupStore(t)

	all := s.ListAll()
	require.Len(t, all, 6)
	assert.Equal(t, "Decentralized Identity Management System", all[0].Title)
	for _, p := range all {
		assert.NotEmpty(t, p.Authors, "authors must never be empty")
		assert.True(t, p.AccessLevel.Valid())
	}
}

func TestNew_ReloadsPersistedCatalog(t *testing.T) {
	s, client, _ := setupStore(t)
	ctx := context.Background()

	p := s.Create(CreateInput{Title: "Persisted", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, p))

	reloaded, err := New(ctx, client, testOptions())
	require.NoError(t, err)

	all := reloaded.ListAll()
	require.Len(t, all, 7)
	assert.Equal(t, "Persisted", all[0].Title)
	assert.Equal(t, p.ID, all[0].ID)
}

func TestCreate_AssignsNextIDAndDefaults(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	p := s.Create(CreateInput{
		Title:        "T",
		Description:  "D",
		DepartmentID: 1,
		Year:         2024,
		AccessLevel:  domain.AccessPrivate,
		Author:       "0xAAA",
	})

	assert.Equal(t, int64(7), p.ID) // seeds end at 6
	assert.Equal(t, []string{"0xAAA"}, p.Authors)
	assert.Equal(t, domain.AccessPrivate, p.AccessLevel)
	assert.Equal(t, "QmTestHash", p.IPFSHash, "omitted hash falls back to the injected default")
	assert.Equal(t, int64(1700000000000), p.UploadDate)

	require.NoError(t, s.Insert(ctx, p))

	anon := s.Create(CreateInput{Title: "anon", AccessLevel: domain.AccessPublic})
	assert.Equal(t, []string{"0xdefault-author"}, anon.Authors, "omitted author falls back to the injected default")
}

func TestCreate_IDsAreMonotonicAndUnique(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	seen := map[int64]bool{}
	for _, p := range s.ListAll() {
		seen[p.ID] = true
	}

	var prev int64
	for i := 0; i < 5; i++ {
		p := s.Create(CreateInput{Title: "N", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
		require.NoError(t, s.Insert(ctx, p))

		assert.Greater(t, p.ID, prev)
		assert.False(t, seen[p.ID], "id %d reused", p.ID)
		seen[p.ID] = true
		prev = p.ID
	}
}

func TestInsert_RejectsLiveID(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	// Two callers racing Create before either inserts mint the same id; the
	// second insert must fail instead of shadowing the first record.
	a := s.Create(CreateInput{Title: "A", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
	b := s.Create(CreateInput{Title: "B", AccessLevel: domain.AccessPublic, Author: "0xBBB"})
	assert.Equal(t, a.ID, b.ID)

	require.NoError(t, s.Insert(ctx, a))
	require.Error(t, s.Insert(ctx, b))

	seen := map[int64]int{}
	for _, p := range s.ListAll() {
		seen[p.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "id %d occurs %d times", id, n)
	}
}

func TestAdd_ConcurrentIDsStayUnique(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			_, err := s.Add(ctx, CreateInput{Title: "W", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all := s.ListAll()
	require.Len(t, all, 6+n)
	seen := map[int64]bool{}
	for _, p := range all {
		assert.False(t, seen[p.ID], "id %d reused", p.ID)
		seen[p.ID] = true
	}
}

func TestInsert_MostRecentFirst(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	p1 := s.Create(CreateInput{Title: "first", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, p1))
	p2 := s.Create(CreateInput{Title: "second", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, p2))

	all := s.ListAll()
	assert.Equal(t, p2.ID, all[0].ID)
	assert.Equal(t, p1.ID, all[1].ID)
}

func TestListVisible(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	private := s.Create(CreateInput{Title: "mine", AccessLevel: domain.AccessPrivate, Author: "0xABC"})
	require.NoError(t, s.Insert(ctx, private))

	t.Run("anonymous viewer", func(t *testing.T) {
		for _, p := range s.ListVisible("") {
			assert.Equal(t, domain.AccessPublic, p.AccessLevel)
		}
	})

	t.Run("author sees own private record first", func(t *testing.T) {
		got := s.ListVisible("0xabc")
		require.NotEmpty(t, got)
		assert.Equal(t, private.ID, got[0].ID)
	})
}

func TestGetVisibleByID_FailsClosed(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	private := s.Create(CreateInput{Title: "mine", AccessLevel: domain.AccessPrivate, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, private))

	_, errMissing := s.GetVisibleByID(999, "0xAAA")
	_, errDenied := s.GetVisibleByID(private.ID, "0xdef")

	assert.ErrorIs(t, errMissing, domain.ErrProjectNotFound)
	assert.ErrorIs(t, errDenied, domain.ErrProjectNotFound)

	got, err := s.GetVisibleByID(private.ID, "0xaaa")
	require.NoError(t, err)
	assert.Equal(t, private.ID, got.ID)
}

func TestGetByID_BypassesVisibility(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	private := s.Create(CreateInput{Title: "mine", AccessLevel: domain.AccessPrivate, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, private))

	got, err := s.GetByID(private.ID)
	require.NoError(t, err)
	assert.Equal(t, "mine", got.Title)
}

func TestUpdate(t *testing.T) {
	s, _, _ := setupStore(t)
	ctx := context.Background()

	p := s.Create(CreateInput{Title: "T", Description: "D", DepartmentID: 3, Year: 2024, AccessLevel: domain.AccessPrivate, Author: "0xAAA"})
	require.NoError(t, s.Insert(ctx, p))

	t.Run("author changes access level, other fields untouched", func(t *testing.T) {
		changed := p
		changed.AccessLevel = domain.AccessPublic
		require.NoError(t, s.Update(ctx, changed, "0xaaa"))

		got, err := s.GetByID(p.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.AccessPublic, got.AccessLevel)
		assert.Equal(t, p.Title, got.Title)
		assert.Equal(t, p.Description, got.Description)
		assert.Equal(t, p.DepartmentID, got.DepartmentID)
		assert.Equal(t, p.Year, got.Year)
		assert.Equal(t, p.IPFSHash, got.IPFSHash)
		assert.Equal(t, p.Authors, got.Authors)
		assert.Equal(t, p.UploadDate, got.UploadDate)
	})

	t.Run("non-author is rejected", func(t *testing.T) {
		changed := p
		changed.AccessLevel = domain.AccessPrivate
		err := s.Update(ctx, changed, "0xEVIL")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		err := s.Update(ctx, p, "")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("unknown id", func(t *testing.T) {
		ghost := p
		ghost.ID = 424242
		err := s.Update(ctx, ghost, "0xAAA")
		assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	})
}

func TestMemoryOnlyStore(t *testing.T) {
	s, err := New(context.Background(), nil, testOptions())
	require.NoError(t, err)

	p := s.Create(CreateInput{Title: "ephemeral", AccessLevel: domain.AccessPublic, Author: "0xAAA"})
	require.NoError(t, s.Insert(context.Background(), p))
	assert.Len(t, s.ListAll(), 7)
}

func TestMockGenerators(t *testing.T) {
	hash := MockIPFSHash()
	assert.Len(t, hash, 46)
	assert.Equal(t, "Qm", hash[:2])

	addr := MockWalletAddress()
	assert.Len(t, addr, 42)
	assert.Equal(t, "0x", addr[:2])
}
