package access

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/UniChain-25-26J-287/uni-repo-backend/internal/projects/domain"
)

func TestCanView_PublicVisibleToEveryone(t *testing.T) {
	p := domain.Project{ID: 1, AccessLevel: domain.AccessPublic, Authors: []string{"0xAAA"}}

	assert.True(t, CanView(p, ""))
	assert.True(t, CanView(p, "0xAAA"))
	assert.True(t, CanView(p, "0xsomebody-else"))
}

func TestCanView_AuthorsSeeTheirOwnWork(t *testing.T) {
	for _, level := range []domain.AccessLevel{domain.AccessPublic, domain.AccessRestricted, domain.AccessPrivate} {
		p := domain.Project{ID: 2, AccessLevel: level, Authors: []string{"0xABC123", "0xDEF456"}}

		assert.True(t, CanView(p, "0xABC123"), "level %s", level)
		assert.True(t, CanView(p, "0xDEF456"), "level %s", level)
	}
}

func TestCanView_AuthorMatchIsCaseInsensitive(t *testing.T) {
	p := domain.Project{ID: 2, AccessLevel: domain.AccessPrivate, Authors: []string{"0xABC"}}

	assert.True(t, CanView(p, "0xabc"))
	assert.True(t, CanView(p, "0XABC"))
	assert.False(t, CanView(p, "0xdef"))
}

func TestCanView_DeniedByDefault(t *testing.T) {
	for _, level := range []domain.AccessLevel{domain.AccessRestricted, domain.AccessPrivate} {
		p := domain.Project{ID: 3, AccessLevel: level, Authors: []string{"0xAAA"}}

		assert.False(t, CanView(p, ""), "anonymous viewer, level %s", level)
		assert.False(t, CanView(p, "0xBBB"), "non-author viewer, level %s", level)
	}
}

func TestCanView_RestrictedBehavesLikePrivate(t *testing.T) {
	// Department-scoped visibility for the restricted level is intentionally
	// not implemented; only authors get through.
	restricted := domain.Project{ID: 4, AccessLevel: domain.AccessRestricted, Authors: []string{"0xAAA"}}
	private := domain.Project{ID: 5, AccessLevel: domain.AccessPrivate, Authors: []string{"0xAAA"}}

	for _, viewer := range []string{"", "0xBBB", "0xaaa"} {
		assert.Equal(t, CanView(private, viewer), CanView(restricted, viewer), "viewer %q", viewer)
	}
}

func TestFilterVisible(t *testing.T) {
	all := []domain.Project{
		{ID: 3, AccessLevel: domain.AccessPrivate, Authors: []string{"0xAAA"}},
		{ID: 2, AccessLevel: domain.AccessPublic, Authors: []string{"0xBBB"}},
		{ID: 1, AccessLevel: domain.AccessRestricted, Authors: []string{"0xCCC"}},
	}

	t.Run("anonymous sees public only", func(t *testing.T) {
		got := FilterVisible(all, "")
		require.Len(t, got, 1)
		assert.Equal(t, int64(2), got[0].ID)
	})

	t.Run("author sees own plus public, order preserved", func(t *testing.T) {
		got := FilterVisible(all, "0xaaa")
		require.Len(t, got, 2)
		assert.Equal(t, int64(3), got[0].ID)
		assert.Equal(t, int64(2), got[1].ID)
	})

	t.Run("result is a subset of the input", func(t *testing.T) {
		got := FilterVisible(all, "0xccc")
		for _, p := range got {
			assert.True(t, CanView(p, "0xccc"))
		}
		assert.LessOrEqual(t, len(got), len(all))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, FilterVisible(nil, "0xaaa"))
	})
}

func TestFindVisible_NotFoundIsIndistinguishable(t *testing.T) {
	all := []domain.Project{
		{ID: 2, AccessLevel: domain.AccessPrivate, Authors: []string{"0xAAA"}},
	}

	_, errMissing := FindVisible(all, 999, "0xAAA")
	_, errDenied := FindVisible(all, 2, "0xdef")

	require.Error(t, errMissing)
	require.Error(t, errDenied)
	assert.True(t, errors.Is(errMissing, domain.ErrProjectNotFound))
	assert.True(t, errors.Is(errDenied, domain.ErrProjectNotFound))
	assert.Equal(t, errMissing, errDenied)
}

func TestFindVisible_AuthorFetchesOwnPrivateProject(t *testing.T) {
	all := []domain.Project{
		{ID: 2, AccessLevel: domain.AccessPrivate, Authors: []string{"0xABC"}},
	}

	p, err := FindVisible(all, 2, "0xabc")
	require.NoError(t, err)
	assert.Equal(t, int64(2), p.ID)
}
