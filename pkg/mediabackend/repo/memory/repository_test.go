package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/media-backend/pkg/mediabackend"
	"github.com/tendant/media-backend/pkg/mediabackend/repo/memory"
)

func TestArticleCRUD(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	a := &mediabackend.Article{
		Title:       "First",
		Description: "desc",
		Thumbnail:   "https://cdn.example.com/a.png",
		URL:         "https://example.com/a",
		Trending:    true,
	}
	require.NoError(t, repo.CreateArticle(ctx, a))
	require.NotZero(t, a.ID)

	got, err := repo.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", got.Title)

	// Mutating the returned copy must not leak into the store.
	got.Title = "mutated"
	again, err := repo.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", again.Title)

	again.Title = "Updated"
	require.NoError(t, repo.UpdateArticle(ctx, again))
	final, err := repo.GetArticle(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", final.Title)

	require.NoError(t, repo.DeleteArticle(ctx, a.ID))
	_, err = repo.GetArticle(ctx, a.ID)
	assert.ErrorIs(t, err, mediabackend.ErrNotFound)
}

func TestListArticlesTrendingFilter(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateArticle(ctx, &mediabackend.Article{
		Title: "A", Description: "d", Thumbnail: "t", URL: "u", Trending: true,
	}))
	require.NoError(t, repo.CreateArticle(ctx, &mediabackend.Article{
		Title: "B", Description: "d", Thumbnail: "t", URL: "u",
	}))

	all, err := repo.ListArticles(ctx, false)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	trending, err := repo.ListArticles(ctx, true)
	require.NoError(t, err)
	require.Len(t, trending, 1)
	assert.Equal(t, "A", trending[0].Title)
}

func TestEmptyListsAreNonNil(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	articles, err := repo.ListArticles(ctx, false)
	require.NoError(t, err)
	assert.NotNil(t, articles)
	assert.Empty(t, articles)

	ads, err := repo.ListAds(ctx)
	require.NoError(t, err)
	assert.NotNil(t, ads)

	users, err := repo.ListUsers(ctx)
	require.NoError(t, err)
	assert.NotNil(t, users)

	hires, err := repo.ListHireRequests(ctx)
	require.NoError(t, err)
	assert.NotNil(t, hires)

	quotes, err := repo.ListAdsInquiries(ctx)
	require.NoError(t, err)
	assert.NotNil(t, quotes)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateUser(ctx, &mediabackend.User{
		Name: "Ada", Email: "ada@example.com", PasswordHash: "x",
	}))

	err := repo.CreateUser(ctx, &mediabackend.User{
		Name: "Imposter", Email: "ada@example.com", PasswordHash: "y",
	})
	require.Error(t, err)

	var cv *mediabackend.ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.Equal(t, "users_email_key", cv.Constraint)
	assert.False(t, cv.PrimaryKey)
}

func TestCreateUserKeyCollisionAfterSeed(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	// Seeding does not advance the auto-increment counter, matching a
	// sequence-backed table after a manual insert.
	repo.SeedUser(&mediabackend.User{ID: 1, Name: "Seeded", Email: "seed@example.com"})

	err := repo.CreateUser(ctx, &mediabackend.User{
		Name: "Ada", Email: "ada@example.com", PasswordHash: "x",
	})
	require.Error(t, err)

	var cv *mediabackend.ConstraintViolation
	require.True(t, errors.As(err, &cv))
	assert.True(t, cv.PrimaryKey)
	assert.Equal(t, "users_pkey", cv.Constraint)

	// Explicit-key insert succeeds.
	max, err := repo.MaxUserID(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.CreateUser(ctx, &mediabackend.User{
		ID: max + 1, Name: "Ada", Email: "ada@example.com", PasswordHash: "x",
	}))
}

func TestGetUsersByIDsSkipsMissing(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	u := &mediabackend.User{Name: "Ada", Email: "ada@example.com"}
	require.NoError(t, repo.CreateUser(ctx, u))

	users, err := repo.GetUsersByIDs(ctx, []int64{u.ID, 9999})
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, u.ID, users[0].ID)
}

func TestDeleteAllAbout(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	require.NoError(t, repo.CreateAbout(ctx, &mediabackend.AboutInfo{
		OrgName: "One", Description: "d", Email: "e", Phone: "p",
	}))
	require.NoError(t, repo.CreateAbout(ctx, &mediabackend.AboutInfo{
		OrgName: "Two", Description: "d", Email: "e", Phone: "p",
	}))

	require.NoError(t, repo.DeleteAllAbout(ctx))
	_, err := repo.GetAbout(ctx)
	assert.ErrorIs(t, err, mediabackend.ErrNotFound)
}

func TestClearActiveLiveStreams(t *testing.T) {
	repo := memory.New()
	ctx := context.Background()

	first := &mediabackend.LiveStream{StreamURL: "one", Active: true}
	second := &mediabackend.LiveStream{StreamURL: "two", Active: true}
	require.NoError(t, repo.CreateLiveStream(ctx, first))
	require.NoError(t, repo.CreateLiveStream(ctx, second))

	require.NoError(t, repo.ClearActiveLiveStreams(ctx))

	_, err := repo.GetActiveLiveStream(ctx)
	assert.ErrorIs(t, err, mediabackend.ErrNotFound)

	got, err := repo.GetLiveStream(ctx, first.ID)
	require.NoError(t, err)
	assert.False(t, got.Active)
}
