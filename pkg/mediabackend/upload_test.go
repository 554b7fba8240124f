package mediabackend_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/media-backend/pkg/mediabackend"
	repomemory "github.com/tendant/media-backend/pkg/mediabackend/repo/memory"
	memorystorage "github.com/tendant/media-backend/pkg/mediabackend/storage/memory"
)

func setupService(t *testing.T) (mediabackend.Service, *repomemory.Repository, *memorystorage.Store) {
	t.Helper()

	repo := repomemory.New()
	store := memorystorage.New()

	svc, err := mediabackend.New(
		mediabackend.WithRepository(repo),
		mediabackend.WithObjectStore(store),
		mediabackend.WithRetryBackoff(0),
	)
	require.NoError(t, err)
	require.NotNil(t, svc)

	return svc, repo, store
}

func pngUpload(size int) *mediabackend.FileUpload {
	return &mediabackend.FileUpload{
		Filename:    "photo.png",
		ContentType: "image/png",
		Size:        int64(size),
		Data:        bytes.Repeat([]byte{0x89}, size),
	}
}

func TestServiceCreation(t *testing.T) {
	tests := []struct {
		name        string
		options     []mediabackend.Option
		expectError bool
	}{
		{
			name:        "no options should fail",
			options:     []mediabackend.Option{},
			expectError: true,
		},
		{
			name: "with repository should succeed",
			options: []mediabackend.Option{
				mediabackend.WithRepository(repomemory.New()),
			},
			expectError: false,
		},
		{
			name: "with repository and object store should succeed",
			options: []mediabackend.Option{
				mediabackend.WithRepository(repomemory.New()),
				mediabackend.WithObjectStore(memorystorage.New()),
			},
			expectError: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := mediabackend.New(tt.options...)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, svc)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, svc)
			}
		})
	}
}

func TestValidateUpload(t *testing.T) {
	tests := []struct {
		name    string
		file    *mediabackend.FileUpload
		wantErr string
	}{
		{
			name: "valid png",
			file: pngUpload(128),
		},
		{
			name: "valid jpeg",
			file: &mediabackend.FileUpload{
				Filename:    "a.jpg",
				ContentType: "image/jpeg",
				Size:        10,
				Data:        make([]byte, 10),
			},
		},
		{
			name: "valid webp",
			file: &mediabackend.FileUpload{
				Filename:    "a.webp",
				ContentType: "image/webp",
				Size:        10,
				Data:        make([]byte, 10),
			},
		},
		{
			name:    "nil upload",
			file:    nil,
			wantErr: "missing upload",
		},
		{
			name: "disallowed type",
			file: &mediabackend.FileUpload{
				Filename:    "a.gif",
				ContentType: "image/gif",
				Size:        10,
				Data:        make([]byte, 10),
			},
			wantErr: "invalid file type",
		},
		{
			name: "svg rejected",
			file: &mediabackend.FileUpload{
				Filename:    "a.svg",
				ContentType: "image/svg+xml",
				Size:        10,
				Data:        make([]byte, 10),
			},
			wantErr: "invalid file type",
		},
		{
			name: "at size limit passes",
			file: &mediabackend.FileUpload{
				Filename:    "a.png",
				ContentType: "image/png",
				Size:        mediabackend.MaxUploadSize,
			},
		},
		{
			name: "over size limit",
			file: &mediabackend.FileUpload{
				Filename:    "a.png",
				ContentType: "image/png",
				Size:        mediabackend.MaxUploadSize + 1,
			},
			wantErr: "file too large",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := mediabackend.ValidateUpload(tt.file)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			var ve *mediabackend.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Contains(t, ve.Error(), tt.wantErr)
		})
	}
}

func TestUploadRetriesThenSucceeds(t *testing.T) {
	svc, _, store := setupService(t)
	ctx := context.Background()

	store.FailPuts(2, errors.New("transient network failure"))

	article, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:       "Launch coverage",
		Description: "Full report",
		URL:         "https://example.com/launch",
		Thumbnail:   pngUpload(256),
	})
	require.NoError(t, err)

	assert.Equal(t, 3, store.PutCalls(), "two failures plus the successful attempt")
	assert.Equal(t, 1, store.Len())
	assert.True(t, strings.HasPrefix(article.Thumbnail, "memory://thumbnails/"))
}

func TestUploadFailsAfterThreeAttempts(t *testing.T) {
	svc, repo, store := setupService(t)
	ctx := context.Background()

	store.FailPuts(3, errors.New("bucket unavailable"))

	_, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:       "Launch coverage",
		Description: "Full report",
		URL:         "https://example.com/launch",
		Thumbnail:   pngUpload(256),
	})
	require.Error(t, err)

	var se *mediabackend.StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 3, se.Attempts)
	assert.Equal(t, 3, store.PutCalls())

	// The record write never happened.
	articles, lerr := repo.ListArticles(ctx, false)
	require.NoError(t, lerr)
	assert.Empty(t, articles)
}

func TestUploadEmptyPayloadNeverReachesStore(t *testing.T) {
	svc, repo, store := setupService(t)
	ctx := context.Background()

	empty := &mediabackend.FileUpload{
		Filename:    "empty.png",
		ContentType: "image/png",
		Size:        0,
	}

	_, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:       "Launch coverage",
		Description: "Full report",
		URL:         "https://example.com/launch",
		Thumbnail:   empty,
	})
	require.Error(t, err)

	var se *mediabackend.StorageError
	require.True(t, errors.As(err, &se))
	assert.Zero(t, se.Attempts)
	assert.Zero(t, store.PutCalls(), "empty payload must not hit the store")

	articles, lerr := repo.ListArticles(ctx, false)
	require.NoError(t, lerr)
	assert.Empty(t, articles)
}

func TestCreateArticleWithHostedThumbnailURL(t *testing.T) {
	svc, _, store := setupService(t)
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:        "Hosted thumbnail",
		Description:  "No upload needed",
		URL:          "https://example.com/a",
		ThumbnailURL: "https://cdn.example.com/thumb.png",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/thumb.png", article.Thumbnail)
	assert.Zero(t, store.PutCalls())
}

func TestCreateArticleMissingThumbnail(t *testing.T) {
	svc, _, _ := setupService(t)

	_, err := svc.CreateArticle(context.Background(), mediabackend.CreateArticleRequest{
		Title:       "No art",
		Description: "desc",
		URL:         "https://example.com/a",
	})
	require.Error(t, err)

	var ve *mediabackend.ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestUpdateArticleReplacesThumbnailByURL(t *testing.T) {
	svc, _, store := setupService(t)
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:        "Launch coverage",
		Description:  "Full report",
		URL:          "https://example.com/launch",
		ThumbnailURL: "https://cdn.example.com/old.png",
	})
	require.NoError(t, err)

	hosted := "https://cdn.example.com/new.png"
	updated, err := svc.UpdateArticle(ctx, article.ID, mediabackend.UpdateArticleRequest{
		ThumbnailURL: &hosted,
	})
	require.NoError(t, err)
	assert.Equal(t, hosted, updated.Thumbnail)
	assert.Zero(t, store.PutCalls())
}

func TestUpdateArticleUploadWinsOverURL(t *testing.T) {
	svc, _, _ := setupService(t)
	ctx := context.Background()

	article, err := svc.CreateArticle(ctx, mediabackend.CreateArticleRequest{
		Title:        "Launch coverage",
		Description:  "Full report",
		URL:          "https://example.com/launch",
		ThumbnailURL: "https://cdn.example.com/old.png",
	})
	require.NoError(t, err)

	hosted := "https://cdn.example.com/ignored.png"
	updated, err := svc.UpdateArticle(ctx, article.ID, mediabackend.UpdateArticleRequest{
		ThumbnailURL: &hosted,
		Thumbnail:    pngUpload(64),
	})
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(updated.Thumbnail, "memory://thumbnails/"))
}

func TestUpdateAdReplacesImageByURL(t *testing.T) {
	svc, _, store := setupService(t)
	ctx := context.Background()

	ad, err := svc.CreateAd(ctx, mediabackend.CreateAdRequest{
		ImageURL:    "https://cdn.example.com/old-banner.png",
		RedirectURL: "https://sponsor.example.com",
		Type:        "banner",
	})
	require.NoError(t, err)

	hosted := "https://cdn.example.com/new-banner.png"
	updated, err := svc.UpdateAd(ctx, ad.ID, mediabackend.UpdateAdRequest{
		ImageURL: &hosted,
	})
	require.NoError(t, err)
	assert.Equal(t, hosted, updated.Image)
	assert.Zero(t, store.PutCalls())
}

func TestCreateAdUploadsImage(t *testing.T) {
	svc, _, store := setupService(t)
	ctx := context.Background()

	ad, err := svc.CreateAd(ctx, mediabackend.CreateAdRequest{
		Image:       pngUpload(64),
		RedirectURL: "https://sponsor.example.com",
		Active:      true,
		Type:        "banner",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(ad.Image, "memory://ads/"))
	assert.Equal(t, 1, store.Len())
}
