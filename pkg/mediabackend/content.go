package mediabackend

import (
	"context"
	"time"
)

// Storage namespaces for uploaded assets.
const (
	namespaceThumbnails = "thumbnails"
	namespaceAds        = "ads"
)

// Article operations

func (s *service) CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error) {
	if req.Title == "" || req.Description == "" || req.URL == "" {
		return nil, &ValidationError{Reason: "title, desc, and url are required"}
	}

	thumbnail := req.ThumbnailURL
	if req.Thumbnail != nil {
		url, err := s.uploadAsset(ctx, namespaceThumbnails, req.Thumbnail)
		if err != nil {
			return nil, err
		}
		thumbnail = url
	}
	if thumbnail == "" {
		return nil, &ValidationError{Field: "thumbnail", Reason: "thumbnail is required (as file or url)"}
	}

	now := time.Now().UTC()
	article := &Article{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   thumbnail,
		URL:         req.URL,
		Trending:    req.Trending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateArticle(ctx, article); err != nil {
		return nil, err
	}

	s.logger.Info("article created", "article_id", article.ID)
	return article, nil
}

func (s *service) GetArticle(ctx context.Context, id int64) (*Article, error) {
	return s.repository.GetArticle(ctx, id)
}

func (s *service) ListArticles(ctx context.Context) ([]*Article, error) {
	return s.repository.ListArticles(ctx, false)
}

func (s *service) ListTrendingArticles(ctx context.Context) ([]*Article, error) {
	return s.repository.ListArticles(ctx, true)
}

func (s *service) UpdateArticle(ctx context.Context, id int64, req UpdateArticleRequest) (*Article, error) {
	article, err := s.repository.GetArticle(ctx, id)
	if err != nil {
		return nil, err
	}

	// A replacement upload must complete before the record is touched;
	// the old asset reference is abandoned, not deleted.
	if req.Thumbnail != nil {
		url, err := s.uploadAsset(ctx, namespaceThumbnails, req.Thumbnail)
		if err != nil {
			return nil, err
		}
		article.Thumbnail = url
	} else if req.ThumbnailURL != nil && *req.ThumbnailURL != "" {
		article.Thumbnail = *req.ThumbnailURL
	}

	if req.Title != nil {
		article.Title = *req.Title
	}
	if req.Description != nil {
		article.Description = *req.Description
	}
	if req.URL != nil {
		article.URL = *req.URL
	}
	if req.Trending != nil {
		article.Trending = *req.Trending
	}
	article.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (s *service) DeleteArticle(ctx context.Context, id int64) error {
	if _, err := s.repository.GetArticle(ctx, id); err != nil {
		return err
	}
	return s.repository.DeleteArticle(ctx, id)
}

// Ad operations

func (s *service) CreateAd(ctx context.Context, req CreateAdRequest) (*Ad, error) {
	image := req.ImageURL
	if req.Image != nil {
		url, err := s.uploadAsset(ctx, namespaceAds, req.Image)
		if err != nil {
			return nil, err
		}
		image = url
	}
	if image == "" || req.RedirectURL == "" || req.Type == "" {
		return nil, &ValidationError{Reason: "ad_image, redirect_url, and type are required"}
	}

	now := time.Now().UTC()
	ad := &Ad{
		Image:       image,
		RedirectURL: req.RedirectURL,
		Active:      req.Active,
		Type:        req.Type,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateAd(ctx, ad); err != nil {
		return nil, err
	}

	s.logger.Info("ad created", "ad_id", ad.ID)
	return ad, nil
}

func (s *service) GetAd(ctx context.Context, id int64) (*Ad, error) {
	return s.repository.GetAd(ctx, id)
}

func (s *service) ListAds(ctx context.Context) ([]*Ad, error) {
	return s.repository.ListAds(ctx)
}

func (s *service) UpdateAd(ctx context.Context, id int64, req UpdateAdRequest) (*Ad, error) {
	ad, err := s.repository.GetAd(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Image != nil {
		url, err := s.uploadAsset(ctx, namespaceAds, req.Image)
		if err != nil {
			return nil, err
		}
		ad.Image = url
	} else if req.ImageURL != nil && *req.ImageURL != "" {
		ad.Image = *req.ImageURL
	}

	if req.RedirectURL != nil {
		ad.RedirectURL = *req.RedirectURL
	}
	if req.Active != nil {
		ad.Active = *req.Active
	}
	if req.Type != nil {
		ad.Type = *req.Type
	}
	ad.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateAd(ctx, ad); err != nil {
		return nil, err
	}
	return ad, nil
}

func (s *service) DeleteAd(ctx context.Context, id int64) error {
	if _, err := s.repository.GetAd(ctx, id); err != nil {
		return err
	}
	return s.repository.DeleteAd(ctx, id)
}
