package mediabackend

import "context"

// Service is the domain API consumed by the HTTP layer.
type Service interface {
	// Articles
	CreateArticle(ctx context.Context, req CreateArticleRequest) (*Article, error)
	GetArticle(ctx context.Context, id int64) (*Article, error)
	ListArticles(ctx context.Context) ([]*Article, error)
	ListTrendingArticles(ctx context.Context) ([]*Article, error)
	UpdateArticle(ctx context.Context, id int64, req UpdateArticleRequest) (*Article, error)
	DeleteArticle(ctx context.Context, id int64) error

	// Ads
	CreateAd(ctx context.Context, req CreateAdRequest) (*Ad, error)
	GetAd(ctx context.Context, id int64) (*Ad, error)
	ListAds(ctx context.Context) ([]*Ad, error)
	UpdateAd(ctx context.Context, id int64, req UpdateAdRequest) (*Ad, error)
	DeleteAd(ctx context.Context, id int64) error

	// About info (singleton)
	GetAbout(ctx context.Context) (*AboutInfo, error)
	ReplaceAbout(ctx context.Context, req ReplaceAboutRequest) (*AboutInfo, error)
	UpdateAbout(ctx context.Context, id int64, req UpdateAboutRequest) (*AboutInfo, error)

	// Live streams (exclusive-active)
	GetActiveLiveStream(ctx context.Context) (*LiveStream, error)
	CreateLiveStream(ctx context.Context, req CreateLiveStreamRequest) (*LiveStream, error)
	UpdateLiveStream(ctx context.Context, id int64, req UpdateLiveStreamRequest) (*LiveStream, error)
	DeleteLiveStream(ctx context.Context, id int64) error

	// Users
	RegisterUser(ctx context.Context, req RegisterUserRequest) (*User, error)
	AuthenticateUser(ctx context.Context, email, password string) (*User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserRequest) (*User, error)
	ListUsers(ctx context.Context) ([]*User, error)

	// Inquiries
	CreateHireRequest(ctx context.Context, req CreateInquiryRequest) (*HireStudioRequest, error)
	ListHireRequests(ctx context.Context) ([]*HireRequestWithUser, error)
	CreateAdsInquiry(ctx context.Context, req CreateInquiryRequest) (*AdsQuoteInquiry, error)
	ListAdsInquiries(ctx context.Context) ([]*AdsQuoteInquiry, error)
}
