package mediabackend

import "context"

// ObjectStore writes binary assets to a durable bucket. Implementations
// treat the bucket as append-only: keys are never reused, so concurrent
// uploads never collide.
type ObjectStore interface {
	// Put durably writes body under key with the given content type.
	Put(ctx context.Context, key string, body []byte, contentType string) error

	// PublicURL returns the publicly resolvable URL for a key. The URL
	// is constructed from the store's public-URL convention, not read
	// back from a write acknowledgement.
	PublicURL(key string) string
}

// Repository persists the domain records. Every operation is a single
// statement against the store; no multi-statement transaction is
// assumed. Uniqueness violations are reported as *ConstraintViolation
// and missing rows as (wrapped) ErrNotFound.
type Repository interface {
	// Articles
	CreateArticle(ctx context.Context, a *Article) error
	GetArticle(ctx context.Context, id int64) (*Article, error)
	ListArticles(ctx context.Context, trendingOnly bool) ([]*Article, error)
	UpdateArticle(ctx context.Context, a *Article) error
	DeleteArticle(ctx context.Context, id int64) error

	// Ads
	CreateAd(ctx context.Context, a *Ad) error
	GetAd(ctx context.Context, id int64) (*Ad, error)
	ListAds(ctx context.Context) ([]*Ad, error)
	UpdateAd(ctx context.Context, a *Ad) error
	DeleteAd(ctx context.Context, id int64) error

	// About info (singleton)
	GetAbout(ctx context.Context) (*AboutInfo, error)
	GetAboutByID(ctx context.Context, id int64) (*AboutInfo, error)
	CreateAbout(ctx context.Context, a *AboutInfo) error
	UpdateAbout(ctx context.Context, a *AboutInfo) error
	DeleteAllAbout(ctx context.Context) error

	// Live streams (exclusive-active)
	GetLiveStream(ctx context.Context, id int64) (*LiveStream, error)
	GetActiveLiveStream(ctx context.Context) (*LiveStream, error)
	CreateLiveStream(ctx context.Context, l *LiveStream) error
	UpdateLiveStream(ctx context.Context, l *LiveStream) error
	DeleteLiveStream(ctx context.Context, id int64) error
	ClearActiveLiveStreams(ctx context.Context) error

	// Users. CreateUser lets the store assign the key when u.ID is zero
	// and inserts the explicit key otherwise; on success u.ID holds the
	// persisted key.
	CreateUser(ctx context.Context, u *User) error
	GetUser(ctx context.Context, id int64) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUsersByIDs(ctx context.Context, ids []int64) ([]*User, error)
	ListUsers(ctx context.Context) ([]*User, error)
	UpdateUser(ctx context.Context, u *User) error
	MaxUserID(ctx context.Context) (int64, error)

	// Inquiries
	CreateHireRequest(ctx context.Context, r *HireStudioRequest) error
	ListHireRequests(ctx context.Context) ([]*HireStudioRequest, error)
	CreateAdsInquiry(ctx context.Context, q *AdsQuoteInquiry) error
	ListAdsInquiries(ctx context.Context) ([]*AdsQuoteInquiry, error)
}
