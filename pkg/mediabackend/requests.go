package mediabackend

// CreateArticleRequest carries the fields for a new article. Thumbnail
// may arrive either as an already-hosted URL or as a file upload; the
// upload wins when both are present.
type CreateArticleRequest struct {
	Title        string
	Description  string
	URL          string
	Trending     bool
	ThumbnailURL string
	Thumbnail    *FileUpload
}

// UpdateArticleRequest carries a partial article update. Nil fields are
// left untouched. A replacement thumbnail may arrive as an upload or as
// an already-hosted URL; the upload wins when both are present. Either
// way the old asset reference is abandoned.
type UpdateArticleRequest struct {
	Title        *string
	Description  *string
	URL          *string
	Trending     *bool
	ThumbnailURL *string
	Thumbnail    *FileUpload
}

// CreateAdRequest carries the fields for a new ad. Image may arrive as
// a hosted URL or as a file upload.
type CreateAdRequest struct {
	ImageURL    string
	Image       *FileUpload
	RedirectURL string
	Active      bool
	Type        string
}

// UpdateAdRequest carries a partial ad update. A replacement image may
// arrive as an upload or as a hosted URL; the upload wins.
type UpdateAdRequest struct {
	RedirectURL *string
	Active      *bool
	Type        *string
	ImageURL    *string
	Image       *FileUpload
}

// ReplaceAboutRequest carries the fields for the singleton about row.
type ReplaceAboutRequest struct {
	OrgName     string
	Description string
	Email       string
	Phone       string
}

// UpdateAboutRequest carries a partial about-info update.
type UpdateAboutRequest struct {
	OrgName     *string
	Description *string
	Email       *string
	Phone       *string
}

// CreateLiveStreamRequest carries the fields for a new live stream.
type CreateLiveStreamRequest struct {
	StreamURL string
	Active    bool
}

// UpdateLiveStreamRequest carries a partial live-stream update.
type UpdateLiveStreamRequest struct {
	StreamURL *string
	Active    *bool
}

// RegisterUserRequest carries the fields for a new account.
type RegisterUserRequest struct {
	Name     string
	Email    string
	Password string
}

// UpdateUserRequest carries a profile update. CurrentPassword is always
// required; NewPassword is optional.
type UpdateUserRequest struct {
	Name            string
	Email           string
	CurrentPassword string
	NewPassword     string
}

// CreateInquiryRequest carries the fields shared by both inquiry forms.
type CreateInquiryRequest struct {
	UserID      string
	Email       string
	PhoneNumber string
	Query       string
}
