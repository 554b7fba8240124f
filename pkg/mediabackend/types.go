package mediabackend

import "time"

// Article is a published piece with a thumbnail asset and an external link.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"desc"`
	Thumbnail   string    `json:"thumbnail"`
	URL         string    `json:"url"`
	Trending    bool      `json:"is_trending"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Ad is a display advertisement backed by an image asset.
type Ad struct {
	ID          int64     `json:"id"`
	Image       string    `json:"ad_image"`
	RedirectURL string    `json:"redirect_url"`
	Active      bool      `json:"is_active"`
	Type        string    `json:"type,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// AboutInfo is the organization profile. At most one row exists at any
// time; creation replaces whatever was there before.
type AboutInfo struct {
	ID          int64     `json:"id"`
	OrgName     string    `json:"org_name"`
	Description string    `json:"desc"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// LiveStream points at the broadcast currently (or previously) on air.
// Many rows may exist but at most one carries the active flag.
type LiveStream struct {
	ID        int64     `json:"id"`
	StreamURL string    `json:"stream_url"`
	Active    bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// User is an account holder. The password hash never leaves the domain
// layer in responses.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HireStudioRequest is an inquiry submitted through the studio-hire form.
type HireStudioRequest struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Query       string    `json:"query"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// AdsQuoteInquiry is an inquiry submitted through the ad-quote form.
type AdsQuoteInquiry struct {
	ID          int64     `json:"id"`
	UserID      string    `json:"userId"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Query       string    `json:"query"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// HireRequestWithUser is a hire request enriched with the submitting
// user's account, when the user id resolves to one.
type HireRequestWithUser struct {
	HireStudioRequest
	User *User `json:"user"`
}

// FileUpload is a candidate binary payload received at the HTTP boundary.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}
