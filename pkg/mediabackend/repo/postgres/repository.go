// Package postgres provides a PostgreSQL implementation of the
// mediabackend.Repository interface built on pgx.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

// DBTX is satisfied by both a pgx pool and a transaction.
type DBTX interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

// Repository implements mediabackend.Repository using PostgreSQL.
type Repository struct {
	db DBTX
}

// New creates a new PostgreSQL repository.
func New(db DBTX) mediabackend.Repository {
	return &Repository{db: db}
}

// NewWithPool creates a new PostgreSQL repository from a connection pool.
func NewWithPool(pool *pgxpool.Pool) mediabackend.Repository {
	return &Repository{db: pool}
}

// handleError maps driver errors into the domain error taxonomy.
// Unique violations become *mediabackend.ConstraintViolation so callers
// can branch on the conflicting constraint without inspecting driver
// types, and missing rows become wrapped ErrNotFound.
func handleError(operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return &mediabackend.ConstraintViolation{
			Constraint: pgErr.ConstraintName,
			PrimaryKey: strings.HasSuffix(pgErr.ConstraintName, "_pkey"),
			Err:        err,
		}
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", operation, mediabackend.ErrNotFound)
	}
	return fmt.Errorf("database error in %s: %w", operation, err)
}

// Articles

func (r *Repository) CreateArticle(ctx context.Context, a *mediabackend.Article) error {
	query := `
		INSERT INTO articles (title, description, thumbnail, url, is_trending, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query,
		a.Title, a.Description, a.Thumbnail, a.URL, a.Trending).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return handleError("create article", err)
	}
	return nil
}

func (r *Repository) GetArticle(ctx context.Context, id int64) (*mediabackend.Article, error) {
	query := `
		SELECT id, title, description, thumbnail, url, is_trending, created_at, updated_at
		FROM articles WHERE id = $1`

	var a mediabackend.Article
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.Thumbnail, &a.URL, &a.Trending,
		&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, handleError("get article", err)
	}
	return &a, nil
}

func (r *Repository) ListArticles(ctx context.Context, trendingOnly bool) ([]*mediabackend.Article, error) {
	query := `
		SELECT id, title, description, thumbnail, url, is_trending, created_at, updated_at
		FROM articles`
	if trendingOnly {
		query += ` WHERE is_trending`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handleError("list articles", err)
	}
	defer rows.Close()

	out := []*mediabackend.Article{}
	for rows.Next() {
		var a mediabackend.Article
		if err := rows.Scan(&a.ID, &a.Title, &a.Description, &a.Thumbnail, &a.URL,
			&a.Trending, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, handleError("list articles", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateArticle(ctx context.Context, a *mediabackend.Article) error {
	query := `
		UPDATE articles SET
			title = $2, description = $3, thumbnail = $4, url = $5,
			is_trending = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query,
		a.ID, a.Title, a.Description, a.Thumbnail, a.URL, a.Trending).
		Scan(&a.UpdatedAt)
	if err != nil {
		return handleError("update article", err)
	}
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return handleError("delete article", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete article: %w", mediabackend.ErrNotFound)
	}
	return nil
}

// Ads

func (r *Repository) CreateAd(ctx context.Context, a *mediabackend.Ad) error {
	query := `
		INSERT INTO ads (image, redirect_url, is_active, ad_type, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, a.Image, a.RedirectURL, a.Active, a.Type).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return handleError("create ad", err)
	}
	return nil
}

func (r *Repository) GetAd(ctx context.Context, id int64) (*mediabackend.Ad, error) {
	query := `
		SELECT id, image, redirect_url, is_active, ad_type, created_at, updated_at
		FROM ads WHERE id = $1`

	var a mediabackend.Ad
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Image, &a.RedirectURL, &a.Active, &a.Type, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, handleError("get ad", err)
	}
	return &a, nil
}

func (r *Repository) ListAds(ctx context.Context) ([]*mediabackend.Ad, error) {
	query := `
		SELECT id, image, redirect_url, is_active, ad_type, created_at, updated_at
		FROM ads ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handleError("list ads", err)
	}
	defer rows.Close()

	out := []*mediabackend.Ad{}
	for rows.Next() {
		var a mediabackend.Ad
		if err := rows.Scan(&a.ID, &a.Image, &a.RedirectURL, &a.Active, &a.Type,
			&a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, handleError("list ads", err)
		}
		out = append(out, &a)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateAd(ctx context.Context, a *mediabackend.Ad) error {
	query := `
		UPDATE ads SET
			image = $2, redirect_url = $3, is_active = $4, ad_type = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, a.ID, a.Image, a.RedirectURL, a.Active, a.Type).
		Scan(&a.UpdatedAt)
	if err != nil {
		return handleError("update ad", err)
	}
	return nil
}

func (r *Repository) DeleteAd(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM ads WHERE id = $1`, id)
	if err != nil {
		return handleError("delete ad", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete ad: %w", mediabackend.ErrNotFound)
	}
	return nil
}

// About info

func (r *Repository) GetAbout(ctx context.Context) (*mediabackend.AboutInfo, error) {
	query := `
		SELECT id, org_name, description, email, phone, created_at, updated_at
		FROM about_info ORDER BY id LIMIT 1`

	var a mediabackend.AboutInfo
	err := r.db.QueryRow(ctx, query).Scan(
		&a.ID, &a.OrgName, &a.Description, &a.Email, &a.Phone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, handleError("get about info", err)
	}
	return &a, nil
}

func (r *Repository) GetAboutByID(ctx context.Context, id int64) (*mediabackend.AboutInfo, error) {
	query := `
		SELECT id, org_name, description, email, phone, created_at, updated_at
		FROM about_info WHERE id = $1`

	var a mediabackend.AboutInfo
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.OrgName, &a.Description, &a.Email, &a.Phone, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, handleError("get about info", err)
	}
	return &a, nil
}

func (r *Repository) CreateAbout(ctx context.Context, a *mediabackend.AboutInfo) error {
	query := `
		INSERT INTO about_info (org_name, description, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, a.OrgName, a.Description, a.Email, a.Phone).
		Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return handleError("create about info", err)
	}
	return nil
}

func (r *Repository) UpdateAbout(ctx context.Context, a *mediabackend.AboutInfo) error {
	query := `
		UPDATE about_info SET
			org_name = $2, description = $3, email = $4, phone = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, a.ID, a.OrgName, a.Description, a.Email, a.Phone).
		Scan(&a.UpdatedAt)
	if err != nil {
		return handleError("update about info", err)
	}
	return nil
}

func (r *Repository) DeleteAllAbout(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM about_info`); err != nil {
		return handleError("delete about info", err)
	}
	return nil
}

// Live streams

func (r *Repository) GetLiveStream(ctx context.Context, id int64) (*mediabackend.LiveStream, error) {
	query := `
		SELECT id, stream_url, is_active, created_at, updated_at
		FROM live_streams WHERE id = $1`

	var l mediabackend.LiveStream
	err := r.db.QueryRow(ctx, query, id).Scan(
		&l.ID, &l.StreamURL, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, handleError("get live stream", err)
	}
	return &l, nil
}

func (r *Repository) GetActiveLiveStream(ctx context.Context) (*mediabackend.LiveStream, error) {
	query := `
		SELECT id, stream_url, is_active, created_at, updated_at
		FROM live_streams WHERE is_active ORDER BY updated_at DESC LIMIT 1`

	var l mediabackend.LiveStream
	err := r.db.QueryRow(ctx, query).Scan(
		&l.ID, &l.StreamURL, &l.Active, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, handleError("get active live stream", err)
	}
	return &l, nil
}

func (r *Repository) CreateLiveStream(ctx context.Context, l *mediabackend.LiveStream) error {
	query := `
		INSERT INTO live_streams (stream_url, is_active, created_at, updated_at)
		VALUES ($1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, l.StreamURL, l.Active).
		Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return handleError("create live stream", err)
	}
	return nil
}

func (r *Repository) UpdateLiveStream(ctx context.Context, l *mediabackend.LiveStream) error {
	query := `
		UPDATE live_streams SET
			stream_url = $2, is_active = $3, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, l.ID, l.StreamURL, l.Active).Scan(&l.UpdatedAt)
	if err != nil {
		return handleError("update live stream", err)
	}
	return nil
}

func (r *Repository) DeleteLiveStream(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM live_streams WHERE id = $1`, id)
	if err != nil {
		return handleError("delete live stream", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("delete live stream: %w", mediabackend.ErrNotFound)
	}
	return nil
}

func (r *Repository) ClearActiveLiveStreams(ctx context.Context) error {
	_, err := r.db.Exec(ctx,
		`UPDATE live_streams SET is_active = FALSE, updated_at = NOW() WHERE is_active`)
	if err != nil {
		return handleError("clear active live streams", err)
	}
	return nil
}

// Users

func (r *Repository) CreateUser(ctx context.Context, u *mediabackend.User) error {
	if u.ID != 0 {
		// Explicit key insert, used by primary-key collision recovery.
		query := `
			INSERT INTO users (id, name, email, password_hash, created_at, updated_at)
			VALUES ($1, $2, $3, $4, NOW(), NOW())
			RETURNING created_at, updated_at`

		err := r.db.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash).
			Scan(&u.CreatedAt, &u.UpdatedAt)
		if err != nil {
			return handleError("create user", err)
		}
		return nil
	}

	query := `
		INSERT INTO users (name, email, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, u.Name, u.Email, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return handleError("create user", err)
	}
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id int64) (*mediabackend.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = $1`

	var u mediabackend.User
	err := r.db.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, handleError("get user", err)
	}
	return &u, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*mediabackend.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE email = $1`

	var u mediabackend.User
	err := r.db.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, handleError("get user by email", err)
	}
	return &u, nil
}

func (r *Repository) GetUsersByIDs(ctx context.Context, ids []int64) ([]*mediabackend.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return nil, handleError("get users by ids", err)
	}
	defer rows.Close()

	var out []*mediabackend.User
	for rows.Next() {
		var u mediabackend.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, handleError("get users by ids", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *Repository) ListUsers(ctx context.Context) ([]*mediabackend.User, error) {
	query := `
		SELECT id, name, email, password_hash, created_at, updated_at
		FROM users ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handleError("list users", err)
	}
	defer rows.Close()

	out := []*mediabackend.User{}
	for rows.Next() {
		var u mediabackend.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash,
			&u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, handleError("list users", err)
		}
		out = append(out, &u)
	}
	return out, rows.Err()
}

func (r *Repository) UpdateUser(ctx context.Context, u *mediabackend.User) error {
	query := `
		UPDATE users SET
			name = $2, email = $3, password_hash = $4, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at`

	err := r.db.QueryRow(ctx, query, u.ID, u.Name, u.Email, u.PasswordHash).
		Scan(&u.UpdatedAt)
	if err != nil {
		return handleError("update user", err)
	}
	return nil
}

func (r *Repository) MaxUserID(ctx context.Context) (int64, error) {
	var max int64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(MAX(id), 0) FROM users`).Scan(&max)
	if err != nil {
		return 0, handleError("max user id", err)
	}
	return max, nil
}

// Inquiries

func (r *Repository) CreateHireRequest(ctx context.Context, req *mediabackend.HireStudioRequest) error {
	query := `
		INSERT INTO hire_studio_requests (user_id, email, phone_number, query, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, req.UserID, req.Email, req.PhoneNumber, req.Query).
		Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
	if err != nil {
		return handleError("create hire request", err)
	}
	return nil
}

func (r *Repository) ListHireRequests(ctx context.Context) ([]*mediabackend.HireStudioRequest, error) {
	query := `
		SELECT id, user_id, email, phone_number, query, created_at, updated_at
		FROM hire_studio_requests ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handleError("list hire requests", err)
	}
	defer rows.Close()

	out := []*mediabackend.HireStudioRequest{}
	for rows.Next() {
		var req mediabackend.HireStudioRequest
		if err := rows.Scan(&req.ID, &req.UserID, &req.Email, &req.PhoneNumber,
			&req.Query, &req.CreatedAt, &req.UpdatedAt); err != nil {
			return nil, handleError("list hire requests", err)
		}
		out = append(out, &req)
	}
	return out, rows.Err()
}

func (r *Repository) CreateAdsInquiry(ctx context.Context, q *mediabackend.AdsQuoteInquiry) error {
	query := `
		INSERT INTO ads_quote_inquiries (user_id, email, phone_number, query, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRow(ctx, query, q.UserID, q.Email, q.PhoneNumber, q.Query).
		Scan(&q.ID, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return handleError("create ads inquiry", err)
	}
	return nil
}

func (r *Repository) ListAdsInquiries(ctx context.Context) ([]*mediabackend.AdsQuoteInquiry, error) {
	query := `
		SELECT id, user_id, email, phone_number, query, created_at, updated_at
		FROM ads_quote_inquiries ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, handleError("list ads inquiries", err)
	}
	defer rows.Close()

	out := []*mediabackend.AdsQuoteInquiry{}
	for rows.Next() {
		var q mediabackend.AdsQuoteInquiry
		if err := rows.Scan(&q.ID, &q.UserID, &q.Email, &q.PhoneNumber,
			&q.Query, &q.CreatedAt, &q.UpdatedAt); err != nil {
			return nil, handleError("list ads inquiries", err)
		}
		out = append(out, &q)
	}
	return out, rows.Err()
}
