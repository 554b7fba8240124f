// Package memory provides an in-memory implementation of the
// mediabackend.Repository interface, primarily for testing and
// development.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

// Repository is an in-memory implementation of mediabackend.Repository.
// It mirrors the key-assignment behavior of a sequence-backed SQL store:
// auto-assigned keys come from a per-table counter that explicit-key
// inserts do NOT advance, so an explicit insert at a high id leaves the
// counter behind and later auto inserts collide.
type Repository struct {
	mu sync.RWMutex

	articles map[int64]*mediabackend.Article
	ads      map[int64]*mediabackend.Ad
	about    map[int64]*mediabackend.AboutInfo
	streams  map[int64]*mediabackend.LiveStream
	users    map[int64]*mediabackend.User
	hires    map[int64]*mediabackend.HireStudioRequest
	quotes   map[int64]*mediabackend.AdsQuoteInquiry

	nextArticleID int64
	nextAdID      int64
	nextAboutID   int64
	nextStreamID  int64
	nextUserID    int64
	nextHireID    int64
	nextQuoteID   int64
}

// New creates a new in-memory repository.
func New() *Repository {
	return &Repository{
		articles: make(map[int64]*mediabackend.Article),
		ads:      make(map[int64]*mediabackend.Ad),
		about:    make(map[int64]*mediabackend.AboutInfo),
		streams:  make(map[int64]*mediabackend.LiveStream),
		users:    make(map[int64]*mediabackend.User),
		hires:    make(map[int64]*mediabackend.HireStudioRequest),
		quotes:   make(map[int64]*mediabackend.AdsQuoteInquiry),
	}
}

// SeedUser inserts a user at an explicit id without advancing the
// auto-assignment counter, reproducing the state a manual SQL insert
// leaves behind in a sequence-backed table.
func (r *Repository) SeedUser(u *mediabackend.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *u
	r.users[cp.ID] = &cp
}

// Articles

func (r *Repository) CreateArticle(ctx context.Context, a *mediabackend.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextArticleID++
	a.ID = r.nextArticleID
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *Repository) GetArticle(ctx context.Context, id int64) (*mediabackend.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.articles[id]
	if !ok {
		return nil, fmt.Errorf("article %d: %w", id, mediabackend.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (r *Repository) ListArticles(ctx context.Context, trendingOnly bool) ([]*mediabackend.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*mediabackend.Article{}
	for _, a := range r.articles {
		if trendingOnly && !a.Trending {
			continue
		}
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) UpdateArticle(ctx context.Context, a *mediabackend.Article) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.articles[a.ID]
	if !ok {
		return fmt.Errorf("article %d: %w", a.ID, mediabackend.ErrNotFound)
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	r.articles[a.ID] = &cp
	return nil
}

func (r *Repository) DeleteArticle(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.articles[id]; !ok {
		return fmt.Errorf("article %d: %w", id, mediabackend.ErrNotFound)
	}
	delete(r.articles, id)
	return nil
}

// Ads

func (r *Repository) CreateAd(ctx context.Context, a *mediabackend.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextAdID++
	a.ID = r.nextAdID
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	cp := *a
	r.ads[a.ID] = &cp
	return nil
}

func (r *Repository) GetAd(ctx context.Context, id int64) (*mediabackend.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.ads[id]
	if !ok {
		return nil, fmt.Errorf("ad %d: %w", id, mediabackend.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (r *Repository) ListAds(ctx context.Context) ([]*mediabackend.Ad, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*mediabackend.Ad{}
	for _, a := range r.ads {
		cp := *a
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) UpdateAd(ctx context.Context, a *mediabackend.Ad) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.ads[a.ID]
	if !ok {
		return fmt.Errorf("ad %d: %w", a.ID, mediabackend.ErrNotFound)
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	r.ads[a.ID] = &cp
	return nil
}

func (r *Repository) DeleteAd(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ads[id]; !ok {
		return fmt.Errorf("ad %d: %w", id, mediabackend.ErrNotFound)
	}
	delete(r.ads, id)
	return nil
}

// About info

func (r *Repository) GetAbout(ctx context.Context) (*mediabackend.AboutInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.about {
		cp := *a
		return &cp, nil
	}
	return nil, fmt.Errorf("about info: %w", mediabackend.ErrNotFound)
}

func (r *Repository) GetAboutByID(ctx context.Context, id int64) (*mediabackend.AboutInfo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.about[id]
	if !ok {
		return nil, fmt.Errorf("about info %d: %w", id, mediabackend.ErrNotFound)
	}
	cp := *a
	return &cp, nil
}

func (r *Repository) CreateAbout(ctx context.Context, a *mediabackend.AboutInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextAboutID++
	a.ID = r.nextAboutID
	now := time.Now().UTC()
	a.CreatedAt = now
	a.UpdatedAt = now

	cp := *a
	r.about[a.ID] = &cp
	return nil
}

func (r *Repository) UpdateAbout(ctx context.Context, a *mediabackend.AboutInfo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.about[a.ID]
	if !ok {
		return fmt.Errorf("about info %d: %w", a.ID, mediabackend.ErrNotFound)
	}
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = time.Now().UTC()
	cp := *a
	r.about[a.ID] = &cp
	return nil
}

func (r *Repository) DeleteAllAbout(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.about = make(map[int64]*mediabackend.AboutInfo)
	return nil
}

// Live streams

func (r *Repository) GetLiveStream(ctx context.Context, id int64) (*mediabackend.LiveStream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.streams[id]
	if !ok {
		return nil, fmt.Errorf("live stream %d: %w", id, mediabackend.ErrNotFound)
	}
	cp := *l
	return &cp, nil
}

func (r *Repository) GetActiveLiveStream(ctx context.Context) (*mediabackend.LiveStream, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, l := range r.streams {
		if l.Active {
			cp := *l
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("active live stream: %w", mediabackend.ErrNotFound)
}

func (r *Repository) CreateLiveStream(ctx context.Context, l *mediabackend.LiveStream) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextStreamID++
	l.ID = r.nextStreamID
	now := time.Now().UTC()
	l.CreatedAt = now
	l.UpdatedAt = now

	cp := *l
	r.streams[l.ID] = &cp
	return nil
}

func (r *Repository) UpdateLiveStream(ctx context.Context, l *mediabackend.LiveStream) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.streams[l.ID]
	if !ok {
		return fmt.Errorf("live stream %d: %w", l.ID, mediabackend.ErrNotFound)
	}
	l.CreatedAt = existing.CreatedAt
	l.UpdatedAt = time.Now().UTC()
	cp := *l
	r.streams[l.ID] = &cp
	return nil
}

func (r *Repository) DeleteLiveStream(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.streams[id]; !ok {
		return fmt.Errorf("live stream %d: %w", id, mediabackend.ErrNotFound)
	}
	delete(r.streams, id)
	return nil
}

func (r *Repository) ClearActiveLiveStreams(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range r.streams {
		if l.Active {
			l.Active = false
			l.UpdatedAt = time.Now().UTC()
		}
	}
	return nil
}

// Users

func (r *Repository) CreateUser(ctx context.Context, u *mediabackend.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Email == u.Email {
			return &mediabackend.ConstraintViolation{
				Constraint: "users_email_key",
				Err:        fmt.Errorf("email %q already registered", u.Email),
			}
		}
	}

	if u.ID == 0 {
		r.nextUserID++
		u.ID = r.nextUserID
	}
	if _, ok := r.users[u.ID]; ok {
		return &mediabackend.ConstraintViolation{
			Constraint: "users_pkey",
			PrimaryKey: true,
			Err:        fmt.Errorf("duplicate key %d", u.ID),
		}
	}

	now := time.Now().UTC()
	u.CreatedAt = now
	u.UpdatedAt = now

	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *Repository) GetUser(ctx context.Context, id int64) (*mediabackend.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, mediabackend.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (*mediabackend.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, mediabackend.ErrNotFound)
}

func (r *Repository) GetUsersByIDs(ctx context.Context, ids []int64) ([]*mediabackend.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*mediabackend.User
	for _, id := range ids {
		if u, ok := r.users[id]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]*mediabackend.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*mediabackend.User{}
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *Repository) UpdateUser(ctx context.Context, u *mediabackend.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.users[u.ID]
	if !ok {
		return fmt.Errorf("user %d: %w", u.ID, mediabackend.ErrNotFound)
	}
	for id, other := range r.users {
		if id != u.ID && other.Email == u.Email {
			return &mediabackend.ConstraintViolation{
				Constraint: "users_email_key",
				Err:        fmt.Errorf("email %q already registered", u.Email),
			}
		}
	}
	u.CreatedAt = existing.CreatedAt
	u.UpdatedAt = time.Now().UTC()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *Repository) MaxUserID(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var max int64
	for id := range r.users {
		if id > max {
			max = id
		}
	}
	return max, nil
}

// Inquiries

func (r *Repository) CreateHireRequest(ctx context.Context, req *mediabackend.HireStudioRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextHireID++
	req.ID = r.nextHireID
	now := time.Now().UTC()
	req.CreatedAt = now
	req.UpdatedAt = now

	cp := *req
	r.hires[req.ID] = &cp
	return nil
}

func (r *Repository) ListHireRequests(ctx context.Context) ([]*mediabackend.HireStudioRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*mediabackend.HireStudioRequest{}
	for _, req := range r.hires {
		cp := *req
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *Repository) CreateAdsInquiry(ctx context.Context, q *mediabackend.AdsQuoteInquiry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextQuoteID++
	q.ID = r.nextQuoteID
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	cp := *q
	r.quotes[q.ID] = &cp
	return nil
}

func (r *Repository) ListAdsInquiries(ctx context.Context) ([]*mediabackend.AdsQuoteInquiry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []*mediabackend.AdsQuoteInquiry{}
	for _, q := range r.quotes {
		cp := *q
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
