package mediabackend

import (
	"context"
	"time"
)

// About info: singleton enforcement.
//
// Replace is delete-then-create against a store that offers no
// multi-statement transaction, so the pair is serialized through
// s.aboutMu; no two replacements interleave within this process. A
// crash between the two statements can leave zero rows until the next
// successful replace.

func (s *service) GetAbout(ctx context.Context) (*AboutInfo, error) {
	return s.repository.GetAbout(ctx)
}

func (s *service) ReplaceAbout(ctx context.Context, req ReplaceAboutRequest) (*AboutInfo, error) {
	if req.OrgName == "" || req.Description == "" || req.Email == "" || req.Phone == "" {
		return nil, &ValidationError{Reason: "org_name, desc, email, phone are required"}
	}

	s.aboutMu.Lock()
	defer s.aboutMu.Unlock()

	if err := s.repository.DeleteAllAbout(ctx); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	about := &AboutInfo{
		OrgName:     req.OrgName,
		Description: req.Description,
		Email:       req.Email,
		Phone:       req.Phone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateAbout(ctx, about); err != nil {
		return nil, err
	}

	s.logger.Info("about info replaced", "about_id", about.ID)
	return about, nil
}

func (s *service) UpdateAbout(ctx context.Context, id int64, req UpdateAboutRequest) (*AboutInfo, error) {
	about, err := s.repository.GetAboutByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.OrgName != nil {
		about.OrgName = *req.OrgName
	}
	if req.Description != nil {
		about.Description = *req.Description
	}
	if req.Email != nil {
		about.Email = *req.Email
	}
	if req.Phone != nil {
		about.Phone = *req.Phone
	}
	about.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateAbout(ctx, about); err != nil {
		return nil, err
	}
	return about, nil
}

// Live streams: exclusive-active enforcement.
//
// Activating a stream clears the active flag on every sibling first,
// then writes the target, with the pair held under s.liveMu. Writes
// that do not activate never touch siblings.

func (s *service) GetActiveLiveStream(ctx context.Context) (*LiveStream, error) {
	return s.repository.GetActiveLiveStream(ctx)
}

func (s *service) CreateLiveStream(ctx context.Context, req CreateLiveStreamRequest) (*LiveStream, error) {
	if req.StreamURL == "" {
		return nil, &ValidationError{Field: "stream_url", Reason: "stream_url is required"}
	}

	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	if req.Active {
		if err := s.repository.ClearActiveLiveStreams(ctx); err != nil {
			return nil, err
		}
	}

	now := time.Now().UTC()
	live := &LiveStream{
		StreamURL: req.StreamURL,
		Active:    req.Active,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repository.CreateLiveStream(ctx, live); err != nil {
		return nil, err
	}

	s.logger.Info("live stream created", "live_id", live.ID, "active", live.Active)
	return live, nil
}

func (s *service) UpdateLiveStream(ctx context.Context, id int64, req UpdateLiveStreamRequest) (*LiveStream, error) {
	s.liveMu.Lock()
	defer s.liveMu.Unlock()

	live, err := s.repository.GetLiveStream(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Active != nil && *req.Active {
		if err := s.repository.ClearActiveLiveStreams(ctx); err != nil {
			return nil, err
		}
	}

	if req.StreamURL != nil {
		live.StreamURL = *req.StreamURL
	}
	if req.Active != nil {
		live.Active = *req.Active
	}
	live.UpdatedAt = time.Now().UTC()

	if err := s.repository.UpdateLiveStream(ctx, live); err != nil {
		return nil, err
	}
	return live, nil
}

func (s *service) DeleteLiveStream(ctx context.Context, id int64) error {
	if _, err := s.repository.GetLiveStream(ctx, id); err != nil {
		return err
	}
	return s.repository.DeleteLiveStream(ctx, id)
}
