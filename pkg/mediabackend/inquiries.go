package mediabackend

import (
	"context"
	"strconv"
	"strings"
	"time"
)

func validateInquiry(req CreateInquiryRequest) error {
	if req.UserID == "" || req.Email == "" || req.PhoneNumber == "" || req.Query == "" {
		return &ValidationError{Reason: "all fields are required"}
	}
	if !strings.HasPrefix(req.PhoneNumber, "+") {
		return &ValidationError{Field: "phoneNumber", Reason: "phone number must include country code and start with +"}
	}
	return nil
}

func (s *service) CreateHireRequest(ctx context.Context, req CreateInquiryRequest) (*HireStudioRequest, error) {
	if err := validateInquiry(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	r := &HireStudioRequest{
		UserID:      req.UserID,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Query:       req.Query,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateHireRequest(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// ListHireRequests returns each request joined with the submitting
// user's account when the stored user id resolves to one.
func (s *service) ListHireRequests(ctx context.Context) ([]*HireRequestWithUser, error) {
	requests, err := s.repository.ListHireRequests(ctx)
	if err != nil {
		return nil, err
	}

	var ids []int64
	seen := make(map[int64]struct{})
	for _, r := range requests {
		id, err := strconv.ParseInt(r.UserID, 10, 64)
		if err != nil {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	users := make(map[int64]*User)
	if len(ids) > 0 {
		found, err := s.repository.GetUsersByIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		for _, u := range found {
			users[u.ID] = u
		}
	}

	enriched := make([]*HireRequestWithUser, 0, len(requests))
	for _, r := range requests {
		e := &HireRequestWithUser{HireStudioRequest: *r}
		if id, err := strconv.ParseInt(r.UserID, 10, 64); err == nil {
			e.User = users[id]
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

func (s *service) CreateAdsInquiry(ctx context.Context, req CreateInquiryRequest) (*AdsQuoteInquiry, error) {
	if err := validateInquiry(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	q := &AdsQuoteInquiry{
		UserID:      req.UserID,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Query:       req.Query,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repository.CreateAdsInquiry(ctx, q); err != nil {
		return nil, err
	}
	return q, nil
}

func (s *service) ListAdsInquiries(ctx context.Context) ([]*AdsQuoteInquiry, error) {
	return s.repository.ListAdsInquiries(ctx)
}
