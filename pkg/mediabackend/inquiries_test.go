package mediabackend_test

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tendant/media-backend/pkg/mediabackend"
)

func TestInquiryPhoneValidation(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     mediabackend.CreateInquiryRequest
		wantErr bool
	}{
		{
			name: "valid request",
			req: mediabackend.CreateInquiryRequest{
				UserID:      "1",
				Email:       "ada@example.com",
				PhoneNumber: "+15550001111",
				Query:       "Weekend availability?",
			},
		},
		{
			name: "phone without country code",
			req: mediabackend.CreateInquiryRequest{
				UserID:      "1",
				Email:       "ada@example.com",
				PhoneNumber: "5550001111",
				Query:       "Weekend availability?",
			},
			wantErr: true,
		},
		{
			name: "missing query",
			req: mediabackend.CreateInquiryRequest{
				UserID:      "1",
				Email:       "ada@example.com",
				PhoneNumber: "+15550001111",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, hireErr := svc.CreateHireRequest(ctx, tt.req)
			_, adsErr := svc.CreateAdsInquiry(ctx, tt.req)

			if tt.wantErr {
				var ve *mediabackend.ValidationError
				assert.True(t, errors.As(hireErr, &ve))
				assert.True(t, errors.As(adsErr, &ve))
			} else {
				assert.NoError(t, hireErr)
				assert.NoError(t, adsErr)
			}
		})
	}
}

func TestListHireRequestsJoinsUsers(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	user, err := svc.RegisterUser(ctx, mediabackend.RegisterUserRequest{
		Name: "Ada", Email: "ada@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = svc.CreateHireRequest(ctx, mediabackend.CreateInquiryRequest{
		UserID:      strconv.FormatInt(user.ID, 10),
		Email:       "ada@example.com",
		PhoneNumber: "+15550001111",
		Query:       "Booking for next month",
	})
	require.NoError(t, err)

	// A request whose user id does not resolve still lists, without a
	// joined account.
	_, err = svc.CreateHireRequest(ctx, mediabackend.CreateInquiryRequest{
		UserID:      "9999",
		Email:       "ghost@example.com",
		PhoneNumber: "+15550002222",
		Query:       "Orphaned request",
	})
	require.NoError(t, err)

	requests, err := svc.ListHireRequests(ctx)
	require.NoError(t, err)
	require.Len(t, requests, 2)

	byEmail := make(map[string]*mediabackend.HireRequestWithUser)
	for _, r := range requests {
		byEmail[r.Email] = r
	}

	joined := byEmail["ada@example.com"]
	require.NotNil(t, joined)
	require.NotNil(t, joined.User)
	assert.Equal(t, user.ID, joined.User.ID)
	assert.Equal(t, "Ada", joined.User.Name)

	orphan := byEmail["ghost@example.com"]
	require.NotNil(t, orphan)
	assert.Nil(t, orphan.User)
}

func TestListAdsInquiries(t *testing.T) {
	svc, _ := setupUserService(t)
	ctx := context.Background()

	_, err := svc.CreateAdsInquiry(ctx, mediabackend.CreateInquiryRequest{
		UserID:      "1",
		Email:       "brand@example.com",
		PhoneNumber: "+15550003333",
		Query:       "Rates for a banner campaign",
	})
	require.NoError(t, err)

	inquiries, err := svc.ListAdsInquiries(ctx)
	require.NoError(t, err)
	require.Len(t, inquiries, 1)
	assert.Equal(t, "brand@example.com", inquiries[0].Email)
}
