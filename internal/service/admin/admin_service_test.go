package admin

import (
	"context"
	"testing"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
	"github.com/Domenick1991/sunshinehotel/internal/hotelapi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAPI struct {
	mock.Mock
}

func (m *MockAPI) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockAPI) ListFeedbacks(ctx context.Context) ([]domain.Feedback, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Feedback), args.Error(1)
}

var adminSession = &domain.Session{ID: "a1", Role: domain.RoleAdmin}

func bookingsWith(statuses ...domain.BookingStatus) []domain.Booking {
	out := make([]domain.Booking, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, domain.Booking{Status: s})
	}
	return out
}

func TestComputeStats(t *testing.T) {
	testCases := []struct {
		name      string
		bookings  []domain.Booking
		feedbacks []domain.Feedback
		rooms     int
		want      Stats
	}{
		{
			name:  "empty",
			rooms: 60,
			want:  Stats{TotalRooms: 60, Vacant: 60},
		},
		{
			name: "pending counts as occupied",
			bookings: bookingsWith(domain.BookingStatusPending, domain.BookingStatusConfirmed,
				domain.BookingStatusConfirmed, domain.BookingStatusCancelled),
			feedbacks: []domain.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 0}},
			rooms:     60,
			want: Stats{
				TotalBookings: 4, Pending: 1, Confirmed: 2, Cancelled: 1,
				Occupied: 3, Vacant: 57, TotalRooms: 60,
				Feedbacks: 3, RatedCount: 2, AverageRating: 4.5,
			},
		},
		{
			name:     "overbooked never goes negative",
			bookings: bookingsWith(domain.BookingStatusConfirmed, domain.BookingStatusConfirmed, domain.BookingStatusPending),
			rooms:    2,
			want:     Stats{TotalBookings: 3, Pending: 1, Confirmed: 2, Occupied: 3, Vacant: 0, TotalRooms: 2},
		},
		{
			name:      "average rounded to one decimal",
			feedbacks: []domain.Feedback{{Rating: 5}, {Rating: 4}, {Rating: 4}},
			rooms:     60,
			want:      Stats{TotalRooms: 60, Vacant: 60, Feedbacks: 3, RatedCount: 3, AverageRating: 4.3},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputeStats(tc.bookings, tc.feedbacks, tc.rooms)
			assert.Equal(t, tc.want, *got)
		})
	}
}

func TestAdminService_Authorization(t *testing.T) {
	api := &MockAPI{}
	service := NewAdminService(api, 60)
	ctx := context.Background()

	_, err := service.Bookings(ctx, nil)
	assert.ErrorIs(t, err, domain.ErrUnauthenticated)

	_, err = service.Feedbacks(ctx, &domain.Session{ID: "g", Token: "t", Role: domain.RoleGuest})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	_, err = service.Stats(ctx, &domain.Session{ID: "g", Role: domain.RoleGuest})
	assert.ErrorIs(t, err, domain.ErrForbidden)

	api.AssertNotCalled(t, "ListAllBookings", mock.Anything)
}

func TestAdminService_Stats(t *testing.T) {
	api := &MockAPI{}
	service := NewAdminService(api, 60)
	ctx := context.Background()

	api.On("ListAllBookings", ctx).Return(bookingsWith(domain.BookingStatusConfirmed), nil).Once()
	api.On("ListFeedbacks", ctx).Return([]domain.Feedback{{Rating: 3}}, nil).Once()

	st, err := service.Stats(ctx, adminSession)

	require.NoError(t, err)
	assert.Equal(t, 1, st.Confirmed)
	assert.Equal(t, 59, st.Vacant)
	assert.Equal(t, 3.0, st.AverageRating)
	api.AssertExpectations(t)
}

func TestAdminService_Stats_APIFailure(t *testing.T) {
	api := &MockAPI{}
	service := NewAdminService(api, 60)
	ctx := context.Background()

	api.On("ListAllBookings", ctx).Return(nil, hotelapi.ErrUnavailable).Once()

	_, err := service.Stats(ctx, adminSession)

	assert.ErrorIs(t, err, hotelapi.ErrUnavailable)
	api.AssertNotCalled(t, "ListFeedbacks", mock.Anything)
}

func TestAdminService_Listings(t *testing.T) {
	api := &MockAPI{}
	service := NewAdminService(api, 60)
	ctx := context.Background()

	api.On("ListAllBookings", ctx).Return(bookingsWith(domain.BookingStatusPending, domain.BookingStatusCancelled), nil).Once()
	api.On("ListFeedbacks", ctx).Return([]domain.Feedback{{Name: "Asha", Feedback: "Great stay"}}, nil).Once()

	bookings, err := service.Bookings(ctx, adminSession)
	require.NoError(t, err)
	assert.Len(t, bookings, 2)

	feedbacks, err := service.Feedbacks(ctx, adminSession)
	require.NoError(t, err)
	assert.Equal(t, "Great stay", feedbacks[0].Text())
}
