package admin

import (
	"context"
	"math"

	"github.com/Domenick1991/sunshinehotel/internal/domain"
)

type AdminUseCase interface {
	Bookings(ctx context.Context, sess *domain.Session) ([]domain.Booking, error)
	Feedbacks(ctx context.Context, sess *domain.Session) ([]domain.Feedback, error)
	Stats(ctx context.Context, sess *domain.Session) (*Stats, error)
}

type API interface {
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)
	ListFeedbacks(ctx context.Context) ([]domain.Feedback, error)
}

// Stats feeds the dashboard cards and the status chart.
type Stats struct {
	TotalBookings int     `json:"totalBookings"`
	Pending       int     `json:"pending"`
	Confirmed     int     `json:"confirmed"`
	Cancelled     int     `json:"cancelled"`
	Occupied      int     `json:"occupied"`
	Vacant        int     `json:"vacant"`
	TotalRooms    int     `json:"totalRooms"`
	Feedbacks     int     `json:"feedbacks"`
	RatedCount    int     `json:"ratedCount"`
	AverageRating float64 `json:"averageRating"`
}

type AdminService struct {
	api        API
	totalRooms int
}

func NewAdminService(api API, totalRooms int) *AdminService {
	return &AdminService{api: api, totalRooms: totalRooms}
}

func authorize(sess *domain.Session) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	if !sess.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

func (s *AdminService) Bookings(ctx context.Context, sess *domain.Session) ([]domain.Booking, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	return s.api.ListAllBookings(ctx)
}

func (s *AdminService) Feedbacks(ctx context.Context, sess *domain.Session) ([]domain.Feedback, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	return s.api.ListFeedbacks(ctx)
}

func (s *AdminService) Stats(ctx context.Context, sess *domain.Session) (*Stats, error) {
	if err := authorize(sess); err != nil {
		return nil, err
	}
	bookings, err := s.api.ListAllBookings(ctx)
	if err != nil {
		return nil, err
	}
	feedbacks, err := s.api.ListFeedbacks(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeStats(bookings, feedbacks, s.totalRooms), nil
}

// ComputeStats counts every non-cancelled booking as holding a room, whatever its status.
func ComputeStats(bookings []domain.Booking, feedbacks []domain.Feedback, totalRooms int) *Stats {
	st := &Stats{
		TotalBookings: len(bookings),
		TotalRooms:    totalRooms,
		Feedbacks:     len(feedbacks),
	}
	for _, b := range bookings {
		switch b.Status {
		case domain.BookingStatusPending:
			st.Pending++
		case domain.BookingStatusConfirmed:
			st.Confirmed++
		case domain.BookingStatusCancelled:
			st.Cancelled++
		}
		if b.Status != domain.BookingStatusCancelled {
			st.Occupied++
		}
	}
	st.Vacant = max(0, totalRooms-st.Occupied)

	sum := 0
	for _, f := range feedbacks {
		if f.Rating > 0 {
			sum += f.Rating
			st.RatedCount++
		}
	}
	if st.RatedCount > 0 {
		st.AverageRating = math.Round(float64(sum)/float64(st.RatedCount)*10) / 10
	}
	return st
}

var _ AdminUseCase = (*AdminService)(nil)
