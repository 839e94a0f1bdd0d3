package upstream

import (
	"context"
	"fmt"

	"github.com/kushal272003/tourbooking/internal/domain"
)

type BookingsService struct {
	c *Client
}

type PassengerPayload struct {
	Name    string `json:"name"`
	Age     int    `json:"age"`
	Gender  string `json:"gender,omitempty"`
	IDProof string `json:"idProof,omitempty"`
}

// BookingRequest mirrors the upstream create-booking body: one primary
// passenger with full details, the rest with name/age at minimum.
type BookingRequest struct {
	UserID               int64              `json:"userId"`
	TourID               int64              `json:"tourId"`
	NumberOfSeats        int                `json:"numberOfSeats"`
	ContactEmail         string             `json:"contactEmail"`
	ContactPhone         string             `json:"contactPhone"`
	PrimaryPassenger     PassengerPayload   `json:"primaryPassenger"`
	AdditionalPassengers []PassengerPayload `json:"additionalPassengers"`
}

func (s *BookingsService) Create(ctx context.Context, req BookingRequest) (domain.Booking, error) {
	var out domain.Booking
	err := s.c.post(ctx, "/bookings", nil, req, &out)
	return out, err
}

func (s *BookingsService) List(ctx context.Context) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.c.get(ctx, "/bookings", nil, &out)
	return out, err
}

func (s *BookingsService) Get(ctx context.Context, id int64) (domain.Booking, error) {
	var out domain.Booking
	err := s.c.get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &out)
	return out, err
}

func (s *BookingsService) ByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.c.get(ctx, fmt.Sprintf("/bookings/user/%d", userID), nil, &out)
	return out, err
}

func (s *BookingsService) ByTour(ctx context.Context, tourID int64) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.c.get(ctx, fmt.Sprintf("/bookings/tour/%d", tourID), nil, &out)
	return out, err
}

func (s *BookingsService) ByStatus(ctx context.Context, status domain.BookingStatus) ([]domain.Booking, error) {
	var out []domain.Booking
	err := s.c.get(ctx, "/bookings/status/"+string(status), nil, &out)
	return out, err
}

func (s *BookingsService) Confirm(ctx context.Context, id int64) (domain.Booking, error) {
	var out domain.Booking
	err := s.c.put(ctx, fmt.Sprintf("/bookings/%d/confirm", id), nil, nil, &out)
	return out, err
}

func (s *BookingsService) Cancel(ctx context.Context, id int64) (domain.Booking, error) {
	var out domain.Booking
	err := s.c.put(ctx, fmt.Sprintf("/bookings/%d/cancel", id), nil, nil, &out)
	return out, err
}

func (s *BookingsService) Complete(ctx context.Context, id int64) (domain.Booking, error) {
	var out domain.Booking
	err := s.c.put(ctx, fmt.Sprintf("/bookings/%d/complete", id), nil, nil, &out)
	return out, err
}

func (s *BookingsService) Delete(ctx context.Context, id int64) error {
	return s.c.delete(ctx, fmt.Sprintf("/bookings/%d", id), nil, nil)
}
