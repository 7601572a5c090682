package reservation

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/JaeMinBird/Courtly/internal/logger"
	"github.com/JaeMinBird/Courtly/internal/metrics"
)

var (
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRequiredFields      = errors.New("court id, user id, start time and end time are required")
	ErrInvalidTimeRange    = errors.New("invalid time range")
	ErrInvalidStatus       = errors.New("invalid status")
)

var validStatuses = map[string]bool{
	StatusConfirmed: true,
	StatusCancelled: true,
	StatusCompleted: true,
}

// Mailer queues reservation notifications; delivery is best effort.
type Mailer interface {
	SendReservationConfirmation(ctx context.Context, to, name, court, location string, start, end time.Time) error
	SendReservationCancellation(ctx context.Context, to, name, court string, start time.Time) error
}

type Service interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error)
	GetReservations(ctx context.Context, filter ListFilter) ([]Reservation, error)
	GetReservationByID(ctx context.Context, id string) (*Reservation, error)
	UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (*Reservation, error)
	DeleteReservation(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	mailer Mailer
}

func NewService(repo Repository, mailer Mailer) Service {
	return &service{
		repo:   repo,
		mailer: mailer,
	}
}

func (s *service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	if req.CourtID == "" || req.UserID == "" || req.StartTime == "" || req.EndTime == "" {
		return nil, ErrRequiredFields
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, ErrInvalidTimeRange
	}

	if !end.After(start) {
		return nil, ErrInvalidTimeRange
	}

	status := req.Status
	if status == "" {
		status = StatusConfirmed
	}
	if !validStatuses[status] {
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.Create(ctx, req.CourtID, req.UserID, start, end, status)
	if err != nil {
		return nil, err
	}

	metrics.RecordReservation(res.Status)
	s.notifyConfirmation(ctx, res.ID)

	return res, nil
}

func (s *service) GetReservations(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) GetReservationByID(ctx context.Context, id string) (*Reservation, error) {
	res, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return res, nil
}

func (s *service) UpdateReservation(ctx context.Context, id string, req UpdateReservationRequest) (*Reservation, error) {
	fields := UpdateFields{
		CourtID: req.CourtID,
		UserID:  req.UserID,
	}

	if req.StartTime != nil {
		start, err := time.Parse(time.RFC3339, *req.StartTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		fields.StartTime = &start
	}

	if req.EndTime != nil {
		end, err := time.Parse(time.RFC3339, *req.EndTime)
		if err != nil {
			return nil, ErrInvalidTimeRange
		}
		fields.EndTime = &end
	}

	if req.Status != nil {
		if !validStatuses[*req.Status] {
			return nil, ErrInvalidStatus
		}
		fields.Status = req.Status
	}

	res, err := s.repo.Update(ctx, id, fields)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	if fields.Status != nil && *fields.Status == StatusCancelled {
		metrics.RecordReservationCancellation()
		s.notifyCancellation(ctx, res.ID)
	}

	return res, nil
}

func (s *service) DeleteReservation(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *service) notifyConfirmation(ctx context.Context, id string) {
	if s.mailer == nil {
		return
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		logger.Errorf("Failed to load reservation %s for confirmation email: %v", id, err)
		return
	}

	name := details.UserEmail
	if details.UserName != nil {
		name = *details.UserName
	}

	if err := s.mailer.SendReservationConfirmation(ctx, details.UserEmail, name,
		details.CourtName, details.LocationName, details.StartTime, details.EndTime); err != nil {
		logger.Errorf("Failed to queue confirmation email for reservation %s: %v", id, err)
	}
}

func (s *service) notifyCancellation(ctx context.Context, id string) {
	if s.mailer == nil {
		return
	}

	details, err := s.repo.GetDetails(ctx, id)
	if err != nil {
		logger.Errorf("Failed to load reservation %s for cancellation email: %v", id, err)
		return
	}

	name := details.UserEmail
	if details.UserName != nil {
		name = *details.UserName
	}

	if err := s.mailer.SendReservationCancellation(ctx, details.UserEmail, name,
		details.CourtName, details.StartTime); err != nil {
		logger.Errorf("Failed to queue cancellation email for reservation %s: %v", id, err)
	}
}
