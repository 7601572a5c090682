package reservation

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, courtID, userID string, start, end time.Time, status string) (*Reservation, error) {
	args := m.Called(ctx, courtID, userID, start, end, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context, filter ListFilter) ([]Reservation, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Reservation), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id string) (*Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) GetDetails(ctx context.Context, id string) (*ReservationWithDetails, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ReservationWithDetails), args.Error(1)
}

func (m *MockRepository) Update(ctx context.Context, id string, fields UpdateFields) (*Reservation, error) {
	args := m.Called(ctx, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Reservation), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockMailer records notification calls without touching redis.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) SendReservationConfirmation(ctx context.Context, to, name, court, location string, start, end time.Time) error {
	args := m.Called(ctx, to, name, court, location, start, end)
	return args.Error(0)
}

func (m *MockMailer) SendReservationCancellation(ctx context.Context, to, name, court string, start time.Time) error {
	args := m.Called(ctx, to, name, court, start)
	return args.Error(0)
}

func details(id string) *ReservationWithDetails {
	return &ReservationWithDetails{
		Reservation:  Reservation{ID: id},
		CourtName:    "Court 1",
		LocationName: "Court Club",
		UserEmail:    "member@example.com",
	}
}

func TestService_CreateReservation(t *testing.T) {
	start := "2026-09-01T10:00:00Z"
	end := "2026-09-01T11:00:00Z"

	tests := []struct {
		name          string
		req           CreateReservationRequest
		expectedError error
	}{
		{
			name: "successful create",
			req:  CreateReservationRequest{CourtID: "court-1", UserID: "user-1", StartTime: start, EndTime: end},
		},
		{
			name:          "missing fields",
			req:           CreateReservationRequest{CourtID: "court-1"},
			expectedError: ErrRequiredFields,
		},
		{
			name:          "unparsable start time",
			req:           CreateReservationRequest{CourtID: "court-1", UserID: "user-1", StartTime: "tomorrow", EndTime: end},
			expectedError: ErrInvalidTimeRange,
		},
		{
			name:          "end before start",
			req:           CreateReservationRequest{CourtID: "court-1", UserID: "user-1", StartTime: end, EndTime: start},
			expectedError: ErrInvalidTimeRange,
		},
		{
			name:          "unknown status",
			req:           CreateReservationRequest{CourtID: "court-1", UserID: "user-1", StartTime: start, EndTime: end, Status: "pending"},
			expectedError: ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockMailer := new(MockMailer)

			if tt.expectedError == nil {
				mockRepo.On("Create", mock.Anything, "court-1", "user-1", mock.Anything, mock.Anything, StatusConfirmed).
					Return(&Reservation{ID: "res-1", Status: StatusConfirmed}, nil)
				mockRepo.On("GetDetails", mock.Anything, "res-1").Return(details("res-1"), nil)
				mockMailer.On("SendReservationConfirmation", mock.Anything, "member@example.com", mock.Anything,
					"Court 1", "Court Club", mock.Anything, mock.Anything).Return(nil)
			}

			service := NewService(mockRepo, mockMailer)
			res, err := service.CreateReservation(context.Background(), tt.req)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, res)
				mockRepo.AssertNotCalled(t, "Create")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, StatusConfirmed, res.Status)
			}

			mockRepo.AssertExpectations(t)
			mockMailer.AssertExpectations(t)
		})
	}
}

func TestService_UpdateReservation_CancelSendsNotification(t *testing.T) {
	mockRepo := new(MockRepository)
	mockMailer := new(MockMailer)

	status := StatusCancelled
	mockRepo.On("Update", mock.Anything, "res-1", mock.MatchedBy(func(f UpdateFields) bool {
		return f.Status != nil && *f.Status == StatusCancelled
	})).Return(&Reservation{ID: "res-1", Status: StatusCancelled}, nil)
	mockRepo.On("GetDetails", mock.Anything, "res-1").Return(details("res-1"), nil)
	mockMailer.On("SendReservationCancellation", mock.Anything, "member@example.com", mock.Anything,
		"Court 1", mock.Anything).Return(nil)

	service := NewService(mockRepo, mockMailer)
	res, err := service.UpdateReservation(context.Background(), "res-1", UpdateReservationRequest{Status: &status})

	assert.NoError(t, err)
	assert.Equal(t, StatusCancelled, res.Status)
	mockRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestService_UpdateReservation_NoMatchIsNotFound(t *testing.T) {
	mockRepo := new(MockRepository)

	status := StatusCompleted
	mockRepo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, sql.ErrNoRows)

	service := NewService(mockRepo, nil)
	res, err := service.UpdateReservation(context.Background(), "missing", UpdateReservationRequest{Status: &status})

	assert.Nil(t, res)
	assert.Equal(t, ErrReservationNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestService_GetReservations_FilterPassthrough(t *testing.T) {
	mockRepo := new(MockRepository)
	filter := ListFilter{UserID: "user-1", CourtID: "court-1"}
	mockRepo.On("List", mock.Anything, filter).Return([]Reservation{{ID: "res-1"}}, nil)

	service := NewService(mockRepo, nil)
	reservations, err := service.GetReservations(context.Background(), filter)

	assert.NoError(t, err)
	assert.Len(t, reservations, 1)
	mockRepo.AssertExpectations(t)
}
