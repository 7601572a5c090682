package coach

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateProfile(ctx context.Context, req CreateCoachRequest) (*CoachProfile, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoachProfile), args.Error(1)
}

func (m *MockRepository) ListProfiles(ctx context.Context) ([]CoachProfile, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CoachProfile), args.Error(1)
}

func (m *MockRepository) GetProfileByID(ctx context.Context, id string) (*CoachProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoachProfile), args.Error(1)
}

func (m *MockRepository) UpdateProfile(ctx context.Context, id string, req UpdateCoachRequest) (*CoachProfile, error) {
	args := m.Called(ctx, id, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoachProfile), args.Error(1)
}

func (m *MockRepository) DeleteProfile(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) CreateAvailability(ctx context.Context, coachID string, req CreateAvailabilityRequest) (*CoachAvailability, error) {
	args := m.Called(ctx, coachID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CoachAvailability), args.Error(1)
}

func (m *MockRepository) ListAvailabilityByCoach(ctx context.Context, coachID string) ([]CoachAvailability, error) {
	args := m.Called(ctx, coachID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]CoachAvailability), args.Error(1)
}

func (m *MockRepository) DeleteAvailability(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func dayPtr(d int) *int { return &d }

func TestService_GetCoachByID_NotFound(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetProfileByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	service := NewService(mockRepo)
	profile, err := service.GetCoachByID(context.Background(), "missing")

	assert.Nil(t, profile)
	assert.Equal(t, ErrCoachNotFound, err)
	mockRepo.AssertExpectations(t)
}

func TestService_AddAvailability(t *testing.T) {
	tests := []struct {
		name          string
		req           CreateAvailabilityRequest
		expectedError error
	}{
		{
			name: "valid slot",
			req: CreateAvailabilityRequest{
				DayOfWeek: dayPtr(1),
				StartTime: "09:00:00",
				EndTime:   "17:00:00",
			},
		},
		{
			name: "unparsable start time",
			req: CreateAvailabilityRequest{
				DayOfWeek: dayPtr(1),
				StartTime: "9am",
				EndTime:   "17:00:00",
			},
			expectedError: ErrInvalidTimeOfDay,
		},
		{
			name: "end not after start",
			req: CreateAvailabilityRequest{
				DayOfWeek: dayPtr(1),
				StartTime: "17:00:00",
				EndTime:   "09:00:00",
			},
			expectedError: ErrAvailabilityWindow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			mockRepo.On("GetProfileByID", mock.Anything, "coach-1").Return(&CoachProfile{ID: "coach-1"}, nil)

			if tt.expectedError == nil {
				mockRepo.On("CreateAvailability", mock.Anything, "coach-1", tt.req).Return(&CoachAvailability{
					ID:      "slot-1",
					CoachID: "coach-1",
				}, nil)
			}

			service := NewService(mockRepo)
			slot, err := service.AddAvailability(context.Background(), "coach-1", tt.req)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, slot)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, slot)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestService_AddAvailability_UnknownCoach(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("GetProfileByID", mock.Anything, "missing").Return(nil, sql.ErrNoRows)

	service := NewService(mockRepo)
	slot, err := service.AddAvailability(context.Background(), "missing", CreateAvailabilityRequest{
		DayOfWeek: dayPtr(1),
		StartTime: "09:00:00",
		EndTime:   "17:00:00",
	})

	assert.Nil(t, slot)
	assert.Equal(t, ErrCoachNotFound, err)
	mockRepo.AssertNotCalled(t, "CreateAvailability")
}
