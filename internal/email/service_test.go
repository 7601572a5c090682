package email

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/JaeMinBird/Courtly/internal/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEmailService(t *testing.T) (*Service, *miniredis.Miniredis) {
	logger.Init()

	s, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(s.Close)

	client := redis.NewClient(&redis.Options{Addr: s.Addr()})
	svc := NewWithClient("noreply@courtly.app", "Courtly", "localhost", "587", "", "", client)
	t.Cleanup(func() { svc.Close() })

	return svc, s
}

func TestSend_QueuesJob(t *testing.T) {
	svc, s := setupEmailService(t)
	ctx := context.Background()

	err := svc.Send(ctx, "member@example.com", "Alice", "test", "Subject", "Body")
	require.NoError(t, err)

	assert.Equal(t, int64(1), svc.QueueLength(ctx))

	raw, err := s.Lpop(queueKey)
	require.NoError(t, err)

	var job EmailJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "member@example.com", job.To)
	assert.Equal(t, "test", job.Type)
	assert.Equal(t, "Subject", job.Subject)
	assert.Equal(t, 0, job.Tries)
}

func TestSendReservationConfirmation_BuildsJob(t *testing.T) {
	svc, s := setupEmailService(t)
	ctx := context.Background()

	start := mustParseTime(t, "2026-09-01T10:00:00Z")
	end := mustParseTime(t, "2026-09-01T11:00:00Z")

	err := svc.SendReservationConfirmation(ctx, "member@example.com", "Alice", "Court 1", "Court Club", start, end)
	require.NoError(t, err)

	raw, err := s.Lpop(queueKey)
	require.NoError(t, err)

	var job EmailJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "reservation_confirmation", job.Type)
	assert.Contains(t, job.Subject, "Court 1")
	assert.Contains(t, job.Body, "Court Club")
}

func TestSendReservationCancellation_BuildsJob(t *testing.T) {
	svc, s := setupEmailService(t)
	ctx := context.Background()

	start := mustParseTime(t, "2026-09-01T10:00:00Z")

	err := svc.SendReservationCancellation(ctx, "member@example.com", "Alice", "Court 1", start)
	require.NoError(t, err)

	raw, err := s.Lpop(queueKey)
	require.NoError(t, err)

	var job EmailJob
	require.NoError(t, json.Unmarshal([]byte(raw), &job))
	assert.Equal(t, "reservation_cancellation", job.Type)
	assert.Contains(t, job.Subject, "Cancelled")
}

func mustParseTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func TestQueueLength_UsesLLen(t *testing.T) {
	logger.Init()

	client, mock := redismock.NewClientMock()
	svc := NewWithClient("noreply@courtly.app", "Courtly", "localhost", "587", "", "", client)

	mock.ExpectLLen(queueKey).SetVal(3)

	assert.Equal(t, int64(3), svc.QueueLength(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
