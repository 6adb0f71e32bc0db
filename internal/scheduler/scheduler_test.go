package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Miki0195/delavnice-backend/internal/domain"
	"github.com/Miki0195/delavnice-backend/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSweeper_Tick_ExpiresAndCompletes(t *testing.T) {
	listings := mocks.NewMockListingExpirer(t)
	reservations := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(listings, reservations, 50*time.Millisecond, log)

	expired := []*domain.Listing{
		{ID: "l1", Status: domain.ListingStatusExpired},
	}
	completed := []*domain.Reservation{
		{ID: "r1", Status: domain.ReservationStatusCompleted},
	}
	listings.EXPECT().ExpireDue(mock.Anything).Return(expired, nil)
	reservations.EXPECT().CompleteDue(mock.Anything).Return(completed, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(listings.Calls), 1)
	assert.GreaterOrEqual(t, len(reservations.Calls), 1)
}

func TestSweeper_Tick_ExpireErrorDoesNotStopCompletion(t *testing.T) {
	listings := mocks.NewMockListingExpirer(t)
	reservations := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(listings, reservations, 50*time.Millisecond, log)

	listings.EXPECT().ExpireDue(mock.Anything).Return(nil, errors.New("db error"))
	reservations.EXPECT().CompleteDue(mock.Anything).Return(nil, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(listings.Calls), 1)
	assert.GreaterOrEqual(t, len(reservations.Calls), 1)
}

func TestSweeper_StopsOnContextCancel(t *testing.T) {
	listings := mocks.NewMockListingExpirer(t)
	reservations := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(listings, reservations, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("sweeper did not stop on context cancel")
	}
}

func TestSweeper_MultipleTicks(t *testing.T) {
	listings := mocks.NewMockListingExpirer(t)
	reservations := mocks.NewMockReservationCompleter(t)
	log := newTestLogger(t)

	s := New(listings, reservations, 30*time.Millisecond, log)

	listings.EXPECT().ExpireDue(mock.Anything).Return(nil, nil).Times(3)
	reservations.EXPECT().CompleteDue(mock.Anything).Return(nil, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(listings.Calls), 3)
}
