package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftDecision(t *testing.T) {
	tests := []struct {
		name      string
		capacity  int
		committed int
		delta     int
		accepted  bool
		remaining int
	}{
		{
			// may fit after a cancellation, so it queues as pending
			name:      "fits the declared total while currently full",
			capacity:  10,
			committed: 6,
			delta:     5,
			accepted:  true,
			remaining: 4,
		},
		{
			name:      "could never fit",
			capacity:  10,
			committed: 0,
			delta:     12,
			accepted:  false,
			remaining: 10,
		},
		{
			name:      "exactly the declared total",
			capacity:  10,
			committed: 10,
			delta:     10,
			accepted:  true,
			remaining: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := softDecision(tt.capacity, tt.committed, tt.delta)

			assert.Equal(t, tt.accepted, d.Accepted)
			assert.Equal(t, tt.remaining, d.Remaining)
		})
	}
}
