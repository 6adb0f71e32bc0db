package domain

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func timePtr(t time.Time) *time.Time { return &t }

func TestListing_DerivedStatus(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name    string
		listing Listing
		want    ListingStatus
	}{
		{
			name:    "published without end date stays published",
			listing: Listing{Status: ListingStatusPublished},
			want:    ListingStatusPublished,
		},
		{
			name: "published past end date reads expired",
			listing: Listing{
				Status:       ListingStatusPublished,
				EventDateEnd: timePtr(now.Add(-time.Hour)),
			},
			want: ListingStatusExpired,
		},
		{
			name: "published with future end date stays published",
			listing: Listing{
				Status:       ListingStatusPublished,
				EventDateEnd: timePtr(now.Add(time.Hour)),
			},
			want: ListingStatusPublished,
		},
		{
			name: "draft past end date stays draft",
			listing: Listing{
				Status:       ListingStatusDraft,
				EventDateEnd: timePtr(now.Add(-time.Hour)),
			},
			want: ListingStatusDraft,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.listing.DerivedStatus(now))
		})
	}
}

func TestListing_IsBookable(t *testing.T) {
	now := time.Now()

	published := Listing{Status: ListingStatusPublished}
	assert.True(t, published.IsBookable(now))

	expired := Listing{Status: ListingStatusPublished, EventDateEnd: timePtr(now.Add(-time.Minute))}
	assert.False(t, expired.IsBookable(now))

	pending := Listing{Status: ListingStatusPendingReview}
	assert.False(t, pending.IsBookable(now))
}

func TestListing_ValidateForSubmit_Service(t *testing.T) {
	now := time.Now()

	valid := Listing{
		Kind:        ListingKindService,
		Title:       "Robotics workshop",
		Category:    "robotics",
		Region:      "osrednjeslovenska",
		TargetGroup: "primary school",
		Services: []Service{
			{Title: "Intro session", PriceCents: 5000, DurationMinutes: 90},
		},
	}
	assert.NoError(t, valid.ValidateForSubmit(now))

	empty := Listing{Kind: ListingKindService}
	err := empty.ValidateForSubmit(now)
	require.Error(t, err)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "title")
	assert.Contains(t, verr.Fields, "category")
	assert.Contains(t, verr.Fields, "region")
	assert.Contains(t, verr.Fields, "target_group")
	assert.Contains(t, verr.Fields, "services")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestListing_ValidateForSubmit_ServiceChildren(t *testing.T) {
	now := time.Now()

	l := Listing{
		Kind:        ListingKindService,
		Title:       "T",
		Category:    "c",
		Region:      "r",
		TargetGroup: "g",
		Services: []Service{
			{Title: "s", PriceCents: -1, DurationMinutes: 0},
		},
		Slots: []Slot{
			{StartAt: now.Add(time.Hour), EndAt: now.Add(time.Hour)},
		},
	}

	var verr *ValidationError
	require.ErrorAs(t, l.ValidateForSubmit(now), &verr)
	assert.Contains(t, verr.Fields, "services[0].price_cents")
	assert.Contains(t, verr.Fields, "services[0].duration_minutes")
	assert.Contains(t, verr.Fields, "slots[0].end_at")
}

func TestListing_ValidateForSubmit_Event(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		start     *time.Time
		end       *time.Time
		wantField string
	}{
		{
			name:      "missing dates",
			wantField: "event_date_end",
		},
		{
			name:      "end in the past",
			start:     timePtr(now.Add(-48 * time.Hour)),
			end:       timePtr(now.Add(-24 * time.Hour)),
			wantField: "event_date_end",
		},
		{
			name:      "end before start",
			start:     timePtr(now.Add(48 * time.Hour)),
			end:       timePtr(now.Add(24 * time.Hour)),
			wantField: "event_date_end",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := Listing{
				Kind:           ListingKindEvent,
				Title:          "Science day",
				Category:       "science",
				Region:         "podravska",
				TargetGroup:    "secondary school",
				EventDateStart: tt.start,
				EventDateEnd:   tt.end,
			}

			var verr *ValidationError
			require.ErrorAs(t, l.ValidateForSubmit(now), &verr)
			assert.Contains(t, verr.Fields, tt.wantField)
		})
	}

	valid := Listing{
		Kind:           ListingKindEvent,
		Title:          "Science day",
		Category:       "science",
		Region:         "podravska",
		TargetGroup:    "secondary school",
		EventDateStart: timePtr(now.Add(24 * time.Hour)),
		EventDateEnd:   timePtr(now.Add(48 * time.Hour)),
	}
	assert.NoError(t, valid.ValidateForSubmit(now))
}

func TestListing_ValidateForSubmit_ZeroCapacityAllowed(t *testing.T) {
	now := time.Now()
	zero := 0

	l := Listing{
		Kind:        ListingKindService,
		Title:       "T",
		Category:    "c",
		Region:      "r",
		TargetGroup: "g",
		Services: []Service{
			{Title: "s", PriceCents: 0, DurationMinutes: 60, Capacity: &zero},
		},
		Slots: []Slot{
			{StartAt: now.Add(time.Hour), EndAt: now.Add(2 * time.Hour), Capacity: 0},
		},
	}

	assert.NoError(t, l.ValidateForSubmit(now))
}

func TestListing_ValidateForSubmit_DescriptionTooLong(t *testing.T) {
	l := Listing{
		Kind:        ListingKindService,
		Title:       "T",
		Category:    "c",
		Region:      "r",
		TargetGroup: "g",
		Description: strings.Repeat("x", maxDescriptionLen+1),
		Services:    []Service{{DurationMinutes: 60}},
	}

	var verr *ValidationError
	require.ErrorAs(t, l.ValidateForSubmit(time.Now()), &verr)
	assert.Contains(t, verr.Fields, "description")
}

func TestListing_FindChildren(t *testing.T) {
	l := Listing{
		Services: []Service{{ID: "s1"}, {ID: "s2"}},
		Slots:    []Slot{{ID: "sl1"}},
	}

	require.NotNil(t, l.FindService("s2"))
	assert.Equal(t, "s2", l.FindService("s2").ID)
	assert.Nil(t, l.FindService("missing"))

	require.NotNil(t, l.FindSlot("sl1"))
	assert.Nil(t, l.FindSlot("missing"))
}
