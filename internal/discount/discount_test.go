package discount

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func window(start, end string) Discount {
	return Discount{
		ID:           1,
		Code:         "SAVE10",
		Value:        10,
		DiscountType: TypePercent,
		IsActive:     true,
		StartDate:    start,
		EndDate:      end,
	}
}

func TestMatchesCodeEquality(t *testing.T) {
	d := window("2026-01-01T00:00:00Z", "2026-12-31T23:59:59Z")
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, d.Matches("SAVE10", now))
	assert.True(t, d.Matches("save10", now), "case-insensitive")
	assert.True(t, d.Matches("  Save10  ", now), "trimmed")
	assert.False(t, d.Matches("SAVE20", now))
	assert.False(t, d.Matches("", now))
}

func TestMatchesWindowBoundariesInclusive(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)
	d := window(start.Format(time.RFC3339), end.Format(time.RFC3339))

	assert.True(t, d.Matches("SAVE10", start), "exactly at start_date is valid")
	assert.True(t, d.Matches("SAVE10", end), "exactly at end_date is valid")
	assert.False(t, d.Matches("SAVE10", start.Add(-time.Second)))
	assert.False(t, d.Matches("SAVE10", end.Add(time.Second)))
}

func TestMatchesInactive(t *testing.T) {
	d := window("2026-01-01T00:00:00Z", "2026-12-31T00:00:00Z")
	d.IsActive = false
	assert.False(t, d.Matches("SAVE10", time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)))
}

func TestMatchesDateOnlyFallback(t *testing.T) {
	d := window("2026-03-01", "2026-03-31")
	assert.True(t, d.Matches("SAVE10", time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)))
}

func TestServiceFind(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	svc := NewService(NewInMemoryRepository([]Discount{
		window("2026-01-01T00:00:00Z", "2026-12-31T00:00:00Z"),
		{ID: 2, Code: "FLAT5", Value: 5, DiscountType: TypeFixed, IsActive: true,
			StartDate: "2026-01-01T00:00:00Z", EndDate: "2026-12-31T00:00:00Z"},
	}))

	found, err := svc.Find(context.Background(), "flat5", now)
	require.NoError(t, err)
	assert.Equal(t, 2, found.ID)

	_, err = svc.Find(context.Background(), "NOPE", now)
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestServiceFindEmptyList(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))
	_, err := svc.Find(context.Background(), "SAVE10", time.Now())
	assert.ErrorIs(t, err, ErrNoData)
}
