package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var base = time.Date(2025, 6, 2, 9, 0, 0, 0, time.UTC)

func at(h, m int) time.Time {
	return time.Date(2025, 6, 2, h, m, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"identical intervals", at(9, 0), at(10, 0), at(9, 0), at(10, 0), true},
		{"partial overlap", at(9, 0), at(10, 0), at(9, 30), at(10, 30), true},
		{"contained interval", at(9, 0), at(12, 0), at(10, 0), at(11, 0), true},
		{"back to back", at(9, 0), at(10, 0), at(10, 0), at(11, 0), false},
		{"back to back reversed", at(10, 0), at(11, 0), at(9, 0), at(10, 0), false},
		{"disjoint", at(9, 0), at(10, 0), at(11, 0), at(12, 0), false},
		{"one minute overlap", at(9, 0), at(10, 1), at(10, 0), at(11, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// overlap is symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestCovers(t *testing.T) {
	slotStart, slotEnd := at(9, 0), at(12, 0)

	assert.True(t, Covers(slotStart, slotEnd, at(9, 30), at(10, 30)))
	assert.True(t, Covers(slotStart, slotEnd, at(9, 0), at(12, 0)))
	assert.False(t, Covers(slotStart, slotEnd, at(8, 30), at(9, 30)))
	assert.False(t, Covers(slotStart, slotEnd, at(11, 0), at(13, 0)))
	assert.False(t, Covers(slotStart, slotEnd, at(8, 0), at(13, 0)))
}

func TestCoversInstant(t *testing.T) {
	slotStart, slotEnd := at(9, 0), at(12, 0)

	// bounds are inclusive, unlike the interval checks
	assert.True(t, CoversInstant(slotStart, slotEnd, at(9, 0)))
	assert.True(t, CoversInstant(slotStart, slotEnd, at(12, 0)))
	assert.True(t, CoversInstant(slotStart, slotEnd, at(10, 15)))
	assert.False(t, CoversInstant(slotStart, slotEnd, at(8, 59)))
	assert.False(t, CoversInstant(slotStart, slotEnd, at(12, 1)))
}

func TestWithinWindow(t *testing.T) {
	center := base

	assert.True(t, WithinWindow(at(9, 30), center, MemberConflictWindow))
	assert.True(t, WithinWindow(at(8, 30), center, MemberConflictWindow))
	assert.True(t, WithinWindow(center, center, MemberConflictWindow))

	// bounds are exclusive: exactly one hour away is allowed
	assert.False(t, WithinWindow(at(10, 0), center, MemberConflictWindow))
	assert.False(t, WithinWindow(at(8, 0), center, MemberConflictWindow))
	assert.False(t, WithinWindow(at(11, 0), center, MemberConflictWindow))
}

func TestConflictBounds(t *testing.T) {
	from, to := ConflictBounds(base)

	assert.Equal(t, at(8, 0), from)
	assert.Equal(t, at(10, 0), to)

	// Strict comparison against the bounds matches WithinWindow.
	for _, instant := range []time.Time{at(8, 0), at(8, 30), at(9, 0), at(9, 59), at(10, 0)} {
		inBounds := instant.After(from) && instant.Before(to)
		assert.Equal(t, WithinWindow(instant, base, MemberConflictWindow), inBounds, instant)
	}
}

func TestClassEnd(t *testing.T) {
	assert.Equal(t, at(10, 0), ClassEnd(at(9, 0)))
}
