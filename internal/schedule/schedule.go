// Package schedule holds the time-interval primitives shared by the
// booking, class and registration packages. All intervals are half-open
// [start, end): two back-to-back intervals do not overlap.
//
// The conflict queries in the pt, class and trainer packages express
// these predicates in SQL so they can run inside the booking
// transactions. Overlaps, Covers and CoversInstant are the reference
// semantics those queries mirror; their unit tests pin the boundary
// behavior the SQL must match.
package schedule

import "time"

// ClassDuration is the fixed length of a group class. End of class is
// always class_time + ClassDuration.
// TODO: make this a per-class column once variable-length classes exist.
const ClassDuration = time.Hour

// MemberConflictWindow is the soft buffer around a class time used when a
// member registers: any other scheduled class or PT session starting
// within this window of the class time counts as a conflict. It is
// deliberately looser than the exact overlap test used for PT bookings.
const MemberConflictWindow = time.Hour

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Covers reports whether [start, end) lies fully inside the single
// availability window [slotStart, slotEnd]. Partial coverage across two
// adjacent windows does not count.
func Covers(slotStart, slotEnd, start, end time.Time) bool {
	return !slotStart.After(start) && !slotEnd.Before(end)
}

// CoversInstant reports whether the instant t falls inside
// [slotStart, slotEnd] with inclusive bounds. Class-time coverage uses
// this instant check rather than interval containment; keep the two apart.
func CoversInstant(slotStart, slotEnd, t time.Time) bool {
	return !slotStart.After(t) && !slotEnd.Before(t)
}

// WithinWindow reports whether t falls strictly inside
// (center-window, center+window).
func WithinWindow(t, center time.Time, window time.Duration) bool {
	return t.After(center.Add(-window)) && t.Before(center.Add(window))
}

// ConflictBounds returns the exclusive bounds of the member conflict
// window around center. An instant t conflicts exactly when
// WithinWindow(t, center, MemberConflictWindow); the SQL checks compare
// against these bounds with strict inequalities.
func ConflictBounds(center time.Time) (from, to time.Time) {
	return center.Add(-MemberConflictWindow), center.Add(MemberConflictWindow)
}

// ClassEnd returns the implicit end of a class starting at classTime.
func ClassEnd(classTime time.Time) time.Time {
	return classTime.Add(ClassDuration)
}
