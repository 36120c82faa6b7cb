package pt

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/GurjasChalana/fitness-club/internal/schedule"
)

// Conflict reasons, evaluated in a fixed order so rejections are
// deterministic. These strings are part of the API contract.
const (
	ReasonTrainerBusy        = "Trainer has a conflicting session"
	ReasonMemberBusy         = "Member has a conflicting session"
	ReasonRoomBooked         = "Room is already booked"
	ReasonTrainerUnavailable = "Trainer is not available in that interval"
	ReasonRoomHasClass       = "Room is occupied by a group class"
)

// checkConflict decides whether a proposed session (member, trainer,
// optional room, [start, end)) may be booked. It returns the first
// matching conflict reason, or "" when the booking is legal. excludeID is
// the session being rescheduled, or 0 on a fresh booking. It runs against
// whatever queryer the caller supplies, normally an open transaction.
func checkConflict(ctx context.Context, q sqlx.QueryerContext, memberID, trainerID int, roomID *int, start, end time.Time, excludeID int) (string, error) {
	busy, err := hasOverlappingSession(ctx, q, "trainer_id", trainerID, start, end, excludeID)
	if err != nil {
		return "", err
	}
	if busy {
		return ReasonTrainerBusy, nil
	}

	busy, err = hasOverlappingSession(ctx, q, "member_id", memberID, start, end, excludeID)
	if err != nil {
		return "", err
	}
	if busy {
		return ReasonMemberBusy, nil
	}

	if roomID != nil {
		busy, err = hasOverlappingSession(ctx, q, "room_id", *roomID, start, end, excludeID)
		if err != nil {
			return "", err
		}
		if busy {
			return ReasonRoomBooked, nil
		}
	}

	covered, err := isCovered(ctx, q, trainerID, start, end)
	if err != nil {
		return "", err
	}
	if !covered {
		return ReasonTrainerUnavailable, nil
	}

	return "", nil
}

// hasOverlappingSession tests for a SCHEDULED session sharing the given
// key whose half-open interval overlaps [start, end). The key column is
// one of the three constants above, never caller input.
func hasOverlappingSession(ctx context.Context, q sqlx.QueryerContext, keyColumn string, keyID int, start, end time.Time, excludeID int) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM personal_training_sessions
			WHERE ` + keyColumn + ` = $1 AND status = $2 AND session_id <> $5
			  AND start_time < $4 AND end_time > $3
		)
	`

	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, query, keyID, StatusScheduled, start, end, excludeID)
	return exists, err
}

// isCovered reports whether [start, end) lies fully inside one
// availability slot. Two adjacent slots that jointly span the interval do
// not count.
func isCovered(ctx context.Context, q sqlx.QueryerContext, trainerID int, start, end time.Time) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM trainer_availability
			WHERE trainer_id = $1 AND start_time <= $2 AND end_time >= $3
		)
	`, trainerID, start, end)
	return exists, err
}

// RoomHasClassConflict reports whether a SCHEDULED class in the room has
// its implicit hour overlapping [start, end). excludeClassID is the class
// being updated, or 0.
func RoomHasClassConflict(ctx context.Context, q sqlx.QueryerContext, roomID int, start, end time.Time, excludeClassID int) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM group_classes
			WHERE room_id = $1 AND status = $2 AND class_id <> $6
			  AND class_time < $4 AND class_time + make_interval(secs => $5) > $3
		)
	`, roomID, StatusScheduled, start, end, schedule.ClassDuration.Seconds(), excludeClassID)
	return exists, err
}

// RoomHasSessionConflict reports whether a SCHEDULED PT session in the
// room overlaps [start, end). Used by class scheduling.
func RoomHasSessionConflict(ctx context.Context, q sqlx.QueryerContext, roomID int, start, end time.Time) (bool, error) {
	return hasOverlappingSession(ctx, q, "room_id", roomID, start, end, 0)
}

// TrainerCoversInstant reports whether some availability slot contains
// the instant t with inclusive bounds. Class-time coverage deliberately
// differs from the interval containment used for PT sessions.
func TrainerCoversInstant(ctx context.Context, q sqlx.QueryerContext, trainerID int, t time.Time) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM trainer_availability
			WHERE trainer_id = $1 AND start_time <= $2 AND end_time >= $2
		)
	`, trainerID, t)
	return exists, err
}

// HasSessionInWindow reports whether the member has a SCHEDULED session
// starting strictly within the soft conflict window around classTime.
// Used only for class registration.
func HasSessionInWindow(ctx context.Context, q sqlx.QueryerContext, memberID int, classTime time.Time) (bool, error) {
	from, to := schedule.ConflictBounds(classTime)

	var exists bool
	err := sqlx.GetContext(ctx, q, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM personal_training_sessions
			WHERE member_id = $1 AND status = $2
			  AND start_time > $3 AND start_time < $4
		)
	`, memberID, StatusScheduled, from, to)
	return exists, err
}
