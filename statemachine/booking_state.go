package statemachine

import (
	"errors"

	"khanabook-pos/models"
)

// bookingTransitions mirrors orderTransitions for table bookings.
// CANCELLED is reachable from everything except COMPLETED and NO_SHOW;
// NO_SHOW only applies before the party is seated.
var bookingTransitions = map[models.BookingStatus][]models.BookingStatus{
	models.BookingPending:   {models.BookingConfirmed, models.BookingSeated, models.BookingCancelled, models.BookingNoShow},
	models.BookingConfirmed: {models.BookingSeated, models.BookingCancelled, models.BookingNoShow},
	models.BookingSeated:    {models.BookingCompleted, models.BookingCancelled},
	models.BookingCancelled: {models.BookingCancelled},
	models.BookingCompleted: {},
	models.BookingNoShow:    {},
}

// BookingTransitionsFrom returns all valid next states from a given state
func BookingTransitionsFrom(status models.BookingStatus) []models.BookingStatus {
	return bookingTransitions[status]
}

// BookingCanTransition checks whether a booking may move from one state to another
func BookingCanTransition(from, to models.BookingStatus) error {
	for _, next := range bookingTransitions[from] {
		if next == to {
			return nil
		}
	}
	return errors.New(
		"invalid transition: " + string(from) + " -> " + string(to) +
			". Valid transitions from " + string(from) + " are: " + describe(bookingStatusNames(bookingTransitions[from])),
	)
}

func bookingStatusNames(statuses []models.BookingStatus) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}
