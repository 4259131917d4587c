package lifecycle

import "errors"

// Failure taxonomy for lifecycle operations. Handlers match these with
// errors.Is to pick a response status; the engine never retries any of them.
var (
	// ErrNotFound: a referenced order, table, booking, menu item or prep-time
	// record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidTransition: the requested status change is not permitted from
	// the entity's current state. No mutation is applied.
	ErrInvalidTransition = errors.New("invalid state transition")

	// ErrNotEditable: an edit was attempted outside PENDING or outside the
	// edit window.
	ErrNotEditable = errors.New("order not editable")

	// ErrInvalidInput: unavailable menu item, out-of-range prep time, missing
	// required field, or overlapping booking.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBillDispatch: the notification sink failed. The order stays
	// COMPLETED and the bill-sent flag stays false for a manual resend.
	ErrBillDispatch = errors.New("bill dispatch failed")
)
