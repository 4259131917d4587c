package lifecycle

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"khanabook-pos/models"
)

func bookingAt(tableID uint, at time.Time) BookingInput {
	return BookingInput{
		TableID:         tableID,
		CustomerName:    "Asha Rao",
		CustomerPhone:   "+919812345678",
		PartySize:       4,
		BookingDateTime: at,
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)
	slot := time.Now().Add(24 * time.Hour)

	_, err := svc.Create(bookingAt(table.ID, slot))
	require.NoError(t, err)

	// 90 minutes later is inside the two-hour window.
	_, err = svc.Create(bookingAt(table.ID, slot.Add(90*time.Minute)))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "T1")

	// Three hours later is clear.
	_, err = svc.Create(bookingAt(table.ID, slot.Add(3*time.Hour)))
	assert.NoError(t, err)

	// A different table at the same time is also fine.
	other := seedTable(t, db, "T2", models.TableAvailable)
	_, err = svc.Create(bookingAt(other.ID, slot))
	assert.NoError(t, err)
}

func TestCancelledBookingDoesNotBlockSlot(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)
	slot := time.Now().Add(24 * time.Hour)

	first, err := svc.Create(bookingAt(table.ID, slot))
	require.NoError(t, err)
	_, err = svc.Cancel(first.ID)
	require.NoError(t, err)

	_, err = svc.Create(bookingAt(table.ID, slot))
	assert.NoError(t, err)
}

func TestCreateBookingValidatesInput(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)
	slot := time.Now().Add(24 * time.Hour)

	in := bookingAt(table.ID, slot)
	in.PartySize = 0
	_, err := svc.Create(in)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	in = bookingAt(table.ID, slot)
	in.PartySize = 21
	_, err = svc.Create(in)
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.Create(bookingAt(table.ID, time.Now().Add(-time.Hour)))
	assert.True(t, errors.Is(err, ErrInvalidInput))

	_, err = svc.Create(bookingAt(999, slot))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestConfirmReservesTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, booking.Status)
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, table.ID).Status)

	confirmed, err := svc.Confirm(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
	assert.NotNil(t, confirmed.ConfirmedAt)
	assert.Equal(t, models.TableReserved, reloadTable(t, db, table.ID).Status)
}

func TestSeatOccupiesTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Confirm(booking.ID)
	require.NoError(t, err)

	seated, err := svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)
	assert.Equal(t, models.BookingSeated, seated.Status)
	assert.Equal(t, models.TableOccupied, reloadTable(t, db, table.ID).Status)
}

func TestWalkInSeatsStraightFromPending(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(time.Hour)))
	require.NoError(t, err)

	seated, err := svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)
	assert.Equal(t, models.BookingSeated, seated.Status)
	assert.Equal(t, models.TableOccupied, reloadTable(t, db, table.ID).Status)
}

func TestCancelRevertsReservedTableOnly(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Confirm(booking.ID)
	require.NoError(t, err)
	require.Equal(t, models.TableReserved, reloadTable(t, db, table.ID).Status)

	_, err = svc.Cancel(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, table.ID).Status)
}

func TestCancelSeatedBookingLeavesOccupiedTableAlone(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)

	_, err = svc.Cancel(booking.ID)
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, reloadTable(t, db, table.ID).Status)
}

func TestNoShowFromSeatedRejected(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)

	_, err = svc.UpdateStatus(booking.ID, models.BookingNoShow)
	assert.True(t, errors.Is(err, ErrInvalidTransition))
}

func TestNoShowRevertsReservedTable(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Confirm(booking.ID)
	require.NoError(t, err)

	noShow, err := svc.UpdateStatus(booking.ID, models.BookingNoShow)
	require.NoError(t, err)
	assert.Equal(t, models.BookingNoShow, noShow.Status)
	assert.Equal(t, models.TableAvailable, reloadTable(t, db, table.ID).Status)
}

func TestCompleteBookingHasNoTableSideEffect(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(time.Hour)))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)

	done, err := svc.UpdateStatus(booking.ID, models.BookingCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, done.Status)
	assert.Equal(t, models.TableOccupied, reloadTable(t, db, table.ID).Status)
}

func TestAttachOrderRequiresSeatedBooking(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	orders := NewOrderService(db, &fakeSink{})
	table := seedTable(t, db, "T1", models.TableAvailable)
	item := seedMenuItem(t, db, "Thali", 250, true)

	booking, err := svc.Create(bookingAt(table.ID, time.Now().Add(time.Hour)))
	require.NoError(t, err)

	order, err := orders.CreateOrder(CreateOrderInput{
		OrderType: models.Takeaway,
		Items:     []OrderItemInput{{MenuItemID: item.ID, Quantity: 1}},
	}, 0)
	require.NoError(t, err)

	_, err = svc.AttachOrder(booking.ID, order.ID)
	assert.True(t, errors.Is(err, ErrInvalidTransition))

	_, err = svc.UpdateStatus(booking.ID, models.BookingSeated)
	require.NoError(t, err)

	attached, err := svc.AttachOrder(booking.ID, order.ID)
	require.NoError(t, err)
	require.NotNil(t, attached.OrderID)
	assert.Equal(t, order.ID, *attached.OrderID)
}

func TestListBookingsByStatusAndRange(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)
	table := seedTable(t, db, "T1", models.TableAvailable)
	other := seedTable(t, db, "T2", models.TableAvailable)
	base := time.Now().Add(24 * time.Hour)

	first, err := svc.Create(bookingAt(table.ID, base))
	require.NoError(t, err)
	second, err := svc.Create(bookingAt(other.ID, base.Add(5*time.Hour)))
	require.NoError(t, err)
	_, err = svc.Confirm(second.ID)
	require.NoError(t, err)

	pending, err := svc.List(models.BookingPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, first.ID, pending[0].ID)

	all, err := svc.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	inRange, err := svc.ListBetween(base.Add(-time.Hour), base.Add(time.Hour))
	require.NoError(t, err)
	require.Len(t, inRange, 1)
	assert.Equal(t, first.ID, inRange[0].ID)
}

func TestBookingNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewBookingService(db)

	_, err := svc.Get(42)
	assert.True(t, errors.Is(err, ErrNotFound))
	_, err = svc.UpdateStatus(42, models.BookingConfirmed)
	assert.True(t, errors.Is(err, ErrNotFound))
}
