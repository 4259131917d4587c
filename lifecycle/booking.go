package lifecycle

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"khanabook-pos/models"
	"khanabook-pos/statemachine"
)

// BookingOverlapWindow rejects a new booking when another active booking for
// the same table falls within this interval either side of the requested time.
const BookingOverlapWindow = 2 * time.Hour

const (
	minPartySize = 1
	maxPartySize = 20
)

// activeBookingStatuses are the statuses that still hold a claim on a table's
// time slot.
var activeBookingStatuses = []models.BookingStatus{
	models.BookingPending,
	models.BookingConfirmed,
	models.BookingSeated,
}

// BookingService owns the table-booking state machine and its table-status
// side effects.
type BookingService struct {
	db *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{db: db}
}

type BookingInput struct {
	TableID         uint      `json:"table_id" binding:"required"`
	CustomerName    string    `json:"customer_name" binding:"required"`
	CustomerPhone   string    `json:"customer_phone" binding:"required"`
	CustomerEmail   string    `json:"customer_email"`
	PartySize       int       `json:"party_size" binding:"required"`
	BookingDateTime time.Time `json:"booking_date_time" binding:"required"`
	SpecialRequests string    `json:"special_requests"`
}

// Create registers a new PENDING booking. The table's status is untouched
// until the booking is confirmed.
func (s *BookingService) Create(in BookingInput) (*models.Booking, error) {
	if in.PartySize < minPartySize || in.PartySize > maxPartySize {
		return nil, fmt.Errorf("%w: party size must be between %d and %d", ErrInvalidInput, minPartySize, maxPartySize)
	}
	if !in.BookingDateTime.After(time.Now()) {
		return nil, fmt.Errorf("%w: booking time must be in the future", ErrInvalidInput)
	}

	var booking models.Booking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		table, err := getTable(tx, in.TableID)
		if err != nil {
			return err
		}

		var overlapping int64
		if err := tx.Model(&models.Booking{}).
			Where("table_id = ? AND status IN ?", table.ID, activeBookingStatuses).
			Where("booking_date_time BETWEEN ? AND ?",
				in.BookingDateTime.Add(-BookingOverlapWindow),
				in.BookingDateTime.Add(BookingOverlapWindow)).
			Count(&overlapping).Error; err != nil {
			return err
		}
		if overlapping > 0 {
			return fmt.Errorf("%w: table %s already booked for a nearby time slot", ErrInvalidInput, table.Name)
		}

		booking = models.Booking{
			TableID:         table.ID,
			CustomerName:    in.CustomerName,
			CustomerPhone:   in.CustomerPhone,
			CustomerEmail:   in.CustomerEmail,
			PartySize:       in.PartySize,
			BookingDateTime: in.BookingDateTime,
			Status:          models.BookingPending,
			SpecialRequests: in.SpecialRequests,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(booking.ID)
}

// Get returns a single booking with its table.
func (s *BookingService) Get(id uint) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.Preload("Table").First(&booking, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: booking %d", ErrNotFound, id)
		}
		return nil, err
	}
	return &booking, nil
}

// List returns bookings optionally filtered by status, soonest first.
func (s *BookingService) List(status models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	query := s.db.Preload("Table")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("booking_date_time asc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// ListBetween returns bookings whose time falls inside [start, end].
func (s *BookingService) ListBetween(start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	if err := s.db.Preload("Table").
		Where("booking_date_time BETWEEN ? AND ?", start, end).
		Order("booking_date_time asc").
		Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// UpdateStatus moves a booking along the state machine and applies the
// table-status side effects. The table release on COMPLETED belongs to the
// order lifecycle, not here.
func (s *BookingService) UpdateStatus(id uint, next models.BookingStatus) (*models.Booking, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: booking %d", ErrNotFound, id)
			}
			return err
		}
		if err := statemachine.BookingCanTransition(booking.Status, next); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidTransition, err)
		}

		booking.Status = next
		switch next {
		case models.BookingConfirmed:
			now := time.Now()
			booking.ConfirmedAt = &now
			if err := reserveTable(tx, booking.TableID); err != nil {
				return err
			}
		case models.BookingSeated:
			if err := seatTable(tx, booking.TableID); err != nil {
				return err
			}
		case models.BookingCancelled, models.BookingNoShow:
			// Frees the table only while it is still RESERVED; an OCCUPIED
			// table belongs to whatever order is running on it.
			if err := revertReservedTable(tx, booking.TableID); err != nil {
				return err
			}
		case models.BookingCompleted:
			// No table side effect.
		}

		return tx.Save(&booking).Error
	})
	if err != nil {
		return nil, err
	}
	return s.Get(id)
}

// Confirm is the PENDING -> CONFIRMED transition.
func (s *BookingService) Confirm(id uint) (*models.Booking, error) {
	return s.UpdateStatus(id, models.BookingConfirmed)
}

// Cancel moves the booking to CANCELLED.
func (s *BookingService) Cancel(id uint) (*models.Booking, error) {
	return s.UpdateStatus(id, models.BookingCancelled)
}

// AttachOrder links the order opened for a seated party to its booking.
func (s *BookingService) AttachOrder(id, orderID uint) (*models.Booking, error) {
	booking, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if booking.Status != models.BookingSeated {
		return nil, fmt.Errorf("%w: can only attach an order to a seated booking", ErrInvalidTransition)
	}
	if err := s.db.Model(booking).Update("order_id", orderID).Error; err != nil {
		return nil, err
	}
	return s.Get(id)
}
