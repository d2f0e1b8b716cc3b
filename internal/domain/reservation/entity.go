package reservation

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyCustomerName = errors.New("customer name cannot be empty")
	ErrCustomerNameLong  = errors.New("customer name is too long (max 100 characters)")
	ErrInvalidDuration   = errors.New("duration must be positive")
)

const (
	MaxCustomerNameLength = 100
	DefaultDurationMin    = 60
)

// Reservation is a pending request to auto-start one device. It lives in that
// device's queue until it wins a tick or is cancelled; it never expires.
type Reservation struct {
	id           uuid.UUID
	customerName string
	startTime    TimeOfDay
	durationMin  int
	isLoyal      bool
	createdAt    time.Time
}

func NewReservation(customerName string, startTime TimeOfDay, durationMin int, isLoyal bool, createdAt time.Time) (Reservation, error) {
	name := strings.TrimSpace(customerName)
	if name == "" {
		return Reservation{}, ErrEmptyCustomerName
	}
	if len([]rune(name)) > MaxCustomerNameLength {
		return Reservation{}, ErrCustomerNameLong
	}
	if durationMin == 0 {
		durationMin = DefaultDurationMin
	}
	if durationMin < 0 {
		return Reservation{}, ErrInvalidDuration
	}

	return Reservation{
		id:           uuid.New(),
		customerName: name,
		startTime:    startTime,
		durationMin:  durationMin,
		isLoyal:      isLoyal,
		createdAt:    createdAt,
	}, nil
}

func (r Reservation) ID() uuid.UUID        { return r.id }
func (r Reservation) CustomerName() string { return r.customerName }
func (r Reservation) StartTime() TimeOfDay { return r.startTime }
func (r Reservation) DurationMin() int     { return r.durationMin }
func (r Reservation) IsLoyal() bool        { return r.isLoyal }
func (r Reservation) CreatedAt() time.Time { return r.createdAt }

func (r Reservation) MatchesAt(t TimeOfDay) bool {
	return r.startTime.Equal(t)
}
