package device

import (
	"errors"
	"slices"
	"strings"
	"time"

	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/reservation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyDeviceName     = errors.New("device name cannot be empty")
	ErrDeviceNameTooLong   = errors.New("device name is too long (max 100 characters)")
	ErrAlreadyRunning      = errors.New("device is already running")
	ErrNotRunning          = errors.New("device is not running")
	ErrModeLocked          = errors.New("mode cannot change while a session is running")
	ErrRunningRemoval      = errors.New("running device cannot be removed")
	ErrReservationNotFound = errors.New("reservation not found on device")
)

const MaxDeviceNameLength = 100

type Device struct {
	id           uuid.UUID
	name         string
	isRoom       bool
	mode         pricing.Mode
	state        State
	reservations []reservation.Reservation
}

// NewDevice provisions an idle device in single mode.
func NewDevice(name string, isRoom bool) (*Device, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyDeviceName
	}
	if len([]rune(name)) > MaxDeviceNameLength {
		return nil, ErrDeviceNameTooLong
	}

	return &Device{
		id:     uuid.New(),
		name:   name,
		isRoom: isRoom,
		mode:   pricing.ModeSingle,
		state:  Idle{},
	}, nil
}

func (d *Device) ID() uuid.UUID      { return d.id }
func (d *Device) Name() string       { return d.name }
func (d *Device) IsRoom() bool       { return d.isRoom }
func (d *Device) Mode() pricing.Mode { return d.mode }
func (d *Device) Status() Status     { return d.state.Status() }
func (d *Device) State() State       { return d.state }

func (d *Device) IsRunning() bool {
	_, ok := d.state.(Running)
	return ok
}

func (d *Device) Running() (Running, bool) {
	r, ok := d.state.(Running)
	return r, ok
}

func (d *Device) Reservations() []reservation.Reservation {
	return slices.Clone(d.reservations)
}

// Clone returns a copy that shares nothing mutable with d.
func (d *Device) Clone() *Device {
	c := *d
	if r, ok := d.state.(Running); ok {
		c.state = r.clone()
	}
	c.reservations = slices.Clone(d.reservations)
	return &c
}

func (d *Device) Start(now time.Time) error {
	if d.IsRunning() {
		return ErrAlreadyRunning
	}
	d.state = Running{startedAt: now}
	return nil
}

// StartReserved starts the device on behalf of reservationID and removes that
// reservation from the queue. Other reservations stay pending.
func (d *Device) StartReserved(reservationID uuid.UUID, now time.Time) error {
	if d.IsRunning() {
		return ErrAlreadyRunning
	}
	if err := d.CancelReservation(reservationID); err != nil {
		return err
	}
	d.state = Running{startedAt: now}
	return nil
}

// Stop moves the device back to Idle and hands back the closed session state.
func (d *Device) Stop() (Running, error) {
	r, ok := d.state.(Running)
	if !ok {
		return Running{}, ErrNotRunning
	}
	d.state = Idle{}
	return r, nil
}

func (d *Device) ToggleMode() error {
	if d.IsRunning() {
		return ErrModeLocked
	}
	d.mode = d.mode.Toggled()
	return nil
}

// AddLineItem adds one unit of a drink to the open basket, merging with an
// existing line for the same drink.
func (d *Device) AddLineItem(drinkID uuid.UUID, name string, unitPrice decimal.Decimal) error {
	r, ok := d.state.(Running)
	if !ok {
		return ErrNotRunning
	}
	r = r.clone()
	idx := slices.IndexFunc(r.basket, func(l LineItem) bool { return l.drinkID == drinkID })
	if idx >= 0 {
		r.basket[idx].quantity++
	} else {
		r.basket = append(r.basket, LineItem{drinkID: drinkID, name: name, unitPrice: unitPrice, quantity: 1})
	}
	d.state = r
	return nil
}

func (d *Device) AddReservation(r reservation.Reservation) {
	d.reservations = append(d.reservations, r)
}

func (d *Device) CancelReservation(id uuid.UUID) error {
	idx := slices.IndexFunc(d.reservations, func(r reservation.Reservation) bool { return r.ID() == id })
	if idx < 0 {
		return ErrReservationNotFound
	}
	d.reservations = slices.Delete(d.reservations, idx, idx+1)
	return nil
}

func (d *Device) EnsureRemovable() error {
	if d.IsRunning() {
		return ErrRunningRemoval
	}
	return nil
}
