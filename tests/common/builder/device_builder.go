//go:build unit || e2e

package builder

import (
	"time"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/domain/pricing"
	"lounge-pos/internal/domain/reservation"
	"lounge-pos/internal/pkg/money"
)

type DeviceBuilder struct {
	Name         string
	IsRoom       bool
	Mode         pricing.Mode
	StartedAt    *time.Time
	Drinks       []*catalog.Drink
	Reservations []reservation.Reservation
}

func NewDeviceBuilder() *DeviceBuilder {
	return &DeviceBuilder{
		Name: "Console 1",
		Mode: pricing.ModeSingle,
	}
}

func (b *DeviceBuilder) With(mutate func(*DeviceBuilder)) *DeviceBuilder {
	mutate(b)
	return b
}

// BuildDomain replays the builder through the public device transitions, so a
// built device is always one the state machine could have produced.
func (b *DeviceBuilder) BuildDomain() (*device.Device, error) {
	d, err := device.NewDevice(b.Name, b.IsRoom)
	if err != nil {
		return nil, err
	}
	if b.Mode != d.Mode() {
		if err := d.ToggleMode(); err != nil {
			return nil, err
		}
	}
	for _, r := range b.Reservations {
		d.AddReservation(r)
	}
	if b.StartedAt != nil {
		if err := d.Start(*b.StartedAt); err != nil {
			return nil, err
		}
		for _, drink := range b.Drinks {
			if err := d.AddLineItem(drink.ID(), drink.Name(), drink.Price()); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}

func (b *DeviceBuilder) MustBuild() *device.Device {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *DeviceBuilder) WithName(name string) *DeviceBuilder {
	b.Name = name
	return b
}

func (b *DeviceBuilder) AsRoom() *DeviceBuilder {
	b.IsRoom = true
	return b
}

func (b *DeviceBuilder) WithMode(mode pricing.Mode) *DeviceBuilder {
	b.Mode = mode
	return b
}

func (b *DeviceBuilder) RunningSince(t time.Time) *DeviceBuilder {
	b.StartedAt = &t
	return b
}

func (b *DeviceBuilder) WithDrink(drink *catalog.Drink) *DeviceBuilder {
	b.Drinks = append(b.Drinks, drink)
	return b
}

func (b *DeviceBuilder) WithReservation(r reservation.Reservation) *DeviceBuilder {
	b.Reservations = append(b.Reservations, r)
	return b
}

type DrinkBuilder struct {
	Name  string
	Price string
	Stock int
}

func NewDrinkBuilder() *DrinkBuilder {
	return &DrinkBuilder{
		Name:  "Pepsi",
		Price: "10",
		Stock: 50,
	}
}

func (b *DrinkBuilder) With(mutate func(*DrinkBuilder)) *DrinkBuilder {
	mutate(b)
	return b
}

func (b *DrinkBuilder) BuildDomain() (*catalog.Drink, error) {
	return catalog.NewDrink(b.Name, money.MustParse(b.Price), b.Stock)
}

func (b *DrinkBuilder) MustBuild() *catalog.Drink {
	d, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return d
}

func (b *DrinkBuilder) WithPrice(price string) *DrinkBuilder {
	b.Price = price
	return b
}

func (b *DrinkBuilder) WithStock(stock int) *DrinkBuilder {
	b.Stock = stock
	return b
}

type ReservationBuilder struct {
	CustomerName string
	StartTime    string
	DurationMin  int
	IsLoyal      bool
	CreatedAt    time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		CustomerName: "Omar",
		StartTime:    "18:30",
		DurationMin:  60,
		CreatedAt:    time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (b *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(b)
	return b
}

func (b *ReservationBuilder) BuildDomain() (reservation.Reservation, error) {
	tod, err := reservation.ParseTimeOfDay(b.StartTime)
	if err != nil {
		return reservation.Reservation{}, err
	}
	return reservation.NewReservation(b.CustomerName, tod, b.DurationMin, b.IsLoyal, b.CreatedAt)
}

func (b *ReservationBuilder) MustBuild() reservation.Reservation {
	r, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return r
}

func (b *ReservationBuilder) At(startTime string) *ReservationBuilder {
	b.StartTime = startTime
	return b
}

func (b *ReservationBuilder) Loyal(isLoyal bool) *ReservationBuilder {
	b.IsLoyal = isLoyal
	return b
}

// CreatedAtMillis sets createdAt as a Unix millisecond timestamp.
func (b *ReservationBuilder) CreatedAtMillis(ms int64) *ReservationBuilder {
	b.CreatedAt = time.UnixMilli(ms)
	return b
}

func (b *ReservationBuilder) Named(name string) *ReservationBuilder {
	b.CustomerName = name
	return b
}
