package memstore

import (
	"context"
	"fmt"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/domain/device"
	"lounge-pos/internal/pkg/errs"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/shared"
)

const (
	seedConsoles = 3
	seedRooms    = 4
)

var seedDrinks = []struct {
	name  string
	price int64
	stock int
}{
	{"Pepsi", 10, 50},
	{"Tea", 5, 100},
	{"Coffee", 15, 80},
	{"Indomie", 20, 30},
}

// Seed fills an empty store with the demo floor: a few consoles, the private
// rooms and a starter drinks menu. Non-empty stores are left untouched.
func Seed(ctx context.Context, uow shared.UnitOfWork) error {
	return uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		existing, err := tx.Devices().List(ctx)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			return nil
		}

		for i := 1; i <= seedConsoles; i++ {
			if err := seedDevice(ctx, tx, fmt.Sprintf("Console %d", i), false); err != nil {
				return err
			}
		}
		for i := 1; i <= seedRooms; i++ {
			if err := seedDevice(ctx, tx, fmt.Sprintf("Room %d", i), true); err != nil {
				return err
			}
		}

		for _, s := range seedDrinks {
			d, err := catalog.NewDrink(s.name, money.FromInt(s.price), s.stock)
			if err != nil {
				return errs.Wrapf(err, "seed drink %s", s.name)
			}
			if err := tx.Drinks().Create(ctx, d); err != nil {
				return err
			}
		}
		return nil
	})
}

func seedDevice(ctx context.Context, tx shared.Tx, name string, isRoom bool) error {
	d, err := device.NewDevice(name, isRoom)
	if err != nil {
		return errs.Wrapf(err, "seed device %s", name)
	}
	return tx.Devices().Create(ctx, d)
}
