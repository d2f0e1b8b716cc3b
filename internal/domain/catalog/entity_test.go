//go:build unit

package catalog_test

import (
	"testing"

	"lounge-pos/internal/domain/catalog"
	"lounge-pos/internal/pkg/money"
	"lounge-pos/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.DrinkBuilder)
	errIs  error
}

func TestNewDrink(t *testing.T) {
	cases := []testCase{
		{name: "valid", mutate: func(b *builder.DrinkBuilder) {}},
		{name: "zero stock is allowed", mutate: func(b *builder.DrinkBuilder) { b.Stock = 0 }},
		{name: "empty name", mutate: func(b *builder.DrinkBuilder) { b.Name = "" }, errIs: catalog.ErrEmptyDrinkName},
		{name: "zero price", mutate: func(b *builder.DrinkBuilder) { b.Price = "0" }, errIs: catalog.ErrInvalidPrice},
		{name: "negative stock", mutate: func(b *builder.DrinkBuilder) { b.Stock = -1 }, errIs: catalog.ErrNegativeStock},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			d, err := builder.NewDrinkBuilder().With(c.mutate).BuildDomain()
			if c.errIs == nil {
				require.NoError(t, err)
				require.NotNil(t, d)
				return
			}
			require.ErrorIs(t, err, c.errIs)
			assert.Nil(t, d)
		})
	}
}

func TestTake(t *testing.T) {
	d := builder.NewDrinkBuilder().WithStock(2).MustBuild()

	require.NoError(t, d.Take())
	require.NoError(t, d.Take())
	assert.Equal(t, 0, d.Stock())

	require.ErrorIs(t, d.Take(), catalog.ErrOutOfStock)
	assert.Equal(t, 0, d.Stock())
}

func TestAdjustStock(t *testing.T) {
	d := builder.NewDrinkBuilder().WithStock(5).MustBuild()

	d.AdjustStock(10)
	assert.Equal(t, 15, d.Stock())

	d.AdjustStock(-100)
	assert.Equal(t, 0, d.Stock())
}

func TestLowStockAndSearch(t *testing.T) {
	d := builder.NewDrinkBuilder().WithStock(9).MustBuild()
	assert.True(t, d.IsLowStock(catalog.DefaultLowStockThreshold))
	d.AdjustStock(1)
	assert.False(t, d.IsLowStock(catalog.DefaultLowStockThreshold))

	assert.True(t, d.MatchesName("eps"))
	assert.True(t, d.MatchesName("PEPSI"))
	assert.True(t, d.MatchesName(""))
	assert.False(t, d.MatchesName("tea"))
}

func TestUpdatePrice(t *testing.T) {
	d := builder.NewDrinkBuilder().MustBuild()
	require.ErrorIs(t, d.UpdatePrice(money.MustParse("-1")), catalog.ErrInvalidPrice)
	require.NoError(t, d.UpdatePrice(money.MustParse("12.5")))
	assert.Equal(t, "12.5", d.Price().String())
}
