//go:build unit

package response

import (
	"testing"

	"lounge-pos/internal/pkg/money"
	"lounge-pos/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyViewFormatsAmounts(t *testing.T) {
	var res DrinkResponse
	require.NoError(t, copyView(&res, &queries.DrinkView{ID: uuid.New(), Name: "Tea", Price: money.MustParse("7.5"), Stock: 3}))
	assert.Equal(t, "7.50", res.Price)
	assert.Equal(t, 3, res.Stock)
}

func TestCopyViewReturnsErrors(t *testing.T) {
	var res DrinkResponse
	assert.Error(t, copyView(res, &queries.DrinkView{}), "destination must be addressable")
	assert.Error(t, copyView(&res, (*queries.DrinkView)(nil)))
}

func TestMappersPropagateCopyErrors(t *testing.T) {
	assert.NotPanics(t, func() {
		_, err := FromDrinkView(nil)
		assert.Error(t, err)

		_, err = FromHistoryEntry(nil)
		assert.Error(t, err)

		_, err = FromDailyStatsView(nil)
		assert.Error(t, err)
	})
}
