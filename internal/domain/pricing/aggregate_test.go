package pricing

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Run("empty list yields zero totals", func(t *testing.T) {
		totals := Aggregate(nil)
		assert.True(t, totals.TotalSetup.IsZero())
		assert.True(t, totals.TotalMonthly.IsZero())
	})

	t.Run("single item", func(t *testing.T) {
		item := LineItem{SetupFee: decimal.NewFromInt(3000), MonthlyFee: decimal.NewFromInt(1324), Quantity: 1}
		totals := Aggregate([]LineItem{item})
		assert.True(t, totals.TotalSetup.Equal(item.SetupFee))
		assert.True(t, totals.TotalMonthly.Equal(item.MonthlyFee))
	})

	t.Run("quantity weights monthly fee only and defaults to one", func(t *testing.T) {
		items := []LineItem{
			{SetupFee: decimal.NewFromInt(100), MonthlyFee: decimal.RequireFromString("10.50"), Quantity: 3},
			{SetupFee: decimal.NewFromInt(50), MonthlyFee: decimal.NewFromInt(20)},
		}
		totals := Aggregate(items)
		assert.Equal(t, "150.00", totals.TotalSetup.StringFixed(2))
		assert.Equal(t, "51.50", totals.TotalMonthly.StringFixed(2))
	})
}

func TestPrice_JSON(t *testing.T) {
	var prices []Price
	require.NoError(t, json.Unmarshal([]byte(`[27, "3.50", "a-combinar", 0]`), &prices))
	require.Len(t, prices, 4)

	amount, ok := prices[1].Amount()
	require.True(t, ok)
	assert.Equal(t, "3.50", amount.StringFixed(2))
	assert.True(t, prices[2].IsNegotiable())
	assert.False(t, prices[3].IsNegotiable())

	out, err := json.Marshal(prices)
	require.NoError(t, err)
	assert.JSONEq(t, `[27, 3.5, "a-combinar", 0]`, string(out))

	var p Price
	assert.Error(t, json.Unmarshal([]byte(`null`), &p))
	assert.Error(t, json.Unmarshal([]byte(`"barato"`), &p))
}

func TestPriceTable_Validate(t *testing.T) {
	require.NoError(t, DefaultPriceTable().Validate())

	table := DefaultPriceTable()
	table.PABX[1].UpTo = 5
	table.VM.VCPUPrice = FixedInt(-1)

	err := table.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidPriceTable))

	var tableErr *PriceTableError
	require.True(t, errors.As(err, &tableErr))
	assert.Len(t, tableErr.Problems, 2)
}

func TestPriceTable_JSONRoundTripKeepsNegotiableBrackets(t *testing.T) {
	raw, err := json.Marshal(DefaultPriceTable())
	require.NoError(t, err)

	var decoded PriceTable
	require.NoError(t, json.Unmarshal(raw, &decoded))

	tier, ok := decoded.LookupPABX(800)
	require.True(t, ok)
	assert.True(t, tier.MonthlyUnitPrice.IsNegotiable())
	require.NoError(t, decoded.Validate())
}
