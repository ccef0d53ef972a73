package station_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufi2801/petrol-pump-management-system/station"
)

func TestInventory_DeductReducesStock(t *testing.T) {
	// GIVEN: Default opening stock (50000 L diesel)
	// WHEN: Deducting 25 L
	// THEN: Current stock drops by exactly 25; opening stock is untouched

	inv := station.NewDefaultInventory()

	err := inv.Deduct(station.FuelDiesel, decimal.NewFromInt(25))
	require.NoError(t, err)

	current, err := inv.CurrentStock(station.FuelDiesel)
	require.NoError(t, err)
	assert.True(t, current.Equal(decimal.NewFromInt(49975)), "current = %s", current)

	opening, err := inv.OpeningStock(station.FuelDiesel)
	require.NoError(t, err)
	assert.True(t, opening.Equal(decimal.NewFromInt(50000)), "opening = %s", opening)
}

func TestInventory_DeductBeyondStockRejected(t *testing.T) {
	// GIVEN: 100 units of CNG
	// WHEN: Deducting 101
	// THEN: InsufficientStockError with the shortfall details; stock unchanged

	inv := station.NewInventory(map[station.FuelType]decimal.Decimal{
		station.FuelCNG: decimal.NewFromInt(100),
	}, station.DefaultLowStockThreshold)

	err := inv.Deduct(station.FuelCNG, decimal.NewFromInt(101))
	assert.ErrorIs(t, err, station.ErrInsufficientStock)

	var stockErr *station.InsufficientStockError
	require.ErrorAs(t, err, &stockErr)
	assert.Equal(t, station.FuelCNG, stockErr.Fuel)
	assert.True(t, stockErr.Available.Equal(decimal.NewFromInt(100)))
	assert.True(t, stockErr.Requested.Equal(decimal.NewFromInt(101)))

	current, _ := inv.CurrentStock(station.FuelCNG)
	assert.True(t, current.Equal(decimal.NewFromInt(100)), "stock changed on failed deduct")
}

func TestInventory_DeductRejectsNonPositive(t *testing.T) {
	inv := station.NewDefaultInventory()

	assert.ErrorIs(t, inv.Deduct(station.FuelPetrol, decimal.Zero), station.ErrNonPositiveQuantity)
	assert.ErrorIs(t, inv.Deduct(station.FuelPetrol, decimal.NewFromInt(-5)), station.ErrNonPositiveQuantity)
}

func TestInventory_AddSupply(t *testing.T) {
	inv := station.NewDefaultInventory()

	require.NoError(t, inv.AddSupply(station.FuelPetrol, decimal.NewFromInt(1500)))

	current, err := inv.CurrentStock(station.FuelPetrol)
	require.NoError(t, err)
	assert.True(t, current.Equal(decimal.NewFromInt(51500)), "current = %s", current)
}

func TestInventory_UnknownFuel(t *testing.T) {
	inv := station.NewDefaultInventory()

	_, err := inv.CurrentStock("kerosene")
	assert.ErrorIs(t, err, station.ErrUnknownFuel)
	assert.ErrorIs(t, inv.Deduct("kerosene", decimal.NewFromInt(1)), station.ErrUnknownFuel)
	assert.ErrorIs(t, inv.AddSupply("kerosene", decimal.NewFromInt(1)), station.ErrUnknownFuel)
}

func TestInventory_LowStockSignal(t *testing.T) {
	// GIVEN: CNG opening stock right at the 5000 threshold
	// WHEN: Deducting a single unit
	// THEN: CNG - and only CNG - trips the low-stock signal

	inv := station.NewInventory(map[station.FuelType]decimal.Decimal{
		station.FuelPetrol: decimal.NewFromInt(50000),
		station.FuelDiesel: decimal.NewFromInt(50000),
		station.FuelCNG:    decimal.NewFromInt(5000),
	}, station.DefaultLowStockThreshold)

	assert.Empty(t, inv.LowStock(), "stock at the threshold is not low")

	require.NoError(t, inv.Deduct(station.FuelCNG, decimal.NewFromInt(1)))
	assert.Equal(t, []station.FuelType{station.FuelCNG}, inv.LowStock())
}

func TestInventory_LevelsInDisplayOrder(t *testing.T) {
	inv := station.NewDefaultInventory()

	levels := inv.Levels()
	require.Len(t, levels, 3)
	assert.Equal(t, station.FuelPetrol, levels[0].Fuel)
	assert.Equal(t, station.FuelDiesel, levels[1].Fuel)
	assert.Equal(t, station.FuelCNG, levels[2].Fuel)
}
