package station_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufi2801/petrol-pump-management-system/station"
)

func TestPumpRegistry_StandardLayout(t *testing.T) {
	// Six pumps: 1-2 Petrol, 3-4 Diesel, 5-6 CNG, all Active.

	reg := station.NewPumpRegistry()

	pumps := reg.List()
	require.Len(t, pumps, 6)

	wantFuel := map[int]station.FuelType{
		1: station.FuelPetrol, 2: station.FuelPetrol,
		3: station.FuelDiesel, 4: station.FuelDiesel,
		5: station.FuelCNG, 6: station.FuelCNG,
	}
	for _, p := range pumps {
		assert.Equal(t, wantFuel[p.ID], p.Fuel, "pump %d fuel", p.ID)
		assert.Equal(t, station.PumpActive, p.Status, "pump %d status", p.ID)
	}
}

func TestPumpRegistry_SetStatus(t *testing.T) {
	reg := station.NewPumpRegistry()

	require.NoError(t, reg.SetStatus(3, station.PumpMaintenance))

	status, err := reg.StatusOf(3)
	require.NoError(t, err)
	assert.Equal(t, station.PumpMaintenance, status)

	// Fuel binding is unaffected by status changes.
	fuel, err := reg.FuelTypeOf(3)
	require.NoError(t, err)
	assert.Equal(t, station.FuelDiesel, fuel)
}

func TestPumpRegistry_UnknownPump(t *testing.T) {
	reg := station.NewPumpRegistry()

	_, err := reg.StatusOf(99)
	assert.ErrorIs(t, err, station.ErrPumpNotFound)

	_, err = reg.FuelTypeOf(99)
	assert.ErrorIs(t, err, station.ErrPumpNotFound)

	assert.ErrorIs(t, reg.SetStatus(99, station.PumpInactive), station.ErrPumpNotFound)
}

func TestPriceList_Defaults(t *testing.T) {
	prices := station.DefaultPrices()

	diesel, err := prices.PriceOf(station.FuelDiesel)
	require.NoError(t, err)
	assert.Equal(t, "88.75", diesel.StringFixed(2))

	_, err = prices.PriceOf("kerosene")
	assert.ErrorIs(t, err, station.ErrUnknownFuel)
}
