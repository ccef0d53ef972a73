package ledger

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// SINGLE-RECORD AGGREGATION
// =============================================================================

func TestAggregates_DieselSale(t *testing.T) {
	// GIVEN: An empty ledger
	// WHEN: Recording a 25.0 L Diesel sale at unit price 88.75
	// THEN: Amount is 2218.75 and the Diesel bucket grows by exactly that

	l := New()
	price := decimal.NewFromFloat(88.75)
	qty := decimal.NewFromFloat(25.0)

	tx := mustRecord(t, l, Transaction{
		PumpID:   4,
		Fuel:     station.FuelDiesel,
		Vehicle:  station.VehicleCommercial,
		Payment:  station.PayCard,
		Quantity: qty,
		Amount:   qty.Mul(price),
	})

	if want := decimal.NewFromFloat(2218.75); !tx.Amount.Equal(want) {
		t.Fatalf("stored amount = %s, want %s", tx.Amount, want)
	}

	diesel := l.FuelWise()[station.FuelDiesel]
	if !diesel.Quantity.Equal(qty) {
		t.Errorf("diesel quantity = %s, want %s", diesel.Quantity, qty)
	}
	if !diesel.Amount.Equal(decimal.NewFromFloat(2218.75)) {
		t.Errorf("diesel amount = %s, want 2218.75", diesel.Amount)
	}

	if petrol := l.FuelWise()[station.FuelPetrol]; !petrol.IsZero() {
		t.Errorf("petrol bucket should be untouched, got %+v", petrol)
	}
}

// =============================================================================
// HOUR BUCKETS
// =============================================================================

func TestAggregates_HourBuckets(t *testing.T) {
	// GIVEN: Transactions at hours 9, 9, and 14
	// WHEN: Reading the hour-wise snapshot
	// THEN: Bucket 9 holds the first two combined, bucket 14 the third,
	//       and every other bucket is zero

	l := New()
	at := func(hour int) time.Time {
		return time.Date(2025, time.November, 2, hour, 0, 0, 0, time.UTC)
	}

	for _, s := range []struct {
		hour     int
		qty, amt float64
	}{
		{9, 10, 887.50},
		{9, 5, 443.75},
		{14, 2, 177.50},
	} {
		tx := dieselSale(s.qty, s.amt)
		tx.Timestamp = at(s.hour)
		mustRecord(t, l, tx)
	}

	hours := l.HourWise()

	if want := decimal.NewFromInt(15); !hours[9].Quantity.Equal(want) {
		t.Errorf("hour 9 quantity = %s, want %s", hours[9].Quantity, want)
	}
	if want := decimal.NewFromFloat(1331.25); !hours[9].Amount.Equal(want) {
		t.Errorf("hour 9 amount = %s, want %s", hours[9].Amount, want)
	}
	if want := decimal.NewFromInt(2); !hours[14].Quantity.Equal(want) {
		t.Errorf("hour 14 quantity = %s, want %s", hours[14].Quantity, want)
	}

	for h := 0; h < 24; h++ {
		if h == 9 || h == 14 {
			continue
		}
		if !hours[h].IsZero() {
			t.Errorf("hour %d should be zero, got %+v", h, hours[h])
		}
	}
}

// =============================================================================
// CONSISTENCY WITH FULL RECOMPUTATION
// =============================================================================

// TestAggregates_MatchFullRescan records a mixed workload and checks that
// every incremental projection equals the value a full scan would produce.
func TestAggregates_MatchFullRescan(t *testing.T) {
	l := New()

	sales := []struct {
		pump     int
		fuel     station.FuelType
		payment  station.PaymentMode
		hour     int
		qty, amt float64
	}{
		{1, station.FuelPetrol, station.PayCash, 8, 12.5, 1281.25},
		{1, station.FuelPetrol, station.PayCard, 9, 30, 3075},
		{2, station.FuelPetrol, station.PayWallet, 9, 7.2, 738},
		{3, station.FuelDiesel, station.PayCash, 12, 40, 3550},
		{4, station.FuelDiesel, station.PayCard, 18, 25, 2218.75},
		{5, station.FuelCNG, station.PayWallet, 18, 6, 450},
		{6, station.FuelCNG, station.PayCash, 23, 3.333, 249.975},
	}
	for _, s := range sales {
		mustRecord(t, l, Transaction{
			Timestamp: time.Date(2025, time.November, 2, s.hour, 15, 0, 0, time.UTC),
			PumpID:    s.pump,
			Fuel:      s.fuel,
			Vehicle:   station.VehicleFourWheeler,
			Payment:   s.payment,
			Quantity:  decimal.NewFromFloat(s.qty),
			Amount:    decimal.NewFromFloat(s.amt),
		})
	}

	// Full recomputation from the raw records.
	wantFuel := make(map[station.FuelType]Totals)
	wantPump := make(map[int]PumpTotals)
	var wantHour [24]Totals
	wantPay := make(map[station.PaymentMode]decimal.Decimal)

	for _, tx := range l.List() {
		wantFuel[tx.Fuel] = wantFuel[tx.Fuel].add(tx.Quantity, tx.Amount)
		p := wantPump[tx.PumpID]
		p.Transactions++
		p.Quantity = p.Quantity.Add(tx.Quantity)
		p.Amount = p.Amount.Add(tx.Amount)
		wantPump[tx.PumpID] = p
		h := tx.Timestamp.Hour()
		wantHour[h] = wantHour[h].add(tx.Quantity, tx.Amount)
		wantPay[tx.Payment] = wantPay[tx.Payment].Add(tx.Amount)
	}

	gotFuel := l.FuelWise()
	for f, want := range wantFuel {
		got := gotFuel[f]
		if !got.Quantity.Equal(want.Quantity) || !got.Amount.Equal(want.Amount) {
			t.Errorf("fuel %s: got %s/%s, want %s/%s",
				f, got.Quantity, got.Amount, want.Quantity, want.Amount)
		}
	}

	gotPump := l.PumpWise()
	for id, want := range wantPump {
		got := gotPump[id]
		if got.Transactions != want.Transactions ||
			!got.Quantity.Equal(want.Quantity) || !got.Amount.Equal(want.Amount) {
			t.Errorf("pump %d: got %+v, want %+v", id, got, want)
		}
	}

	gotHour := l.HourWise()
	for h := 0; h < 24; h++ {
		if !gotHour[h].Quantity.Equal(wantHour[h].Quantity) ||
			!gotHour[h].Amount.Equal(wantHour[h].Amount) {
			t.Errorf("hour %d: got %+v, want %+v", h, gotHour[h], wantHour[h])
		}
	}

	gotPay := l.PaymentWise()
	for mode, want := range wantPay {
		if !gotPay[mode].Equal(want) {
			t.Errorf("payment %s: got %s, want %s", mode, gotPay[mode], want)
		}
	}
}

// =============================================================================
// SNAPSHOT ISOLATION
// =============================================================================

func TestSnapshots_AreCopies(t *testing.T) {
	l := New()
	mustRecord(t, l, dieselSale(10, 887.50))

	fuel := l.FuelWise()
	fuel[station.FuelDiesel] = Totals{}
	if l.FuelWise()[station.FuelDiesel].IsZero() {
		t.Error("mutating a fuel-wise snapshot leaked into the ledger")
	}

	pay := l.PaymentWise()
	pay[station.PayCash] = decimal.Zero
	if !l.PaymentWise()[station.PayCash].Equal(decimal.NewFromFloat(887.50)) {
		t.Error("mutating a payment-wise snapshot leaked into the ledger")
	}
}
