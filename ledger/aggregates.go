/*
aggregates.go - Incrementally maintained revenue projections

PURPOSE:
  Four derived mappings kept in lockstep with every append:
    fuel type    -> total quantity, total amount
    pump id      -> transaction count, total quantity, total amount
    hour of day  -> total quantity, total amount (buckets 0-23)
    payment mode -> total amount

  Each projection is cache-equivalent to a full re-scan of the store but
  never requires one: snapshot reads are O(buckets), independent of how
  many transactions have been recorded.

INVARIANT:
  applyAggregates runs exactly once per recorded transaction, under the
  same lock as the append. Projections are never independently mutated.
*/
package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// PROJECTION TYPES
// =============================================================================

// Totals is a quantity/amount pair. The zero value is a zero total.
type Totals struct {
	Quantity decimal.Decimal
	Amount   decimal.Decimal
}

func (t Totals) add(quantity, amount decimal.Decimal) Totals {
	return Totals{
		Quantity: t.Quantity.Add(quantity),
		Amount:   t.Amount.Add(amount),
	}
}

// IsZero reports whether nothing has been aggregated into this bucket.
func (t Totals) IsZero() bool {
	return t.Quantity.IsZero() && t.Amount.IsZero()
}

// PumpTotals is the pump-wise projection bucket.
type PumpTotals struct {
	Transactions int
	Quantity     decimal.Decimal
	Amount       decimal.Decimal
}

// =============================================================================
// MAINTENANCE - Called under the write lock, exactly once per Record
// =============================================================================

func (l *Ledger) applyAggregates(tx Transaction) {
	l.fuelWise[tx.Fuel] = l.fuelWise[tx.Fuel].add(tx.Quantity, tx.Amount)

	pump := l.pumpWise[tx.PumpID]
	pump.Transactions++
	pump.Quantity = pump.Quantity.Add(tx.Quantity)
	pump.Amount = pump.Amount.Add(tx.Amount)
	l.pumpWise[tx.PumpID] = pump

	hour := tx.Timestamp.Hour()
	l.hourWise[hour] = l.hourWise[hour].add(tx.Quantity, tx.Amount)

	l.paymentWise[tx.Payment] = l.paymentWise[tx.Payment].Add(tx.Amount)
}

// =============================================================================
// SNAPSHOT ACCESSORS - Read-only, copy-on-read
// =============================================================================

// FuelWise returns the fuel-wise projection: quantity and revenue per fuel.
func (l *Ledger) FuelWise() map[station.FuelType]Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[station.FuelType]Totals, len(l.fuelWise))
	for f, t := range l.fuelWise {
		out[f] = t
	}
	return out
}

// PumpWise returns the pump-wise projection: count, quantity, and revenue
// per pump id.
func (l *Ledger) PumpWise() map[int]PumpTotals {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[int]PumpTotals, len(l.pumpWise))
	for id, t := range l.pumpWise {
		out[id] = t
	}
	return out
}

// HourWise returns the hour-wise projection, indexed by hour of day 0-23.
// Buckets with no traffic are zero totals.
func (l *Ledger) HourWise() [24]Totals {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hourWise
}

// PaymentWise returns the payment-mode projection: revenue per mode.
func (l *Ledger) PaymentWise() map[station.PaymentMode]decimal.Decimal {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make(map[station.PaymentMode]decimal.Decimal, len(l.paymentWise))
	for p, amt := range l.paymentWise {
		out[p] = amt
	}
	return out
}
