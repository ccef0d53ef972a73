/*
Package report renders summaries of station activity.

PURPOSE:
  A purely read-only view over the station: report rows are assembled from
  the ledger's aggregate snapshots plus live Inventory and PumpRegistry
  state. Reporting never scans raw ledger storage - the four projections
  are the only sanctioned summary path, so building a report costs the
  same whether ten or ten million transactions were recorded.

REPORTS:
  FuelSummary     opening/current stock + sold quantity + revenue per fuel
  PumpPerformance status + count + quantity + revenue per pump
  HourlySales     quantity + revenue per hour of day with traffic
  PaymentBreakdown revenue per payment mode
  Daily           all of the above plus grand totals and transaction count
*/
package report

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/pos"
	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// BUILDER
// =============================================================================

// Builder assembles reports for one station.
type Builder struct {
	station *pos.Station
}

// NewBuilder creates a report builder bound to a station.
func NewBuilder(st *pos.Station) *Builder {
	return &Builder{station: st}
}

// =============================================================================
// ROW TYPES
// =============================================================================

type FuelSummaryRow struct {
	Fuel         station.FuelType
	OpeningStock decimal.Decimal
	CurrentStock decimal.Decimal
	SoldQuantity decimal.Decimal
	Revenue      decimal.Decimal
	LowStock     bool
}

type PumpPerformanceRow struct {
	PumpID       int
	Fuel         station.FuelType
	Status       station.PumpStatus
	Transactions int
	Quantity     decimal.Decimal
	Revenue      decimal.Decimal
}

type HourlySalesRow struct {
	Hour     int
	Quantity decimal.Decimal
	Revenue  decimal.Decimal
}

type PaymentRow struct {
	Mode    station.PaymentMode
	Revenue decimal.Decimal
}

// DailyReport is the full end-of-day summary.
type DailyReport struct {
	FuelSummary      []FuelSummaryRow
	PumpPerformance  []PumpPerformanceRow
	HourlySales      []HourlySalesRow
	Payments         []PaymentRow
	TransactionCount int
	TotalQuantity    decimal.Decimal
	TotalRevenue     decimal.Decimal
}

// =============================================================================
// REPORT ASSEMBLY
// =============================================================================

// FuelSummary combines inventory levels with the fuel-wise projection.
func (b *Builder) FuelSummary() []FuelSummaryRow {
	fuelWise := b.station.Ledger.FuelWise()

	var rows []FuelSummaryRow
	for _, lvl := range b.station.Inventory.Levels() {
		totals := fuelWise[lvl.Fuel]
		rows = append(rows, FuelSummaryRow{
			Fuel:         lvl.Fuel,
			OpeningStock: lvl.Opening,
			CurrentStock: lvl.Current,
			SoldQuantity: totals.Quantity,
			Revenue:      totals.Amount,
			LowStock:     lvl.LowStock,
		})
	}
	return rows
}

// PumpPerformance combines pump registrations with the pump-wise projection.
// Pumps with no traffic appear with zero totals.
func (b *Builder) PumpPerformance() []PumpPerformanceRow {
	pumpWise := b.station.Ledger.PumpWise()

	var rows []PumpPerformanceRow
	for _, p := range b.station.Pumps.List() {
		totals := pumpWise[p.ID]
		rows = append(rows, PumpPerformanceRow{
			PumpID:       p.ID,
			Fuel:         p.Fuel,
			Status:       p.Status,
			Transactions: totals.Transactions,
			Quantity:     totals.Quantity,
			Revenue:      totals.Amount,
		})
	}
	return rows
}

// HourlySales returns the hours that saw traffic, in chronological order.
func (b *Builder) HourlySales() []HourlySalesRow {
	hourWise := b.station.Ledger.HourWise()

	var rows []HourlySalesRow
	for hour, totals := range hourWise {
		if totals.IsZero() {
			continue
		}
		rows = append(rows, HourlySalesRow{
			Hour:     hour,
			Quantity: totals.Quantity,
			Revenue:  totals.Amount,
		})
	}
	return rows
}

// PaymentBreakdown returns revenue per payment mode, in display order.
// Modes with no traffic appear with zero revenue.
func (b *Builder) PaymentBreakdown() []PaymentRow {
	paymentWise := b.station.Ledger.PaymentWise()

	var rows []PaymentRow
	for _, mode := range station.AllPaymentModes() {
		rows = append(rows, PaymentRow{Mode: mode, Revenue: paymentWise[mode]})
	}
	return rows
}

// Daily assembles the full end-of-day report. Grand totals are summed
// over the fuel-wise projection, not the raw store.
func (b *Builder) Daily() DailyReport {
	rep := DailyReport{
		FuelSummary:      b.FuelSummary(),
		PumpPerformance:  b.PumpPerformance(),
		HourlySales:      b.HourlySales(),
		Payments:         b.PaymentBreakdown(),
		TransactionCount: b.station.Ledger.Len(),
	}
	for _, row := range rep.FuelSummary {
		rep.TotalQuantity = rep.TotalQuantity.Add(row.SoldQuantity)
		rep.TotalRevenue = rep.TotalRevenue.Add(row.Revenue)
	}
	return rep
}

// =============================================================================
// TEXT RENDERING
// =============================================================================

// Render returns the printable daily report.
func (r DailyReport) Render() string {
	var b strings.Builder
	b.WriteString("================= DAILY REPORT =================\n")

	b.WriteString("Fuel Summary:\n")
	for _, row := range r.FuelSummary {
		fmt.Fprintf(&b, "%s | Opening: %s | Current: %s | Sold: %s | Revenue: %s\n",
			row.Fuel.Name(), row.OpeningStock.StringFixed(2), row.CurrentStock.StringFixed(2),
			row.SoldQuantity.StringFixed(3), row.Revenue.StringFixed(2))
	}

	fmt.Fprintf(&b, "Total Sales Quantity: %s\n", r.TotalQuantity.StringFixed(3))
	fmt.Fprintf(&b, "Total Revenue: %s\n", r.TotalRevenue.StringFixed(2))
	fmt.Fprintf(&b, "Number of transactions: %d\n", r.TransactionCount)

	b.WriteString("Payment Mode Breakdown:\n")
	for _, row := range r.Payments {
		fmt.Fprintf(&b, "%s: %s\n", row.Mode.Name(), row.Revenue.StringFixed(2))
	}

	b.WriteString("Pump-wise Performance:\n")
	for _, row := range r.PumpPerformance {
		fmt.Fprintf(&b, "Pump %d | Fuel: %s | Status: %s | Txns: %d | Qty: %s | Revenue: %s\n",
			row.PumpID, row.Fuel.Name(), row.Status.Name(),
			row.Transactions, row.Quantity.StringFixed(3), row.Revenue.StringFixed(2))
	}

	b.WriteString("Hour-wise Sales:\n")
	for _, row := range r.HourlySales {
		fmt.Fprintf(&b, "Hour %02d:00 - Qty: %s | Revenue: %s\n",
			row.Hour, row.Quantity.StringFixed(3), row.Revenue.StringFixed(2))
	}

	b.WriteString("================================================\n")
	return b.String()
}
