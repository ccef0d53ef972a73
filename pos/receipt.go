package pos

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/ledger"
)

// =============================================================================
// RECEIPT
// =============================================================================

// Receipt is a customer-facing view of a recorded transaction, including
// the unit rate in effect at sale time.
type Receipt struct {
	Transaction ledger.Transaction
	Rate        decimal.Decimal
}

// ReceiptFor builds a receipt for a recorded transaction using the
// station's current price list.
func (p *Processor) ReceiptFor(tx ledger.Transaction) (Receipt, error) {
	rate, err := p.station.Prices.PriceOf(tx.Fuel)
	if err != nil {
		return Receipt{}, err
	}
	return Receipt{Transaction: tx, Rate: rate}, nil
}

// Render returns the printable receipt text.
func (r Receipt) Render() string {
	tx := r.Transaction
	var b strings.Builder
	b.WriteString("------------------- FUEL RECEIPT -------------------\n")
	fmt.Fprintf(&b, "Transaction ID : %s\n", tx.ID)
	fmt.Fprintf(&b, "Date & Time    : %s\n", tx.Timestamp.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Pump ID        : %d\n", tx.PumpID)
	fmt.Fprintf(&b, "Fuel Type      : %s\n", tx.Fuel.Name())
	fmt.Fprintf(&b, "Vehicle Type   : %s\n", tx.Vehicle.Name())
	fmt.Fprintf(&b, "Quantity       : %s %s\n", tx.Quantity.StringFixed(3), tx.Fuel.Unit())
	fmt.Fprintf(&b, "Rate           : %s per %s\n", r.Rate.StringFixed(2), tx.Fuel.Unit())
	fmt.Fprintf(&b, "Amount (INR)   : %s\n", tx.Amount.StringFixed(2))
	fmt.Fprintf(&b, "Payment Mode   : %s\n", tx.Payment.Name())
	b.WriteString("----------------------------------------------------\n")
	return b.String()
}
