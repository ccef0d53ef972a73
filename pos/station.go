/*
Package pos is the point-of-sale layer of the petrol pump system.

PURPOSE:
  Owns the Station aggregate and the sale-processing collaborator. A sale
  is validated against live inventory and pump state, priced, deducted
  from stock, and handed to the ledger as a fully-populated candidate
  transaction. The ledger is the sole system of record; this package is
  the only writer that feeds it.

KEY CONCEPTS:
  - Station: explicitly constructed Inventory + PumpRegistry + PriceList +
    Ledger. No hidden process-wide singletons - the aggregate is built
    once at startup and passed by reference into collaborators.
  - Processor: validates SaleRequests and records transactions.
  - Receipt: rendered from the exact stored record returned by Record.

SEE ALSO:
  - sale.go: validation and recording
  - receipt.go: receipt rendering
*/
package pos

import (
	"github.com/sufi2801/petrol-pump-management-system/ledger"
	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// STATION AGGREGATE
// =============================================================================

// Station bundles the live station state with the transaction ledger.
// Constructed once at startup; torn down at shutdown.
type Station struct {
	Inventory *station.Inventory
	Pumps     *station.PumpRegistry
	Prices    station.PriceList
	Ledger    *ledger.Ledger
}

// NewStation creates a station with the standard configuration:
// default prices, default opening stock, the six-pump layout, and an
// empty ledger at its initial capacity.
func NewStation() *Station {
	return &Station{
		Inventory: station.NewDefaultInventory(),
		Pumps:     station.NewPumpRegistry(),
		Prices:    station.DefaultPrices(),
		Ledger:    ledger.New(),
	}
}
