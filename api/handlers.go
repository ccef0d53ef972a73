/*
handlers.go - HTTP API handlers for the petrol pump system

PURPOSE:
  Exposes the station via REST API. Handles HTTP request/response, JSON
  serialization, and delegates to the sale processor, ledger, and report
  builder.

ENDPOINTS:
  Sales:
    POST   /api/sales                 Process a sale, returns receipt

  Transactions:
    GET    /api/transactions          History, most recent first

  Reports:
    GET    /api/reports/daily         Full daily report
    GET    /api/reports/fuel          Fuel-wise summary
    GET    /api/reports/pumps         Pump-wise performance
    GET    /api/reports/hours         Hour-wise sales
    GET    /api/reports/payments      Payment mode breakdown

  Inventory:
    GET    /api/inventory             Stock levels
    POST   /api/inventory/supply      Add supply

  Pumps:
    GET    /api/pumps                 List pumps
    PUT    /api/pumps/{id}/status     Change pump status

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 404: Unknown pump or fuel
  - 409: Conflict (insufficient stock, inactive pump)
  - 500: Internal errors (including ledger storage exhaustion)

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sufi2801/petrol-pump-management-system/ledger"
	"github.com/sufi2801/petrol-pump-management-system/pos"
	"github.com/sufi2801/petrol-pump-management-system/report"
	"github.com/sufi2801/petrol-pump-management-system/station"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Station   *pos.Station
	Processor *pos.Processor
	Reports   *report.Builder
}

// NewHandler creates a new handler for the given station.
func NewHandler(st *pos.Station) *Handler {
	return &Handler{
		Station:   st,
		Processor: pos.NewProcessor(st),
		Reports:   report.NewBuilder(st),
	}
}

// =============================================================================
// SALES
// =============================================================================

// ProcessSale validates and records a sale, returning the stored
// transaction and a printable receipt.
func (h *Handler) ProcessSale(w http.ResponseWriter, r *http.Request) {
	var req SaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quantity, err := parseOptionalDecimal(req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity", err)
		return
	}
	amount, err := parseOptionalDecimal(req.Amount)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid amount", err)
		return
	}

	tx, err := h.Processor.ProcessSale(pos.SaleRequest{
		PumpID:   req.PumpID,
		Vehicle:  station.VehicleType(req.Vehicle),
		Payment:  station.PaymentMode(req.Payment),
		Quantity: quantity,
		Amount:   amount,
	})
	if err != nil {
		writeDomainError(w, err)
		return
	}

	receipt, err := h.Processor.ReceiptFor(tx)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to build receipt", err)
		return
	}

	var alerts []string
	for _, f := range h.Station.Inventory.LowStock() {
		alerts = append(alerts, f.Name())
	}

	writeJSON(w, http.StatusCreated, SaleResponseDTO{
		Transaction:    toTransactionDTO(tx),
		Receipt:        receipt.Render(),
		LowStockAlerts: alerts,
	})
}

// =============================================================================
// TRANSACTIONS
// =============================================================================

// ListTransactions returns the full history, most recent first.
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	txs := h.Station.Ledger.List()
	dtos := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		dtos[i] = toTransactionDTO(tx)
	}
	writeJSON(w, http.StatusOK, dtos)
}

// =============================================================================
// REPORTS
// =============================================================================

func (h *Handler) DailyReport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toDailyReportDTO(h.Reports.Daily()))
}

func (h *Handler) FuelSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toFuelSummaryDTOs(h.Reports.FuelSummary()))
}

func (h *Handler) PumpPerformance(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPumpPerformanceDTOs(h.Reports.PumpPerformance()))
}

func (h *Handler) HourlySales(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toHourlySalesDTOs(h.Reports.HourlySales()))
}

func (h *Handler) PaymentBreakdown(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toPaymentDTOs(h.Reports.PaymentBreakdown()))
}

// =============================================================================
// INVENTORY
// =============================================================================

// ListInventory returns current stock levels.
func (h *Handler) ListInventory(w http.ResponseWriter, r *http.Request) {
	levels := h.Station.Inventory.Levels()
	dtos := make([]StockLevelDTO, len(levels))
	for i, lvl := range levels {
		dtos[i] = StockLevelDTO{
			Fuel:     string(lvl.Fuel),
			Unit:     lvl.Fuel.Unit(),
			Opening:  lvl.Opening.StringFixed(2),
			Current:  lvl.Current.StringFixed(2),
			LowStock: lvl.LowStock,
		}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// AddSupply adds stock to one fuel and returns the updated levels.
func (h *Handler) AddSupply(w http.ResponseWriter, r *http.Request) {
	var req SupplyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	quantity, err := decimal.NewFromString(req.Quantity)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid quantity", err)
		return
	}

	if err := h.Station.Inventory.AddSupply(station.FuelType(req.Fuel), quantity); err != nil {
		writeDomainError(w, err)
		return
	}

	h.ListInventory(w, r)
}

// =============================================================================
// PUMPS
// =============================================================================

// ListPumps returns all pump registrations.
func (h *Handler) ListPumps(w http.ResponseWriter, r *http.Request) {
	pumps := h.Station.Pumps.List()
	dtos := make([]PumpDTO, len(pumps))
	for i, p := range pumps {
		dtos[i] = PumpDTO{ID: p.ID, Fuel: string(p.Fuel), Status: string(p.Status)}
	}
	writeJSON(w, http.StatusOK, dtos)
}

// SetPumpStatus changes a pump's status.
func (h *Handler) SetPumpStatus(w http.ResponseWriter, r *http.Request) {
	pumpID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid pump id", err)
		return
	}

	var req PumpStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status := station.PumpStatus(req.Status)
	if !status.Valid() {
		writeError(w, http.StatusBadRequest, "Invalid pump status", nil)
		return
	}

	if err := h.Station.Pumps.SetStatus(pumpID, status); err != nil {
		writeDomainError(w, err)
		return
	}

	fuel, _ := h.Station.Pumps.FuelTypeOf(pumpID)
	writeJSON(w, http.StatusOK, PumpDTO{ID: pumpID, Fuel: string(fuel), Status: string(status)})
}

// =============================================================================
// HELPERS
// =============================================================================

func parseOptionalDecimal(s string) (decimal.Decimal, error) {
	if s == "" {
		return decimal.Decimal{}, nil
	}
	return decimal.NewFromString(s)
}

// writeDomainError maps domain errors onto HTTP statuses.
func writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, station.ErrPumpNotFound), errors.Is(err, station.ErrUnknownFuel):
		writeError(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, station.ErrInsufficientStock), errors.Is(err, pos.ErrPumpInactive):
		writeError(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, pos.ErrInvalidSale), errors.Is(err, station.ErrNonPositiveQuantity):
		writeError(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, ledger.ErrStorageExhausted):
		writeError(w, http.StatusInternalServerError, err.Error(), nil)
	default:
		writeError(w, http.StatusInternalServerError, "Internal error", err)
	}
}

type errorResponse struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := errorResponse{Error: message}
	if err != nil {
		resp.Detail = err.Error()
	}
	writeJSON(w, status, resp)
}
