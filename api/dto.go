/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model from the external API contract.

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients

VALIDATION:
  Validation is done in handlers and the sale processor, not in DTOs.
  DTOs are pure data carriers; decimals travel as strings so clients
  never see float rounding.

SEE ALSO:
  - handlers.go: Uses these types
*/
package api

import (
	"time"

	"github.com/sufi2801/petrol-pump-management-system/ledger"
	"github.com/sufi2801/petrol-pump-management-system/report"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// SaleRequest is the body for POST /api/sales. Exactly one of quantity or
// amount must be a positive decimal string.
type SaleRequest struct {
	PumpID   int    `json:"pump_id"`
	Vehicle  string `json:"vehicle"`
	Payment  string `json:"payment"`
	Quantity string `json:"quantity,omitempty"`
	Amount   string `json:"amount,omitempty"`
}

// SupplyRequest is the body for POST /api/inventory/supply.
type SupplyRequest struct {
	Fuel     string `json:"fuel"`
	Quantity string `json:"quantity"`
}

// PumpStatusRequest is the body for PUT /api/pumps/{id}/status.
type PumpStatusRequest struct {
	Status string `json:"status"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// TransactionDTO represents a recorded transaction in API responses.
type TransactionDTO struct {
	ID        string `json:"id"`
	Timestamp string `json:"timestamp"`
	PumpID    int    `json:"pump_id"`
	Fuel      string `json:"fuel"`
	Vehicle   string `json:"vehicle"`
	Payment   string `json:"payment"`
	Quantity  string `json:"quantity"`
	Amount    string `json:"amount"`
}

func toTransactionDTO(tx ledger.Transaction) TransactionDTO {
	return TransactionDTO{
		ID:        tx.ID,
		Timestamp: tx.Timestamp.Format(time.RFC3339),
		PumpID:    tx.PumpID,
		Fuel:      string(tx.Fuel),
		Vehicle:   string(tx.Vehicle),
		Payment:   string(tx.Payment),
		Quantity:  tx.Quantity.StringFixed(3),
		Amount:    tx.Amount.StringFixed(2),
	}
}

// SaleResponseDTO is returned from POST /api/sales: the stored record,
// the printable receipt, and any low-stock alerts raised by the sale.
type SaleResponseDTO struct {
	Transaction    TransactionDTO `json:"transaction"`
	Receipt        string         `json:"receipt"`
	LowStockAlerts []string       `json:"low_stock_alerts,omitempty"`
}

// StockLevelDTO represents one fuel's inventory in API responses.
type StockLevelDTO struct {
	Fuel     string `json:"fuel"`
	Unit     string `json:"unit"`
	Opening  string `json:"opening_stock"`
	Current  string `json:"current_stock"`
	LowStock bool   `json:"low_stock"`
}

// PumpDTO represents a pump registration.
type PumpDTO struct {
	ID     int    `json:"id"`
	Fuel   string `json:"fuel"`
	Status string `json:"status"`
}

// FuelSummaryDTO is one row of the fuel-wise report.
type FuelSummaryDTO struct {
	Fuel         string `json:"fuel"`
	OpeningStock string `json:"opening_stock"`
	CurrentStock string `json:"current_stock"`
	SoldQuantity string `json:"sold_quantity"`
	Revenue      string `json:"revenue"`
	LowStock     bool   `json:"low_stock"`
}

// PumpPerformanceDTO is one row of the pump-wise report.
type PumpPerformanceDTO struct {
	PumpID       int    `json:"pump_id"`
	Fuel         string `json:"fuel"`
	Status       string `json:"status"`
	Transactions int    `json:"transactions"`
	Quantity     string `json:"quantity"`
	Revenue      string `json:"revenue"`
}

// HourlySalesDTO is one row of the hour-wise report.
type HourlySalesDTO struct {
	Hour     int    `json:"hour"`
	Quantity string `json:"quantity"`
	Revenue  string `json:"revenue"`
}

// PaymentDTO is one row of the payment-mode report.
type PaymentDTO struct {
	Mode    string `json:"mode"`
	Revenue string `json:"revenue"`
}

// DailyReportDTO is the full daily report.
type DailyReportDTO struct {
	FuelSummary      []FuelSummaryDTO     `json:"fuel_summary"`
	PumpPerformance  []PumpPerformanceDTO `json:"pump_performance"`
	HourlySales      []HourlySalesDTO     `json:"hourly_sales"`
	Payments         []PaymentDTO         `json:"payments"`
	TransactionCount int                  `json:"transaction_count"`
	TotalQuantity    string               `json:"total_quantity"`
	TotalRevenue     string               `json:"total_revenue"`
	Rendered         string               `json:"rendered"`
}

// =============================================================================
// REPORT CONVERSIONS
// =============================================================================

func toFuelSummaryDTOs(rows []report.FuelSummaryRow) []FuelSummaryDTO {
	dtos := make([]FuelSummaryDTO, len(rows))
	for i, row := range rows {
		dtos[i] = FuelSummaryDTO{
			Fuel:         string(row.Fuel),
			OpeningStock: row.OpeningStock.StringFixed(2),
			CurrentStock: row.CurrentStock.StringFixed(2),
			SoldQuantity: row.SoldQuantity.StringFixed(3),
			Revenue:      row.Revenue.StringFixed(2),
			LowStock:     row.LowStock,
		}
	}
	return dtos
}

func toPumpPerformanceDTOs(rows []report.PumpPerformanceRow) []PumpPerformanceDTO {
	dtos := make([]PumpPerformanceDTO, len(rows))
	for i, row := range rows {
		dtos[i] = PumpPerformanceDTO{
			PumpID:       row.PumpID,
			Fuel:         string(row.Fuel),
			Status:       string(row.Status),
			Transactions: row.Transactions,
			Quantity:     row.Quantity.StringFixed(3),
			Revenue:      row.Revenue.StringFixed(2),
		}
	}
	return dtos
}

func toHourlySalesDTOs(rows []report.HourlySalesRow) []HourlySalesDTO {
	dtos := make([]HourlySalesDTO, len(rows))
	for i, row := range rows {
		dtos[i] = HourlySalesDTO{
			Hour:     row.Hour,
			Quantity: row.Quantity.StringFixed(3),
			Revenue:  row.Revenue.StringFixed(2),
		}
	}
	return dtos
}

func toPaymentDTOs(rows []report.PaymentRow) []PaymentDTO {
	dtos := make([]PaymentDTO, len(rows))
	for i, row := range rows {
		dtos[i] = PaymentDTO{
			Mode:    string(row.Mode),
			Revenue: row.Revenue.StringFixed(2),
		}
	}
	return dtos
}

func toDailyReportDTO(r report.DailyReport) DailyReportDTO {
	return DailyReportDTO{
		FuelSummary:      toFuelSummaryDTOs(r.FuelSummary),
		PumpPerformance:  toPumpPerformanceDTOs(r.PumpPerformance),
		HourlySales:      toHourlySalesDTOs(r.HourlySales),
		Payments:         toPaymentDTOs(r.Payments),
		TransactionCount: r.TransactionCount,
		TotalQuantity:    r.TotalQuantity.StringFixed(3),
		TotalRevenue:     r.TotalRevenue.StringFixed(2),
		Rendered:         r.Render(),
	}
}
