/*
Package station provides the fixed vocabulary of the fuel station.

PURPOSE:
  This package contains the closed enumerations (fuel, pump status, vehicle,
  payment mode), the price list, and the two pieces of live station state:
  fuel inventory and the pump registry. Everything here is a leaf - the
  transaction ledger consumes these values as opaque tags and never calls
  back into this package for validation.

KEY CONCEPTS IN THIS FILE (types.go):
  - FuelType: Petrol, Diesel, CNG - each with a dispensing unit
  - PumpStatus: Active, Inactive, Maintenance
  - VehicleType / PaymentMode: categorical tags carried on transactions
  - PriceList: per-fuel unit prices, constant for a session

DESIGN PRINCIPLES:
  1. Closed sets: every enumeration has an AllX() accessor so aggregation
     and reporting can iterate buckets deterministically
  2. Precision: decimal.Decimal for every quantity, amount, and price -
     no floating-point drift in money math
  3. Type safety: string-typed enums prevent mixing tags

SEE ALSO:
  - inventory.go: per-fuel stock levels
  - pumps.go: the fixed set of dispensing units
*/
package station

import "github.com/shopspring/decimal"

// =============================================================================
// FUEL TYPE
// =============================================================================

type FuelType string

const (
	FuelPetrol FuelType = "petrol"
	FuelDiesel FuelType = "diesel"
	FuelCNG    FuelType = "cng"
)

// AllFuelTypes returns the closed set, in display order.
func AllFuelTypes() []FuelType {
	return []FuelType{FuelPetrol, FuelDiesel, FuelCNG}
}

// Name returns the display name.
func (f FuelType) Name() string {
	switch f {
	case FuelPetrol:
		return "Petrol"
	case FuelDiesel:
		return "Diesel"
	case FuelCNG:
		return "CNG"
	}
	return string(f)
}

// Unit returns the dispensing unit: liters for liquids, kg for CNG.
func (f FuelType) Unit() string {
	if f == FuelCNG {
		return "kg"
	}
	return "liters"
}

// Valid reports whether f is one of the known fuel types.
func (f FuelType) Valid() bool {
	switch f {
	case FuelPetrol, FuelDiesel, FuelCNG:
		return true
	}
	return false
}

// =============================================================================
// PUMP STATUS
// =============================================================================

type PumpStatus string

const (
	PumpActive      PumpStatus = "active"
	PumpInactive    PumpStatus = "inactive"
	PumpMaintenance PumpStatus = "maintenance"
)

func (s PumpStatus) Name() string {
	switch s {
	case PumpActive:
		return "Active"
	case PumpInactive:
		return "Inactive"
	case PumpMaintenance:
		return "Maintenance"
	}
	return string(s)
}

func (s PumpStatus) Valid() bool {
	switch s {
	case PumpActive, PumpInactive, PumpMaintenance:
		return true
	}
	return false
}

// =============================================================================
// VEHICLE TYPE
// =============================================================================

type VehicleType string

const (
	VehicleTwoWheeler  VehicleType = "two_wheeler"
	VehicleFourWheeler VehicleType = "four_wheeler"
	VehicleCommercial  VehicleType = "commercial"
)

func (v VehicleType) Name() string {
	switch v {
	case VehicleTwoWheeler:
		return "2-Wheeler"
	case VehicleFourWheeler:
		return "4-Wheeler"
	case VehicleCommercial:
		return "Commercial"
	}
	return string(v)
}

func (v VehicleType) Valid() bool {
	switch v {
	case VehicleTwoWheeler, VehicleFourWheeler, VehicleCommercial:
		return true
	}
	return false
}

// =============================================================================
// PAYMENT MODE
// =============================================================================

type PaymentMode string

const (
	PayCash   PaymentMode = "cash"
	PayCard   PaymentMode = "card"
	PayWallet PaymentMode = "wallet"
)

// AllPaymentModes returns the closed set, in display order.
func AllPaymentModes() []PaymentMode {
	return []PaymentMode{PayCash, PayCard, PayWallet}
}

func (p PaymentMode) Name() string {
	switch p {
	case PayCash:
		return "Cash"
	case PayCard:
		return "Credit Card"
	case PayWallet:
		return "Digital Wallet"
	}
	return string(p)
}

func (p PaymentMode) Valid() bool {
	switch p {
	case PayCash, PayCard, PayWallet:
		return true
	}
	return false
}

// =============================================================================
// PRICE LIST
// =============================================================================

// PriceList maps each fuel type to its unit price. Prices are a snapshot
// for the session; transactions store the derived amount, not the price.
type PriceList map[FuelType]decimal.Decimal

// DefaultPrices returns the standard per-unit rates (INR).
func DefaultPrices() PriceList {
	return PriceList{
		FuelPetrol: decimal.NewFromFloat(102.50),
		FuelDiesel: decimal.NewFromFloat(88.75),
		FuelCNG:    decimal.NewFromFloat(75.00),
	}
}

// PriceOf returns the unit price for a fuel type.
func (pl PriceList) PriceOf(f FuelType) (decimal.Decimal, error) {
	price, ok := pl[f]
	if !ok {
		return decimal.Decimal{}, ErrUnknownFuel
	}
	return price, nil
}
