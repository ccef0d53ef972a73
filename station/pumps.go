/*
pumps.go - Fixed set of dispensing units

PURPOSE:
  The PumpRegistry holds the station's pumps. Each pump is bound to one
  fuel type for its lifetime; only its status changes. Per-pump sales
  statistics are NOT kept here - they live in the ledger's pump-wise
  projection, so there is exactly one source of truth for revenue.

STANDARD LAYOUT:
  Six pumps: 1-2 Petrol, 3-4 Diesel, 5-6 CNG. All start Active.
*/
package station

import "sync"

// =============================================================================
// PUMP REGISTRY
// =============================================================================

// Pump is one dispensing unit. Fuel binding is fixed; status is mutable.
type Pump struct {
	ID     int
	Fuel   FuelType
	Status PumpStatus
}

// PumpRegistry is the fixed set of pumps, keyed by id.
// Constructed once at startup; pumps are never added or removed.
type PumpRegistry struct {
	mu    sync.RWMutex
	pumps map[int]*Pump
	order []int
}

// NewPumpRegistry creates the standard six-pump layout.
func NewPumpRegistry() *PumpRegistry {
	layout := []Pump{
		{ID: 1, Fuel: FuelPetrol},
		{ID: 2, Fuel: FuelPetrol},
		{ID: 3, Fuel: FuelDiesel},
		{ID: 4, Fuel: FuelDiesel},
		{ID: 5, Fuel: FuelCNG},
		{ID: 6, Fuel: FuelCNG},
	}
	return NewPumpRegistryWithLayout(layout)
}

// NewPumpRegistryWithLayout creates a registry from an explicit layout.
// Pumps with unset status start Active.
func NewPumpRegistryWithLayout(layout []Pump) *PumpRegistry {
	r := &PumpRegistry{pumps: make(map[int]*Pump, len(layout))}
	for _, p := range layout {
		pump := p
		if pump.Status == "" {
			pump.Status = PumpActive
		}
		r.pumps[pump.ID] = &pump
		r.order = append(r.order, pump.ID)
	}
	return r
}

// StatusOf returns the status of a pump.
func (r *PumpRegistry) StatusOf(pumpID int) (PumpStatus, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pumps[pumpID]
	if !ok {
		return "", ErrPumpNotFound
	}
	return p.Status, nil
}

// SetStatus changes a pump's status.
func (r *PumpRegistry) SetStatus(pumpID int, status PumpStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.pumps[pumpID]
	if !ok {
		return ErrPumpNotFound
	}
	p.Status = status
	return nil
}

// FuelTypeOf returns the fuel type a pump dispenses.
func (r *PumpRegistry) FuelTypeOf(pumpID int) (FuelType, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.pumps[pumpID]
	if !ok {
		return "", ErrPumpNotFound
	}
	return p.Fuel, nil
}

// List returns all pumps in registration order.
func (r *PumpRegistry) List() []Pump {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pumps := make([]Pump, 0, len(r.order))
	for _, id := range r.order {
		pumps = append(pumps, *r.pumps[id])
	}
	return pumps
}
