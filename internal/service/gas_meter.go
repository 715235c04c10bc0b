package service

import (
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
)

// gasTank is a token bucket holding the write budget of one account.
type gasTank struct {
	mu         sync.Mutex
	units      int
	lastRefill time.Time
}

// GasMeter charges one unit of gas per ledger write, per account. Each
// account starts with a full budget that refills in steps.
type GasMeter struct {
	mu           sync.Mutex
	tanks        map[common.Address]*gasTank
	budget       int
	refill       int
	refillPeriod time.Duration
	now          func() time.Time
}

// NewGasMeter builds a GasMeter from the ledger settings.
func NewGasMeter(cfg config.Ledger) *GasMeter {
	return &GasMeter{
		tanks:        make(map[common.Address]*gasTank),
		budget:       cfg.GasBudget,
		refill:       cfg.GasRefill,
		refillPeriod: cfg.GasRefillPeriod,
		now:          time.Now,
	}
}

// Charge takes one unit from account. It returns false when the budget is
// exhausted.
func (m *GasMeter) Charge(account common.Address) bool {
	tank := m.tank(account)

	tank.mu.Lock()
	defer tank.mu.Unlock()

	m.refillTank(tank)
	if tank.units <= 0 {
		return false
	}

	tank.units--
	return true
}

// Remaining reports the units account can still spend.
func (m *GasMeter) Remaining(account common.Address) int {
	m.mu.Lock()
	tank, ok := m.tanks[account]
	m.mu.Unlock()
	if !ok {
		return m.budget
	}

	tank.mu.Lock()
	defer tank.mu.Unlock()

	m.refillTank(tank)
	return tank.units
}

func (m *GasMeter) tank(account common.Address) *gasTank {
	m.mu.Lock()
	defer m.mu.Unlock()

	tank, ok := m.tanks[account]
	if !ok {
		tank = &gasTank{units: m.budget, lastRefill: m.now()}
		m.tanks[account] = tank
	}

	return tank
}

// refillTank must be called with tank.mu held.
func (m *GasMeter) refillTank(tank *gasTank) {
	if m.refillPeriod <= 0 {
		return
	}

	now := m.now()
	steps := int(now.Sub(tank.lastRefill) / m.refillPeriod)
	if steps <= 0 {
		return
	}

	tank.units = min(tank.units+steps*m.refill, m.budget)
	tank.lastRefill = tank.lastRefill.Add(time.Duration(steps) * m.refillPeriod)
}
