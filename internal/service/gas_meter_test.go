package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-dream-cipher/internal/config"
)

func TestGasMeter_ChargeAndRefill(t *testing.T) {
	now := time.Unix(1_700_000_000, 0)
	meter := NewGasMeter(config.Ledger{GasBudget: 3, GasRefill: 2, GasRefillPeriod: time.Minute})
	meter.now = func() time.Time { return now }

	assert.Equal(t, 3, meter.Remaining(alice))
	for range 3 {
		assert.True(t, meter.Charge(alice))
	}
	assert.False(t, meter.Charge(alice))
	assert.Equal(t, 3, meter.Remaining(bob), "accounts have separate budgets")

	now = now.Add(59 * time.Second)
	assert.False(t, meter.Charge(alice))

	now = now.Add(time.Second)
	assert.Equal(t, 2, meter.Remaining(alice))

	now = now.Add(10 * time.Minute)
	assert.Equal(t, 3, meter.Remaining(alice), "refill is capped at the budget")
}

func TestGasMeter_NoRefillPeriod(t *testing.T) {
	meter := NewGasMeter(config.Ledger{GasBudget: 1})

	assert.True(t, meter.Charge(alice))
	assert.False(t, meter.Charge(alice))
}
