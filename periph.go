package sciosenseens160

import (
	"context"

	"periph.io/x/conn/v3/i2c"
)

// PeriphBus adapts a periph.io I²C bus to a Bus. Every transaction is a single i2c.Bus.Tx, so
// a write-then-read keeps the repeated start between the register address and the data.
type PeriphBus struct {
	bus i2c.Bus
}

// NewPeriphBus creates a Bus over an opened periph.io bus, for example from i2creg.Open.
func NewPeriphBus(bus i2c.Bus) *PeriphBus {
	return &PeriphBus{bus: bus}
}

func (b *PeriphBus) Write(ctx context.Context, addr uint16, w []byte) error {
	return b.bus.Tx(addr, w, nil)
}

func (b *PeriphBus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	return b.bus.Tx(addr, w, r)
}

func (b *PeriphBus) String() string {
	return b.bus.String()
}
