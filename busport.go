package sciosenseens160

import (
	"context"
	"sync/atomic"

	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
)

// BusPortFactory opens ports bound to a single address on a Bus, so a Sensor can run over
// any Bus implementation.
type BusPortFactory struct {
	bus     Bus
	address uint16
}

// NewBusPortFactory creates a port factory for the device at address on bus
func NewBusPortFactory(bus Bus, address uint16) *BusPortFactory {
	return &BusPortFactory{bus: bus, address: address}
}

func (f *BusPortFactory) Open() (coreio.Port, error) {
	if f.bus == nil {
		return nil, errors.New("bus is required")
	}
	return &busPort{bus: f.bus, address: f.address}, nil
}

type busPort struct {
	bus     Bus
	address uint16
	closed  atomic.Bool
}

var errPortClosed = errors.New("port is closed")

func (p *busPort) Write(b []byte) (int, error) {
	if p.closed.Load() {
		return 0, errPortClosed
	}
	err := p.bus.Write(context.Background(), p.address, b)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to write to 0x%X", p.address)
	}
	return len(b), nil
}

func (p *busPort) Read(b []byte) (int, error) {
	if p.closed.Load() {
		return 0, errPortClosed
	}
	err := p.bus.WriteRead(context.Background(), p.address, nil, b)
	if err != nil {
		return 0, errors.Wrapf(err, "failed to read from 0x%X", p.address)
	}
	return len(b), nil
}

// Close detaches the port. The bus stays open and belongs to the caller.
func (p *busPort) Close() error {
	p.closed.Store(true)
	return nil
}
