package sciosenseens160

import (
	"context"

	coreio "github.com/go-sensors/core/io"
	"github.com/pkg/errors"
)

// PortBus adapts a go-sensors port to a Bus. The port is already bound to the sensor, so the
// address passed to each transaction is not used, and a write-then-read is issued as a write
// followed by a read. A read returning fewer bytes than requested is an error.
type PortBus struct {
	port coreio.Port
}

// NewPortBus creates a Bus over an open port
func NewPortBus(port coreio.Port) *PortBus {
	return &PortBus{port: port}
}

func (b *PortBus) Write(ctx context.Context, addr uint16, w []byte) error {
	_, err := b.port.Write(w)
	return err
}

func (b *PortBus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	_, err := b.port.Write(w)
	if err != nil {
		return err
	}

	n, err := b.port.Read(r)
	if err != nil {
		return err
	}
	if n != len(r) {
		return errors.Errorf("short read: %d of %d bytes", n, len(r))
	}
	return nil
}

// Port returns the underlying port
func (b *PortBus) Port() coreio.Port {
	return b.port
}
