package main

import (
	"context"
	"fmt"

	gi2c "github.com/d2r2/go-i2c"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// d2r2Bus drives the device through /dev/i2c-N with one file handle per address. A
// write-then-read is two transfers with a stop in between.
type d2r2Bus struct {
	bus     int
	handles map[uint16]*gi2c.I2C
}

func openD2R2Bus(bus int) (*d2r2Bus, error) {
	return &d2r2Bus{bus: bus, handles: map[uint16]*gi2c.I2C{}}, nil
}

func (b *d2r2Bus) handle(addr uint16) (*gi2c.I2C, error) {
	if h, ok := b.handles[addr]; ok {
		return h, nil
	}
	h, err := gi2c.NewI2C(uint8(addr), b.bus)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open i2c-%d at 0x%02X", b.bus, addr)
	}
	b.handles[addr] = h
	return h, nil
}

func (b *d2r2Bus) Write(ctx context.Context, addr uint16, w []byte) error {
	h, err := b.handle(addr)
	if err != nil {
		return err
	}
	_, err = h.WriteBytes(w)
	return err
}

func (b *d2r2Bus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	h, err := b.handle(addr)
	if err != nil {
		return err
	}
	if len(w) > 0 {
		if _, err := h.WriteBytes(w); err != nil {
			return err
		}
	}
	n, err := h.ReadBytes(r)
	if err != nil {
		return err
	}
	if n != len(r) {
		return errors.Errorf("short read: %d of %d bytes", n, len(r))
	}
	return nil
}

func (b *d2r2Bus) String() string {
	return fmt.Sprintf("i2c-%d", b.bus)
}

func (b *d2r2Bus) Close() error {
	var err error
	for addr, h := range b.handles {
		multierr.AppendInto(&err, h.Close())
		delete(b.handles, addr)
	}
	return err
}
