package sciosenseens160

import (
	"context"
)

//go:generate mockgen -destination=mocks/mock_bus.go -package=mocks . Bus

// Bus is the transport capability the register protocol is written against. Each call is a
// single transaction against the device at addr.
type Bus interface {
	// Write sends w to the device.
	Write(ctx context.Context, addr uint16, w []byte) error
	// WriteRead sends w and then reads exactly len(r) bytes into r.
	WriteRead(ctx context.Context, addr uint16, w, r []byte) error
}

// ExecutionModel selects how a Device waits for its bus transactions.
type ExecutionModel int

const (
	// Blocking runs every transaction on the calling goroutine until the transport returns.
	Blocking ExecutionModel = iota
	// Suspending makes every transaction a suspension point that ends when either the
	// transport completes or the context is done.
	Suspending
)

func (m ExecutionModel) String() string {
	switch m {
	case Blocking:
		return "blocking"
	case Suspending:
		return "suspending"
	default:
		return "unknown"
	}
}

func (m ExecutionModel) wrap(bus Bus) Bus {
	if m == Suspending {
		return &suspendingBus{bus: bus}
	}
	return &blockingBus{bus: bus}
}

type blockingBus struct {
	bus Bus
}

func (b *blockingBus) Write(ctx context.Context, addr uint16, w []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.bus.Write(ctx, addr, w)
}

func (b *blockingBus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return b.bus.WriteRead(ctx, addr, w, r)
}

// suspendingBus awaits each transaction on its own goroutine. A transaction abandoned by a
// cancelled caller still runs to completion, and the next one does not start before it has.
type suspendingBus struct {
	bus      Bus
	inflight chan struct{}
}

func (b *suspendingBus) Write(ctx context.Context, addr uint16, w []byte) error {
	payload := append([]byte(nil), w...)
	return b.suspend(ctx, func() error {
		return b.bus.Write(context.Background(), addr, payload)
	})
}

func (b *suspendingBus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	payload := append([]byte(nil), w...)
	buf := make([]byte, len(r))
	err := b.suspend(ctx, func() error {
		return b.bus.WriteRead(context.Background(), addr, payload, buf)
	})
	if err != nil {
		return err
	}
	copy(r, buf)
	return nil
}

func (b *suspendingBus) suspend(ctx context.Context, tx func() error) error {
	if b.inflight != nil {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-b.inflight:
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	done := make(chan struct{})
	result := make(chan error, 1)
	b.inflight = done
	go func() {
		defer close(done)
		result <- tx()
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-result:
		return err
	}
}
