//go:build !linux

package main

import (
	"context"

	"github.com/pkg/errors"
)

type d2r2Bus struct{}

func openD2R2Bus(bus int) (*d2r2Bus, error) {
	return nil, errors.New("the d2r2 driver is only available on linux")
}

func (*d2r2Bus) Write(ctx context.Context, addr uint16, w []byte) error {
	return errors.New("not supported")
}

func (*d2r2Bus) WriteRead(ctx context.Context, addr uint16, w, r []byte) error {
	return errors.New("not supported")
}

func (*d2r2Bus) String() string {
	return "d2r2"
}

func (*d2r2Bus) Close() error {
	return nil
}
