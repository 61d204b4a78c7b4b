package sciosenseens160_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sensors/sciosenseens160"
	"github.com/go-sensors/sciosenseens160/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func Test_BusPortFactory_Open_fails_without_a_bus(t *testing.T) {
	// Arrange
	factory := sciosenseens160.NewBusPortFactory(nil, address)

	// Act
	port, err := factory.Open()

	// Assert
	assert.Nil(t, port)
	assert.ErrorContains(t, err, "bus is required")
}

func Test_BusPortFactory_port_drives_a_device_over_the_bus(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockBus(ctrl)
	gomock.InOrder(
		bus.EXPECT().
			Write(gomock.Any(), address, []byte{0x24}).
			Return(nil),
		bus.EXPECT().
			WriteRead(gomock.Any(), address, nil, gomock.Any()).
			DoAndReturn(func(ctx context.Context, addr uint16, w, r []byte) error {
				copy(r, []byte{0x58, 0x02})
				return nil
			}),
	)
	port, err := sciosenseens160.NewBusPortFactory(bus, address).Open()
	assert.Nil(t, err)
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPortBus(port), address)
	assert.Nil(t, err)

	// Act
	eco2, err := device.ECO2(context.Background())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, sciosenseens160.ECO2(600), eco2)
}

func Test_BusPortFactory_port_wraps_bus_errors(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockBus(ctrl)
	expected := errors.New("nack")
	bus.EXPECT().
		Write(gomock.Any(), address, []byte{0x10, 0x01}).
		Return(expected)
	port, err := sciosenseens160.NewBusPortFactory(bus, address).Open()
	assert.Nil(t, err)

	// Act
	n, err := port.Write([]byte{0x10, 0x01})

	// Assert
	assert.Equal(t, 0, n)
	assert.ErrorIs(t, err, expected)
	assert.ErrorContains(t, err, "failed to write to 0x53")
}

func Test_BusPortFactory_port_rejects_transactions_after_close(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	bus := mocks.NewMockBus(ctrl)
	port, err := sciosenseens160.NewBusPortFactory(bus, address).Open()
	assert.Nil(t, err)

	// Act
	closeErr := port.Close()
	_, writeErr := port.Write([]byte{0x10, 0x00})
	_, readErr := port.Read(make([]byte, 1))

	// Assert
	assert.Nil(t, closeErr)
	assert.ErrorContains(t, writeErr, "port is closed")
	assert.ErrorContains(t, readErr, "port is closed")
}
