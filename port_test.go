package sciosenseens160_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-sensors/core/io/mocks"
	"github.com/go-sensors/sciosenseens160"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func Test_PortBus_Write_writes_to_the_port(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	port.EXPECT().
		Write([]byte{0x10, 0x02}).
		Return(2, nil)
	bus := sciosenseens160.NewPortBus(port)

	// Act
	err := bus.Write(context.Background(), address, []byte{0x10, 0x02})

	// Assert
	assert.Nil(t, err)
	assert.Same(t, port, bus.Port())
}

func Test_PortBus_WriteRead_writes_the_register_then_reads(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	gomock.InOrder(
		port.EXPECT().
			Write([]byte{0x24}).
			Return(1, nil),
		port.EXPECT().
			Read(gomock.Any()).
			DoAndReturn(func(buf []byte) (int, error) {
				buf[0] = 0x58
				buf[1] = 0x02
				return len(buf), nil
			}),
	)
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPortBus(port), address)
	assert.Nil(t, err)

	// Act
	eco2, err := device.ECO2(context.Background())

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, sciosenseens160.ECO2(600), eco2)
}

func Test_PortBus_WriteRead_does_not_read_when_the_write_fails(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	expected := errors.New("boom")
	port.EXPECT().
		Write([]byte{0x20}).
		Return(0, expected)
	bus := sciosenseens160.NewPortBus(port)

	// Act
	err := bus.WriteRead(context.Background(), address, []byte{0x20}, make([]byte, 1))

	// Assert
	assert.Same(t, expected, err)
}

func Test_PortBus_WriteRead_fails_on_a_short_read(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	gomock.InOrder(
		port.EXPECT().
			Write([]byte{0x24}).
			Return(1, nil),
		port.EXPECT().
			Read(gomock.Any()).
			DoAndReturn(func(buf []byte) (int, error) {
				buf[0] = 0x58
				return 1, nil
			}),
	)
	device, err := sciosenseens160.NewDevice(sciosenseens160.NewPortBus(port), address)
	assert.Nil(t, err)

	// Act
	eco2, err := device.ECO2(context.Background())

	// Assert
	assert.Equal(t, sciosenseens160.ECO2(0), eco2)
	assert.ErrorContains(t, err, "short read: 1 of 2 bytes")
}

func Test_PortBus_WriteRead_returns_the_read_error(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	port := mocks.NewMockPort(ctrl)
	expected := errors.New("boom")
	port.EXPECT().
		Write([]byte{0x20}).
		Return(1, nil)
	port.EXPECT().
		Read(gomock.Any()).
		Return(0, expected)
	bus := sciosenseens160.NewPortBus(port)

	// Act
	err := bus.WriteRead(context.Background(), address, []byte{0x20}, make([]byte, 1))

	// Assert
	assert.Same(t, expected, err)
}
